package domain

import (
	"github.com/shopspring/decimal"
)

// AssetSnapshot is the normalized live view of a coin as returned by a
// market-data provider. Volume stands in for liquidity; providers that omit
// it report the unavailable marker.
type AssetSnapshot struct {
	Name      string
	Symbol    string
	Price     decimal.Decimal
	MarketCap decimal.Decimal
	Liquidity Amount
}
