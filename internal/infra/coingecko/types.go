package coingecko

// listedCoin is one element of the /coins/list response.
type listedCoin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// usdValue is a currency map narrowed to the USD quote.
type usdValue struct {
	USD float64 `json:"usd"`
}

// coinResponse is the subset of /coins/{id} the bot consumes.
type coinResponse struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	MarketData struct {
		CurrentPrice usdValue `json:"current_price"`
		MarketCap    usdValue `json:"market_cap"`
		// Pointer so an omitted total_volume maps to the unavailable marker.
		TotalVolume *struct {
			USD *float64 `json:"usd"`
		} `json:"total_volume"`
	} `json:"market_data"`
}

// marketChartResponse is the /coins/{id}/market_chart response. Each price
// element is a [timestamp_ms, price] pair in ascending time order.
type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}
