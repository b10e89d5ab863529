package domain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

var unavailableJSON = []byte(`"N/A"`)

// Amount is a monetary value that may be unavailable. The unavailable state
// is an explicit marker ("N/A" on the wire), never an absent field, so the
// persisted document stays hand-editable and unambiguous.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// AmountOf wraps a known value.
func AmountOf(v decimal.Decimal) Amount {
	return Amount{Value: v, Valid: true}
}

// AmountFromFloat wraps a known value given as a float.
func AmountFromFloat(v float64) Amount {
	return AmountOf(decimal.NewFromFloat(v))
}

// AmountUnavailable returns the explicit "no data" marker.
func AmountUnavailable() Amount {
	return Amount{}
}

func (a Amount) String() string {
	if !a.Valid {
		return "N/A"
	}
	return a.Value.String()
}

// MarshalJSON encodes unavailable amounts as the literal "N/A".
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return unavailableJSON, nil
	}
	return a.Value.MarshalJSON()
}

// UnmarshalJSON accepts a decimal (quoted or bare), the "N/A" marker, or
// null. Anything unparsable decodes as unavailable rather than failing the
// whole document.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, unavailableJSON) || bytes.Equal(trimmed, []byte("null")) {
		*a = AmountUnavailable()
		return nil
	}
	var v decimal.Decimal
	if err := v.UnmarshalJSON(trimmed); err != nil {
		*a = AmountUnavailable()
		return nil
	}
	*a = AmountOf(v)
	return nil
}
