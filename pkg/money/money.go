package money

import "github.com/shopspring/decimal"

// Amount wraps a decimal value and pins its textual form to two
// fractional digits. decimal.Decimal.String trims trailing zeros, so
// a 25.00 balance would otherwise leave the API as "25".
type Amount struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func Zero() Amount {
	return Amount{Decimal: decimal.Zero}
}

func (a Amount) String() string {
	return a.StringFixed(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(2) + `"`), nil
}
