package cgt

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of prices and expenses when none is configured.
const DefaultCurrency = "GBP"

// Money represents an exact monetary value in a currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the Money for value in currency.
func M[T int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted for display in its currency, e.g. £1.50.
// Digits beyond the currency's minor unit are truncated: use Decimal for the
// exact value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Mul(q Quantity) Money         { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// knownCurrency reports whether code is an ISO-4217 currency code.
func knownCurrency(code string) bool {
	c := money.GetCurrency(code)
	return c != nil && c.Code == code
}
