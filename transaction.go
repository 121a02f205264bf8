package cgt

import (
	"fmt"

	"github.com/etnz/cgt/date"
)

// Transaction is one event of a transaction log: a buy, a sell or a Section
// 104 adjustment of an asset. It is immutable once parsed.
type Transaction struct {
	id       int
	kind     Kind
	on       date.Date
	asset    string
	amount   Quantity
	price    Money
	expenses Money
}

// ID returns the identifier assigned by the Parser, unique and increasing
// in the order transactions were parsed.
func (t Transaction) ID() int { return t.id }

// Kind returns what the transaction does.
func (t Transaction) Kind() Kind { return t.kind }

// Date returns the day the transaction took place.
func (t Transaction) Date() date.Date { return t.on }

// Asset returns the ticker or symbol of the asset, as written in the log.
func (t Transaction) Asset() string { return t.asset }

// Amount returns the number of units transacted, or the adjustment quantity
// for a Section104Adjust.
func (t Transaction) Amount() Quantity { return t.amount }

// Price returns the unit price.
func (t Transaction) Price() Money { return t.price }

// Expenses returns the fees paid for the transaction.
func (t Transaction) Expenses() Money { return t.expenses }

// Equal reports whether t and u hold the same values, including the id.
func (t Transaction) Equal(u Transaction) bool {
	return t.id == u.id &&
		t.kind == u.kind &&
		t.on == u.on &&
		t.asset == u.asset &&
		t.amount.Equal(u.amount) &&
		t.price.Equal(u.price) &&
		t.expenses.Equal(u.expenses)
}

// String returns the transaction as a canonical log line.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s", t.kind, t.on, t.asset, t.amount, t.price.Decimal(), t.expenses.Decimal())
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.id)
	w.Append("kind", t.kind)
	w.Append("date", t.on)
	w.Append("asset", t.asset)
	w.Append("amount", t.amount)
	w.Append("price", t.price)
	w.Append("expenses", t.expenses)
	w.Optional("currency", t.price.Currency())
	return w.MarshalJSON()
}
