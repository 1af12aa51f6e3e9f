package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single row in a <year>_transactions.csv shard.
type Transaction struct {
	ID          int             // dense 1..N within a shard, reassigned on delete
	Date        time.Time       // calendar date, midnight UTC
	Amount      decimal.Decimal // positive = income, negative = expense
	Category    string
	Description string
	Balance     decimal.Decimal // running sum of Amount in (Date, ID) order
}

// Before reports whether t sorts before other in canonical (date, id) order.
func (t Transaction) Before(other Transaction) bool {
	if !t.Date.Equal(other.Date) {
		return t.Date.Before(other.Date)
	}
	return t.ID < other.ID
}
