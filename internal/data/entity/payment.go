package entity

import (
	"time"
)

// DateLayout is the wire and storage layout of a transaction date.
const DateLayout = "2006-01-02"

type Payment struct {
	Base
	MethodID        int64     `db:"method_id"`
	CustomerID      int64     `db:"customer_id"`
	BasketID        int64     `db:"basket_id"`
	Sum             float64   `db:"sum"`
	IsFinalized     bool      `db:"is_finalized"`
	TransactionDate time.Time `db:"transaction_date"`
}

// Finalize marks the payment complete and reports whether it changed.
func (p *Payment) Finalize() bool {
	if p.IsFinalized {
		return false
	}
	p.IsFinalized = true
	return true
}

// TruncateDate drops the time component so only the calendar date survives.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
