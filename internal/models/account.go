package models

import "github.com/shopspring/decimal"

// Account is a customer's ledger record: a balance plus the ordered history of
// every transaction successfully posted against it. The transaction slice is
// append-only; insertion order is the order postings committed.
type Account struct {
	ID           string          `json:"id"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}
