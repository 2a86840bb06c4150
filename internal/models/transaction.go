package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates deposits from withdrawals.
type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Valid reports whether t is one of the recognized transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

// Transaction is an immutable record of a single deposit or withdrawal against
// one account. Once appended to an account it is never mutated or removed.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
