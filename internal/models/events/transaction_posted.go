package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiagodiogo/teya-tiny-ledger/internal/models"
)

// TransactionPosted is published after a transaction has been committed to an
// account's ledger.
type TransactionPosted struct {
	TransactionID string                 `json:"transaction_id"`
	AccountID     string                 `json:"account_id"`
	Type          models.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	OccurredAt    time.Time              `json:"occurred_at"`
}
