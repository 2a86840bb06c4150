package ledger

import "errors"

// Domain failures surfaced to the transport adapter. Each one is a
// deterministic outcome of the input and current state, never retried
// internally, and each must map to a distinct client-facing signal.
var (
	// ErrAccountNotFound means the given account identifier does not exist.
	ErrAccountNotFound = errors.New("customer account not found")

	// ErrInsufficientFunds means a withdrawal would drive the balance
	// negative. The account is left exactly as before the attempt.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTransactionType means the requested type is not one of the
	// recognized transaction kinds.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount means the amount was zero or negative. A negative
	// deposit would silently drain a balance and a negative withdrawal would
	// mint funds past the insufficient-funds check, so both are rejected.
	ErrInvalidAmount = errors.New("transaction amount must be positive")
)
