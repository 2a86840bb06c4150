package interfaces

import "github.com/tiagodiogo/teya-tiny-ledger/internal/models"

// AccountStore is the process-wide mapping from account identifier to account.
// It holds no business rules: Create allocates and registers a fresh account,
// Find returns the live account handle so the ledger service can mutate it in
// place under its own lock. Implementations must guard the mapping itself;
// atomicity of a read-validate-mutate sequence on one account is the caller's
// responsibility.
type AccountStore interface {
	Create() *models.Account
	Find(id string) (*models.Account, bool)
}
