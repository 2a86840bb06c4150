package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiagodiogo/teya-tiny-ledger/internal/interfaces"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/models"
)

// AccountStore is an in-memory implementation of interfaces.AccountStore.
// Accounts live for the process lifetime; nothing is persisted. The mutex
// guards the mapping only, not the accounts it points to.
type AccountStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

// NewAccountStore creates an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]*models.Account),
	}
}

// Create registers a fresh account with a zero balance and an empty
// transaction log, and returns it.
func (s *AccountStore) Create() *models.Account {
	account := &models.Account{
		ID:           uuid.New().String(),
		Balance:      decimal.Zero,
		Transactions: make([]models.Transaction, 0),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.ID] = account
	return account
}

// Find returns the live account registered under id, or false when no such
// account exists.
func (s *AccountStore) Find(id string) (*models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	return account, ok
}

// Compile-time check: ensure AccountStore implements the store interface
var _ interfaces.AccountStore = (*AccountStore)(nil)
