package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tiagodiogo/teya-tiny-ledger/internal/interfaces"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/models"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/models/events"
)

// TopicTransactionPosted is the event stream topic for committed postings.
const TopicTransactionPosted = "transaction_posted"

// Ledger enforces the accounting rules on top of an AccountStore.
//
// A single process-wide RW mutex serializes every mutation: at most one
// posting or account creation is in flight at any time, which makes the
// balance update and the log append one atomic unit. Readers take the shared
// side of the lock, so they always observe a balance and a transaction log
// from the same point in the mutation sequence. This is coarser than
// per-account locking and deliberately so: it trivially rules out lost
// updates and torn reads at the cost of serializing writes across accounts.
type Ledger struct {
	store     interfaces.AccountStore
	publisher interfaces.EventPublisher // optional; nil disables events
	logger    *zap.Logger
	mu        sync.RWMutex
}

// NewLedger creates a ledger service over the given store. publisher may be
// nil when no event stream is configured.
func NewLedger(store interfaces.AccountStore, publisher interfaces.EventPublisher, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// OpenAccount creates a new customer account with a zero balance and returns
// its identifier.
func (l *Ledger) OpenAccount() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	account := l.store.Create()
	l.logger.Info("created customer account", zap.String("account_id", account.ID))
	return account.ID
}

// GetBalance returns the most recently committed balance for the account.
func (l *Ledger) GetBalance(accountID string) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.store.Find(accountID)
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}
	return account.Balance, nil
}

// PostTransaction validates and commits a deposit or withdrawal against the
// account and returns the new transaction's identifier. A withdrawal that
// would drive the balance negative fails with ErrInsufficientFunds and leaves
// the balance and the transaction log completely unchanged.
func (l *Ledger) PostTransaction(accountID string, txType models.TransactionType, amount decimal.Decimal, description string) (string, error) {
	tx, err := l.commit(accountID, txType, amount, description)
	if err != nil {
		return "", err
	}

	// Published outside the lock: the posting is already committed and a slow
	// broker must not stall other writers.
	l.publish(accountID, tx)
	return tx.ID, nil
}

// commit performs the read-balance/validate/append sequence as one critical
// section. No caller can observe the new balance without the new log entry or
// vice versa.
func (l *Ledger) commit(accountID string, txType models.TransactionType, amount decimal.Decimal, description string) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !txType.Valid() {
		return models.Transaction{}, ErrInvalidTransactionType
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}

	account, ok := l.store.Find(accountID)
	if !ok {
		return models.Transaction{}, ErrAccountNotFound
	}

	newBalance := account.Balance
	switch txType {
	case models.TypeDeposit:
		newBalance = newBalance.Add(amount)
	case models.TypeWithdrawal:
		newBalance = newBalance.Sub(amount)
		if newBalance.Cmp(decimal.Zero) < 0 {
			l.logger.Warn("rejected withdrawal",
				zap.String("account_id", accountID),
				zap.String("amount", amount.String()),
				zap.String("balance", account.Balance.String()))
			return models.Transaction{}, ErrInsufficientFunds
		}
	}

	tx := models.Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	account.Balance = newBalance
	account.Transactions = append(account.Transactions, tx)

	l.logger.Info("created customer transaction",
		zap.String("account_id", accountID),
		zap.String("transaction_id", tx.ID),
		zap.String("type", string(txType)),
		zap.String("amount", amount.String()))
	return tx, nil
}

// ListTransactions returns the account's transaction log in the order the
// postings committed. The returned slice is a copy; callers cannot reach the
// live log.
func (l *Ledger) ListTransactions(accountID string) ([]models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.store.Find(accountID)
	if !ok {
		return nil, ErrAccountNotFound
	}

	out := make([]models.Transaction, len(account.Transactions))
	copy(out, account.Transactions)
	return out, nil
}

// publish emits a TransactionPosted event. Best effort: the posting is
// already committed, so a publish failure is logged and dropped rather than
// unwinding ledger state.
func (l *Ledger) publish(accountID string, tx models.Transaction) {
	if l.publisher == nil {
		return
	}

	event := events.TransactionPosted{
		TransactionID: tx.ID,
		AccountID:     accountID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		OccurredAt:    tx.CreatedAt,
	}
	if err := l.publisher.Publish(TopicTransactionPosted, event); err != nil {
		l.logger.Error("failed to publish transaction event",
			zap.String("transaction_id", tx.ID),
			zap.Error(err))
	}
}
