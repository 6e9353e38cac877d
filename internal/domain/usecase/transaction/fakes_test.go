package transaction

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/domain/port/persistence"
)

// In-memory collaborators for exercising the service without a database. The
// fake unit of work snapshots the store on Begin and restores it on Rollback,
// which is enough to observe real atomicity behavior from the outside.

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time                  { return c.now }
func (c *fakeClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *fakeClock) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

type silentLogger struct{}

func (silentLogger) SetLevel(_ coreport.LogLevel)     {}
func (silentLogger) Debug(_ string, _ map[string]any) {}
func (silentLogger) Info(_ string, _ map[string]any)  {}
func (silentLogger) Warn(_ string, _ map[string]any)  {}
func (silentLogger) Error(_ string, _ map[string]any) {}
func (silentLogger) Flush() error                     { return nil }

type memStore struct {
	nextID uint64
	txs    map[uint64]*entity.Transaction
}

func newMemStore() *memStore {
	return &memStore{txs: make(map[uint64]*entity.Transaction)}
}

func (s *memStore) snapshot() (uint64, map[uint64]*entity.Transaction) {
	copied := make(map[uint64]*entity.Transaction, len(s.txs))
	for id, tx := range s.txs {
		clone := *tx
		copied[id] = &clone
	}
	return s.nextID, copied
}

type fakeTransactionRepo struct {
	store        *memStore
	failOnCreate int // 1-based create call to fail, 0 never fails
	createCalls  int
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	r.createCalls++
	if r.failOnCreate != 0 && r.createCalls == r.failOnCreate {
		return errs.ErrDatabaseConnection
	}
	r.store.nextID++
	tx.ID = r.store.nextID
	clone := *tx
	r.store.txs[tx.ID] = &clone
	return nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if _, ok := r.store.txs[tx.ID]; !ok {
		return errs.ErrTransactionNotFound
	}
	clone := *tx
	r.store.txs[tx.ID] = &clone
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := r.store.txs[id]; !ok {
		return errs.ErrTransactionNotFound
	}
	delete(r.store.txs, id)
	return nil
}

func (r *fakeTransactionRepo) DeleteByTransferGroup(_ context.Context, groupID uuid.UUID) (int64, error) {
	var deleted int64
	for id, tx := range r.store.txs {
		if tx.TransferGroupID != nil && *tx.TransferGroupID == groupID {
			delete(r.store.txs, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeTransactionRepo) GetByIDAndUser(_ context.Context, id, userID uint64) (*entity.Transaction, error) {
	tx, ok := r.store.txs[id]
	if !ok || tx.UserID != userID {
		return nil, errs.ErrTransactionNotFound
	}
	clone := *tx
	return &clone, nil
}

func (r *fakeTransactionRepo) ListByTransferGroup(_ context.Context, groupID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.store.txs {
		if tx.TransferGroupID != nil && *tx.TransferGroupID == groupID {
			clone := *tx
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeTransactionRepo) ListByUser(_ context.Context, userID uint64) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.store.txs {
		if tx.UserID == userID {
			clone := *tx
			result = append(result, &clone)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *fakeTransactionRepo) ListByAccount(_ context.Context, accountID uint64) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.store.txs {
		if tx.AccountID == accountID {
			clone := *tx
			result = append(result, &clone)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func sortNewestFirst(txs []*entity.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].TransactionDate.Equal(txs[j].TransactionDate) {
			return txs[i].TransactionDate.After(txs[j].TransactionDate)
		}
		return txs[i].ID < txs[j].ID
	})
}

type fakeUnitOfWork struct {
	repo *fakeTransactionRepo

	beginErr  error
	commitErr error

	begun      int
	committed  int
	rolledBack int

	savedNextID uint64
	savedTxs    map[uint64]*entity.Transaction
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if u.beginErr != nil {
		return ctx, u.beginErr
	}
	u.begun++
	u.savedNextID, u.savedTxs = u.repo.store.snapshot()
	return ctx, nil
}

func (u *fakeUnitOfWork) Commit(_ context.Context) error {
	if u.commitErr != nil {
		return u.commitErr
	}
	u.committed++
	u.savedTxs = nil
	return nil
}

func (u *fakeUnitOfWork) Rollback(_ context.Context) error {
	u.rolledBack++
	if u.savedTxs != nil {
		u.repo.store.nextID = u.savedNextID
		u.repo.store.txs = u.savedTxs
		u.savedTxs = nil
	}
	return nil
}

func (u *fakeUnitOfWork) GetTransactionRepository(_ context.Context) persistence.TransactionRepository {
	return u.repo
}

type fakeAccountRepo struct {
	accounts map[uint64]*entity.Account
}

func (r *fakeAccountRepo) GetOwned(_ context.Context, userID, accountID uint64) (*entity.Account, error) {
	account, ok := r.accounts[accountID]
	if !ok || account.UserID != userID || !account.IsActive {
		return nil, errs.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *fakeAccountRepo) ListByUser(_ context.Context, userID uint64) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, account := range r.accounts {
		if account.UserID == userID && account.IsActive {
			clone := *account
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeCategoryRepo struct {
	categories map[uint64]*entity.Category
}

func (r *fakeCategoryRepo) GetOwned(_ context.Context, userID, categoryID uint64) (*entity.Category, error) {
	category, ok := r.categories[categoryID]
	if !ok || category.UserID != userID || !category.IsActive {
		return nil, errs.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepo) ListByUser(_ context.Context, userID uint64) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID && category.IsActive {
			clone := *category
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeUserRepo struct {
	users map[uint64]*entity.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uint64) (*entity.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}
