package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
)

// TransactionRepository defines the write and read paths for ledger events.
// Every multi-row read returns rows ordered by transaction date descending,
// ties broken by insertion order. This is a user-facing recency ordering
// requirement, not an incidental storage order.
type TransactionRepository interface {
	// Create persists a new transaction and assigns its id and timestamps
	//
	// Possible errors:
	// - ErrInvariantViolation: if the transfer fields contradict the type
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update overwrites the mutable fields of an existing transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no row matches the id
	// - ErrInvariantViolation: if the transfer fields contradict the type
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a single transaction row
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no row matches the id
	// - ErrDatabaseConnection: if the database is unreachable
	Delete(ctx context.Context, id uint64) error

	// DeleteByTransferGroup removes every transaction sharing the group id
	// and returns the number of rows removed
	DeleteByTransferGroup(ctx context.Context, groupID uuid.UUID) (int64, error)

	// GetByIDAndUser retrieves a transaction owned by the given user.
	// Existence and ownership failures are both reported as
	// ErrTransactionNotFound so ids never leak across users.
	GetByIDAndUser(ctx context.Context, id, userID uint64) (*entity.Transaction, error)

	// ListByTransferGroup retrieves all legs sharing the group id
	ListByTransferGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Transaction, error)

	// ListByUser retrieves all transactions for a user, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// ListByAccount retrieves all transactions for an account, newest first.
	// Callers verify account ownership before invoking this.
	ListByAccount(ctx context.Context, accountID uint64) ([]*entity.Transaction, error)
}
