package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-row writes inside one all-or-nothing database
// transaction. The two-row transfer insert and the two-row transfer delete
// each run inside a single unit: a failure partway through must leave neither
// row changed.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTransactionRepository returns a transaction repository bound to the
	// transaction in ctx, or to the base connection when ctx carries none
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
