package persistence

import (
	"context"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
)

// Collaborator lookup contracts. The core consumes these; any CRUD backend
// satisfies them as long as existence and ownership checks are combined into
// a single not-found failure.

// AccountRepository resolves user-owned accounts
type AccountRepository interface {
	// GetOwned retrieves an active account owned by the given user
	//
	// Possible errors:
	// - ErrAccountNotFound: if absent, soft-deleted, or owned by another user
	// - ErrDatabaseConnection: if the database is unreachable
	GetOwned(ctx context.Context, userID, accountID uint64) (*entity.Account, error)

	// ListByUser retrieves all active accounts for a user
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error)
}

// CategoryRepository resolves user-owned categories
type CategoryRepository interface {
	// GetOwned retrieves an active category owned by the given user
	//
	// Possible errors:
	// - ErrCategoryNotFound: if absent, soft-deleted, or owned by another user
	// - ErrDatabaseConnection: if the database is unreachable
	GetOwned(ctx context.Context, userID, categoryID uint64) (*entity.Category, error)

	// ListByUser retrieves all active categories for a user
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Category, error)
}

// UserRepository resolves users by id
type UserRepository interface {
	// GetByID retrieves a user
	//
	// Possible errors:
	// - ErrUserNotFound: if no user has the given id
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)
}

// AllocationRepository reads allocation pools for aggregation
type AllocationRepository interface {
	// ListByUser retrieves all allocations for a user regardless of status
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Allocation, error)
}
