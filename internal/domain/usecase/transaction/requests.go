package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
)

// CreateTransactionRequest carries the input for a standalone transaction
// (INCOME, EXPENSE or ADJUSTMENT). TRANSFER is rejected here; use
// CreateTransferRequest instead.
type CreateTransactionRequest struct {
	AccountID       uint64
	CategoryID      *uint64
	TransactionType entity.TransactionType
	Amount          decimal.Decimal
	Currency        entity.Currency
	TransactionDate time.Time
	Description     string
	FxRateToBase    *decimal.Decimal
	Notes           string
}

// CreateTransferRequest carries the input for a transfer pair
type CreateTransferRequest struct {
	FromAccountID uint64
	ToAccountID   uint64
	Amount        decimal.Decimal
	Currency      entity.Currency
	TransferDate  time.Time
	Description   string
	FxRateToBase  *decimal.Decimal
	Notes         string
}

// TransferResult labels the two persisted legs of a created transfer
type TransferResult struct {
	TransferGroupID     uuid.UUID
	OutgoingTransaction *entity.Transaction
	IncomingTransaction *entity.Transaction
}

// Optional wraps a patch field with an explicit presence flag so an absent
// field is distinguishable from any legitimate value, including zero ones.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some builds a present Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UpdatePatch is a partial patch over the mutable transaction fields. Fields
// left unset keep their current value. TransactionType, TransferDirection,
// TransferGroupID, Currency, AccountID and UserID are immutable regardless
// of patch content.
type UpdatePatch struct {
	CategoryID      Optional[uint64]
	Amount          Optional[decimal.Decimal]
	TransactionDate Optional[time.Time]
	Description     Optional[string]
	FxRateToBase    Optional[decimal.Decimal]
	Notes           Optional[string]
}

// IsEmpty reports whether the patch carries no fields at all
func (p UpdatePatch) IsEmpty() bool {
	return !p.CategoryID.Set &&
		!p.Amount.Set &&
		!p.TransactionDate.Set &&
		!p.Description.Set &&
		!p.FxRateToBase.Set &&
		!p.Notes.Set
}
