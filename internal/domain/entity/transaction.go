package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	tport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
)

// TransactionType classifies a ledger event
type TransactionType string

// Transaction types
const (
	TypeIncome     TransactionType = "INCOME"
	TypeExpense    TransactionType = "EXPENSE"
	TypeTransfer   TransactionType = "TRANSFER"
	TypeAdjustment TransactionType = "ADJUSTMENT"
)

// TransferDirection marks which side of a transfer a leg is
type TransferDirection string

// Transfer directions
const (
	DirectionOut TransferDirection = "OUT"
	DirectionIn  TransferDirection = "IN"
)

// Currency is one of the supported currency codes
type Currency string

// Supported currencies
const (
	CurrencyEGP Currency = "EGP"
	CurrencyUSD Currency = "USD"
)

// MaxDescriptionLength bounds the free-text description
const MaxDescriptionLength = 500

// Transaction represents a single ledger event. A TRANSFER is stored as two
// linked rows (legs) sharing a TransferGroupID: one OUT leg on the source
// account and one IN leg on the destination account. Amount is always stored
// positive; type and direction convey sign semantics.
type Transaction struct {
	ID                uint64             // Unique identifier, assigned at creation
	UserID            uint64             // Owning user
	AccountID         uint64             // Account this event applies to
	CategoryID        *uint64            // Optional category reference
	TransactionType   TransactionType    // INCOME, EXPENSE, TRANSFER or ADJUSTMENT
	TransferDirection *TransferDirection // Set iff TransactionType == TRANSFER
	TransferGroupID   *uuid.UUID         // Set iff TransactionType == TRANSFER
	Amount            decimal.Decimal    // Positive, 2 decimal places
	Currency          Currency
	TransactionDate   time.Time // Calendar date, no time component
	Description       string
	FxRateToBase      *decimal.Decimal // Optional reporting conversion hint
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransaction creates a standalone (non-transfer) transaction with full
// field validation. Transfer legs are built with NewTransferLeg instead.
func NewTransaction(
	userID uint64,
	accountID uint64,
	categoryID *uint64,
	txType TransactionType,
	amount decimal.Decimal,
	currency Currency,
	date time.Time,
	description string,
	fxRate *decimal.Decimal,
	notes string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if txType == TypeTransfer {
		return nil, errs.ErrTransferNotAllowed
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, txType)
	}
	if err := validateCommonFields(amount, currency, date, description, fxRate); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	tx := &Transaction{
		UserID:          userID,
		AccountID:       accountID,
		CategoryID:      categoryID,
		TransactionType: txType,
		Amount:          amount,
		Currency:        currency,
		TransactionDate: DateOnly(date),
		Description:     strings.TrimSpace(description),
		FxRateToBase:    fxRate,
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTransferLeg creates one leg of a transfer pair. Both legs of a group
// carry identical payload fields and complementary directions.
func NewTransferLeg(
	userID uint64,
	accountID uint64,
	direction TransferDirection,
	groupID uuid.UUID,
	amount decimal.Decimal,
	currency Currency,
	date time.Time,
	description string,
	fxRate *decimal.Decimal,
	notes string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if err := validateCommonFields(amount, currency, date, description, fxRate); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	dir := direction
	gid := groupID
	tx := &Transaction{
		UserID:            userID,
		AccountID:         accountID,
		TransactionType:   TypeTransfer,
		TransferDirection: &dir,
		TransferGroupID:   &gid,
		Amount:            amount,
		Currency:          currency,
		TransactionDate:   DateOnly(date),
		Description:       strings.TrimSpace(description),
		FxRateToBase:      fxRate,
		Notes:             notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Validate enforces the structural invariant: TransactionType == TRANSFER
// if and only if both TransferDirection and TransferGroupID are set. It runs
// before every insert and update so no write path can corrupt the linkage.
func (t *Transaction) Validate() error {
	if t.TransactionType == TypeTransfer {
		if t.TransferDirection == nil {
			return errs.NewInvariantError(t.ID, string(t.TransactionType), "transfer direction is required for TRANSFER transactions")
		}
		if *t.TransferDirection != DirectionOut && *t.TransferDirection != DirectionIn {
			return errs.NewInvariantError(t.ID, string(t.TransactionType), fmt.Sprintf("unknown transfer direction %q", *t.TransferDirection))
		}
		if t.TransferGroupID == nil || *t.TransferGroupID == uuid.Nil {
			return errs.NewInvariantError(t.ID, string(t.TransactionType), "transfer group id is required for TRANSFER transactions")
		}
		return nil
	}
	if t.TransferDirection != nil || t.TransferGroupID != nil {
		return errs.NewInvariantError(t.ID, string(t.TransactionType), "transfer direction and group id must be absent for non-TRANSFER transactions")
	}
	return nil
}

// IsTransfer returns true if this transaction is one leg of a transfer pair
func (t *Transaction) IsTransfer() bool {
	return t.TransactionType == TypeTransfer
}

// AffectsReports returns true iff the transaction counts toward income/expense
// totals. Transfers are zero-sum within the owner's wealth and adjustments are
// corrections, so both are excluded.
func (t *Transaction) AffectsReports() bool {
	return t.TransactionType == TypeIncome || t.TransactionType == TypeExpense
}

// Opposite maps OUT to IN and IN to OUT
func Opposite(direction TransferDirection) TransferDirection {
	if direction == DirectionOut {
		return DirectionIn
	}
	return DirectionOut
}

// DateOnly strips the time component, keeping the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsValidTransactionType validates if the type is one of the allowed values
func IsValidTransactionType(txType string) bool {
	switch TransactionType(txType) {
	case TypeIncome, TypeExpense, TypeTransfer, TypeAdjustment:
		return true
	}
	return false
}

// IsValidCurrency validates if the currency code is supported
func IsValidCurrency(currency string) bool {
	return currency == string(CurrencyEGP) || currency == string(CurrencyUSD)
}

// IsValidDirection validates if the direction is one of the allowed values
func IsValidDirection(direction string) bool {
	return direction == string(DirectionOut) || direction == string(DirectionIn)
}

func validateCommonFields(amount decimal.Decimal, currency Currency, date time.Time, description string, fxRate *decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !IsValidCurrency(string(currency)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidCurrency, currency)
	}
	if date.IsZero() {
		return errs.ErrInvalidDate
	}
	if err := ValidateDescription(description); err != nil {
		return err
	}
	return ValidateFxRate(fxRate)
}

// ValidateDescription checks the description is non-empty and bounded
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return fmt.Errorf("%w: description is required", errs.ErrInvalidDescription)
	}
	if len(trimmed) > MaxDescriptionLength {
		return fmt.Errorf("%w: description cannot exceed %d characters", errs.ErrInvalidDescription, MaxDescriptionLength)
	}
	return nil
}
