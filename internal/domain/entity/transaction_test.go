package entity

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
)

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time                  { return c.now }
func (c stubClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c stubClock) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 8, 15, 12, 30, 0, 0, time.UTC)
	clock := stubClock{now: fixedTime}
	categoryID := uint64(7)

	t.Run("Valid income transaction", func(t *testing.T) {
		tx, err := NewTransaction(
			1, 10, &categoryID,
			TypeIncome,
			decimal.RequireFromString("1000.00"),
			CurrencyEGP,
			time.Date(2025, 8, 1, 18, 45, 3, 0, time.Local),
			"August salary",
			nil,
			"",
			clock,
		)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, uint64(10), tx.AccountID)
		assert.Equal(t, &categoryID, tx.CategoryID)
		assert.Equal(t, TypeIncome, tx.TransactionType)
		assert.Nil(t, tx.TransferDirection)
		assert.Nil(t, tx.TransferGroupID)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1000.00")))
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Equal(t, fixedTime, tx.UpdatedAt)
	})

	t.Run("Transaction date keeps only the calendar day", func(t *testing.T) {
		tx, err := NewTransaction(
			1, 10, nil,
			TypeExpense,
			decimal.RequireFromString("45.50"),
			CurrencyUSD,
			time.Date(2025, 8, 20, 23, 59, 59, 0, time.UTC),
			"Groceries",
			nil,
			"",
			clock,
		)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), tx.TransactionDate)
	})

	t.Run("Description is trimmed", func(t *testing.T) {
		tx, err := NewTransaction(
			1, 10, nil,
			TypeAdjustment,
			decimal.RequireFromString("1.00"),
			CurrencyEGP,
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			"  balance fix  ",
			nil,
			"",
			clock,
		)

		require.NoError(t, err)
		assert.Equal(t, "balance fix", tx.Description)
	})

	t.Run("TRANSFER type is rejected", func(t *testing.T) {
		tx, err := NewTransaction(
			1, 10, nil,
			TypeTransfer,
			decimal.RequireFromString("100.00"),
			CurrencyEGP,
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			"sneaky transfer",
			nil,
			"",
			clock,
		)

		assert.ErrorIs(t, err, errs.ErrTransferNotAllowed)
		assert.Nil(t, tx)
	})

	t.Run("Unknown transaction type", func(t *testing.T) {
		_, err := NewTransaction(
			1, 10, nil,
			TransactionType("REFUND"),
			decimal.RequireFromString("100.00"),
			CurrencyEGP,
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			"refund",
			nil,
			"",
			clock,
		)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unsupported currency", func(t *testing.T) {
		_, err := NewTransaction(
			1, 10, nil,
			TypeExpense,
			decimal.RequireFromString("100.00"),
			Currency("EUR"),
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			"lunch",
			nil,
			"",
			clock,
		)

		assert.ErrorIs(t, err, errs.ErrInvalidCurrency)
	})

	t.Run("Zero date", func(t *testing.T) {
		_, err := NewTransaction(
			1, 10, nil,
			TypeExpense,
			decimal.RequireFromString("100.00"),
			CurrencyEGP,
			time.Time{},
			"lunch",
			nil,
			"",
			clock,
		)

		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("Empty description", func(t *testing.T) {
		_, err := NewTransaction(
			1, 10, nil,
			TypeExpense,
			decimal.RequireFromString("100.00"),
			CurrencyEGP,
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			"   ",
			nil,
			"",
			clock,
		)

		assert.ErrorIs(t, err, errs.ErrInvalidDescription)
	})

	t.Run("Description over limit", func(t *testing.T) {
		_, err := NewTransaction(
			1, 10, nil,
			TypeExpense,
			decimal.RequireFromString("100.00"),
			CurrencyEGP,
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			strings.Repeat("a", MaxDescriptionLength+1),
			nil,
			"",
			clock,
		)

		assert.ErrorIs(t, err, errs.ErrInvalidDescription)
	})
}

func TestNewTransferLeg(t *testing.T) {
	clock := stubClock{now: time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)}
	groupID := uuid.New()

	t.Run("Valid outgoing leg", func(t *testing.T) {
		leg, err := NewTransferLeg(
			1, 10, DirectionOut, groupID,
			decimal.RequireFromString("500.00"),
			CurrencyEGP,
			time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
			"Move to savings",
			nil,
			"",
			clock,
		)

		require.NoError(t, err)
		assert.Equal(t, TypeTransfer, leg.TransactionType)
		require.NotNil(t, leg.TransferDirection)
		assert.Equal(t, DirectionOut, *leg.TransferDirection)
		require.NotNil(t, leg.TransferGroupID)
		assert.Equal(t, groupID, *leg.TransferGroupID)
		assert.Nil(t, leg.CategoryID)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := NewTransferLeg(
			1, 10, DirectionIn, groupID,
			decimal.RequireFromString("-500.00"),
			CurrencyEGP,
			time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
			"Move to savings",
			nil,
			"",
			clock,
		)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionValidate(t *testing.T) {
	groupID := uuid.New()
	direction := DirectionOut

	t.Run("Transfer with both markers is valid", func(t *testing.T) {
		tx := &Transaction{
			TransactionType:   TypeTransfer,
			TransferDirection: &direction,
			TransferGroupID:   &groupID,
		}
		assert.NoError(t, tx.Validate())
	})

	t.Run("Transfer missing direction", func(t *testing.T) {
		tx := &Transaction{
			TransactionType: TypeTransfer,
			TransferGroupID: &groupID,
		}
		err := tx.Validate()
		assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("Transfer missing group id", func(t *testing.T) {
		tx := &Transaction{
			TransactionType:   TypeTransfer,
			TransferDirection: &direction,
		}
		err := tx.Validate()
		assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("Transfer with nil uuid group id", func(t *testing.T) {
		nilID := uuid.Nil
		tx := &Transaction{
			TransactionType:   TypeTransfer,
			TransferDirection: &direction,
			TransferGroupID:   &nilID,
		}
		err := tx.Validate()
		assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("Non-transfer with direction set", func(t *testing.T) {
		tx := &Transaction{
			TransactionType:   TypeExpense,
			TransferDirection: &direction,
		}
		err := tx.Validate()
		assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("Non-transfer with group id set", func(t *testing.T) {
		tx := &Transaction{
			TransactionType: TypeIncome,
			TransferGroupID: &groupID,
		}
		err := tx.Validate()
		assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("Plain income is valid", func(t *testing.T) {
		tx := &Transaction{TransactionType: TypeIncome}
		assert.NoError(t, tx.Validate())
	})
}

func TestAffectsReports(t *testing.T) {
	assert.True(t, (&Transaction{TransactionType: TypeIncome}).AffectsReports())
	assert.True(t, (&Transaction{TransactionType: TypeExpense}).AffectsReports())
	assert.False(t, (&Transaction{TransactionType: TypeTransfer}).AffectsReports())
	assert.False(t, (&Transaction{TransactionType: TypeAdjustment}).AffectsReports())
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, DirectionIn, Opposite(DirectionOut))
	assert.Equal(t, DirectionOut, Opposite(DirectionIn))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 12, 31, 23, 59, 59, 999, time.FixedZone("X", 3*3600))
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
