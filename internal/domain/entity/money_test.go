package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
)

func TestValidateAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		for _, raw := range []string{"0.01", "1", "100.50", "9999999999999.99"} {
			err := ValidateAmount(decimal.RequireFromString(raw))
			assert.NoError(t, err, "amount %s should be valid", raw)
		}
	})

	t.Run("Zero amount", func(t *testing.T) {
		err := ValidateAmount(decimal.Zero)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative amount", func(t *testing.T) {
		err := ValidateAmount(decimal.RequireFromString("-10.00"))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Too many decimal places", func(t *testing.T) {
		err := ValidateAmount(decimal.RequireFromString("10.123"))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Too many integer digits", func(t *testing.T) {
		err := ValidateAmount(decimal.RequireFromString("10000000000000.00"))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestValidateFxRate(t *testing.T) {
	t.Run("Nil rate is allowed", func(t *testing.T) {
		assert.NoError(t, ValidateFxRate(nil))
	})

	t.Run("Valid rates", func(t *testing.T) {
		for _, raw := range []string{"0.000001", "30.5", "48.123456", "9999.999999"} {
			rate := decimal.RequireFromString(raw)
			assert.NoError(t, ValidateFxRate(&rate), "rate %s should be valid", raw)
		}
	})

	t.Run("Zero rate", func(t *testing.T) {
		rate := decimal.Zero
		assert.ErrorIs(t, ValidateFxRate(&rate), errs.ErrInvalidFxRate)
	})

	t.Run("Too many decimal places", func(t *testing.T) {
		rate := decimal.RequireFromString("1.1234567")
		assert.ErrorIs(t, ValidateFxRate(&rate), errs.ErrInvalidFxRate)
	})

	t.Run("Too many integer digits", func(t *testing.T) {
		rate := decimal.RequireFromString("10000.000001")
		assert.ErrorIs(t, ValidateFxRate(&rate), errs.ErrInvalidFxRate)
	})
}
