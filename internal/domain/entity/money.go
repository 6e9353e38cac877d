package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
)

// Precision bounds for monetary values. Amounts are stored as fixed-point
// decimals with 2 fractional digits; FX rates allow 6.
const (
	AmountMaxIntegerDigits = 13
	AmountMaxScale         = 2
	FxRateMaxIntegerDigits = 4
	FxRateMaxScale         = 6
)

// ValidateAmount checks that amount is positive, has at most 2 decimal places
// and at most 13 digits before the decimal point.
func ValidateAmount(amount decimal.Decimal) error {
	return validateDecimal(amount, AmountMaxIntegerDigits, AmountMaxScale, errs.ErrInvalidAmount)
}

// ValidateFxRate checks that rate is positive, has at most 6 decimal places
// and at most 4 digits before the decimal point. A nil rate is allowed and
// means no conversion hint was supplied.
func ValidateFxRate(rate *decimal.Decimal) error {
	if rate == nil {
		return nil
	}
	return validateDecimal(*rate, FxRateMaxIntegerDigits, FxRateMaxScale, errs.ErrInvalidFxRate)
}

func validateDecimal(d decimal.Decimal, maxIntDigits, maxScale int, sentinel error) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: must be positive, got %s", sentinel, d.String())
	}
	if int(d.Exponent()) < -maxScale {
		return fmt.Errorf("%w: maximum %d decimal places allowed", sentinel, maxScale)
	}
	intDigits := len(d.Truncate(0).Abs().String())
	if intDigits > maxIntDigits {
		return fmt.Errorf("%w: maximum %d digits before the decimal point", sentinel, maxIntDigits)
	}
	return nil
}
