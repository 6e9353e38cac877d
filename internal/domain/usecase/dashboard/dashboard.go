package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/domain/port/persistence"
)

// Snapshot is the immutable result of one dashboard read. It is recomputed on
// every call: the monthly window depends on the current date, so the result
// is not cacheable across day boundaries.
type Snapshot struct {
	TotalWealth         decimal.Decimal
	TotalLiquidAssets   decimal.Decimal
	TotalAllocatedFunds decimal.Decimal
	WealthByCurrency    map[string]decimal.Decimal
	MonthlyIncome       decimal.Decimal
	MonthlyExpense      decimal.Decimal
	MonthlySavings      decimal.Decimal
}

// Service folds the current account/allocation/transaction state into summary
// metrics. It never mutates state and never returns a partial snapshot.
type Service struct {
	accountRepo     persistence.AccountRepository
	allocationRepo  persistence.AllocationRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new dashboard aggregation service
func NewService(
	accountRepo persistence.AccountRepository,
	allocationRepo persistence.AllocationRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		accountRepo:     accountRepo,
		allocationRepo:  allocationRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetDashboardData computes the summary figures for a user. Transactions are
// filtered to those dated on or after the first calendar day of the current
// month, per the injected time source.
func (s *Service) GetDashboardData(ctx context.Context, userID uint64) (*Snapshot, error) {
	if _, err := s.accountRepo.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	allocations, err := s.allocationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	firstOfMonth := entity.DateOnly(now).AddDate(0, 0, 1-now.Day())

	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		if tx.TransactionDate.Before(firstOfMonth) {
			continue
		}
		if !tx.AffectsReports() {
			continue
		}
		switch tx.TransactionType {
		case entity.TypeIncome:
			income = income.Add(tx.Amount)
		case entity.TypeExpense:
			// Amounts are stored positive; expense is not negated here.
			expense = expense.Add(tx.Amount)
		}
	}

	// Allocations are summed raw, with no FX conversion between currencies.
	allocated := decimal.Zero
	wealthByCurrency := make(map[string]decimal.Decimal)
	for _, alc := range allocations {
		allocated = allocated.Add(alc.Amount)
		code := string(alc.Currency)
		wealthByCurrency[code] = wealthByCurrency[code].Add(alc.Amount)
	}

	// Account balances are not persisted, so liquid assets stay at zero until
	// per-account derivation from the transaction stream is implemented.
	liquid := decimal.Zero

	s.logger.Debug("Dashboard computed", map[string]any{
		"user_id":         userID,
		"first_of_month":  firstOfMonth.Format("2006-01-02"),
		"monthly_income":  income.String(),
		"monthly_expense": expense.String(),
	})

	return &Snapshot{
		TotalWealth:         liquid.Add(allocated),
		TotalLiquidAssets:   liquid,
		TotalAllocatedFunds: allocated,
		WealthByCurrency:    wealthByCurrency,
		MonthlyIncome:       income,
		MonthlyExpense:      expense,
		MonthlySavings:      income.Sub(expense),
	}, nil
}
