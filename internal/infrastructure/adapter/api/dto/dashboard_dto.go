package dto

import (
	"github.com/kareem-anwar/finance-ledger/internal/domain/usecase/dashboard"
)

// DashboardResponse represents the aggregated financial snapshot for a user
type DashboardResponse struct {
	TotalWealth         string            `json:"totalWealth"`
	TotalLiquidAssets   string            `json:"totalLiquidAssets"`
	TotalAllocatedFunds string            `json:"totalAllocatedFunds"`
	WealthByCurrency    map[string]string `json:"wealthByCurrency"`
	MonthlyIncome       string            `json:"monthlyIncome"`
	MonthlyExpense      string            `json:"monthlyExpense"`
	MonthlySavings      string            `json:"monthlySavings"`
}

// NewDashboardResponse maps a dashboard snapshot to its API representation
func NewDashboardResponse(snapshot *dashboard.Snapshot) DashboardResponse {
	wealthByCurrency := make(map[string]string, len(snapshot.WealthByCurrency))
	for currency, total := range snapshot.WealthByCurrency {
		wealthByCurrency[currency] = total.StringFixed(2)
	}
	return DashboardResponse{
		TotalWealth:         snapshot.TotalWealth.StringFixed(2),
		TotalLiquidAssets:   snapshot.TotalLiquidAssets.StringFixed(2),
		TotalAllocatedFunds: snapshot.TotalAllocatedFunds.StringFixed(2),
		WealthByCurrency:    wealthByCurrency,
		MonthlyIncome:       snapshot.MonthlyIncome.StringFixed(2),
		MonthlyExpense:      snapshot.MonthlyExpense.StringFixed(2),
		MonthlySavings:      snapshot.MonthlySavings.StringFixed(2),
	}
}
