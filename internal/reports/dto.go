package reports

import "github.com/MGhiremath0281/Apex-Money/pkg/money"

type PeriodView struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
}

type CategoryTotal struct {
	Name  string       `json:"name"`
	Kind  string       `json:"kind"`
	Total money.Amount `json:"total"`
}

type MonthlyPoint struct {
	MonthLabel string       `json:"month_label"`
	Income     money.Amount `json:"income"`
	Expense    money.Amount `json:"expense"`
	Net        money.Amount `json:"net"`
}

type MonthlySummary struct {
	Period            PeriodView      `json:"period"`
	TotalIncome       money.Amount    `json:"total_income"`
	TotalExpense      money.Amount    `json:"total_expense"`
	NetSavings        money.Amount    `json:"net_savings"`
	CategoryBreakdown []CategoryTotal `json:"category_breakdown"`
	BudgetSummary     []BudgetReport  `json:"budget_summary"`
	MonthlySeries     []MonthlyPoint  `json:"monthly_series"`

	// Notice is set when the requested period was invalid and the report
	// fell back to the current month.
	Notice string `json:"notice,omitempty"`
}

type BalanceView struct {
	Date    string       `json:"date"`
	Balance money.Amount `json:"balance"`
}

type NetWorthReport struct {
	Series         []BalanceView `json:"series"`
	CurrentBalance money.Amount  `json:"current_balance"`
}

type DashboardSummary struct {
	Period       PeriodView   `json:"period"`
	TotalIncome  money.Amount `json:"total_income"`
	TotalExpense money.Amount `json:"total_expense"`
	NetSavings   money.Amount `json:"net_savings"`
}
