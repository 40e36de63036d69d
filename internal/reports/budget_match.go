package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/pkg/money"
)

type BudgetStatus string

const (
	StatusUnderBudget BudgetStatus = "under_budget"
	StatusOverBudget  BudgetStatus = "over_budget"
)

// BudgetDefinition is the budget snapshot the matcher works on. The
// category reference is a plain name, so budgets outlive renamed or
// deleted categories.
type BudgetDefinition struct {
	ID           int64
	CategoryName string
	Amount       decimal.Decimal
	StartDate    time.Time
	EndDate      *time.Time
}

// ActiveFor implements the start-anchored overlap test: a budget is active
// for an interval iff it started on or before the interval's start and has
// not ended before that same start date. A budget starting mid-interval is
// NOT active for that interval.
func (b BudgetDefinition) ActiveFor(interval Interval) bool {
	if DateOf(b.StartDate).After(interval.Start) {
		return false
	}
	if b.EndDate != nil && DateOf(*b.EndDate).Before(interval.Start) {
		return false
	}
	return true
}

// BudgetReport is one row of a budget summary.
type BudgetReport struct {
	BudgetID  int64        `json:"budget_id"`
	Category  string       `json:"category"`
	Budgeted  money.Amount `json:"budgeted"`
	Spent     money.Amount `json:"spent"`
	Remaining money.Amount `json:"remaining"`
	Status    BudgetStatus `json:"status"`
}

// Matcher selects the budgets active for an interval and prices each one
// against actual expense spend for its category name.
type Matcher struct {
	agg *Aggregator
}

func NewMatcher(agg *Aggregator) *Matcher {
	return &Matcher{agg: agg}
}

// Match returns a report per active budget, preserving the input budget
// ordering. Spend is computed even when the named category no longer
// exists; the name join simply matches nothing and spend is 0.00.
func (m *Matcher) Match(ctx context.Context, userID int64, budgets []BudgetDefinition, interval Interval) ([]BudgetReport, error) {
	reports := make([]BudgetReport, 0, len(budgets))

	for _, b := range budgets {
		if !b.ActiveFor(interval) {
			continue
		}

		spent, err := m.agg.Sum(ctx, userID, transactiondm.KindExpense, interval, Filter{CategoryName: b.CategoryName})
		if err != nil {
			return nil, err
		}

		remaining := b.Amount.Sub(spent)
		status := StatusUnderBudget
		if remaining.IsNegative() {
			status = StatusOverBudget
		}

		reports = append(reports, BudgetReport{
			BudgetID:  b.ID,
			Category:  b.CategoryName,
			Budgeted:  money.New(b.Amount),
			Spent:     money.New(spent),
			Remaining: money.New(remaining),
			Status:    status,
		})
	}

	return reports, nil
}
