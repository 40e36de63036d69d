package reports

import (
	"context"
	"errors"
	"log/slog"
	"time"

	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/pkg/money"
)

const trailingMonths = 12

// Service composes the period resolver, ledger aggregator, budget matcher
// and running-balance builder into the reports the presentation layer
// renders. It is a pure read/compute layer: every call issues independent
// read queries and mutates nothing.
type Service struct {
	store   Store
	agg     *Aggregator
	matcher *Matcher
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store Store, logger *slog.Logger) *Service {
	agg := NewAggregator(store)
	return &Service{
		store:   store,
		agg:     agg,
		matcher: NewMatcher(agg),
		logger:  logger,
		now:     time.Now,
	}
}

// MonthlySummary builds the summary report for the requested month. An
// invalid (year, month) pair falls back to the current month with a notice
// instead of failing the request.
func (s *Service) MonthlySummary(ctx context.Context, userID int64, year, month int) (*MonthlySummary, error) {
	notice := ""
	interval, err := ResolveMonth(year, month)
	if err != nil {
		if !errors.Is(err, ErrInvalidPeriod) {
			return nil, err
		}
		s.logger.Warn("invalid period requested, falling back to current month",
			"user_id", userID, "year", year, "month", month)
		interval = MonthOf(s.now())
		notice = "Invalid date selection. Showing current month's summary."
	}

	totalIncome, err := s.agg.Sum(ctx, userID, transactiondm.KindIncome, interval, Filter{})
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.agg.Sum(ctx, userID, transactiondm.KindExpense, interval, Filter{})
	if err != nil {
		return nil, err
	}

	breakdown, err := s.categoryBreakdown(ctx, userID, interval)
	if err != nil {
		return nil, err
	}

	budgets, err := s.store.FindBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	budgetSummary, err := s.matcher.Match(ctx, userID, budgets, interval)
	if err != nil {
		return nil, err
	}

	series, err := s.monthlySeries(ctx, userID, interval)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Period: PeriodView{
			Year:  interval.Start.Year(),
			Month: int(interval.Start.Month()),
			Label: interval.Label(),
		},
		TotalIncome:       money.New(totalIncome),
		TotalExpense:      money.New(totalExpense),
		NetSavings:        money.New(totalIncome.Sub(totalExpense)),
		CategoryBreakdown: breakdown,
		BudgetSummary:     budgetSummary,
		MonthlySeries:     series,
		Notice:            notice,
	}, nil
}

// categoryBreakdown totals each category by its own kind, keeping only
// categories with activity in the interval.
func (s *Service) categoryBreakdown(ctx context.Context, userID int64, interval Interval) ([]CategoryTotal, error) {
	categories, err := s.store.FindCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]CategoryTotal, 0, len(categories))
	for _, cat := range categories {
		id := cat.ID
		total, err := s.agg.Sum(ctx, userID, cat.Kind, interval, Filter{CategoryID: &id})
		if err != nil {
			return nil, err
		}
		if total.IsPositive() {
			breakdown = append(breakdown, CategoryTotal{Name: cat.Name, Kind: cat.Kind, Total: money.New(total)})
		}
	}
	return breakdown, nil
}

// monthlySeries computes income/expense/net for the trailing 12 months
// ending at the report month, oldest first. The loop is bounded by the
// fixed month count, so no timeout beyond the request's applies.
func (s *Service) monthlySeries(ctx context.Context, userID int64, interval Interval) ([]MonthlyPoint, error) {
	series := make([]MonthlyPoint, 0, trailingMonths)
	for _, monthIv := range TrailingMonths(interval.Start, trailingMonths) {
		income, err := s.agg.Sum(ctx, userID, transactiondm.KindIncome, monthIv, Filter{})
		if err != nil {
			return nil, err
		}
		expense, err := s.agg.Sum(ctx, userID, transactiondm.KindExpense, monthIv, Filter{})
		if err != nil {
			return nil, err
		}
		series = append(series, MonthlyPoint{
			MonthLabel: monthIv.Label(),
			Income:     money.New(income),
			Expense:    money.New(expense),
			Net:        money.New(income.Sub(expense)),
		})
	}
	return series, nil
}

// NetWorth builds the day-indexed cumulative balance series over the
// user's full history. With no transactions it returns an empty series and
// a current balance of 0.00.
func (s *Service) NetWorth(ctx context.Context, userID int64) (*NetWorthReport, error) {
	entries, err := s.store.FindEntries(ctx, userID, nil, Filter{})
	if err != nil {
		return nil, err
	}

	series := BuildRunningBalance(entries)

	report := &NetWorthReport{
		Series:         make([]BalanceView, 0, len(series)),
		CurrentBalance: money.Zero(),
	}
	for _, point := range series {
		report.Series = append(report.Series, BalanceView{
			Date:    point.Date.Format(time.DateOnly),
			Balance: money.New(point.Balance),
		})
	}
	if len(series) > 0 {
		report.CurrentBalance = money.New(series[len(series)-1].Balance)
	}
	return report, nil
}

// Dashboard reports the current month's totals.
func (s *Service) Dashboard(ctx context.Context, userID int64) (*DashboardSummary, error) {
	interval := MonthOf(s.now())

	income, err := s.agg.Sum(ctx, userID, transactiondm.KindIncome, interval, Filter{})
	if err != nil {
		return nil, err
	}
	expense, err := s.agg.Sum(ctx, userID, transactiondm.KindExpense, interval, Filter{})
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Period: PeriodView{
			Year:  interval.Start.Year(),
			Month: int(interval.Start.Month()),
			Label: interval.Label(),
		},
		TotalIncome:  money.New(income),
		TotalExpense: money.New(expense),
		NetSavings:   money.New(income.Sub(expense)),
	}, nil
}
