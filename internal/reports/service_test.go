package reports

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/pkg/logger"
)

// stubStore feeds the service canned data with the same filtering contract
// a real store has for the name join.
type stubStore struct {
	entries    []LedgerEntry
	nameByID   map[int64]string
	budgets    []BudgetDefinition
	categories []CategoryInfo
}

func (s *stubStore) FindEntries(ctx context.Context, userID int64, interval *Interval, filter Filter) ([]LedgerEntry, error) {
	out := make([]LedgerEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if filter.CategoryName != "" && s.nameByID[e.CategoryID] != filter.CategoryName {
			continue
		}
		if filter.CategoryID != nil && e.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *stubStore) FindBudgets(ctx context.Context, userID int64) ([]BudgetDefinition, error) {
	return s.budgets, nil
}

func (s *stubStore) FindCategories(ctx context.Context, userID int64) ([]CategoryInfo, error) {
	return s.categories, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("Report service", func() {
	var (
		store *stubStore
		svc   *Service
		ctx   context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = &stubStore{
			nameByID: map[int64]string{1: "Salary", 2: "Groceries"},
			categories: []CategoryInfo{
				{ID: 2, Name: "Groceries", Kind: transactiondm.KindExpense},
				{ID: 1, Name: "Salary", Kind: transactiondm.KindIncome},
			},
		}
		svc = NewService(store, logger.L())
		svc.now = func() time.Time { return date(2024, 7, 15) }
	})

	Describe("MonthlySummary", func() {
		BeforeEach(func() {
			store.entries = []LedgerEntry{
				{Date: date(2024, 3, 1), Amount: dec("2000.00"), Kind: transactiondm.KindIncome, CategoryID: 1},
				{Date: date(2024, 3, 10), Amount: dec("200.00"), Kind: transactiondm.KindExpense, CategoryID: 2},
				{Date: date(2024, 4, 2), Amount: dec("999.00"), Kind: transactiondm.KindExpense, CategoryID: 2},
			}
			store.budgets = []BudgetDefinition{
				{ID: 1, CategoryName: "Groceries", Amount: dec("150.00"), StartDate: date(2024, 1, 1)},
			}
		})

		It("should total income, expenses and net savings for the month", func() {
			summary, err := svc.MonthlySummary(ctx, 1, 2024, 3)
			Expect(err).NotTo(HaveOccurred())

			Expect(summary.Period.Label).To(Equal("March 2024"))
			Expect(summary.TotalIncome.String()).To(Equal("2000.00"))
			Expect(summary.TotalExpense.String()).To(Equal("200.00"))
			Expect(summary.NetSavings.String()).To(Equal("1800.00"))
			Expect(summary.Notice).To(BeEmpty())
		})

		It("should break totals down by category, each under its own kind", func() {
			summary, err := svc.MonthlySummary(ctx, 1, 2024, 3)
			Expect(err).NotTo(HaveOccurred())

			Expect(summary.CategoryBreakdown).To(HaveLen(2))
			byName := map[string]CategoryTotal{}
			for _, ct := range summary.CategoryBreakdown {
				byName[ct.Name] = ct
			}
			Expect(byName["Salary"].Total.String()).To(Equal("2000.00"))
			Expect(byName["Salary"].Kind).To(Equal(transactiondm.KindIncome))
			Expect(byName["Groceries"].Total.String()).To(Equal("200.00"))
		})

		It("should omit categories with no activity in the month", func() {
			summary, err := svc.MonthlySummary(ctx, 1, 2024, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.CategoryBreakdown).To(BeEmpty())
		})

		It("should price budgets against the month's spend", func() {
			summary, err := svc.MonthlySummary(ctx, 1, 2024, 3)
			Expect(err).NotTo(HaveOccurred())

			Expect(summary.BudgetSummary).To(HaveLen(1))
			report := summary.BudgetSummary[0]
			Expect(report.Category).To(Equal("Groceries"))
			Expect(report.Budgeted.String()).To(Equal("150.00"))
			Expect(report.Spent.String()).To(Equal("200.00"))
			Expect(report.Remaining.String()).To(Equal("-50.00"))
			Expect(report.Status).To(Equal(StatusOverBudget))
		})

		It("should include a trailing twelve month series ending at the report month", func() {
			summary, err := svc.MonthlySummary(ctx, 1, 2024, 3)
			Expect(err).NotTo(HaveOccurred())

			Expect(summary.MonthlySeries).To(HaveLen(12))
			Expect(summary.MonthlySeries[0].MonthLabel).To(Equal("April 2023"))
			last := summary.MonthlySeries[11]
			Expect(last.MonthLabel).To(Equal("March 2024"))
			Expect(last.Net.String()).To(Equal("1800.00"))
		})

		It("should report months without activity as 0.00", func() {
			summary, err := svc.MonthlySummary(ctx, 1, 2024, 3)
			Expect(err).NotTo(HaveOccurred())

			first := summary.MonthlySeries[0]
			Expect(first.Income.String()).To(Equal("0.00"))
			Expect(first.Expense.String()).To(Equal("0.00"))
			Expect(first.Net.String()).To(Equal("0.00"))
		})

		It("should fall back to the current month with a notice on an invalid month", func() {
			summary, err := svc.MonthlySummary(ctx, 1, 2024, 13)
			Expect(err).NotTo(HaveOccurred())

			Expect(summary.Period.Year).To(Equal(2024))
			Expect(summary.Period.Month).To(Equal(7))
			Expect(summary.Notice).To(Equal("Invalid date selection. Showing current month's summary."))
		})

		It("should fall back to the current month with a notice on an invalid year", func() {
			summary, err := svc.MonthlySummary(ctx, 1, -3, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Period.Label).To(Equal("July 2024"))
			Expect(summary.Notice).NotTo(BeEmpty())
		})
	})

	Describe("NetWorth", func() {
		It("should return an empty series and 0.00 for a user with no history", func() {
			report, err := svc.NetWorth(ctx, 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(report.Series).To(BeEmpty())
			Expect(report.CurrentBalance.String()).To(Equal("0.00"))
		})

		It("should end the series at the latest balance", func() {
			store.entries = []LedgerEntry{
				{Date: date(2024, 3, 1), Amount: dec("1000.00"), Kind: transactiondm.KindIncome, CategoryID: 1},
				{Date: date(2024, 3, 3), Amount: dec("250.00"), Kind: transactiondm.KindExpense, CategoryID: 2},
			}

			report, err := svc.NetWorth(ctx, 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(report.Series).To(HaveLen(3))
			Expect(report.Series[0].Date).To(Equal("2024-03-01"))
			Expect(report.Series[2].Date).To(Equal("2024-03-03"))
			Expect(report.CurrentBalance.String()).To(Equal("750.00"))
		})
	})

	Describe("Dashboard", func() {
		It("should total the current month", func() {
			store.entries = []LedgerEntry{
				{Date: date(2024, 7, 1), Amount: dec("3200.00"), Kind: transactiondm.KindIncome, CategoryID: 1},
				{Date: date(2024, 7, 9), Amount: dec("98.30"), Kind: transactiondm.KindExpense, CategoryID: 2},
				{Date: date(2024, 6, 30), Amount: dec("500.00"), Kind: transactiondm.KindExpense, CategoryID: 2},
			}

			dashboard, err := svc.Dashboard(ctx, 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(dashboard.Period.Label).To(Equal("July 2024"))
			Expect(dashboard.TotalIncome.String()).To(Equal("3200.00"))
			Expect(dashboard.TotalExpense.String()).To(Equal("98.30"))
			Expect(dashboard.NetSavings.String()).To(Equal("3101.70"))
		})
	})
})
