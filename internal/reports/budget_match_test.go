package reports_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/internal/reports"
)

// mockStore serves canned ledger data; filtering is left to the
// aggregator except for the category-name join, which the store owns.
type mockStore struct {
	entries    []reports.LedgerEntry
	nameByID   map[int64]string
	budgets    []reports.BudgetDefinition
	categories []reports.CategoryInfo
}

func (m *mockStore) FindEntries(ctx context.Context, userID int64, interval *reports.Interval, filter reports.Filter) ([]reports.LedgerEntry, error) {
	out := make([]reports.LedgerEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if filter.CategoryName != "" && m.nameByID[e.CategoryID] != filter.CategoryName {
			continue
		}
		if filter.CategoryID != nil && e.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockStore) FindBudgets(ctx context.Context, userID int64) ([]reports.BudgetDefinition, error) {
	return m.budgets, nil
}

func (m *mockStore) FindCategories(ctx context.Context, userID int64) ([]reports.CategoryInfo, error) {
	return m.categories, nil
}

var _ = Describe("Budget matching", func() {
	var (
		store   *mockStore
		matcher *reports.Matcher
		march   reports.Interval
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = &mockStore{
			nameByID: map[int64]string{1: "Groceries", 2: "Rent"},
		}
		matcher = reports.NewMatcher(reports.NewAggregator(store))
		march, _ = reports.ResolveMonth(2024, 3)
	})

	Describe("BudgetDefinition.ActiveFor", func() {
		It("should treat a budget starting before the interval as active", func() {
			b := reports.BudgetDefinition{StartDate: day(2024, 1, 1)}
			Expect(b.ActiveFor(march)).To(BeTrue())
		})

		It("should treat a budget starting exactly on the interval start as active", func() {
			b := reports.BudgetDefinition{StartDate: day(2024, 3, 1)}
			Expect(b.ActiveFor(march)).To(BeTrue())
		})

		It("should treat a budget starting mid-interval as inactive", func() {
			b := reports.BudgetDefinition{StartDate: day(2024, 3, 15)}
			Expect(b.ActiveFor(march)).To(BeFalse())
		})

		It("should treat a budget ended before the interval start as inactive", func() {
			end := day(2024, 2, 28)
			b := reports.BudgetDefinition{StartDate: day(2024, 1, 1), EndDate: &end}
			Expect(b.ActiveFor(march)).To(BeFalse())
		})

		It("should treat a budget ending on the interval start as active", func() {
			end := day(2024, 3, 1)
			b := reports.BudgetDefinition{StartDate: day(2024, 1, 1), EndDate: &end}
			Expect(b.ActiveFor(march)).To(BeTrue())
		})

		It("should treat an open-ended budget as active", func() {
			b := reports.BudgetDefinition{StartDate: day(2023, 1, 1)}
			Expect(b.ActiveFor(march)).To(BeTrue())
		})
	})

	Describe("Matcher.Match", func() {
		It("should report under_budget when spend is below the budgeted amount", func() {
			store.entries = []reports.LedgerEntry{
				{Date: day(2024, 3, 10), Amount: amount("80.00"), Kind: transactiondm.KindExpense, CategoryID: 1},
			}
			budgets := []reports.BudgetDefinition{
				{ID: 1, CategoryName: "Groceries", Amount: amount("150.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Spent.String()).To(Equal("80.00"))
			Expect(result[0].Remaining.String()).To(Equal("70.00"))
			Expect(result[0].Status).To(Equal(reports.StatusUnderBudget))
		})

		It("should report under_budget when spend exactly equals the budgeted amount", func() {
			store.entries = []reports.LedgerEntry{
				{Date: day(2024, 3, 10), Amount: amount("150.00"), Kind: transactiondm.KindExpense, CategoryID: 1},
			}
			budgets := []reports.BudgetDefinition{
				{ID: 1, CategoryName: "Groceries", Amount: amount("150.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result[0].Remaining.String()).To(Equal("0.00"))
			Expect(result[0].Status).To(Equal(reports.StatusUnderBudget))
		})

		It("should report over_budget when spend exceeds the budgeted amount", func() {
			store.entries = []reports.LedgerEntry{
				{Date: day(2024, 3, 5), Amount: amount("200.00"), Kind: transactiondm.KindExpense, CategoryID: 1},
			}
			budgets := []reports.BudgetDefinition{
				{ID: 1, CategoryName: "Groceries", Amount: amount("150.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result[0].Remaining.String()).To(Equal("-50.00"))
			Expect(result[0].Status).To(Equal(reports.StatusOverBudget))
		})

		It("should only count expenses inside the interval", func() {
			store.entries = []reports.LedgerEntry{
				{Date: day(2024, 2, 29), Amount: amount("500.00"), Kind: transactiondm.KindExpense, CategoryID: 1},
				{Date: day(2024, 3, 31), Amount: amount("30.00"), Kind: transactiondm.KindExpense, CategoryID: 1},
				{Date: day(2024, 4, 1), Amount: amount("500.00"), Kind: transactiondm.KindExpense, CategoryID: 1},
			}
			budgets := []reports.BudgetDefinition{
				{ID: 1, CategoryName: "Groceries", Amount: amount("150.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result[0].Spent.String()).To(Equal("30.00"))
		})

		It("should skip budgets that are not active for the interval", func() {
			budgets := []reports.BudgetDefinition{
				{ID: 1, CategoryName: "Groceries", Amount: amount("150.00"), StartDate: day(2024, 3, 15)},
				{ID: 2, CategoryName: "Rent", Amount: amount("900.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].BudgetID).To(Equal(int64(2)))
		})

		It("should preserve the input budget ordering", func() {
			budgets := []reports.BudgetDefinition{
				{ID: 5, CategoryName: "Rent", Amount: amount("900.00"), StartDate: day(2024, 1, 1)},
				{ID: 3, CategoryName: "Groceries", Amount: amount("150.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result[0].BudgetID).To(Equal(int64(5)))
			Expect(result[1].BudgetID).To(Equal(int64(3)))
		})

		It("should report zero spend for a budget whose category no longer exists", func() {
			store.entries = []reports.LedgerEntry{
				{Date: day(2024, 3, 10), Amount: amount("80.00"), Kind: transactiondm.KindExpense, CategoryID: 1},
			}
			budgets := []reports.BudgetDefinition{
				{ID: 9, CategoryName: "Vacations", Amount: amount("400.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Spent.String()).To(Equal("0.00"))
			Expect(result[0].Status).To(Equal(reports.StatusUnderBudget))
		})

		It("should ignore income entries in the budgeted category", func() {
			store.nameByID[3] = "Groceries"
			store.entries = []reports.LedgerEntry{
				{Date: day(2024, 3, 10), Amount: amount("80.00"), Kind: transactiondm.KindIncome, CategoryID: 3},
			}
			budgets := []reports.BudgetDefinition{
				{ID: 1, CategoryName: "Groceries", Amount: amount("150.00"), StartDate: day(2024, 1, 1)},
			}

			result, err := matcher.Match(ctx, 1, budgets, march)
			Expect(err).NotTo(HaveOccurred())
			Expect(result[0].Spent.String()).To(Equal("0.00"))
		})
	})

	Describe("Aggregator decimal arithmetic", func() {
		It("should sum amounts exactly", func() {
			store.entries = []reports.LedgerEntry{
				{Date: day(2024, 3, 1), Amount: amount("0.10"), Kind: transactiondm.KindExpense, CategoryID: 1},
				{Date: day(2024, 3, 2), Amount: amount("0.20"), Kind: transactiondm.KindExpense, CategoryID: 1},
			}

			agg := reports.NewAggregator(store)
			total, err := agg.Sum(ctx, 1, transactiondm.KindExpense, march, reports.Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total.Equal(amount("0.30"))).To(BeTrue())
		})

		It("should return zero when nothing matches", func() {
			agg := reports.NewAggregator(store)
			total, err := agg.Sum(ctx, 1, transactiondm.KindIncome, march, reports.Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total.IsZero()).To(BeTrue())
		})
	})
})
