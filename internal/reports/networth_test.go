package reports_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/internal/reports"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var _ = Describe("Running balance", func() {
	It("should return nil for an empty history", func() {
		Expect(reports.BuildRunningBalance(nil)).To(BeNil())
		Expect(reports.BuildRunningBalance([]reports.LedgerEntry{})).To(BeNil())
	})

	It("should accumulate income positively and expenses negatively", func() {
		entries := []reports.LedgerEntry{
			{Date: day(2024, 3, 1), Amount: amount("1000.00"), Kind: transactiondm.KindIncome},
			{Date: day(2024, 3, 2), Amount: amount("300.00"), Kind: transactiondm.KindExpense},
		}

		series := reports.BuildRunningBalance(entries)
		Expect(series).To(HaveLen(2))
		Expect(series[0].Balance.Equal(amount("1000.00"))).To(BeTrue())
		Expect(series[1].Balance.Equal(amount("700.00"))).To(BeTrue())
	})

	It("should net multiple entries on the same day into one point", func() {
		entries := []reports.LedgerEntry{
			{Date: day(2024, 3, 1), Amount: amount("500.00"), Kind: transactiondm.KindIncome},
			{Date: day(2024, 3, 1), Amount: amount("120.50"), Kind: transactiondm.KindExpense},
		}

		series := reports.BuildRunningBalance(entries)
		Expect(series).To(HaveLen(1))
		Expect(series[0].Date).To(Equal(day(2024, 3, 1)))
		Expect(series[0].Balance.Equal(amount("379.50"))).To(BeTrue())
	})

	It("should forward-fill days without transactions", func() {
		entries := []reports.LedgerEntry{
			{Date: day(2024, 3, 1), Amount: amount("100.00"), Kind: transactiondm.KindIncome},
			{Date: day(2024, 3, 4), Amount: amount("40.00"), Kind: transactiondm.KindExpense},
		}

		series := reports.BuildRunningBalance(entries)
		Expect(series).To(HaveLen(4))
		Expect(series[0].Balance.Equal(amount("100.00"))).To(BeTrue())
		Expect(series[1].Date).To(Equal(day(2024, 3, 2)))
		Expect(series[1].Balance.Equal(amount("100.00"))).To(BeTrue())
		Expect(series[2].Balance.Equal(amount("100.00"))).To(BeTrue())
		Expect(series[3].Balance.Equal(amount("60.00"))).To(BeTrue())
	})

	It("should not depend on the input ordering", func() {
		entries := []reports.LedgerEntry{
			{Date: day(2024, 3, 4), Amount: amount("40.00"), Kind: transactiondm.KindExpense},
			{Date: day(2024, 3, 1), Amount: amount("100.00"), Kind: transactiondm.KindIncome},
		}

		series := reports.BuildRunningBalance(entries)
		Expect(series[0].Date).To(Equal(day(2024, 3, 1)))
		Expect(series[len(series)-1].Balance.Equal(amount("60.00"))).To(BeTrue())
	})

	It("should allow the balance to go negative", func() {
		entries := []reports.LedgerEntry{
			{Date: day(2024, 3, 1), Amount: amount("50.00"), Kind: transactiondm.KindExpense},
		}

		series := reports.BuildRunningBalance(entries)
		Expect(series).To(HaveLen(1))
		Expect(series[0].Balance.Equal(amount("-50.00"))).To(BeTrue())
	})
})
