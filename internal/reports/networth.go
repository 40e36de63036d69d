package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalancePoint is one day of the net-worth series.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// BuildRunningBalance turns a transaction history into a day-indexed
// cumulative balance series: one point per calendar day from the first to
// the last transaction date inclusive, carrying the previous day's balance
// into days without activity. Input order does not matter.
//
// An empty history yields an empty series; callers report net worth 0.00.
func BuildRunningBalance(entries []LedgerEntry) []BalancePoint {
	if len(entries) == 0 {
		return nil
	}

	perDay := make(map[time.Time]decimal.Decimal)
	first := DateOf(entries[0].Date)
	last := first
	for _, e := range entries {
		day := DateOf(e.Date)
		perDay[day] = perDay[day].Add(e.SignedAmount())
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	var series []BalancePoint
	balance := decimal.Zero
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if delta, ok := perDay[day]; ok {
			balance = balance.Add(delta)
		}
		series = append(series, BalancePoint{Date: day, Balance: balance})
	}
	return series
}
