package reports

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod marks calendar input the resolver cannot represent,
// e.g. month 13. Callers recover by falling back to the current month.
var ErrInvalidPeriod = errors.New("invalid period")

// Interval is a half-open date range [Start, End). All period-based
// aggregation uses half-open intervals so boundary dates are never
// double-counted.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the interval: Start is
// inclusive, End is exclusive.
func (iv Interval) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(iv.Start) && d.Before(iv.End)
}

// Label renders the interval's starting month for display, e.g. "March 2024".
func (iv Interval) Label() string {
	return iv.Start.Format("January 2006")
}

// DateOf truncates a timestamp to its calendar date at UTC midnight.
// Transactions carry dates, not times; normalizing here keeps interval
// comparisons exact.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthOf returns the month interval containing ref. December rolls over
// into January of the following year.
func MonthOf(ref time.Time) Interval {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Interval{Start: start, End: start.AddDate(0, 1, 0)}
}

// ResolveMonth builds the month interval for an externally supplied
// (year, month) pair, failing with ErrInvalidPeriod on out-of-range input.
func ResolveMonth(year, month int) (Interval, error) {
	if month < 1 || month > 12 {
		return Interval{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year < 1 || year > 9999 {
		return Interval{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Interval{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// TrailingMonths returns n consecutive month intervals ending at (and
// including) the month containing ref, ordered oldest first.
func TrailingMonths(ref time.Time, n int) []Interval {
	if n <= 0 {
		return nil
	}

	last := MonthOf(ref)
	intervals := make([]Interval, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := last.Start.AddDate(0, -i, 0)
		intervals = append(intervals, Interval{Start: start, End: start.AddDate(0, 1, 0)})
	}
	return intervals
}
