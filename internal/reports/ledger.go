package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
)

// LedgerEntry is a read-only ledger row: the aggregation engine never mutates
// store data.
type LedgerEntry struct {
	Date       time.Time
	Amount     decimal.Decimal
	Kind       string
	CategoryID int64
}

// Filter narrows a ledger lookup. Category can be referenced by id
// (category breakdown) or by name (budget matching, which survives
// category deletion because the join is name-based).
type Filter struct {
	Kind         string
	CategoryID   *int64
	CategoryName string
}

// Store is the read contract the engine consumes. Implementations may
// pre-filter server-side; the aggregator re-applies the predicates so its
// semantics do not depend on how much filtering the store did.
type Store interface {
	FindEntries(ctx context.Context, userID int64, interval *Interval, filter Filter) ([]LedgerEntry, error)
	FindBudgets(ctx context.Context, userID int64) ([]BudgetDefinition, error)
	FindCategories(ctx context.Context, userID int64) ([]CategoryInfo, error)
}

// CategoryInfo is the category snapshot the engine needs for breakdowns
// and kind validation.
type CategoryInfo struct {
	ID   int64
	Name string
	Kind string
}

// Aggregator sums transaction amounts with exact decimal arithmetic.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Sum totals the user's transactions of the given kind inside the
// interval, optionally narrowed by filter's category. It returns zero, not
// an absence, when nothing matches. The transaction's own kind is trusted
// over its category's kind, so pre-existing kind-mismatched data cannot
// leak into the wrong total.
func (a *Aggregator) Sum(ctx context.Context, userID int64, kind string, interval Interval, filter Filter) (decimal.Decimal, error) {
	filter.Kind = kind
	entries, err := a.store.FindEntries(ctx, userID, &interval, filter)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range entries {
		if e.Kind != kind {
			continue
		}
		if !interval.Contains(e.Date) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

// SignedAmount is the entry's contribution to a running balance: income
// counts positive, expense negative.
func (e LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Kind == transactiondm.KindExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}
