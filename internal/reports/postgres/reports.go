package postgres

import (
	"context"

	"gorm.io/gorm"

	budgetdm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/budget"
	categorydm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/category"
	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/internal/reports"
)

// ReportStore implements reports.Store with read-only GORM queries. Each
// call is an independent read; the engine never needs a multi-statement
// transaction because it never writes.
type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) reports.Store {
	return &ReportStore{db: db}
}

func (s *ReportStore) FindEntries(ctx context.Context, userID int64, interval *reports.Interval, filter reports.Filter) ([]reports.LedgerEntry, error) {
	q := s.db.WithContext(ctx).
		Model(&transactiondm.Transaction{}).
		Where("transactions.user_id = ?", userID).
		Order("transactions.date ASC, transactions.id ASC")

	if interval != nil {
		q = q.Where("transactions.date >= ? AND transactions.date < ?", interval.Start, interval.End)
	}
	if filter.Kind != "" {
		q = q.Where("transactions.kind = ?", filter.Kind)
	}
	if filter.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.CategoryName != "" {
		// Name-based join so budget spend survives category renames being
		// re-pointed, and yields nothing for deleted categories.
		q = q.Joins("JOIN categories ON categories.id = transactions.category_id").
			Where("categories.user_id = ? AND categories.name = ?", userID, filter.CategoryName)
	}

	var rows []transactiondm.Transaction
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]reports.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, reports.LedgerEntry{
			Date:       row.Date,
			Amount:     row.Amount,
			Kind:       row.Kind,
			CategoryID: row.CategoryID,
		})
	}
	return entries, nil
}

func (s *ReportStore) FindBudgets(ctx context.Context, userID int64) ([]reports.BudgetDefinition, error) {
	var rows []budgetdm.Budget
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]reports.BudgetDefinition, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, reports.BudgetDefinition{
			ID:           row.ID,
			CategoryName: row.CategoryName,
			Amount:       row.Amount,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
		})
	}
	return budgets, nil
}

func (s *ReportStore) FindCategories(ctx context.Context, userID int64) ([]reports.CategoryInfo, error) {
	var rows []categorydm.Category
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]reports.CategoryInfo, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, reports.CategoryInfo{
			ID:   row.ID,
			Name: row.Name,
			Kind: row.Kind,
		})
	}
	return categories, nil
}
