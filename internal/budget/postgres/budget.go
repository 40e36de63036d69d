package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MGhiremath0281/Apex-Money/internal/budget"
	budgetdm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/budget"
)

// BudgetRepository implements the budget.Repository interface using GORM
type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.Repository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	row := budget.ToDataModel(b)
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return budget.ErrDuplicate
		}
		return err
	}
	b.ID = row.ID
	b.CreatedAt = row.CreatedAt
	b.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, userID, id int64) (*budget.Budget, error) {
	var row budgetdm.Budget
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return budget.FromDataModel(&row), nil
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID int64) ([]*budget.Budget, error) {
	var rows []budgetdm.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category_name ASC, start_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*budget.Budget, 0, len(rows))
	for i := range rows {
		budgets = append(budgets, budget.FromDataModel(&rows[i]))
	}
	return budgets, nil
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	b.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).
		Model(&budgetdm.Budget{}).
		Where("id = ? AND user_id = ?", b.ID, b.UserID).
		Updates(map[string]interface{}{
			"category_name": b.CategoryName,
			"amount":        b.Amount.Decimal,
			"start_date":    b.StartDate,
			"end_date":      b.EndDate,
			"updated_at":    b.UpdatedAt,
		}).Error
	if isUniqueViolation(err) {
		return budget.ErrDuplicate
	}
	return err
}

func (r *BudgetRepository) Delete(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&budgetdm.Budget{}).Error
}

// RenameCategory re-points every budget of the user from the old category
// name to the new one and returns how many rows changed.
func (r *BudgetRepository) RenameCategory(ctx context.Context, userID int64, oldName, newName string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&budgetdm.Budget{}).
		Where("user_id = ? AND category_name = ?", userID, oldName).
		Updates(map[string]interface{}{
			"category_name": newName,
			"updated_at":    time.Now(),
		})
	return result.RowsAffected, result.Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
