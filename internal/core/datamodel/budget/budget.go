package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget references its category by name, not by foreign key, so a budget
// survives category deletion and rename. Rename re-matching is handled by
// the budget service listening on category events.
type Budget struct {
	ID           int64           `gorm:"primaryKey"`
	UserID       int64           `gorm:"column:user_id;not null;uniqueIndex:idx_budgets_user_category_start"`
	CategoryName string          `gorm:"column:category_name;not null;uniqueIndex:idx_budgets_user_category_start"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	StartDate    time.Time       `gorm:"column:start_date;type:date;not null;uniqueIndex:idx_budgets_user_category_start"`
	EndDate      *time.Time      `gorm:"column:end_date;type:date"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}
