package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags for both transactions and the categories that group them.
// Amounts are always non-negative; the sign of a ledger entry is conveyed
// by its kind.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

func ValidKind(kind string) bool {
	return kind == KindIncome || kind == KindExpense
}

type Transaction struct {
	ID          int64           `gorm:"primaryKey"`
	UserID      int64           `gorm:"column:user_id;not null;index"`
	CategoryID  int64           `gorm:"column:category_id;not null;index"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Kind        string          `gorm:"column:kind;not null"`
	Description *string         `gorm:"column:description"`
	Date        time.Time       `gorm:"column:date;type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
