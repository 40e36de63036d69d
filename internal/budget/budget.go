package budget

import (
	"errors"
	"time"

	budgetDatamodel "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/budget"
	"github.com/MGhiremath0281/Apex-Money/internal/reports"
	"github.com/MGhiremath0281/Apex-Money/pkg/money"
)

type Budget struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"-"`
	CategoryName string       `json:"category_name"`
	Amount       money.Amount `json:"amount"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      *time.Time   `json:"end_date,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ErrDuplicate is returned by the repository when a budget for the same
// category name and start date already exists.
var ErrDuplicate = errors.New("budget already exists")

func FromDataModel(b *budgetDatamodel.Budget) *Budget {
	return &Budget{
		ID:           b.ID,
		UserID:       b.UserID,
		CategoryName: b.CategoryName,
		Amount:       money.New(b.Amount),
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func ToDataModel(b *Budget) *budgetDatamodel.Budget {
	return &budgetDatamodel.Budget{
		ID:           b.ID,
		UserID:       b.UserID,
		CategoryName: b.CategoryName,
		Amount:       b.Amount.Decimal,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToDefinition adapts a budget for the reporting engine's matcher.
func (b *Budget) ToDefinition() reports.BudgetDefinition {
	return reports.BudgetDefinition{
		ID:           b.ID,
		CategoryName: b.CategoryName,
		Amount:       b.Amount.Decimal,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
	}
}
