package budget

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MGhiremath0281/Apex-Money/internal"
	"github.com/MGhiremath0281/Apex-Money/pkg/money"
)

// CreateBudgetDTO represents the request payload for creating a budget.
// Dates accept "2006-01-02"; end_date is optional for open-ended budgets.
type CreateBudgetDTO struct {
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date,omitempty"`
}

func (dto CreateBudgetDTO) Validate() error {
	if strings.TrimSpace(dto.CategoryName) == "" {
		return internal.NewValidationFieldError("category_name", "category_name is required", internal.ErrCodeValidationFailed)
	}
	if !dto.Amount.IsPositive() {
		return internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}

	start, err := time.Parse(time.DateOnly, dto.StartDate)
	if err != nil {
		return internal.NewValidationFieldError("start_date", "start_date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
	}
	if dto.EndDate != nil {
		end, err := time.Parse(time.DateOnly, *dto.EndDate)
		if err != nil {
			return internal.NewValidationFieldError("end_date", "end_date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
		}
		if end.Before(start) {
			return internal.NewValidationFieldError("end_date", "end_date must not be before start_date", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

func (dto CreateBudgetDTO) ParsedDates() (time.Time, *time.Time) {
	start, _ := time.Parse(time.DateOnly, dto.StartDate)
	if dto.EndDate == nil {
		return start, nil
	}
	end, _ := time.Parse(time.DateOnly, *dto.EndDate)
	return start, &end
}

// UpdateBudgetDTO represents a partial budget update. Omitted fields keep
// their current value. Setting clear_end_date drops the end date, making
// the budget open-ended again.
type UpdateBudgetDTO struct {
	CategoryName *string          `json:"category_name,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	StartDate    *string          `json:"start_date,omitempty"`
	EndDate      *string          `json:"end_date,omitempty"`
	ClearEndDate bool             `json:"clear_end_date,omitempty"`
}

func (dto UpdateBudgetDTO) Validate() error {
	if dto.CategoryName == nil && dto.Amount == nil && dto.StartDate == nil && dto.EndDate == nil && !dto.ClearEndDate {
		return internal.NewValidationError("nothing to update", internal.ErrCodeValidationFailed)
	}
	if dto.CategoryName != nil && strings.TrimSpace(*dto.CategoryName) == "" {
		return internal.NewValidationFieldError("category_name", "category_name must not be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Amount != nil && !dto.Amount.IsPositive() {
		return internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if dto.StartDate != nil {
		if _, err := time.Parse(time.DateOnly, *dto.StartDate); err != nil {
			return internal.NewValidationFieldError("start_date", "start_date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
		}
	}
	if dto.EndDate != nil {
		if dto.ClearEndDate {
			return internal.NewValidationError("end_date and clear_end_date are mutually exclusive", internal.ErrCodeValidationFailed)
		}
		if _, err := time.Parse(time.DateOnly, *dto.EndDate); err != nil {
			return internal.NewValidationFieldError("end_date", "end_date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

// BudgetView is a budget row decorated with spend against the current
// month, ready for list screens.
type BudgetView struct {
	*Budget
	Spent     money.Amount `json:"spent"`
	Remaining money.Amount `json:"remaining"`
	Status    string       `json:"status"`
	Active    bool         `json:"active"`
}
