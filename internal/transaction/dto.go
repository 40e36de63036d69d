package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MGhiremath0281/Apex-Money/internal"
	transactionDatamodel "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
)

const maxDescriptionLength = 500

// CreateTransactionDTO represents the request payload for recording a
// transaction. Date accepts "2006-01-02".
type CreateTransactionDTO struct {
	CategoryID  int64           `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description *string         `json:"description,omitempty"`
	Date        string          `json:"date"`
}

func (dto CreateTransactionDTO) Validate() error {
	if dto.CategoryID <= 0 {
		return internal.NewValidationFieldError("category_id", "category_id is required", internal.ErrCodeValidationFailed)
	}
	if !dto.Amount.IsPositive() {
		return internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if !transactionDatamodel.ValidKind(dto.Kind) {
		return internal.NewValidationFieldError("kind", "kind must be 'income' or 'expense'", internal.ErrCodeInvalidKind)
	}
	if dto.Description != nil && len(*dto.Description) > maxDescriptionLength {
		return internal.NewValidationFieldError("description", "description must be at most 500 characters", internal.ErrCodeValidationFailed)
	}
	if _, err := dto.ParsedDate(); err != nil {
		return internal.NewValidationFieldError("date", "date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto CreateTransactionDTO) ParsedDate() (time.Time, error) {
	return time.Parse(time.DateOnly, dto.Date)
}

// UpdateTransactionDTO represents a partial transaction update. Omitted
// fields keep their current value.
type UpdateTransactionDTO struct {
	CategoryID  *int64           `json:"category_id,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Kind        *string          `json:"kind,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty"`
}

func (dto UpdateTransactionDTO) Validate() error {
	if dto.CategoryID == nil && dto.Amount == nil && dto.Kind == nil && dto.Description == nil && dto.Date == nil {
		return internal.NewValidationError("nothing to update", internal.ErrCodeValidationFailed)
	}
	if dto.CategoryID != nil && *dto.CategoryID <= 0 {
		return internal.NewValidationFieldError("category_id", "category_id must be positive", internal.ErrCodeValidationFailed)
	}
	if dto.Amount != nil && !dto.Amount.IsPositive() {
		return internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if dto.Kind != nil && !transactionDatamodel.ValidKind(*dto.Kind) {
		return internal.NewValidationFieldError("kind", "kind must be 'income' or 'expense'", internal.ErrCodeInvalidKind)
	}
	if dto.Description != nil && len(*dto.Description) > maxDescriptionLength {
		return internal.NewValidationFieldError("description", "description must be at most 500 characters", internal.ErrCodeValidationFailed)
	}
	if dto.Date != nil {
		if _, err := time.Parse(time.DateOnly, *dto.Date); err != nil {
			return internal.NewValidationFieldError("date", "date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

// ListTransactionsQuery carries optional list filters parsed from the
// query string.
type ListTransactionsQuery struct {
	Year       int
	Month      int
	CategoryID int64
	Kind       string
	Limit      int
	Offset     int
}
