package category

import (
	"strings"

	"github.com/MGhiremath0281/Apex-Money/internal"
	transactionDatamodel "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
)

const maxNameLength = 100

// CreateCategoryDTO represents the request payload for creating a category
type CreateCategoryDTO struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func (dto CreateCategoryDTO) Validate() error {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if len(name) > maxNameLength {
		return internal.NewValidationFieldError("name", "name must be at most 100 characters", internal.ErrCodeValidationFailed)
	}
	if !transactionDatamodel.ValidKind(dto.Kind) {
		return internal.NewValidationFieldError("kind", "kind must be 'income' or 'expense'", internal.ErrCodeInvalidKind)
	}
	return nil
}

// UpdateCategoryDTO represents the request payload for updating a category.
// Omitted fields keep their current value.
type UpdateCategoryDTO struct {
	Name *string `json:"name,omitempty"`
	Kind *string `json:"kind,omitempty"`
}

func (dto UpdateCategoryDTO) Validate() error {
	if dto.Name == nil && dto.Kind == nil {
		return internal.NewValidationError("nothing to update", internal.ErrCodeValidationFailed)
	}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return internal.NewValidationFieldError("name", "name must not be empty", internal.ErrCodeValidationFailed)
		}
		if len(name) > maxNameLength {
			return internal.NewValidationFieldError("name", "name must be at most 100 characters", internal.ErrCodeValidationFailed)
		}
	}
	if dto.Kind != nil && !transactionDatamodel.ValidKind(*dto.Kind) {
		return internal.NewValidationFieldError("kind", "kind must be 'income' or 'expense'", internal.ErrCodeInvalidKind)
	}
	return nil
}
