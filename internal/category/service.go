package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/MGhiremath0281/Apex-Money/internal"
	"github.com/MGhiremath0281/Apex-Money/internal/core/events"
)

// Repository defines the data access methods for categories
type Repository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, userID, id int64) (*Category, error)
	GetByName(ctx context.Context, userID int64, name string) (*Category, error)
	ListByUser(ctx context.Context, userID int64) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, userID, id int64) error
	CountTransactions(ctx context.Context, categoryID int64) (int64, error)
}

type EventPublisher interface {
	PublishSync(ctx context.Context, event events.Event) error
}

type Service struct {
	repo     Repository
	eventBus EventPublisher
	logger   *slog.Logger
}

func NewService(repo Repository, eventBus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)
	if existing, err := s.repo.GetByName(ctx, userID, name); err == nil && existing != nil {
		return nil, internal.NewConflictError("category with this name already exists", internal.ErrCodeCategoryExists)
	}

	category := &Category{
		UserID: userID,
		Name:   name,
		Kind:   dto.Kind,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error("failed to create category", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("could not create category", err)
	}

	s.logger.Info("category created", "category_id", category.ID, "user_id", userID, "kind", category.Kind)
	return category, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id int64) (*Category, error) {
	category, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, internal.NewNotFoundError("category not found", internal.ErrCodeCategoryNotFound)
	}
	return category, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]*Category, error) {
	categories, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("could not list categories", err)
	}
	return categories, nil
}

// Update renames a category and/or changes its kind. A rename is published
// synchronously so budgets referencing the old name are re-matched before
// the request returns. A kind change is rejected while transactions are
// filed under the category, otherwise historical reports would flip sign.
func (s *Service) Update(ctx context.Context, userID, id int64, dto UpdateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, internal.NewNotFoundError("category not found", internal.ErrCodeCategoryNotFound)
	}

	oldName := category.Name

	if dto.Kind != nil && *dto.Kind != category.Kind {
		count, err := s.repo.CountTransactions(ctx, id)
		if err != nil {
			return nil, internal.NewInternalError("could not check category usage", err)
		}
		if count > 0 {
			return nil, internal.NewConflictError(
				"cannot change kind of a category that has transactions",
				internal.ErrCodeCategoryInUse,
			)
		}
		category.Kind = *dto.Kind
	}

	if dto.Name != nil {
		newName := strings.TrimSpace(*dto.Name)
		if newName != oldName {
			if existing, err := s.repo.GetByName(ctx, userID, newName); err == nil && existing != nil && existing.ID != id {
				return nil, internal.NewConflictError("category with this name already exists", internal.ErrCodeCategoryExists)
			}
			category.Name = newName
		}
	}

	if err := s.repo.Update(ctx, category); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return nil, internal.NewInternalError("could not update category", err)
	}

	if category.Name != oldName {
		event := events.NewCategoryRenamedEvent(userID, id, oldName, category.Name)
		if err := s.eventBus.PublishSync(ctx, event); err != nil {
			s.logger.Error("category rename event failed", "error", err, "category_id", id)
			return nil, internal.NewInternalError("could not propagate category rename", err)
		}
		s.logger.Info("category renamed", "category_id", id, "old_name", oldName, "new_name", category.Name)
	}

	return category, nil
}

// Delete removes a category. Deletion is blocked while transactions
// reference it; budgets keep their category name and survive.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	category, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return internal.NewNotFoundError("category not found", internal.ErrCodeCategoryNotFound)
	}

	count, err := s.repo.CountTransactions(ctx, id)
	if err != nil {
		return internal.NewInternalError("could not check category usage", err)
	}
	if count > 0 {
		return internal.NewConflictError(
			"cannot delete a category that has transactions",
			internal.ErrCodeCategoryInUse,
		)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return internal.NewInternalError("could not delete category", err)
	}

	event := events.NewCategoryDeletedEvent(userID, id, category.Name)
	if err := s.eventBus.PublishSync(ctx, event); err != nil {
		s.logger.Error("category deleted event failed", "error", err, "category_id", id)
	}

	s.logger.Info("category deleted", "category_id", id, "user_id", userID)
	return nil
}
