package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MGhiremath0281/Apex-Money/internal"
	"github.com/MGhiremath0281/Apex-Money/internal/category"
	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/internal/core/events"
	"github.com/MGhiremath0281/Apex-Money/internal/reports"
	"github.com/MGhiremath0281/Apex-Money/pkg/money"
)

// Repository defines the data access methods for budgets
type Repository interface {
	Create(ctx context.Context, budget *Budget) error
	GetByID(ctx context.Context, userID, id int64) (*Budget, error)
	ListByUser(ctx context.Context, userID int64) ([]*Budget, error)
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, userID, id int64) error
	RenameCategory(ctx context.Context, userID int64, oldName, newName string) (int64, error)
}

// CategoryReader checks that the named category exists when a budget is
// created. After creation the reference is by name only, so budgets
// survive later category deletion.
type CategoryReader interface {
	GetByName(ctx context.Context, userID int64, name string) (*category.Category, error)
}

type EventSubscriber interface {
	Subscribe(eventType string, handler events.Handler)
}

type Service struct {
	repo       Repository
	categories CategoryReader
	agg        *reports.Aggregator
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(repo Repository, categories CategoryReader, agg *reports.Aggregator, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		agg:        agg,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterEventHandlers wires the service to category events so renaming a
// category re-points its budgets before the rename request returns.
func (s *Service) RegisterEventHandlers(bus EventSubscriber) {
	bus.Subscribe(events.EventTypeCategoryRenamed, s.handleCategoryRenamed)
}

func (s *Service) handleCategoryRenamed(ctx context.Context, event events.Event) error {
	renamed, ok := event.(*events.CategoryRenamedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	updated, err := s.repo.RenameCategory(ctx, renamed.UserID, renamed.OldName, renamed.NewName)
	if err != nil {
		return fmt.Errorf("rename budget category: %w", err)
	}

	if updated > 0 {
		s.logger.Info("budgets re-matched after category rename",
			"user_id", renamed.UserID,
			"old_name", renamed.OldName,
			"new_name", renamed.NewName,
			"budgets", updated)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID int64, dto CreateBudgetDTO) (*Budget, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.CategoryName)
	if _, err := s.categories.GetByName(ctx, userID, name); err != nil {
		return nil, internal.NewNotFoundError("category not found", internal.ErrCodeCategoryNotFound)
	}

	start, end := dto.ParsedDates()
	budget := &Budget{
		UserID:       userID,
		CategoryName: name,
		Amount:       money.New(dto.Amount),
		StartDate:    start,
		EndDate:      end,
	}
	if err := s.repo.Create(ctx, budget); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, internal.NewConflictError(
				"a budget for this category and start date already exists",
				internal.ErrCodeBudgetExists,
			)
		}
		s.logger.Error("failed to create budget", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("could not create budget", err)
	}

	s.logger.Info("budget created",
		"budget_id", budget.ID,
		"user_id", userID,
		"category", budget.CategoryName,
		"amount", budget.Amount.String())

	return budget, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id int64) (*Budget, error) {
	budget, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, internal.NewNotFoundError("budget not found", internal.ErrCodeBudgetNotFound)
	}
	return budget, nil
}

// List returns the user's budgets decorated with spend against the current
// month. A budget that is not active for the current month reports zero
// spend and is flagged inactive.
func (s *Service) List(ctx context.Context, userID int64) ([]*BudgetView, error) {
	budgets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("could not list budgets", err)
	}

	interval := reports.MonthOf(s.now())

	views := make([]*BudgetView, 0, len(budgets))
	for _, b := range budgets {
		view := &BudgetView{Budget: b, Status: string(reports.StatusUnderBudget)}

		def := b.ToDefinition()
		view.Active = def.ActiveFor(interval)

		spent, err := s.agg.Sum(ctx, userID, transactiondm.KindExpense, interval, reports.Filter{CategoryName: b.CategoryName})
		if err != nil {
			return nil, internal.NewInternalError("could not compute budget spend", err)
		}
		view.Spent = money.New(spent)
		view.Remaining = money.New(b.Amount.Sub(spent))
		if view.Remaining.IsNegative() {
			view.Status = string(reports.StatusOverBudget)
		}

		views = append(views, view)
	}
	return views, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, dto UpdateBudgetDTO) (*Budget, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	budget, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, internal.NewNotFoundError("budget not found", internal.ErrCodeBudgetNotFound)
	}

	if dto.CategoryName != nil {
		name := strings.TrimSpace(*dto.CategoryName)
		if _, err := s.categories.GetByName(ctx, userID, name); err != nil {
			return nil, internal.NewNotFoundError("category not found", internal.ErrCodeCategoryNotFound)
		}
		budget.CategoryName = name
	}
	if dto.Amount != nil {
		budget.Amount = money.New(*dto.Amount)
	}
	if dto.StartDate != nil {
		start, _ := time.Parse(time.DateOnly, *dto.StartDate)
		budget.StartDate = start
	}
	if dto.ClearEndDate {
		budget.EndDate = nil
	}
	if dto.EndDate != nil {
		end, _ := time.Parse(time.DateOnly, *dto.EndDate)
		budget.EndDate = &end
	}
	if budget.EndDate != nil && budget.EndDate.Before(budget.StartDate) {
		return nil, internal.NewValidationFieldError("end_date", "end_date must not be before start_date", internal.ErrCodeInvalidDate)
	}

	if err := s.repo.Update(ctx, budget); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, internal.NewConflictError(
				"a budget for this category and start date already exists",
				internal.ErrCodeBudgetExists,
			)
		}
		s.logger.Error("failed to update budget", "error", err, "budget_id", id)
		return nil, internal.NewInternalError("could not update budget", err)
	}

	return budget, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		return internal.NewNotFoundError("budget not found", internal.ErrCodeBudgetNotFound)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("failed to delete budget", "error", err, "budget_id", id)
		return internal.NewInternalError("could not delete budget", err)
	}

	s.logger.Info("budget deleted", "budget_id", id, "user_id", userID)
	return nil
}
