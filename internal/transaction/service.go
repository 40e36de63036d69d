package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/MGhiremath0281/Apex-Money/internal"
	"github.com/MGhiremath0281/Apex-Money/internal/category"
	"github.com/MGhiremath0281/Apex-Money/pkg/money"
)

// Repository defines the data access methods for transactions
type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetByID(ctx context.Context, userID, id int64) (*Transaction, error)
	ListByUser(ctx context.Context, userID int64, query ListTransactionsQuery) ([]*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, userID, id int64) error
}

// CategoryReader resolves categories so a transaction's kind can be
// checked against its category's kind.
type CategoryReader interface {
	GetByID(ctx context.Context, userID, id int64) (*category.Category, error)
}

type Service struct {
	repo       Repository
	categories CategoryReader
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryReader, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, dto CreateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	cat, err := s.categories.GetByID(ctx, userID, dto.CategoryID)
	if err != nil {
		return nil, internal.NewNotFoundError("category not found", internal.ErrCodeCategoryNotFound)
	}
	if cat.Kind != dto.Kind {
		return nil, internal.NewValidationError(
			"transaction kind must match the category kind",
			internal.ErrCodeCategoryMismatch,
		)
	}

	date, _ := dto.ParsedDate()
	transaction := &Transaction{
		UserID:       userID,
		CategoryID:   dto.CategoryID,
		CategoryName: cat.Name,
		Amount:       money.New(dto.Amount),
		Kind:         dto.Kind,
		Description:  dto.Description,
		Date:         date,
	}
	if err := s.repo.Create(ctx, transaction); err != nil {
		s.logger.Error("failed to create transaction", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("could not create transaction", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"kind", transaction.Kind,
		"amount", transaction.Amount.String())

	return transaction, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id int64) (*Transaction, error) {
	transaction, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, internal.NewNotFoundError("transaction not found", internal.ErrCodeTransactionNotFound)
	}
	return transaction, nil
}

func (s *Service) List(ctx context.Context, userID int64, query ListTransactionsQuery) ([]*Transaction, error) {
	if query.Limit <= 0 || query.Limit > 200 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	transactions, err := s.repo.ListByUser(ctx, userID, query)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("could not list transactions", err)
	}
	return transactions, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, dto UpdateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	transaction, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, internal.NewNotFoundError("transaction not found", internal.ErrCodeTransactionNotFound)
	}

	if dto.CategoryID != nil {
		transaction.CategoryID = *dto.CategoryID
	}
	if dto.Amount != nil {
		transaction.Amount = money.New(*dto.Amount)
	}
	if dto.Kind != nil {
		transaction.Kind = *dto.Kind
	}
	if dto.Description != nil {
		transaction.Description = dto.Description
	}
	if dto.Date != nil {
		date, _ := time.Parse(time.DateOnly, *dto.Date)
		transaction.Date = date
	}

	// The kind/category agreement must hold after any combination of
	// category and kind changes.
	cat, err := s.categories.GetByID(ctx, userID, transaction.CategoryID)
	if err != nil {
		return nil, internal.NewNotFoundError("category not found", internal.ErrCodeCategoryNotFound)
	}
	if cat.Kind != transaction.Kind {
		return nil, internal.NewValidationError(
			"transaction kind must match the category kind",
			internal.ErrCodeCategoryMismatch,
		)
	}
	transaction.CategoryName = cat.Name

	if err := s.repo.Update(ctx, transaction); err != nil {
		s.logger.Error("failed to update transaction", "error", err, "transaction_id", id)
		return nil, internal.NewInternalError("could not update transaction", err)
	}

	return transaction, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		return internal.NewNotFoundError("transaction not found", internal.ErrCodeTransactionNotFound)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("failed to delete transaction", "error", err, "transaction_id", id)
		return internal.NewInternalError("could not delete transaction", err)
	}

	s.logger.Info("transaction deleted", "transaction_id", id, "user_id", userID)
	return nil
}
