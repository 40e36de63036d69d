package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
	"github.com/MGhiremath0281/Apex-Money/internal/transaction"
)

// TransactionRepository implements the transaction.Repository interface
// using GORM
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) transaction.Repository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	row := transaction.ToDataModel(t)
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	t.ID = row.ID
	t.CreatedAt = row.CreatedAt
	t.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id int64) (*transaction.Transaction, error) {
	var row transactiondm.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return transaction.FromDataModel(&row), nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64, query transaction.ListTransactionsQuery) ([]*transaction.Transaction, error) {
	q := r.db.WithContext(ctx).
		Model(&transactiondm.Transaction{}).
		Where("transactions.user_id = ?", userID)

	if query.Year > 0 && query.Month >= 1 && query.Month <= 12 {
		start := time.Date(query.Year, time.Month(query.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		q = q.Where("transactions.date >= ? AND transactions.date < ?", start, end)
	}
	if query.CategoryID > 0 {
		q = q.Where("transactions.category_id = ?", query.CategoryID)
	}
	if query.Kind != "" {
		q = q.Where("transactions.kind = ?", query.Kind)
	}

	type rowWithCategory struct {
		transactiondm.Transaction
		CategoryName string
	}

	var rows []rowWithCategory
	err := q.
		Select("transactions.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Order("transactions.date DESC, transactions.id DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t := transaction.FromDataModel(&rows[i].Transaction)
		t.CategoryName = rows[i].CategoryName
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	t.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Model(&transactiondm.Transaction{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Updates(map[string]interface{}{
			"category_id": t.CategoryID,
			"amount":      t.Amount.Decimal,
			"kind":        t.Kind,
			"description": t.Description,
			"date":        t.Date,
			"updated_at":  t.UpdatedAt,
		}).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&transactiondm.Transaction{}).Error
}
