package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MGhiremath0281/Apex-Money/internal/category"
	categorydm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/category"
	transactiondm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/transaction"
)

// CategoryRepository implements the category.Repository interface using GORM
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	row := category.ToDataModel(c)
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	c.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID, id int64) (*category.Category, error) {
	var row categorydm.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return category.FromDataModel(&row), nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, userID int64, name string) (*category.Category, error) {
	var row categorydm.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return category.FromDataModel(&row), nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID int64) ([]*category.Category, error) {
	var rows []categorydm.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, category.FromDataModel(&rows[i]))
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	c.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Model(&categorydm.Category{}).
		Where("id = ? AND user_id = ?", c.ID, c.UserID).
		Updates(map[string]interface{}{
			"name":       c.Name,
			"kind":       c.Kind,
			"updated_at": c.UpdatedAt,
		}).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&categorydm.Category{}).Error
}

func (r *CategoryRepository) CountTransactions(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&transactiondm.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
