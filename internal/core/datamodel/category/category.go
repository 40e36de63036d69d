package category

import "time"

// Category name is unique per user. Kind must agree with the kind of every
// transaction filed under the category.
type Category struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_categories_user_name"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:idx_categories_user_name"`
	Kind      string    `gorm:"column:kind;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
