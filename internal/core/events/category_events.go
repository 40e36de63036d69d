package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeCategoryRenamed = "category.renamed"
	EventTypeCategoryDeleted = "category.deleted"
)

// CategoryRenamedEvent lets budgets re-match their name-based category
// reference when a category is renamed.
type CategoryRenamedEvent struct {
	BaseEvent
	UserID     int64  `json:"user_id"`
	CategoryID int64  `json:"category_id"`
	OldName    string `json:"old_name"`
	NewName    string `json:"new_name"`
}

func NewCategoryRenamedEvent(userID, categoryID int64, oldName, newName string) *CategoryRenamedEvent {
	return &CategoryRenamedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCategoryRenamed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id":     userID,
				"category_id": categoryID,
				"old_name":    oldName,
				"new_name":    newName,
			},
		},
		UserID:     userID,
		CategoryID: categoryID,
		OldName:    oldName,
		NewName:    newName,
	}
}

// CategoryDeletedEvent is informational; budgets keep their category name
// after a deletion.
type CategoryDeletedEvent struct {
	BaseEvent
	UserID     int64  `json:"user_id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}

func NewCategoryDeletedEvent(userID, categoryID int64, name string) *CategoryDeletedEvent {
	return &CategoryDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCategoryDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id":     userID,
				"category_id": categoryID,
				"name":        name,
			},
		},
		UserID:     userID,
		CategoryID: categoryID,
		Name:       name,
	}
}
