package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is an entry in a user's own category vocabulary. It is not a
// foreign key of Todo.Category.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_categories_user_name"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_categories_user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
