package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a user-defined label that can be attached to many todos.
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_tags_user_name"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_tags_user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TagLink attaches a tag to a todo. The pair is unique.
type TagLink struct {
	TagID     uuid.UUID `json:"tag_id" gorm:"type:char(36);primaryKey"`
	TodoID    uuid.UUID `json:"todo_id" gorm:"type:char(36);primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
}
