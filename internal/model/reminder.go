package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder fires at RemindAt until the owner dismisses it. "Due" is never
// stored; see IsDue.
type Reminder struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;index"`
	TodoID    *uuid.UUID `json:"todo_id" gorm:"type:char(36);index"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	RemindAt  time.Time  `json:"remind_at" gorm:"not null;index"`
	Dismissed bool       `json:"dismissed" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"-"`

	// TodoText is the linked todo's text, filled in on reads.
	TodoText *string `json:"todo_text,omitempty" gorm:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsDue reports whether the reminder should be shown at now: it has not been
// dismissed and its scheduled instant is not in the future.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.Dismissed && !r.RemindAt.After(now)
}
