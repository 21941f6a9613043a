package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultCategory is assigned to todos created without a category.
const DefaultCategory = "General"

// DateLayout is the wire and storage format of a todo due date.
const DateLayout = "2006-01-02"

// ParsePriority reports whether s names one of the known priorities.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}

// ValidDate reports whether s is a calendar date in DateLayout.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Todo is a single task owned by a user.
type Todo struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Completed bool      `json:"completed" gorm:"not null"`
	DueDate   *string   `json:"due_date" gorm:"size:10;index"`
	Priority  Priority  `json:"priority" gorm:"type:varchar(10);not null"`
	Category  string    `json:"category" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsOverdue reports whether an open todo's due date lies before today.
func (t *Todo) IsOverdue(today string) bool {
	return !t.Completed && t.DueDate != nil && *t.DueDate < today
}

// IsDueOn reports whether an open todo is due exactly on day.
func (t *Todo) IsDueOn(day string) bool {
	return !t.Completed && t.DueDate != nil && *t.DueDate == day
}
