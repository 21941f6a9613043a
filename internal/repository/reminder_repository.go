package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoapp/internal/model"
)

// ReminderRepository defines reminder persistence operations.
type ReminderRepository interface {
	ScopedRepository[model.Reminder]
	// MarkDismissed sets dismissed=true on an owned reminder. It does not
	// report whether a row changed; callers check ownership first.
	MarkDismissed(ctx context.Context, ownerID, id uuid.UUID) error
}

type reminderRepository struct {
	scopedRepository[model.Reminder]
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{newScopedRepository[model.Reminder](db, "remind_at ASC")}
}

func (r *reminderRepository) MarkDismissed(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.owned(ctx, ownerID).
		Model(&model.Reminder{}).
		Where("id = ?", id).
		Update("dismissed", true).Error
}
