package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoapp/internal/model"
)

// TodoRepository defines todo persistence operations.
type TodoRepository interface {
	ScopedRepository[model.Todo]
	// FindByIDs returns the owner's todos among ids; unknown or foreign ids
	// are skipped.
	FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]model.Todo, error)
	// DeleteCascade removes a todo with its comments and tag links, and
	// unlinks reminders pointing at it, in one transaction.
	DeleteCascade(ctx context.Context, ownerID, id uuid.UUID) error
}

type todoRepository struct {
	scopedRepository[model.Todo]
}

// NewTodoRepository creates a new todo repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{newScopedRepository[model.Todo](db, "created_at DESC")}
}

func (r *todoRepository) FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]model.Todo, error) {
	todos := make([]model.Todo, 0, len(ids))
	if len(ids) == 0 {
		return todos, nil
	}
	if err := r.owned(ctx, ownerID).Where("id IN ?", ids).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) DeleteCascade(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todo model.Todo
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&todo).Error; err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", id).Delete(&model.TagLink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Reminder{}).
			Where("todo_id = ? AND user_id = ?", id, ownerID).
			Update("todo_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&todo).Error
	})
}
