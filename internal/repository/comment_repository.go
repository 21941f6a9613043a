package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoapp/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	ScopedRepository[model.Comment]
	ListByTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Comment, error)
}

type commentRepository struct {
	scopedRepository[model.Comment]
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{newScopedRepository[model.Comment](db, "created_at DESC")}
}

// ListByTodo lists the comments on one todo, newest first.
func (r *commentRepository) ListByTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	if err := r.owned(ctx, ownerID).
		Where("todo_id = ?", todoID).
		Order(r.order).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
