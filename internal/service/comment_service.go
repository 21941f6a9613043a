package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/model"
	"todoapp/internal/repository"
)

const (
	msgCommentTextRequired = "Comment text is required."
	msgCommentNotFound     = "Comment not found."
)

// CommentService manages notes attached to todos. A comment is reachable
// only through a todo its caller owns.
type CommentService interface {
	ListForTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Comment, error)
	Create(ctx context.Context, ownerID, todoID uuid.UUID, text string) (*model.Comment, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, text string) (*model.Comment, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	todos    repository.TodoRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, todos repository.TodoRepository) CommentService {
	return &commentService{comments: comments, todos: todos}
}

func (s *commentService) ListForTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Comment, error) {
	if _, err := findOwned[model.Todo](ctx, s.todos, ownerID, todoID, msgTodoNotFound); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByTodo(ctx, ownerID, todoID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Create(ctx context.Context, ownerID, todoID uuid.UUID, text string) (*model.Comment, error) {
	todo, err := findOwned[model.Todo](ctx, s.todos, ownerID, todoID, msgTodoNotFound)
	if err != nil {
		return nil, err
	}
	trimmed, err := requireText(text, msgCommentTextRequired)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{TodoID: todo.ID, UserID: todo.UserID, Text: trimmed}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, ownerID, id uuid.UUID, text string) (*model.Comment, error) {
	comment, err := findOwned[model.Comment](ctx, s.comments, ownerID, id, msgCommentNotFound)
	if err != nil {
		return nil, err
	}
	trimmed, err := requireText(text, msgCommentTextRequired)
	if err != nil {
		return nil, err
	}

	comment.Text = trimmed
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.comments.DeleteOwned(ctx, ownerID, id); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgCommentNotFound)
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
