package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"todoapp/internal/cache"
	apperrors "todoapp/internal/errors"
	"todoapp/internal/model"
	"todoapp/internal/repository"
)

const (
	msgTodoTextRequired = "Todo text is required."
	msgTodoNotFound     = "Todo not found."
	msgBadDueDate       = "Due date must be in YYYY-MM-DD format."
)

// CreateTodoInput carries the fields of a new todo. Priority and Category
// fall back to defaults when empty or, for priority, unknown.
type CreateTodoInput struct {
	Text     string
	DueDate  *string
	Priority string
	Category string
}

// UpdateTodoInput is a partial update: nil fields keep their value. An empty
// DueDate clears the due date.
type UpdateTodoInput struct {
	Text      *string
	DueDate   *string
	Completed *bool
	Priority  *string
	Category  *string
}

// TodoService manages a user's todos.
type TodoService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Todo, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Todo, error)
	Create(ctx context.Context, ownerID uuid.UUID, in CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type todoService struct {
	repo  repository.TodoRepository
	cache *cache.Client
}

// NewTodoService creates a new todo service. Every write invalidates the
// owner's cached dashboard.
func NewTodoService(repo repository.TodoRepository, cache *cache.Client) TodoService {
	return &todoService{repo: repo, cache: cache}
}

func (s *todoService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Todo, error) {
	todos, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *todoService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Todo, error) {
	return findOwned[model.Todo](ctx, s.repo, ownerID, id, msgTodoNotFound)
}

func (s *todoService) Create(ctx context.Context, ownerID uuid.UUID, in CreateTodoInput) (*model.Todo, error) {
	text, err := requireText(in.Text, msgTodoTextRequired)
	if err != nil {
		return nil, err
	}

	todo := &model.Todo{
		UserID:   ownerID,
		Text:     text,
		Priority: model.PriorityMedium,
		Category: model.DefaultCategory,
	}
	if p, ok := model.ParsePriority(in.Priority); ok {
		todo.Priority = p
	}
	if c := strings.TrimSpace(in.Category); c != "" {
		todo.Category = c
	}
	if in.DueDate != nil && *in.DueDate != "" {
		if !model.ValidDate(*in.DueDate) {
			return nil, apperrors.Validation(msgBadDueDate)
		}
		due := *in.DueDate
		todo.DueDate = &due
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	s.invalidate(ctx, ownerID)
	return todo, nil
}

func (s *todoService) Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateTodoInput) (*model.Todo, error) {
	todo, err := findOwned[model.Todo](ctx, s.repo, ownerID, id, msgTodoNotFound)
	if err != nil {
		return nil, err
	}

	if in.Text != nil {
		text, err := requireText(*in.Text, msgTodoTextRequired)
		if err != nil {
			return nil, err
		}
		todo.Text = text
	}
	if in.DueDate != nil {
		switch due := *in.DueDate; {
		case due == "":
			todo.DueDate = nil
		case model.ValidDate(due):
			todo.DueDate = &due
		default:
			return nil, apperrors.Validation(msgBadDueDate)
		}
	}
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}
	if in.Priority != nil {
		if p, ok := model.ParsePriority(*in.Priority); ok {
			todo.Priority = p
		}
	}
	if in.Category != nil {
		if c := strings.TrimSpace(*in.Category); c != "" {
			todo.Category = c
		}
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	s.invalidate(ctx, ownerID)
	return todo, nil
}

// Delete removes the todo together with its comments and tag links.
// Reminders that referenced it are kept, unlinked.
func (s *todoService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.DeleteCascade(ctx, ownerID, id); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgTodoNotFound)
		}
		return fmt.Errorf("delete todo: %w", err)
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *todoService) invalidate(ctx context.Context, ownerID uuid.UUID) {
	_ = s.cache.Delete(ctx, dashboardCacheKey(ownerID))
}
