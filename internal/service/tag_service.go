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
	msgTagNameRequired = "Tag name is required."
	msgTagExists       = "A tag with that name already exists."
	msgTagNotFound     = "Tag not found."
	msgTagAttached     = "Tag is already attached to this todo."
	msgTagNotAttached  = "Tag is not attached to this todo."
)

// TagService manages tags and their links to todos.
type TagService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Tag, error)
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Tag, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Attach(ctx context.Context, ownerID, tagID, todoID uuid.UUID) error
	Detach(ctx context.Context, ownerID, tagID, todoID uuid.UUID) error
	ListForTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Tag, error)
}

type tagService struct {
	tags  repository.TagRepository
	todos repository.TodoRepository
}

// NewTagService creates a new tag service.
func NewTagService(tags repository.TagRepository, todos repository.TodoRepository) TagService {
	return &tagService{tags: tags, todos: todos}
}

func (s *tagService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Tag, error) {
	tags, err := s.tags.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Tag, error) {
	trimmed, err := requireText(name, msgTagNameRequired)
	if err != nil {
		return nil, err
	}

	if _, err := s.tags.FindByName(ctx, ownerID, trimmed); err == nil {
		return nil, apperrors.Conflict(msgTagExists)
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("check tag name: %w", err)
	}

	tag := &model.Tag{UserID: ownerID, Name: trimmed}
	if err := s.tags.Create(ctx, tag); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.Conflict(msgTagExists)
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

// Delete removes a tag and all of its links.
func (s *tagService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.tags.DeleteWithLinks(ctx, ownerID, id); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgTagNotFound)
		}
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// Attach links an owned tag to an owned todo.
func (s *tagService) Attach(ctx context.Context, ownerID, tagID, todoID uuid.UUID) error {
	if _, err := findOwned[model.Tag](ctx, s.tags, ownerID, tagID, msgTagNotFound); err != nil {
		return err
	}
	if _, err := findOwned[model.Todo](ctx, s.todos, ownerID, todoID, msgTodoNotFound); err != nil {
		return err
	}

	if _, err := s.tags.FindLink(ctx, tagID, todoID); err == nil {
		return apperrors.Conflict(msgTagAttached)
	} else if !isNotFound(err) {
		return fmt.Errorf("check tag link: %w", err)
	}

	if err := s.tags.CreateLink(ctx, &model.TagLink{TagID: tagID, TodoID: todoID}); err != nil {
		if isDuplicate(err) {
			return apperrors.Conflict(msgTagAttached)
		}
		return fmt.Errorf("attach tag: %w", err)
	}
	return nil
}

// Detach removes a link. Links are only ever created between an owner's own
// tag and todo, so owning the tag is enough to scope the removal.
func (s *tagService) Detach(ctx context.Context, ownerID, tagID, todoID uuid.UUID) error {
	if _, err := s.tags.FindOwned(ctx, ownerID, tagID); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgTagNotAttached)
		}
		return fmt.Errorf("find tag: %w", err)
	}

	if err := s.tags.DeleteLink(ctx, tagID, todoID); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgTagNotAttached)
		}
		return fmt.Errorf("detach tag: %w", err)
	}
	return nil
}

func (s *tagService) ListForTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Tag, error) {
	if _, err := findOwned[model.Todo](ctx, s.todos, ownerID, todoID, msgTodoNotFound); err != nil {
		return nil, err
	}
	tags, err := s.tags.ListByTodo(ctx, ownerID, todoID)
	if err != nil {
		return nil, fmt.Errorf("list todo tags: %w", err)
	}
	return tags, nil
}
