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
	msgCategoryNameRequired = "Category name is required."
	msgCategoryExists       = "A category with that name already exists."
	msgCategoryNotFound     = "Category not found."
)

// CategoryService manages a user's category vocabulary.
type CategoryService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error)
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Category, error)
	Rename(ctx context.Context, ownerID, id uuid.UUID, name string) (*model.Category, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error) {
	categories, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Category, error) {
	trimmed, err := requireText(name, msgCategoryNameRequired)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, ownerID, uuid.Nil, trimmed); err != nil {
		return nil, err
	}

	category := &model.Category{UserID: ownerID, Name: trimmed}
	if err := s.repo.Create(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.Conflict(msgCategoryExists)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Rename(ctx context.Context, ownerID, id uuid.UUID, name string) (*model.Category, error) {
	category, err := findOwned[model.Category](ctx, s.repo, ownerID, id, msgCategoryNotFound)
	if err != nil {
		return nil, err
	}
	trimmed, err := requireText(name, msgCategoryNameRequired)
	if err != nil {
		return nil, err
	}
	if category.Name == trimmed {
		return category, nil
	}
	if err := s.ensureNameFree(ctx, ownerID, id, trimmed); err != nil {
		return nil, err
	}

	category.Name = trimmed
	if err := s.repo.Update(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.Conflict(msgCategoryExists)
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.DeleteOwned(ctx, ownerID, id); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgCategoryNotFound)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ensureNameFree fails with Conflict when another of the owner's categories
// (other than self) already uses name.
func (s *categoryService) ensureNameFree(ctx context.Context, ownerID, self uuid.UUID, name string) error {
	existing, err := s.repo.FindByName(ctx, ownerID, name)
	switch {
	case err == nil && existing.ID != self:
		return apperrors.Conflict(msgCategoryExists)
	case err != nil && !isNotFound(err):
		return fmt.Errorf("check category name: %w", err)
	}
	return nil
}
