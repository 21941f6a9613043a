package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoapp/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	ScopedRepository[model.Category]
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Category, error)
}

type categoryRepository struct {
	scopedRepository[model.Category]
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{newScopedRepository[model.Category](db, "name ASC")}
}

func (r *categoryRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Category, error) {
	var category model.Category
	if err := r.owned(ctx, ownerID).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
