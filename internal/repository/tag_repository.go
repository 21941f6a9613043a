package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoapp/internal/model"
)

// TagRepository defines tag and tag-link persistence operations.
type TagRepository interface {
	ScopedRepository[model.Tag]
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Tag, error)
	// ListByTodo returns the owner's tags attached to todoID, by name.
	ListByTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Tag, error)
	// DeleteWithLinks removes an owned tag and every link to it atomically.
	DeleteWithLinks(ctx context.Context, ownerID, id uuid.UUID) error

	FindLink(ctx context.Context, tagID, todoID uuid.UUID) (*model.TagLink, error)
	CreateLink(ctx context.Context, link *model.TagLink) error
	DeleteLink(ctx context.Context, tagID, todoID uuid.UUID) error
}

type tagRepository struct {
	scopedRepository[model.Tag]
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{newScopedRepository[model.Tag](db, "name ASC")}
}

func (r *tagRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.owned(ctx, ownerID).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) ListByTodo(ctx context.Context, ownerID, todoID uuid.UUID) ([]model.Tag, error) {
	tags := make([]model.Tag, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN tag_links ON tag_links.tag_id = tags.id").
		Where("tag_links.todo_id = ? AND tags.user_id = ?", todoID, ownerID).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) DeleteWithLinks(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag model.Tag
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&tag).Error; err != nil {
			return err
		}
		if err := tx.Where("tag_id = ?", id).Delete(&model.TagLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

func (r *tagRepository) FindLink(ctx context.Context, tagID, todoID uuid.UUID) (*model.TagLink, error) {
	var link model.TagLink
	if err := r.db.WithContext(ctx).
		Where("tag_id = ? AND todo_id = ?", tagID, todoID).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *tagRepository) CreateLink(ctx context.Context, link *model.TagLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *tagRepository) DeleteLink(ctx context.Context, tagID, todoID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("tag_id = ? AND todo_id = ?", tagID, todoID).
		Delete(&model.TagLink{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
