package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoapp/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// DeleteWithOwnedData removes the user and everything they own in a
	// single transaction, children before parents.
	DeleteWithOwnedData(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches the email exactly as stored, even on databases whose
// default collation ignores case.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	if user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *userRepository) DeleteWithOwnedData(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownedTodos := tx.Model(&model.Todo{}).Select("id").Where("user_id = ?", id)
		ownedTags := tx.Model(&model.Tag{}).Select("id").Where("user_id = ?", id)

		if err := tx.Where("todo_id IN (?)", ownedTodos).Delete(&model.TagLink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tag_id IN (?)", ownedTags).Delete(&model.TagLink{}).Error; err != nil {
			return err
		}
		for _, owned := range []interface{}{
			&model.Comment{},
			&model.Reminder{},
			&model.Tag{},
			&model.Category{},
			&model.Todo{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(owned).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(&model.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
