package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownerColumn is the column every user-owned table is partitioned by.
const ownerColumn = "user_id"

// ScopedRepository defines the persistence operations shared by every
// user-owned resource. All reads and deletes are filtered by owner, so a
// record owned by someone else behaves exactly like a missing one
// (gorm.ErrRecordNotFound).
type ScopedRepository[T any] interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]T, error)
	FindOwned(ctx context.Context, ownerID, id uuid.UUID) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error
}

type scopedRepository[T any] struct {
	db    *gorm.DB
	order string
}

func newScopedRepository[T any](db *gorm.DB, order string) scopedRepository[T] {
	return scopedRepository[T]{db: db, order: order}
}

func (r scopedRepository[T]) owned(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Where(ownerColumn+" = ?", ownerID)
}

// List returns every record of the owner in the resource's natural order.
func (r scopedRepository[T]) List(ctx context.Context, ownerID uuid.UUID) ([]T, error) {
	items := make([]T, 0)
	if err := r.owned(ctx, ownerID).Order(r.order).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindOwned finds a record by ID, provided it belongs to ownerID.
func (r scopedRepository[T]) FindOwned(ctx context.Context, ownerID, id uuid.UUID) (*T, error) {
	var item T
	if err := r.owned(ctx, ownerID).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new record.
func (r scopedRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update writes every column of an existing record.
func (r scopedRepository[T]) Update(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteOwned removes a record by ID, provided it belongs to ownerID.
func (r scopedRepository[T]) DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.owned(ctx, ownerID).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
