// Package service implements the application's use cases on top of the
// repositories. Every operation on a user-owned resource takes the owner's
// ID and reports records owned by anyone else as not found.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/repository"
)

// findOwned loads an owned record, translating a miss into a NotFound error
// carrying notFoundMsg.
func findOwned[T any](ctx context.Context, repo repository.ScopedRepository[T], ownerID, id uuid.UUID, notFoundMsg string) (*T, error) {
	item, err := repo.FindOwned(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(notFoundMsg)
		}
		return nil, fmt.Errorf("find owned record: %w", err)
	}
	return item, nil
}

// requireText trims s and fails with a validation error when nothing is left.
func requireText(s, msg string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", apperrors.Validation(msg)
	}
	return trimmed, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
