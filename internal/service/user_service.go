package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todoapp/internal/cache"
	apperrors "todoapp/internal/errors"
	"todoapp/internal/model"
	"todoapp/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// Profile is the non-sensitive view of a user.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func profileOf(u *model.User) *Profile {
	return &Profile{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

// UserService exposes profile operations.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) (*Profile, error)
	// Forget drops any cached profile, e.g. after the account is deleted.
	Forget(ctx context.Context, userID uuid.UUID)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var cached Profile
	if s.cache.GetJSON(ctx, s.cacheKey(userID), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	profile := profileOf(user)
	s.cache.SetJSON(ctx, s.cacheKey(userID), profile, userCacheTTL)
	return profile, nil
}

func (s *userService) UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) (*Profile, error) {
	name, err := requireText(displayName, "Display name is required.")
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.DisplayName = &name
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.Forget(ctx, userID)
	return profileOf(user), nil
}

func (s *userService) Forget(ctx context.Context, userID uuid.UUID) {
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
}
