package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todoapp/internal/auth"
	apperrors "todoapp/internal/errors"
	"todoapp/internal/model"
	"todoapp/internal/repository"
)

// DefaultBcryptCost is the minimum accepted bcrypt work factor.
const DefaultBcryptCost = 10

const minPasswordLength = 6

const (
	msgCredentialsRequired = "Email and password are required."
	msgPasswordTooShort    = "Password must be at least 6 characters."
	msgNewPasswordTooShort = "New password must be at least 6 characters."
	msgPasswordTooLong     = "Password must be at most 72 bytes."
	msgEmailTaken          = "An account with this email already exists."
	msgBadCredentials      = "Incorrect email or password."
	msgPasswordsRequired   = "Current and new password are required."
	msgWrongCurrent        = "Current password is incorrect."
	msgDeletePassword      = "Password is required to delete your account."
	msgWrongPassword       = "Incorrect password."
	msgUserNotFound        = "User not found."
)

// AuthService handles registration, login and credential management.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	bcryptCost int
}

// NewAuthService creates a new authentication service. bcryptCost below
// DefaultBcryptCost is raised to it.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, bcryptCost int) AuthService {
	if bcryptCost < DefaultBcryptCost {
		bcryptCost = DefaultBcryptCost
	}
	return &authService{
		users:      users,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user with a hashed password. No token is issued.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation(msgCredentialsRequired)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, apperrors.Validation(msgPasswordTooShort)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.Conflict(msgEmailTaken)
	}
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.Conflict(msgEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, apperrors.Validation(msgCredentialsRequired)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return "", nil, apperrors.Unauthenticated(msgBadCredentials)
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.Unauthenticated(msgBadCredentials)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return apperrors.Validation(msgPasswordsRequired)
	}
	if utf8.RuneCountInString(next) < minPasswordLength {
		return apperrors.Validation(msgNewPasswordTooShort)
	}

	user, err := s.verifiedUser(ctx, userID, current, msgWrongCurrent)
	if err != nil {
		return err
	}

	hash, err := s.hash(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// DeleteAccount removes the user and all of their data after verifying the
// password. The removal is atomic.
func (s *authService) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	if password == "" {
		return apperrors.Validation(msgDeletePassword)
	}

	if _, err := s.verifiedUser(ctx, userID, password, msgWrongPassword); err != nil {
		return err
	}

	if err := s.users.DeleteWithOwnedData(ctx, userID); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgUserNotFound)
		}
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (s *authService) verifiedUser(ctx context.Context, userID uuid.UUID, password, mismatchMsg string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthenticated(mismatchMsg)
	}
	return user, nil
}

func (s *authService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.Validation(msgPasswordTooLong)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
