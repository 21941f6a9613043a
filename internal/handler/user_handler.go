package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapp/internal/service"
)

// UserHandler serves the caller's own profile.
type UserHandler struct {
	users service.UserService
	auth  service.AuthService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(users service.UserService, auth service.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// UpdateProfileRequest sets the display name.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"max=100"`
}

// ChangePasswordRequest replaces the password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// DeleteAccountRequest confirms account deletion.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// GetProfile godoc
// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	profile, err := h.users.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update display name
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} service.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	profile, err := h.users.UpdateDisplayName(c.Request().Context(), uid, req.DisplayName)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ChangePassword godoc
// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.Request().Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Password updated successfully.")
}

// DeleteAccount godoc
// @Summary Delete account
// @Description Permanently removes the account and everything it owns.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteAccountRequest true "Password confirmation"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req DeleteAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.auth.DeleteAccount(ctx, uid, req.Password); err != nil {
		return respondError(err)
	}
	h.users.Forget(ctx, uid)
	return message(c, http.StatusOK, "Account deleted.")
}
