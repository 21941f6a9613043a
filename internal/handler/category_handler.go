package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapp/internal/service"
)

const msgCategoryNotFound = "Category not found."

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// NameRequest carries the name of a category or tag.
type NameRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Category
// @Failure 401 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	categories, err := h.categories.List(c.Request().Context(), uid)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NameRequest true "Category"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Create(c.Request().Context(), uid, req.Name)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// Rename godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body NameRequest true "New name"
// @Success 200 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Rename(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgCategoryNotFound)
	if err != nil {
		return err
	}
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Rename(c.Request().Context(), uid, id, req.Name)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgCategoryNotFound)
	if err != nil {
		return err
	}
	if err := h.categories.Delete(c.Request().Context(), uid, id); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Category deleted.")
}
