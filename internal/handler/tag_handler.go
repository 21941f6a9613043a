package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapp/internal/service"
)

const (
	msgTagNotFound    = "Tag not found."
	msgTagNotAttached = "Tag is not attached to this todo."
)

// TagHandler handles tag endpoints and tag links.
type TagHandler struct {
	tags service.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tags service.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

// List godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Tag
// @Failure 401 {object} errors.ErrorResponse
// @Router /tags [get]
func (h *TagHandler) List(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	tags, err := h.tags.List(c.Request().Context(), uid)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tags)
}

// Create godoc
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NameRequest true "Tag"
// @Success 201 {object} model.Tag
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	tag, err := h.tags.Create(c.Request().Context(), uid, req.Name)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, tag)
}

// Delete godoc
// @Summary Delete a tag
// @Description Also removes the tag from every todo.
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tags/{id} [delete]
func (h *TagHandler) Delete(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgTagNotFound)
	if err != nil {
		return err
	}
	if err := h.tags.Delete(c.Request().Context(), uid, id); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Tag deleted.")
}

// Attach godoc
// @Summary Attach a tag to a todo
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Param todoId path string true "Todo ID"
// @Success 201 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /tags/{id}/todos/{todoId} [post]
func (h *TagHandler) Attach(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	tagID, err := pathID(c, "id", msgTagNotFound)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId", msgTodoNotFound)
	if err != nil {
		return err
	}
	if err := h.tags.Attach(c.Request().Context(), uid, tagID, todoID); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusCreated, "Tag attached.")
}

// Detach godoc
// @Summary Detach a tag from a todo
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Param todoId path string true "Todo ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tags/{id}/todos/{todoId} [delete]
func (h *TagHandler) Detach(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	tagID, err := pathID(c, "id", msgTagNotAttached)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId", msgTagNotAttached)
	if err != nil {
		return err
	}
	if err := h.tags.Detach(c.Request().Context(), uid, tagID, todoID); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Tag detached.")
}

// ListForTodo godoc
// @Summary List the tags of a todo
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param todoId path string true "Todo ID"
// @Success 200 {array} model.Tag
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tags/todo/{todoId} [get]
func (h *TagHandler) ListForTodo(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId", msgTodoNotFound)
	if err != nil {
		return err
	}
	tags, err := h.tags.ListForTodo(c.Request().Context(), uid, todoID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tags)
}
