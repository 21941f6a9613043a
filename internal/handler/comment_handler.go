package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapp/internal/service"
)

const msgCommentNotFound = "Comment not found."

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	comments service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentRequest carries the text of a comment.
type CommentRequest struct {
	Text string `json:"text" validate:"max=5000"`
}

// ListForTodo godoc
// @Summary List comments on a todo
// @Description Newest first.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param todoId path string true "Todo ID"
// @Success 200 {array} model.Comment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/todo/{todoId} [get]
func (h *CommentHandler) ListForTodo(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId", msgTodoNotFound)
	if err != nil {
		return err
	}
	comments, err := h.comments.ListForTodo(c.Request().Context(), uid, todoID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Create godoc
// @Summary Comment on a todo
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param todoId path string true "Todo ID"
// @Param request body CommentRequest true "Comment"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/todo/{todoId} [post]
func (h *CommentHandler) Create(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId", msgTodoNotFound)
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	comment, err := h.comments.Create(c.Request().Context(), uid, todoID, req.Text)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// Update godoc
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body CommentRequest true "Comment"
// @Success 200 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgCommentNotFound)
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	comment, err := h.comments.Update(c.Request().Context(), uid, id, req.Text)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgCommentNotFound)
	if err != nil {
		return err
	}
	if err := h.comments.Delete(c.Request().Context(), uid, id); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Comment deleted.")
}
