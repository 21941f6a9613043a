package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapp/internal/service"
)

const msgTodoNotFound = "Todo not found."

// TodoHandler handles todo endpoints.
type TodoHandler struct {
	todos service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todos service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// CreateTodoRequest represents a new todo.
type CreateTodoRequest struct {
	Text     string  `json:"text" validate:"max=5000"`
	DueDate  *string `json:"due_date"`
	Priority string  `json:"priority"`
	Category string  `json:"category" validate:"max=100"`
}

// UpdateTodoRequest is a partial update; omitted fields are unchanged and an
// empty due_date clears it.
type UpdateTodoRequest struct {
	Text      *string `json:"text" validate:"omitempty,max=5000"`
	DueDate   *string `json:"due_date"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
}

// List godoc
// @Summary List todos
// @Description Newest first.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	todos, err := h.todos.List(c.Request().Context(), uid)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Get godoc
// @Summary Get a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgTodoNotFound)
	if err != nil {
		return err
	}
	todo, err := h.todos.Get(c.Request().Context(), uid, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTodoRequest true "Todo"
// @Success 201 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req CreateTodoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	todo, err := h.todos.Create(c.Request().Context(), uid, service.CreateTodoInput{
		Text:     req.Text,
		DueDate:  req.DueDate,
		Priority: req.Priority,
		Category: req.Category,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// Update godoc
// @Summary Update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to change"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgTodoNotFound)
	if err != nil {
		return err
	}
	var req UpdateTodoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	todo, err := h.todos.Update(c.Request().Context(), uid, id, service.UpdateTodoInput{
		Text:      req.Text,
		DueDate:   req.DueDate,
		Completed: req.Completed,
		Priority:  req.Priority,
		Category:  req.Category,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Description Also removes its comments and tag links; linked reminders are kept.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgTodoNotFound)
	if err != nil {
		return err
	}
	if err := h.todos.Delete(c.Request().Context(), uid, id); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Todo deleted.")
}
