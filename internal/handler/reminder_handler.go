package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"todoapp/internal/errors"
	"todoapp/internal/service"
)

const msgReminderNotFound = "Reminder not found."

// ReminderHandler handles reminder endpoints.
type ReminderHandler struct {
	reminders service.ReminderService
}

// NewReminderHandler creates a new reminder handler.
func NewReminderHandler(reminders service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

// CreateReminderRequest schedules a reminder. remind_at is RFC3339 or a
// local "YYYY-MM-DDTHH:MM" value read as UTC.
type CreateReminderRequest struct {
	Title    string  `json:"title" validate:"max=255"`
	RemindAt string  `json:"remind_at"`
	TodoID   *string `json:"todo_id"`
}

func (r CreateReminderRequest) input() (service.CreateReminderInput, error) {
	in := service.CreateReminderInput{Title: r.Title, RemindAt: r.RemindAt}
	id, err := parseTodoRef(r.TodoID)
	if err != nil {
		return in, err
	}
	in.TodoID = id
	return in, nil
}

// UpdateReminderRequest is a partial update; omitted fields are unchanged.
// A todo_id of null or "" unlinks the todo.
type UpdateReminderRequest struct {
	Title    *string    `json:"title" validate:"omitempty,max=255"`
	RemindAt *string    `json:"remind_at"`
	TodoID   optionalID `json:"todo_id" swaggertype:"string"`
}

func (r UpdateReminderRequest) input() (service.UpdateReminderInput, error) {
	in := service.UpdateReminderInput{Title: r.Title, RemindAt: r.RemindAt, SetTodo: r.TodoID.Set}
	if r.TodoID.Set {
		id, err := parseTodoRef(r.TodoID.Value)
		if err != nil {
			return in, err
		}
		in.TodoID = id
	}
	return in, nil
}

// optionalID is a JSON string field that remembers whether it was sent at
// all, so that an absent field differs from an explicit null.
type optionalID struct {
	Set   bool
	Value *string
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// parseTodoRef reads an optional todo reference. An id that cannot be parsed
// names no todo of the caller.
func parseTodoRef(ref *string) (*uuid.UUID, error) {
	if ref == nil || *ref == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*ref)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Message: msgTodoNotFound,
			Code:    "NOT_FOUND",
		})
	}
	return &id, nil
}

// List godoc
// @Summary List reminders
// @Description Earliest first, including dismissed ones.
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reminder
// @Failure 401 {object} errors.ErrorResponse
// @Router /reminders [get]
func (h *ReminderHandler) List(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	reminders, err := h.reminders.List(c.Request().Context(), uid)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reminders)
}

// Due godoc
// @Summary List due reminders
// @Description Reminders whose time has passed and that are not dismissed. Reading does not dismiss them.
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reminder
// @Failure 401 {object} errors.ErrorResponse
// @Router /reminders/due [get]
func (h *ReminderHandler) Due(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	reminders, err := h.reminders.GetDue(c.Request().Context(), uid)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reminders)
}

// Create godoc
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReminderRequest true "Reminder"
// @Success 201 {object} model.Reminder
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reminders [post]
func (h *ReminderHandler) Create(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req CreateReminderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := req.input()
	if err != nil {
		return err
	}
	reminder, err := h.reminders.Create(c.Request().Context(), uid, in)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, reminder)
}

// Update godoc
// @Summary Update a reminder
// @Description Changes the fields sent and clears the dismissal. A null or empty todo_id unlinks the todo.
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param request body UpdateReminderRequest true "Fields to change"
// @Success 200 {object} model.Reminder
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reminders/{id} [put]
func (h *ReminderHandler) Update(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgReminderNotFound)
	if err != nil {
		return err
	}
	var req UpdateReminderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := req.input()
	if err != nil {
		return err
	}
	reminder, err := h.reminders.Update(c.Request().Context(), uid, id, in)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reminder)
}

// Dismiss godoc
// @Summary Dismiss a reminder
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reminders/{id}/dismiss [put]
func (h *ReminderHandler) Dismiss(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgReminderNotFound)
	if err != nil {
		return err
	}
	if err := h.reminders.Dismiss(c.Request().Context(), uid, id); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Reminder dismissed.")
}

// Delete godoc
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) Delete(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", msgReminderNotFound)
	if err != nil {
		return err
	}
	if err := h.reminders.Delete(c.Request().Context(), uid, id); err != nil {
		return respondError(err)
	}
	return message(c, http.StatusOK, "Reminder deleted.")
}
