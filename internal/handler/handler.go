// Package handler contains the HTTP handlers of the JSON API.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"todoapp/internal/errors"
	"todoapp/internal/middleware"
)

// MessageResponse is the body of operations that return no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, MessageResponse{Message: msg})
}

// respondError converts a service error to an HTTP error. Unexpected errors
// keep the cause as internal so the request logger records it.
func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	he := echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	if httpErr.StatusCode >= http.StatusInternalServerError {
		return he.SetInternal(err)
	}
	return he
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "Invalid request body.",
			Code:    "INVALID_BODY",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}
	return nil
}

// pathID parses a path parameter. An unparsable id cannot name an existing
// record, so it is reported as notFoundMsg.
func pathID(c echo.Context, name, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Message: notFoundMsg,
			Code:    "NOT_FOUND",
		})
	}
	return id, nil
}

// ownerID returns the authenticated caller's user id.
func ownerID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Message: "You must be logged in.",
			Code:    "UNAUTHENTICATED",
		})
	}
	return id.UserID, nil
}
