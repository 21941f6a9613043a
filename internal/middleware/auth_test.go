package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/auth"
)

func guardedEcho(jwtService *auth.JWTService) *echo.Echo {
	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		fromCtx, ok := auth.IdentityFrom(c.Request().Context())
		if !ok || fromCtx != id {
			return c.NoContent(http.StatusTeapot)
		}
		return c.JSON(http.StatusOK, id)
	}, JWT(jwtService))
	return e
}

func do(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestJWT_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("secret", time.Hour)
	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID, "a@x.com")
	require.NoError(t, err)

	rec := do(guardedEcho(jwtService), "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var id auth.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &id))
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "a@x.com", id.Email)
}

func TestJWT_Rejections(t *testing.T) {
	jwtService := auth.NewJWTService("secret", time.Hour)
	foreign, err := auth.NewJWTService("other-secret", time.Hour).GenerateToken(uuid.New(), "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing header", header: "", message: msgLoginRequired},
		{name: "wrong scheme", header: "Basic abc", message: msgLoginRequired},
		{name: "garbage token", header: "Bearer not-a-jwt", message: msgTokenInvalid},
		{name: "wrong signature", header: "Bearer " + foreign, message: msgTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(guardedEcho(jwtService), tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.message, message(t, rec))
		})
	}
}
