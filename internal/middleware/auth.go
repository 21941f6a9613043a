// Package middleware holds the Echo middleware shared by all routes.
package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"todoapp/internal/auth"
	apperrors "todoapp/internal/errors"
)

const (
	msgLoginRequired = "You must be logged in."
	msgTokenInvalid  = "Token is invalid or expired. Please log in again."
)

// identityContextKey is where the guard stores the verified claims on the
// echo.Context.
const identityContextKey = "identity"

// JWT returns the access guard. Requests must carry
// "Authorization: Bearer <token>"; on success the caller's Identity is
// available through IdentityFrom and auth.IdentityFrom on the request context.
func JWT(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  identityContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			return auth.Identity{UserID: claims.UserID, Email: claims.Email}, nil
		},
		SuccessHandler: func(c echo.Context) {
			id, ok := c.Get(identityContextKey).(auth.Identity)
			if !ok {
				return
			}
			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithIdentity(req.Context(), id)))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := msgLoginRequired
			if errors.Is(err, auth.ErrInvalidToken) {
				msg = msgTokenInvalid
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: msg,
				Code:    "UNAUTHENTICATED",
			})
		},
	})
}

// IdentityFrom returns the caller verified by JWT.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	if id, ok := c.Get(identityContextKey).(auth.Identity); ok {
		return id, true
	}
	return auth.IdentityFrom(c.Request().Context())
}
