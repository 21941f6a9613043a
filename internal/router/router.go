package router

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todoapp/internal/auth"
	"todoapp/internal/config"
	"todoapp/internal/handler"
	"todoapp/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Todo      *handler.TodoHandler
	Category  *handler.CategoryHandler
	Tag       *handler.TagHandler
	Comment   *handler.CommentHandler
	Reminder  *handler.ReminderHandler
	Dashboard *handler.DashboardHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *slog.Logger,
	jwtService *auth.JWTService,
	h Handlers,
) {
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", middleware.JWT(jwtService))

	secured.GET("/me", h.Auth.Me)

	secured.GET("/todos", h.Todo.List)
	secured.POST("/todos", h.Todo.Create)
	secured.GET("/todos/:id", h.Todo.Get)
	secured.PUT("/todos/:id", h.Todo.Update)
	secured.DELETE("/todos/:id", h.Todo.Delete)

	secured.GET("/categories", h.Category.List)
	secured.POST("/categories", h.Category.Create)
	secured.PUT("/categories/:id", h.Category.Rename)
	secured.DELETE("/categories/:id", h.Category.Delete)

	secured.GET("/tags", h.Tag.List)
	secured.POST("/tags", h.Tag.Create)
	secured.DELETE("/tags/:id", h.Tag.Delete)
	secured.POST("/tags/:id/todos/:todoId", h.Tag.Attach)
	secured.DELETE("/tags/:id/todos/:todoId", h.Tag.Detach)
	secured.GET("/tags/todo/:todoId", h.Tag.ListForTodo)

	secured.GET("/comments/todo/:todoId", h.Comment.ListForTodo)
	secured.POST("/comments/todo/:todoId", h.Comment.Create)
	secured.PUT("/comments/:id", h.Comment.Update)
	secured.DELETE("/comments/:id", h.Comment.Delete)

	secured.GET("/reminders", h.Reminder.List)
	secured.GET("/reminders/due", h.Reminder.Due)
	secured.POST("/reminders", h.Reminder.Create)
	secured.PUT("/reminders/:id", h.Reminder.Update)
	secured.PUT("/reminders/:id/dismiss", h.Reminder.Dismiss)
	secured.DELETE("/reminders/:id", h.Reminder.Delete)

	secured.GET("/dashboard", h.Dashboard.Get)

	secured.GET("/profile", h.User.GetProfile)
	secured.PUT("/profile", h.User.UpdateProfile)
	secured.PUT("/profile/password", h.User.ChangePassword)
	secured.DELETE("/profile", h.User.DeleteAccount)

	// Frontend
	if cfg.PublicDir != "" {
		e.Static("/", cfg.PublicDir)
	}
}
