package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"todoapp/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"todoapp/internal/auth"
	"todoapp/internal/cache"
	"todoapp/internal/clock"
	"todoapp/internal/config"
	"todoapp/internal/db"
	"todoapp/internal/handler"
	"todoapp/internal/logging"
	"todoapp/internal/repository"
	"todoapp/internal/router"
	"todoapp/internal/service"
)

// @title Todo API
// @version 1.0
// @description Personal task manager: todos, categories, tags, comments, reminders and a dashboard, behind JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB set, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	var cacheClient *cache.Client
	if cfg.CacheEnabled {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "todoapp:")
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cacheClient.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable, serving without cache", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		defer cacheClient.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	reminderRepo := repository.NewReminderRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	clk := clock.System{}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, cacheClient)
	todoService := service.NewTodoService(todoRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo, todoRepo)
	commentService := service.NewCommentService(commentRepo, todoRepo)
	reminderService := service.NewReminderService(reminderRepo, todoRepo, clk)
	dashboardService := service.NewDashboardService(todoRepo, cacheClient, clk)

	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, logger, jwtService, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService, authService),
		Todo:      handler.NewTodoHandler(todoService),
		Category:  handler.NewCategoryHandler(categoryService),
		Tag:       handler.NewTagHandler(tagService),
		Comment:   handler.NewCommentHandler(commentService),
		Reminder:  handler.NewReminderHandler(reminderService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "driver", cfg.DBDriver, "swagger", "/swagger/index.html")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
