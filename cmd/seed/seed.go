package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoapp/internal/auth"
	"todoapp/internal/clock"
	apperrors "todoapp/internal/errors"
	"todoapp/internal/repository"
	"todoapp/internal/service"
)

type seedOptions struct {
	Email    string
	Password string
	Replace  bool
}

type seedStats struct {
	Todos      int
	Categories int
	Tags       int
	Comments   int
	Reminders  int
}

type sampleTodo struct {
	text     string
	priority string
	category string
	dueIn    int // days from today; 0 means no due date
	done     bool
	tags     []string
	comment  string
}

var sampleTodos = []sampleTodo{
	{text: "Buy milk", category: "Errands", dueIn: 1, tags: []string{"groceries"}},
	{text: "Finish quarterly report", priority: "high", category: "Work", dueIn: -2, tags: []string{"urgent"}, comment: "Numbers from finance are in the shared folder."},
	{text: "Book dentist appointment", priority: "low", category: "Health"},
	{text: "Renew passport", priority: "high", category: "Errands", dueIn: 14, tags: []string{"urgent"}},
	{text: "Read chapter 4", category: "Personal", done: true},
	{text: "Plan team offsite", category: "Work", dueIn: 7, comment: "Ask for budget first."},
}

// seed creates the demo account and its data through the services, so the
// same validation and ownership rules apply as for API clients.
func seed(ctx context.Context, gormDB *gorm.DB, bcryptCost int, o seedOptions) (seedStats, error) {
	var stats seedStats

	users := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)
	authService := service.NewAuthService(users, auth.NewJWTService("seed", 0), bcryptCost)

	if o.Replace {
		existing, err := users.FindByEmail(ctx, o.Email)
		switch {
		case err == nil:
			if err := users.DeleteWithOwnedData(ctx, existing.ID); err != nil {
				return stats, fmt.Errorf("remove existing account: %w", err)
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return stats, fmt.Errorf("look up existing account: %w", err)
		}
	}

	user, err := authService.Register(ctx, o.Email, o.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return stats, fmt.Errorf("%s already exists, rerun with --replace", o.Email)
		}
		return stats, err
	}
	owner := user.ID

	clk := clock.System{}
	todos := service.NewTodoService(todoRepo, nil)
	categories := service.NewCategoryService(repository.NewCategoryRepository(gormDB))
	tags := service.NewTagService(repository.NewTagRepository(gormDB), todoRepo)
	comments := service.NewCommentService(repository.NewCommentRepository(gormDB), todoRepo)
	reminders := service.NewReminderService(repository.NewReminderRepository(gormDB), todoRepo, clk)

	for _, name := range []string{"Errands", "Health", "Personal", "Work"} {
		if _, err := categories.Create(ctx, owner, name); err != nil {
			return stats, fmt.Errorf("create category %q: %w", name, err)
		}
		stats.Categories++
	}

	tagIDs := map[string]uuid.UUID{}
	for _, name := range []string{"groceries", "urgent"} {
		tag, err := tags.Create(ctx, owner, name)
		if err != nil {
			return stats, fmt.Errorf("create tag %q: %w", name, err)
		}
		tagIDs[name] = tag.ID
		stats.Tags++
	}

	today := clk.Now()
	for _, s := range sampleTodos {
		in := service.CreateTodoInput{Text: s.text, Priority: s.priority, Category: s.category}
		if s.dueIn != 0 {
			due := today.AddDate(0, 0, s.dueIn).Format("2006-01-02")
			in.DueDate = &due
		}
		todo, err := todos.Create(ctx, owner, in)
		if err != nil {
			return stats, fmt.Errorf("create todo %q: %w", s.text, err)
		}
		stats.Todos++

		if s.done {
			done := true
			if _, err := todos.Update(ctx, owner, todo.ID, service.UpdateTodoInput{Completed: &done}); err != nil {
				return stats, fmt.Errorf("complete todo %q: %w", s.text, err)
			}
		}
		for _, name := range s.tags {
			if err := tags.Attach(ctx, owner, tagIDs[name], todo.ID); err != nil {
				return stats, fmt.Errorf("tag todo %q: %w", s.text, err)
			}
		}
		if s.comment != "" {
			if _, err := comments.Create(ctx, owner, todo.ID, s.comment); err != nil {
				return stats, fmt.Errorf("comment on %q: %w", s.text, err)
			}
			stats.Comments++
		}
		if s.priority == "high" && s.dueIn > 0 {
			at := today.Add(time.Hour).Format(time.RFC3339)
			if _, err := reminders.Create(ctx, owner, service.CreateReminderInput{Title: "Don't forget: " + s.text, RemindAt: at, TodoID: &todo.ID}); err != nil {
				return stats, fmt.Errorf("remind about %q: %w", s.text, err)
			}
			stats.Reminders++
		}
	}

	at := today.Add(-10 * time.Minute).Format(time.RFC3339)
	if _, err := reminders.Create(ctx, owner, service.CreateReminderInput{Title: "Stand up and stretch", RemindAt: at}); err != nil {
		return stats, fmt.Errorf("create reminder: %w", err)
	}
	stats.Reminders++

	return stats, nil
}
