package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"todoapp/internal/clock"
	apperrors "todoapp/internal/errors"
	"todoapp/internal/model"
	"todoapp/internal/repository"
)

const (
	msgReminderTitleRequired = "Reminder title is required."
	msgRemindAtRequired      = "Reminder date/time is required."
	msgBadRemindAt           = "Reminder date/time is invalid."
	msgReminderNotFound      = "Reminder not found."
)

var remindAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseRemindAt accepts RFC3339 or the local date-time forms browsers send,
// returning the instant in UTC. Forms without an offset are read as UTC.
func ParseRemindAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperrors.Validation(msgRemindAtRequired)
	}
	for _, layout := range remindAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.Validation(msgBadRemindAt)
}

// CreateReminderInput carries the fields of a new reminder. RemindAt is
// parsed with ParseRemindAt.
type CreateReminderInput struct {
	Title    string
	RemindAt string
	TodoID   *uuid.UUID
}

// UpdateReminderInput is a partial update; nil fields are left unchanged.
// The todo link is only touched when SetTodo is true, and a nil TodoID then
// unlinks it.
type UpdateReminderInput struct {
	Title    *string
	RemindAt *string
	SetTodo  bool
	TodoID   *uuid.UUID
}

// ReminderService schedules reminders and reports which are due. A reminder
// is due while it is not dismissed and its instant has passed; reading the
// due set never changes it.
type ReminderService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error)
	GetDue(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error)
	Create(ctx context.Context, ownerID uuid.UUID, in CreateReminderInput) (*model.Reminder, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateReminderInput) (*model.Reminder, error)
	Dismiss(ctx context.Context, ownerID, id uuid.UUID) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type reminderService struct {
	reminders repository.ReminderRepository
	todos     repository.TodoRepository
	clock     clock.Clock
}

// NewReminderService creates a new reminder service.
func NewReminderService(reminders repository.ReminderRepository, todos repository.TodoRepository, clk clock.Clock) ReminderService {
	return &reminderService{reminders: reminders, todos: todos, clock: clk}
}

func (s *reminderService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error) {
	reminders, err := s.reminders.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	if err := s.annotate(ctx, ownerID, reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// GetDue returns the owner's due reminders, earliest first.
func (s *reminderService) GetDue(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error) {
	all, err := s.reminders.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	now := s.clock.Now()
	due := make([]model.Reminder, 0, len(all))
	for i := range all {
		if all[i].IsDue(now) {
			due = append(due, all[i])
		}
	}
	if err := s.annotate(ctx, ownerID, due); err != nil {
		return nil, err
	}
	return due, nil
}

func (s *reminderService) Create(ctx context.Context, ownerID uuid.UUID, in CreateReminderInput) (*model.Reminder, error) {
	title, err := requireText(in.Title, msgReminderTitleRequired)
	if err != nil {
		return nil, err
	}
	remindAt, err := ParseRemindAt(in.RemindAt)
	if err != nil {
		return nil, err
	}

	reminder := &model.Reminder{UserID: ownerID, Title: title, RemindAt: remindAt}
	if err := s.link(ctx, ownerID, reminder, in.TodoID); err != nil {
		return nil, err
	}

	if err := s.reminders.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	return reminder, nil
}

// Update changes the fields present in in and clears the dismissal.
func (s *reminderService) Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateReminderInput) (*model.Reminder, error) {
	reminder, err := findOwned[model.Reminder](ctx, s.reminders, ownerID, id, msgReminderNotFound)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title, err := requireText(*in.Title, msgReminderTitleRequired)
		if err != nil {
			return nil, err
		}
		reminder.Title = title
	}
	if in.RemindAt != nil {
		remindAt, err := ParseRemindAt(*in.RemindAt)
		if err != nil {
			return nil, err
		}
		reminder.RemindAt = remindAt
	}
	if in.SetTodo {
		err = s.link(ctx, ownerID, reminder, in.TodoID)
	} else {
		err = s.link(ctx, ownerID, reminder, reminder.TodoID)
	}
	if err != nil {
		return nil, err
	}
	reminder.Dismissed = false

	if err := s.reminders.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	return reminder, nil
}

// Dismiss marks a reminder as acknowledged. Dismissing twice succeeds.
func (s *reminderService) Dismiss(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := findOwned[model.Reminder](ctx, s.reminders, ownerID, id, msgReminderNotFound); err != nil {
		return err
	}
	if err := s.reminders.MarkDismissed(ctx, ownerID, id); err != nil {
		return fmt.Errorf("dismiss reminder: %w", err)
	}
	return nil
}

func (s *reminderService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.reminders.DeleteOwned(ctx, ownerID, id); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound(msgReminderNotFound)
		}
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

// link points r at todoID, which must be one of the owner's todos, and fills
// TodoText. A nil todoID unlinks.
func (s *reminderService) link(ctx context.Context, ownerID uuid.UUID, r *model.Reminder, todoID *uuid.UUID) error {
	r.TodoID = todoID
	r.TodoText = nil
	if todoID == nil {
		return nil
	}
	todo, err := findOwned[model.Todo](ctx, s.todos, ownerID, *todoID, msgTodoNotFound)
	if err != nil {
		return err
	}
	r.TodoText = &todo.Text
	return nil
}

// annotate fills TodoText on reminders linked to one of the owner's todos.
func (s *reminderService) annotate(ctx context.Context, ownerID uuid.UUID, reminders []model.Reminder) error {
	ids := make([]uuid.UUID, 0, len(reminders))
	seen := make(map[uuid.UUID]bool, len(reminders))
	for _, r := range reminders {
		if r.TodoID != nil && !seen[*r.TodoID] {
			seen[*r.TodoID] = true
			ids = append(ids, *r.TodoID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	todos, err := s.todos.FindByIDs(ctx, ownerID, ids)
	if err != nil {
		return fmt.Errorf("load reminder todos: %w", err)
	}
	texts := make(map[uuid.UUID]string, len(todos))
	for _, t := range todos {
		texts[t.ID] = t.Text
	}
	for i := range reminders {
		if reminders[i].TodoID == nil {
			continue
		}
		if text, ok := texts[*reminders[i].TodoID]; ok {
			reminders[i].TodoText = &text
		}
	}
	return nil
}
