package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/clock"
	apperrors "todoapp/internal/errors"
	"todoapp/internal/repository"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

var fixedClock = clock.Fixed(testNow)

func newReminderService(f *fixture, clk clock.Clock) ReminderService {
	return NewReminderService(repository.NewReminderRepository(f.db), f.todos, clk)
}

func TestParseRemindAt(t *testing.T) {
	want := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       string
		want     time.Time
		wantKind error
	}{
		{name: "rfc3339 utc", in: "2026-05-01T09:30:00Z", want: want},
		{name: "rfc3339 offset", in: "2026-05-01T11:30:00+02:00", want: want},
		{name: "datetime-local", in: "2026-05-01T09:30", want: want},
		{name: "datetime-local seconds", in: "2026-05-01T09:30:00", want: want},
		{name: "space separated", in: "2026-05-01 09:30:00", want: want},
		{name: "empty", in: "  ", wantKind: apperrors.ErrValidation},
		{name: "garbage", in: "tomorrow", wantKind: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRemindAt(tt.in)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestReminderService_DueThenDismiss(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	svc := newReminderService(f, fixedClock)

	past, err := svc.Create(ctx, owner, CreateReminderInput{
		Title:    "Call mom",
		RemindAt: testNow.Add(-time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.False(t, past.Dismissed)

	_, err = svc.Create(ctx, owner, CreateReminderInput{
		Title:    "Later",
		RemindAt: testNow.Add(time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	due, err := svc.GetDue(ctx, owner)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, past.ID, due[0].ID)

	require.NoError(t, svc.Dismiss(ctx, owner, past.ID))
	require.NoError(t, svc.Dismiss(ctx, owner, past.ID))

	due, err = svc.GetDue(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, due)

	all, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, past.ID, all[0].ID)
	assert.True(t, all[0].Dismissed)
}

func TestReminderService_GetDueHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	svc := newReminderService(f, fixedClock)

	_, err := svc.Create(ctx, owner, CreateReminderInput{Title: "Stretch", RemindAt: "2026-05-01T11:00"})
	require.NoError(t, err)

	first, err := svc.GetDue(ctx, owner)
	require.NoError(t, err)
	second, err := svc.GetDue(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestReminderService_DueIsSubsetOfFilteredList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	setup := newReminderService(f, fixedClock)

	offsets := []time.Duration{-48 * time.Hour, -time.Hour, 0, time.Minute, 24 * time.Hour}
	for i, off := range offsets {
		r, err := setup.Create(ctx, owner, CreateReminderInput{
			Title:    string(rune('a' + i)),
			RemindAt: testNow.Add(off).Format(time.RFC3339),
		})
		require.NoError(t, err)
		if i == 0 {
			require.NoError(t, setup.Dismiss(ctx, owner, r.ID))
		}
	}

	for _, now := range []time.Time{testNow.Add(-72 * time.Hour), testNow, testNow.Add(time.Minute), testNow.Add(72 * time.Hour)} {
		svc := newReminderService(f, clock.Fixed(now))

		all, err := svc.List(ctx, owner)
		require.NoError(t, err)
		var want []uuid.UUID
		for _, r := range all {
			if !r.Dismissed && !r.RemindAt.After(now) {
				want = append(want, r.ID)
			}
		}

		due, err := svc.GetDue(ctx, owner)
		require.NoError(t, err)
		var got []uuid.UUID
		for i, r := range due {
			got = append(got, r.ID)
			if i > 0 {
				assert.False(t, due[i-1].RemindAt.After(r.RemindAt), "due reminders must be ordered")
			}
		}
		assert.Equal(t, want, got, "now=%s", now)
	}
}

func TestReminderService_UpdateUndismisses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	svc := newReminderService(f, fixedClock)

	r, err := svc.Create(ctx, owner, CreateReminderInput{Title: "Water plants", RemindAt: "2026-05-01T08:00"})
	require.NoError(t, err)
	require.NoError(t, svc.Dismiss(ctx, owner, r.ID))

	updated, err := svc.Update(ctx, owner, r.ID, UpdateReminderInput{Title: strPtr("Water plants again"), RemindAt: strPtr("2026-05-01T10:00")})
	require.NoError(t, err)
	assert.False(t, updated.Dismissed)
	assert.Equal(t, "Water plants again", updated.Title)

	due, err := svc.GetDue(ctx, owner)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, r.ID, due[0].ID)
}

func TestReminderService_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	svc := newReminderService(f, fixedClock)
	todo := f.todo(t, owner, "Buy milk")
	other := f.todo(t, owner, "Buy bread")

	r, err := svc.Create(ctx, owner, CreateReminderInput{Title: "Milk", RemindAt: "2026-05-01T08:00", TodoID: &todo.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Dismiss(ctx, owner, r.ID))

	moved, err := svc.Update(ctx, owner, r.ID, UpdateReminderInput{RemindAt: strPtr("2026-05-01T09:00")})
	require.NoError(t, err)
	assert.Equal(t, "Milk", moved.Title)
	assert.True(t, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC).Equal(moved.RemindAt))
	require.NotNil(t, moved.TodoID)
	assert.Equal(t, todo.ID, *moved.TodoID)
	require.NotNil(t, moved.TodoText)
	assert.Equal(t, "Buy milk", *moved.TodoText)
	assert.False(t, moved.Dismissed)

	renamed, err := svc.Update(ctx, owner, r.ID, UpdateReminderInput{Title: strPtr("Milk!")})
	require.NoError(t, err)
	assert.Equal(t, "Milk!", renamed.Title)
	assert.True(t, moved.RemindAt.Equal(renamed.RemindAt))
	require.NotNil(t, renamed.TodoID)

	relinked, err := svc.Update(ctx, owner, r.ID, UpdateReminderInput{SetTodo: true, TodoID: &other.ID})
	require.NoError(t, err)
	require.NotNil(t, relinked.TodoID)
	assert.Equal(t, other.ID, *relinked.TodoID)
	assert.Equal(t, "Buy bread", *relinked.TodoText)

	unlinked, err := svc.Update(ctx, owner, r.ID, UpdateReminderInput{SetTodo: true})
	require.NoError(t, err)
	assert.Nil(t, unlinked.TodoID)
	assert.Nil(t, unlinked.TodoText)

	stored, err := repository.NewReminderRepository(f.db).FindOwned(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk!", stored.Title)
	assert.Nil(t, stored.TodoID)

	_, err = svc.Update(ctx, owner, r.ID, UpdateReminderInput{Title: strPtr("  ")})
	assertKind(t, err, apperrors.ErrValidation, msgReminderTitleRequired)
	_, err = svc.Update(ctx, owner, r.ID, UpdateReminderInput{RemindAt: strPtr("")})
	assertKind(t, err, apperrors.ErrValidation, msgRemindAtRequired)
}

func TestReminderService_TodoLink(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice@x.com")
	bob := f.user(t, "bob@x.com")
	svc := newReminderService(f, fixedClock)

	todo := f.todo(t, alice, "File taxes")

	r, err := svc.Create(ctx, alice, CreateReminderInput{Title: "Taxes", RemindAt: "2026-05-01T10:00", TodoID: &todo.ID})
	require.NoError(t, err)
	require.NotNil(t, r.TodoText)
	assert.Equal(t, "File taxes", *r.TodoText)

	due, err := svc.GetDue(ctx, alice)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.NotNil(t, due[0].TodoText)
	assert.Equal(t, "File taxes", *due[0].TodoText)

	_, err = svc.Create(ctx, bob, CreateReminderInput{Title: "Snoop", RemindAt: "2026-05-01T10:00", TodoID: &todo.ID})
	assertKind(t, err, apperrors.ErrNotFound, msgTodoNotFound)

	plain, err := svc.Create(ctx, alice, CreateReminderInput{Title: "No link", RemindAt: "2026-05-01T10:30"})
	require.NoError(t, err)
	assert.Nil(t, plain.TodoText)
}

func TestReminderService_Validation(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	svc := newReminderService(f, fixedClock)

	_, err := svc.Create(context.Background(), owner, CreateReminderInput{Title: " ", RemindAt: "2026-05-01T10:00"})
	assertKind(t, err, apperrors.ErrValidation, msgReminderTitleRequired)

	_, err = svc.Create(context.Background(), owner, CreateReminderInput{Title: "x"})
	assertKind(t, err, apperrors.ErrValidation, msgRemindAtRequired)
}

func TestReminderService_OtherOwnersSeeNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice@x.com")
	bob := f.user(t, "bob@x.com")
	svc := newReminderService(f, fixedClock)

	r, err := svc.Create(ctx, alice, CreateReminderInput{Title: "Private", RemindAt: "2026-05-01T10:00"})
	require.NoError(t, err)

	list, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	due, err := svc.GetDue(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, due)

	assertKind(t, svc.Dismiss(ctx, bob, r.ID), apperrors.ErrNotFound, msgReminderNotFound)
	assertKind(t, svc.Delete(ctx, bob, r.ID), apperrors.ErrNotFound, msgReminderNotFound)
	_, err = svc.Update(ctx, bob, r.ID, UpdateReminderInput{Title: strPtr("Mine now")})
	assertKind(t, err, apperrors.ErrNotFound, msgReminderNotFound)

	stored, err := repository.NewReminderRepository(f.db).FindOwned(ctx, alice, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", stored.Title)
	assert.False(t, stored.Dismissed)
	assert.True(t, stored.IsDue(testNow))
}
