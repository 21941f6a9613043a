package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminder_IsDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		remindAt  time.Time
		dismissed bool
		want      bool
	}{
		{"past and open", now.Add(-time.Hour), false, true},
		{"exactly now", now, false, true},
		{"future", now.Add(time.Minute), false, false},
		{"past but dismissed", now.Add(-time.Hour), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reminder{RemindAt: tt.remindAt, Dismissed: tt.dismissed}
			assert.Equal(t, tt.want, r.IsDue(now))
		})
	}
}

func TestParsePriority(t *testing.T) {
	for _, s := range []string{"low", "medium", "high"} {
		p, ok := ParsePriority(s)
		assert.True(t, ok)
		assert.Equal(t, Priority(s), p)
	}
	for _, s := range []string{"", "urgent", "HIGH"} {
		_, ok := ParsePriority(s)
		assert.False(t, ok, s)
	}
}

func TestTodo_DueChecks(t *testing.T) {
	yesterday, today := "2026-02-28", "2026-03-01"

	open := Todo{DueDate: &yesterday}
	assert.True(t, open.IsOverdue(today))
	assert.False(t, open.IsDueOn(today))

	done := Todo{DueDate: &today, Completed: true}
	assert.False(t, done.IsDueOn(today))
	assert.False(t, done.IsOverdue(today))

	undated := Todo{}
	assert.False(t, undated.IsOverdue(today))

	assert.True(t, ValidDate("2026-02-28"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate("28/02/2026"))
}
