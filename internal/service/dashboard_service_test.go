package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/cache"
	"todoapp/internal/clock"
	"todoapp/internal/model"
)

func TestSummarize_CompletionRate(t *testing.T) {
	tests := []struct {
		completed, total int
		want             int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{5, 5, 100},
	}

	for _, tt := range tests {
		todos := make([]model.Todo, tt.total)
		for i := range todos {
			todos[i] = model.Todo{Text: "t", Priority: model.PriorityMedium, Category: model.DefaultCategory, Completed: i < tt.completed}
		}
		sum := Summarize(todos, "2026-05-01")
		assert.Equal(t, tt.want, sum.CompletionRate, "completed=%d total=%d", tt.completed, tt.total)
		assert.Equal(t, tt.total-tt.completed, sum.Pending)
	}
}

func TestSummarize_EmptyHasNoNilSlices(t *testing.T) {
	sum := Summarize(nil, "2026-05-01")
	assert.Zero(t, sum.Total)
	assert.NotNil(t, sum.ByPriority)
	assert.NotNil(t, sum.ByCategory)
	assert.NotNil(t, sum.Recent)
}

func TestSummarize_Counts(t *testing.T) {
	today := "2026-05-01"
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	due := func(s string) *string { return &s }

	todos := []model.Todo{
		{Text: "overdue", Priority: model.PriorityHigh, Category: "Work", DueDate: due("2026-04-30")},
		{Text: "today", Priority: model.PriorityHigh, Category: "Work", DueDate: due(today)},
		{Text: "done late", Priority: model.PriorityLow, Category: "Home", DueDate: due("2026-04-01"), Completed: true},
		{Text: "done today", Priority: model.PriorityMedium, Category: "Home", DueDate: due(today), Completed: true},
		{Text: "future", Priority: model.PriorityMedium, Category: "General", DueDate: due("2026-06-01")},
		{Text: "no date", Priority: model.PriorityLow, Category: "Work"},
	}
	for i := range todos {
		todos[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}

	sum := Summarize(todos, today)

	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 2, sum.Completed)
	assert.Equal(t, 4, sum.Pending)
	assert.Equal(t, 1, sum.Overdue)
	assert.Equal(t, 1, sum.DueToday)
	assert.Equal(t, 33, sum.CompletionRate)

	assert.Equal(t, []PriorityCount{
		{Priority: model.PriorityHigh, Count: 2},
		{Priority: model.PriorityMedium, Count: 2},
		{Priority: model.PriorityLow, Count: 2},
	}, sum.ByPriority)
	assert.Equal(t, []CategoryCount{
		{Category: "General", Count: 1},
		{Category: "Home", Count: 2},
		{Category: "Work", Count: 3},
	}, sum.ByCategory)

	require.Len(t, sum.Recent, 5)
	assert.Equal(t, "no date", sum.Recent[0].Text)
	assert.Equal(t, "today", sum.Recent[4].Text)
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice@x.com")
	bob := f.user(t, "bob@x.com")
	todos := NewTodoService(f.todos, nil)

	yesterday := "2026-04-30"
	_, err := todos.Create(ctx, alice, CreateTodoInput{Text: "late", Priority: "high", DueDate: &yesterday})
	require.NoError(t, err)
	done, err := todos.Create(ctx, alice, CreateTodoInput{Text: "done"})
	require.NoError(t, err)
	_, err = todos.Update(ctx, alice, done.ID, UpdateTodoInput{Completed: boolPtr(true)})
	require.NoError(t, err)
	f.todo(t, bob, "not alice's")

	svc := NewDashboardService(f.todos, nil, clock.Fixed(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)))
	sum, err := svc.Summary(ctx, alice)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 1, sum.Overdue)
	assert.Equal(t, 50, sum.CompletionRate)
	assert.Len(t, sum.Recent, 2)

	empty, err := NewDashboardService(f.todos, nil, fixedClock).Summary(ctx, f.user(t, "new@x.com"))
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.CompletionRate)
}

type steppingClock struct{ now time.Time }

func (c *steppingClock) Now() time.Time { return c.now }

func TestDashboardEntry_FreshOnlyOnItsDay(t *testing.T) {
	e := dashboardEntry{Day: "2026-05-01"}
	assert.True(t, e.freshOn("2026-05-01"))
	assert.False(t, e.freshOn("2026-05-02"))
	assert.False(t, dashboardEntry{}.freshOn("2026-05-01"))
}

func TestDashboardService_CacheRollsOverAtMidnight(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	c := cache.New(addr, "", 0, "test:"+uuid.NewString()+":")
	defer c.Close()
	if err := c.Ping(ctx); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	tomorrow := "2026-05-02"
	_, err := NewTodoService(f.todos, c).Create(ctx, owner, CreateTodoInput{Text: "pay rent", DueDate: &tomorrow})
	require.NoError(t, err)

	clk := &steppingClock{now: time.Date(2026, 5, 1, 23, 59, 50, 0, time.UTC)}
	svc := NewDashboardService(f.todos, c, clk)

	before, err := svc.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, before.DueToday)

	clk.now = clk.now.Add(20 * time.Second)
	after, err := svc.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, after.DueToday)
}
