package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"todoapp/internal/cache"
	"todoapp/internal/clock"
	"todoapp/internal/model"
	"todoapp/internal/repository"
)

const (
	dashboardCacheTTL = 30 * time.Second
	recentTodoLimit   = 5
)

func dashboardCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s", ownerID)
}

// dashboardEntry is a cached Summary with the day its overdue and due-today
// counts refer to.
type dashboardEntry struct {
	Day     string  `json:"day"`
	Summary Summary `json:"summary"`
}

func (e dashboardEntry) freshOn(today string) bool {
	return e.Day == today
}

// PriorityCount is the number of todos at one priority.
type PriorityCount struct {
	Priority model.Priority `json:"priority"`
	Count    int            `json:"count"`
}

// CategoryCount is the number of todos in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Summary aggregates a user's todos.
type Summary struct {
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	Pending        int             `json:"pending"`
	Overdue        int             `json:"overdue"`
	DueToday       int             `json:"due_today"`
	CompletionRate int             `json:"completion_rate"`
	ByPriority     []PriorityCount `json:"by_priority"`
	ByCategory     []CategoryCount `json:"by_category"`
	Recent         []model.Todo    `json:"recent"`
}

// Summarize computes the dashboard for todos as of today (YYYY-MM-DD).
// Overdue and due-today only count pending todos. Priority groups appear in
// high, medium, low order; categories by name.
func Summarize(todos []model.Todo, today string) Summary {
	sum := Summary{
		ByPriority: []PriorityCount{},
		ByCategory: []CategoryCount{},
		Recent:     []model.Todo{},
	}

	byPriority := map[model.Priority]int{}
	byCategory := map[string]int{}
	for i := range todos {
		t := &todos[i]
		sum.Total++
		if t.Completed {
			sum.Completed++
		} else {
			if t.IsOverdue(today) {
				sum.Overdue++
			}
			if t.IsDueOn(today) {
				sum.DueToday++
			}
		}
		byPriority[t.Priority]++
		byCategory[t.Category]++
	}
	sum.Pending = sum.Total - sum.Completed
	if sum.Total > 0 {
		sum.CompletionRate = int(math.Round(float64(sum.Completed) * 100 / float64(sum.Total)))
	}

	for _, p := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
		if n := byPriority[p]; n > 0 {
			sum.ByPriority = append(sum.ByPriority, PriorityCount{Priority: p, Count: n})
			delete(byPriority, p)
		}
	}
	// legacy rows with values outside the known set
	rest := make([]model.Priority, 0, len(byPriority))
	for p := range byPriority {
		rest = append(rest, p)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, p := range rest {
		sum.ByPriority = append(sum.ByPriority, PriorityCount{Priority: p, Count: byPriority[p]})
	}

	for name, n := range byCategory {
		sum.ByCategory = append(sum.ByCategory, CategoryCount{Category: name, Count: n})
	}
	sort.Slice(sum.ByCategory, func(i, j int) bool {
		return sum.ByCategory[i].Category < sum.ByCategory[j].Category
	})

	recent := make([]model.Todo, len(todos))
	copy(recent, todos)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentTodoLimit {
		recent = recent[:recentTodoLimit]
	}
	sum.Recent = append(sum.Recent, recent...)

	return sum
}

// DashboardService reports aggregate statistics over a user's todos.
type DashboardService interface {
	Summary(ctx context.Context, ownerID uuid.UUID) (*Summary, error)
}

type dashboardService struct {
	todos repository.TodoRepository
	cache *cache.Client
	clock clock.Clock
}

// NewDashboardService creates a new dashboard service. Results are cached
// briefly per owner and dropped on every todo write.
func NewDashboardService(todos repository.TodoRepository, cache *cache.Client, clk clock.Clock) DashboardService {
	return &dashboardService{todos: todos, cache: cache, clock: clk}
}

func (s *dashboardService) Summary(ctx context.Context, ownerID uuid.UUID) (*Summary, error) {
	key := dashboardCacheKey(ownerID)
	today := clock.Today(s.clock)

	var cached dashboardEntry
	if s.cache.GetJSON(ctx, key, &cached) && cached.freshOn(today) {
		return &cached.Summary, nil
	}

	todos, err := s.todos.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	sum := Summarize(todos, today)
	s.cache.SetJSON(ctx, key, dashboardEntry{Day: today, Summary: sum}, dashboardCacheTTL)
	return &sum, nil
}
