package services

import (
	"context"
	"errors"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

const (
	// UpcomingWindowDays is how far ahead, inclusive, a due date counts as upcoming
	UpcomingWindowDays = 7
	// UpcomingLimit caps the upcoming list of the summary
	UpcomingLimit = 10
)

// AnalyticsService computes derived task statistics from the current store state
type AnalyticsService struct {
	store repository.Store
	clock Clock
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(store repository.Store, clock Clock) *AnalyticsService {
	return &AnalyticsService{
		store: store,
		clock: clock,
	}
}

// Summary holds the global task counters and the upcoming deadlines
type Summary struct {
	Total     int64
	Completed int64
	Open      int64
	Overdue   int64
	Upcoming  []models.Task
}

// UserStats holds the workload counters of one user
type UserStats struct {
	User      models.User
	Assigned  int64
	Completed int64
	Overdue   int64
}

// Summary counts all tasks and lists incomplete tasks due in the next week.
// Both reads run in one transaction.
func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	today := s.clock.today()
	summary := &Summary{}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		counts, err := tx.Analytics().CountTasks(ctx, nil, today)
		if err != nil {
			return storeError("count tasks", err)
		}

		upcoming, err := tx.Analytics().Upcoming(ctx, today, today.AddDays(UpcomingWindowDays), UpcomingLimit)
		if err != nil {
			return storeError("list upcoming tasks", err)
		}

		summary.Total = counts.Total
		summary.Completed = counts.Completed
		summary.Open = counts.Open
		summary.Overdue = counts.Overdue
		summary.Upcoming = upcoming
		return nil
	})
	if err != nil {
		return nil, storeError("summary", err)
	}
	return summary, nil
}

// UserStats computes the counters of the tasks assigned to one user. The
// user lookup and the counts run in one transaction.
func (s *AnalyticsService) UserStats(ctx context.Context, userID uint64) (*UserStats, error) {
	if err := requirePositiveID("id", userID); err != nil {
		return nil, err
	}
	today := s.clock.today()
	stats := &UserStats{}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		user, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return storeError("find user", err)
		}

		counts, err := tx.Analytics().CountTasks(ctx, &userID, today)
		if err != nil {
			return storeError("count user tasks", err)
		}

		stats.User = *user
		stats.Assigned = counts.Total
		stats.Completed = counts.Completed
		stats.Overdue = counts.Overdue
		return nil
	})
	if err != nil {
		return nil, storeError("user stats", err)
	}
	return stats, nil
}

// UserStatsByID parses a caller-supplied user id, then computes its stats
func (s *AnalyticsService) UserStatsByID(ctx context.Context, rawID string) (*UserStats, error) {
	userID, err := ParseID("id", rawID)
	if err != nil {
		return nil, err
	}
	return s.UserStats(ctx, userID)
}
