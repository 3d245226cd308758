package repository

import (
	"context"

	"github.com/yukikurage/task-tracker-api/internal/database"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormAnalyticsRepository is a GORM implementation of AnalyticsRepository
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

const taskCountsSelect = `COUNT(*) AS total,
	COALESCE(SUM(CASE WHEN tasks.status = ? THEN 1 ELSE 0 END), 0) AS completed,
	COALESCE(SUM(CASE WHEN tasks.status <> ? THEN 1 ELSE 0 END), 0) AS open,
	COALESCE(SUM(CASE WHEN tasks.status <> ? AND tasks.due_date IS NOT NULL AND tasks.due_date < ? THEN 1 ELSE 0 END), 0) AS overdue`

// CountTasks computes the task counters in a single aggregate query
func (r *GormAnalyticsRepository) CountTasks(ctx context.Context, assignedUserID *uint64, today models.Date) (TaskCounts, error) {
	var counts TaskCounts

	completed := string(models.TaskStatusCompleted)
	query := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select(taskCountsSelect, completed, completed, completed, today)
	if assignedUserID != nil {
		query = query.Scopes(database.AssignedTo(*assignedUserID))
	}

	if err := query.Scan(&counts).Error; err != nil {
		return TaskCounts{}, err
	}
	return counts, nil
}

// Upcoming lists incomplete tasks due within [from, to]
func (r *GormAnalyticsRepository) Upcoming(ctx context.Context, from, to models.Date, limit int) ([]models.Task, error) {
	tasks := []models.Task{}

	query := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Scopes(database.WithAssignedUser, database.Incomplete, database.DueBetween(from, to)).
		Order("tasks.due_date ASC").
		Order("tasks.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
