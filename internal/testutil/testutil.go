// Package testutil provides a throwaway store and fixture builders for tests.
package testutil

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/config"
	"github.com/yukikurage/task-tracker-api/internal/database"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// Now is the fixed instant every test clock returns
var Now = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.Local)

// Clock returns Now, for injecting into services
func Clock() time.Time {
	return Now
}

// Today is the civil date of Now
func Today() models.Date {
	return models.DateOf(Now)
}

// NewTestDB opens a migrated in-memory SQLite database that is closed when
// the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: "file::memory:",
	}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// CreateUser inserts a user
func CreateUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email}
	require.NoError(t, db.Create(user).Error)
	return user
}

// TaskOption customizes a fixture task
type TaskOption func(*models.Task)

func WithStatus(status models.TaskStatus) TaskOption {
	return func(task *models.Task) { task.Status = status }
}

func WithPriority(priority models.TaskPriority) TaskOption {
	return func(task *models.Task) { task.Priority = priority }
}

// WithDueInDays sets the due date relative to Today
func WithDueInDays(days int) TaskOption {
	return func(task *models.Task) {
		due := Today().AddDays(days)
		task.DueDate = &due
	}
}

func WithAssignee(user *models.User) TaskOption {
	return func(task *models.Task) { task.AssignedUserID = &user.ID }
}

func WithAssignedTo(name string) TaskOption {
	return func(task *models.Task) { task.AssignedTo = &name }
}

// WithCreatedAt pins the creation time, for ordering assertions
func WithCreatedAt(at time.Time) TaskOption {
	return func(task *models.Task) {
		task.CreatedAt = at
		task.UpdatedAt = at
	}
}

// CreateTask inserts an open, normal-priority task with the given options applied
func CreateTask(t *testing.T, db *gorm.DB, title string, opts ...TaskOption) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:    title,
		Status:   models.TaskStatusOpen,
		Priority: models.TaskPriorityNormal,
	}
	for _, opt := range opts {
		opt(task)
	}
	require.NoError(t, db.Omit("AssignedUser").Create(task).Error)
	return task
}
