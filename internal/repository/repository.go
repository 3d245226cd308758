package repository

import (
	"context"
	"time"

	"github.com/yukikurage/task-tracker-api/internal/models"
)

// Store groups the repositories that share one database handle. Every
// repository obtained from the Store passed to Transaction runs inside that
// transaction.
type Store interface {
	Tasks() TaskRepository
	Users() UserRepository
	Analytics() AnalyticsRepository

	// Transaction runs fn in a database transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List retrieves tasks matching every predicate of the filter, ordered by its sort key
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// FindByID finds a task by ID with its assigned user preloaded
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// Update writes only the fields present in update
	Update(ctx context.Context, id uint64, update TaskUpdate) error

	// Delete removes a task. Returns gorm.ErrRecordNotFound when nothing was deleted.
	Delete(ctx context.Context, id uint64) error
}

// TaskUpdate holds a partial task update. Nil pointers and unset Nullables
// leave the column unchanged; a null Nullable clears it.
type TaskUpdate struct {
	Title          *string
	Description    *string
	Status         *models.TaskStatus
	Priority       *models.TaskPriority
	DueDate        models.Nullable[models.Date]
	AssignedUserID models.Nullable[uint64]
	AssignedTo     models.Nullable[string]
	UpdatedAt      time.Time
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns all users ordered by name
	List(ctx context.Context) ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// UpsertByEmail inserts the user or, when the email already exists,
	// replaces the stored name. user is refreshed from the stored row.
	UpsertByEmail(ctx context.Context, user *models.User) error
}

// AnalyticsRepository defines the read-only aggregate queries
type AnalyticsRepository interface {
	// CountTasks computes task counters, optionally scoped to one assignee.
	// Overdue means incomplete with a due date before today.
	CountTasks(ctx context.Context, assignedUserID *uint64, today models.Date) (TaskCounts, error)

	// Upcoming lists incomplete tasks due within [from, to], earliest first
	Upcoming(ctx context.Context, from, to models.Date, limit int) ([]models.Task, error)
}

// TaskCounts holds aggregate task counters
type TaskCounts struct {
	Total     int64
	Completed int64
	Open      int64
	Overdue   int64
}
