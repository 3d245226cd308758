package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/task-tracker-api/internal/models"
)

// WithAssignedUser preloads the user a task is assigned to
func WithAssignedUser(db *gorm.DB) *gorm.DB {
	return db.Preload("AssignedUser")
}

// Incomplete restricts a task query to tasks that are not completed
func Incomplete(db *gorm.DB) *gorm.DB {
	return db.Where(clause.Neq{Column: clause.Column{Table: "tasks", Name: "status"}, Value: string(models.TaskStatusCompleted)})
}

// DueBetween restricts a task query to due dates within [from, to]
func DueBetween(from, to models.Date) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column := clause.Column{Table: "tasks", Name: "due_date"}
		return db.Where(clause.Gte{Column: column, Value: from}).
			Where(clause.Lte{Column: column, Value: to})
	}
}

// AssignedTo restricts a task query to one assignee
func AssignedTo(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Table: "tasks", Name: "assigned_user_id"}, Value: userID})
	}
}
