package repository

import (
	"fmt"
	"strings"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SortKey selects the ordering strategy of a task listing
type SortKey string

const (
	SortByDueDate  SortKey = "due_date"
	SortByPriority SortKey = "priority"
	SortByUser     SortKey = "user"
)

// ParseSortKey maps a caller-supplied key to a strategy. Unknown or empty
// keys fall back to the due date ordering.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortByPriority:
		return SortByPriority
	case SortByUser:
		return SortByUser
	default:
		return SortByDueDate
	}
}

// dueDateOrder puts dated tasks first by ascending due date, newest first on ties.
var dueDateOrder = []string{
	"CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END",
	"tasks.due_date ASC",
	"tasks.created_at DESC",
	"tasks.id DESC",
}

var priorityRankOrder = fmt.Sprintf(
	"CASE tasks.priority WHEN '%s' THEN %d WHEN '%s' THEN %d WHEN '%s' THEN %d ELSE 4 END",
	models.TaskPriorityHigh, models.TaskPriorityHigh.Rank(),
	models.TaskPriorityNormal, models.TaskPriorityNormal.Rank(),
	models.TaskPriorityLow, models.TaskPriorityLow.Rank(),
)

var orderStrategies = map[SortKey][]string{
	SortByDueDate:  dueDateOrder,
	SortByPriority: append([]string{priorityRankOrder}, dueDateOrder...),
	SortByUser: append([]string{
		"CASE WHEN users.name IS NULL THEN 1 ELSE 0 END",
		"users.name ASC",
	}, dueDateOrder...),
}

// OrderTerms returns the ORDER BY terms of the strategy, most significant first.
func (k SortKey) OrderTerms() []string {
	terms, ok := orderStrategies[k]
	if !ok {
		terms = orderStrategies[SortByDueDate]
	}
	return terms
}

// Apply adds the joins and ordering the strategy needs.
func (k SortKey) Apply(db *gorm.DB) *gorm.DB {
	if k == SortByUser {
		db = db.Joins("LEFT JOIN users ON users.id = tasks.assigned_user_id")
	}
	return db.Order(strings.Join(k.OrderTerms(), ", "))
}

// TaskFilter holds filtering options for listing tasks. Nil fields are not applied.
type TaskFilter struct {
	Status         *models.TaskStatus
	Priority       *models.TaskPriority
	AssignedUserID *uint64
	DueBefore      *models.Date
	DueAfter       *models.Date
	Sort           SortKey
}

func taskColumn(name string) clause.Column {
	return clause.Column{Table: "tasks", Name: name}
}

// Predicates returns the filter as an ordered list of parameterized
// conditions. The listing matches their conjunction.
func (f TaskFilter) Predicates() []clause.Expression {
	var preds []clause.Expression
	if f.Status != nil {
		preds = append(preds, clause.Eq{Column: taskColumn("status"), Value: string(*f.Status)})
	}
	if f.Priority != nil {
		preds = append(preds, clause.Eq{Column: taskColumn("priority"), Value: string(*f.Priority)})
	}
	if f.AssignedUserID != nil {
		preds = append(preds, clause.Eq{Column: taskColumn("assigned_user_id"), Value: *f.AssignedUserID})
	}
	if f.DueBefore != nil {
		preds = append(preds, clause.Lte{Column: taskColumn("due_date"), Value: *f.DueBefore})
	}
	if f.DueAfter != nil {
		preds = append(preds, clause.Gte{Column: taskColumn("due_date"), Value: *f.DueAfter})
	}
	return preds
}

// Apply adds the filter's predicates to db.
func (f TaskFilter) Apply(db *gorm.DB) *gorm.DB {
	preds := f.Predicates()
	if len(preds) == 0 {
		return db
	}
	return db.Clauses(clause.Where{Exprs: preds})
}
