package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityNormal, TaskPriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high first.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityHigh:
		return 1
	case TaskPriorityNormal:
		return 2
	case TaskPriorityLow:
		return 3
	}
	return 4
}

type Task struct {
	ID             uint64       `gorm:"primarykey" json:"id"`
	Title          string       `gorm:"type:varchar(255);not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	Status         TaskStatus   `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	Priority       TaskPriority `gorm:"type:varchar(20);not null;default:'normal'" json:"priority"`
	DueDate        *Date        `gorm:"type:date" json:"dueDate"`
	AssignedUserID *uint64      `json:"assignedUserId"`
	AssignedTo     *string      `gorm:"type:varchar(255)" json:"assignedTo"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`

	// Relations
	AssignedUser *User `gorm:"foreignKey:AssignedUserID" json:"assignedUser"`
}
