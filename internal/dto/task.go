package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

// AssignedUserDTO is the denormalized assignee attached to a task
type AssignedUserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID             uint64              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Status         models.TaskStatus   `json:"status"`
	Priority       models.TaskPriority `json:"priority"`
	DueDate        *models.Date        `json:"dueDate"`
	AssignedTo     *string             `json:"assignedTo"`
	AssignedUserID *uint64             `json:"assignedUserId"`
	AssignedUser   *AssignedUserDTO    `json:"assignedUser"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// FlexibleID accepts an id sent either as a JSON number or a numeric string.
// The text is kept as-is; parsing and range checks happen in the services.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or a numeric string: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

// CreateTaskRequest is the body of a task creation
type CreateTaskRequest struct {
	Title          string                      `json:"title"`
	Description    string                      `json:"description"`
	Status         string                      `json:"status"`
	Priority       string                      `json:"priority"`
	DueDate        models.Nullable[string]     `json:"dueDate"`
	AssignedUserID models.Nullable[FlexibleID] `json:"assignedUserId"`
	AssignedTo     models.Nullable[string]     `json:"assignedTo"`
}

// ToInput converts the request into service input
func (r CreateTaskRequest) ToInput() services.CreateTaskInput {
	return services.CreateTaskInput{
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		DueDate:        r.DueDate.Value,
		AssignedUserID: string(r.AssignedUserID.Value),
		AssignedTo:     r.AssignedTo.Value,
	}
}

// UpdateTaskRequest is the body of a partial task update. Only keys present
// in the document are applied.
type UpdateTaskRequest struct {
	Title          models.Nullable[string]     `json:"title"`
	Description    models.Nullable[string]     `json:"description"`
	Status         *string                     `json:"status"`
	Priority       *string                     `json:"priority"`
	DueDate        models.Nullable[string]     `json:"dueDate"`
	AssignedUserID models.Nullable[FlexibleID] `json:"assignedUserId"`
	AssignedTo     models.Nullable[string]     `json:"assignedTo"`
}

// ToInput converts the request into service input
func (r UpdateTaskRequest) ToInput() services.UpdateTaskInput {
	return services.UpdateTaskInput{
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		DueDate:        r.DueDate,
		AssignedUserID: flexibleToString(r.AssignedUserID),
		AssignedTo:     r.AssignedTo,
	}
}

// AssignTaskRequest is the body of an assignment change
type AssignTaskRequest struct {
	AssignedUserID models.Nullable[FlexibleID] `json:"assignedUserId"`
	Status         *string                     `json:"status"`
}

// ToInput converts the request into service input
func (r AssignTaskRequest) ToInput() services.AssignTaskInput {
	return services.AssignTaskInput{
		AssignedUserID: flexibleToString(r.AssignedUserID),
		Status:         r.Status,
	}
}

func flexibleToString(n models.Nullable[FlexibleID]) models.Nullable[string] {
	return models.Nullable[string]{Set: n.Set, Null: n.Null, Value: string(n.Value)}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		Priority:       task.Priority,
		DueDate:        task.DueDate,
		AssignedTo:     task.AssignedTo,
		AssignedUserID: task.AssignedUserID,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}

	// Include assignee if preloaded
	if task.AssignedUserID != nil && task.AssignedUser != nil {
		dto.AssignedUser = &AssignedUserDTO{
			ID:    task.AssignedUser.ID,
			Name:  task.AssignedUser.Name,
			Email: task.AssignedUser.Email,
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
