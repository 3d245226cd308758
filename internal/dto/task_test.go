package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/models"
)

func TestFlexibleID(t *testing.T) {
	var req AssignTaskRequest

	require.NoError(t, json.Unmarshal([]byte(`{"assignedUserId":7}`), &req))
	assert.Equal(t, "7", req.ToInput().AssignedUserID.Value)

	req = AssignTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"assignedUserId":"12"}`), &req))
	assert.Equal(t, "12", req.ToInput().AssignedUserID.Value)

	req = AssignTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"assignedUserId":null}`), &req))
	input := req.ToInput()
	assert.True(t, input.AssignedUserID.Set)
	assert.True(t, input.AssignedUserID.Null)

	req = AssignTaskRequest{}
	assert.Error(t, json.Unmarshal([]byte(`{"assignedUserId":true}`), &req))
}

func TestUpdateTaskRequest_OnlyPresentKeys(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","dueDate":null}`), &req))

	input := req.ToInput()
	assert.True(t, input.Title.Set)
	assert.Equal(t, "New", input.Title.Value)
	assert.False(t, input.Description.Set)
	assert.Nil(t, input.Status)
	assert.True(t, input.DueDate.Set)
	assert.True(t, input.DueDate.Null)
	assert.False(t, input.AssignedUserID.Set)
	assert.False(t, input.AssignedTo.Set)
}

func TestUpdateTaskRequest_NullTextFields(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":null,"description":null}`), &req))

	input := req.ToInput()
	assert.True(t, input.Title.Set)
	assert.True(t, input.Title.Null)
	assert.True(t, input.Description.Set)
	assert.True(t, input.Description.Null)
}

func TestToTaskDTO(t *testing.T) {
	due := models.Date{Year: 2025, Month: time.March, Day: 12}
	userID := uint64(3)
	created := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)

	task := models.Task{
		ID:             9,
		Title:          "Ship",
		Status:         models.TaskStatusInProgress,
		Priority:       models.TaskPriorityHigh,
		DueDate:        &due,
		AssignedUserID: &userID,
		CreatedAt:      created,
		UpdatedAt:      created,
		AssignedUser:   &models.User{ID: 3, Name: "Ada", Email: "ada@example.com"},
	}

	data, err := json.Marshal(ToTaskDTO(task))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 9,
		"title": "Ship",
		"description": "",
		"status": "in_progress",
		"priority": "high",
		"dueDate": "2025-03-12",
		"assignedTo": null,
		"assignedUserId": 3,
		"assignedUser": {"id": 3, "name": "Ada", "email": "ada@example.com"},
		"createdAt": "2025-03-01T08:00:00Z",
		"updatedAt": "2025-03-01T08:00:00Z"
	}`, string(data))

	task.AssignedUserID = nil
	assert.Nil(t, ToTaskDTO(task).AssignedUser)
}
