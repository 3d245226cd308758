package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/middleware"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the tasks matching the query filters in the requested order
func (h *TaskHandler) ListTasks(c *gin.Context) {
	input := services.ListTasksInput{
		Status:         c.Query("status"),
		Priority:       c.Query("priority"),
		AssignedUserID: firstQuery(c, "assignedUserId", "assignedTo", "assigned_to"),
		DueBefore:      c.Query("dueBefore"),
		DueAfter:       c.Query("dueAfter"),
		Sort:           c.Query("sort"),
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, _ := middleware.GetTaskID(c)

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.InvalidBody(c)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies the fields present in the body to an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, _ := middleware.GetTaskID(c)

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.InvalidBody(c)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// AssignTask sets or clears the assignee of a task
func (h *TaskHandler) AssignTask(c *gin.Context) {
	taskID, _ := middleware.GetTaskID(c)

	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.InvalidBody(c)
		return
	}

	task, err := h.taskService.AssignTask(c.Request.Context(), taskID, req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, _ := middleware.GetTaskID(c)

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// firstQuery returns the first non-empty query parameter among keys
func firstQuery(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if value := c.Query(key); value != "" {
			return value
		}
	}
	return ""
}
