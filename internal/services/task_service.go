package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task queries and mutations
type TaskService struct {
	store repository.Store
	clock Clock
}

// NewTaskService creates a new TaskService. A nil clock uses time.Now.
func NewTaskService(store repository.Store, clock Clock) *TaskService {
	return &TaskService{
		store: store,
		clock: clock,
	}
}

// ListTasksInput holds the raw, optional listing criteria. Empty strings
// mean the criterion is not applied.
type ListTasksInput struct {
	Status         string
	Priority       string
	AssignedUserID string
	DueBefore      string
	DueAfter       string
	Sort           string
}

// CreateTaskInput represents input for creating a task. Empty optional
// fields take their defaults.
type CreateTaskInput struct {
	Title          string
	Description    string
	Status         string
	Priority       string
	DueDate        string
	AssignedUserID string
	AssignedTo     string
}

// UpdateTaskInput represents a partial update. Nil pointers and unset
// Nullables are left unchanged; null Nullables clear the field. A null
// title is rejected and a null description becomes empty.
type UpdateTaskInput struct {
	Title          models.Nullable[string]
	Description    models.Nullable[string]
	Status         *string
	Priority       *string
	DueDate        models.Nullable[string]
	AssignedUserID models.Nullable[string]
	AssignedTo     models.Nullable[string]
}

// AssignTaskInput changes only the assignee and status of a task
type AssignTaskInput struct {
	AssignedUserID models.Nullable[string]
	Status         *string
}

// ListTasks returns the tasks matching every supplied criterion
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) ([]models.Task, error) {
	filter, err := buildTaskFilter(input)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks().List(ctx, filter)
	if err != nil {
		return nil, storeError("list tasks", err)
	}
	return tasks, nil
}

// GetTask returns a task with its assigned user
func (s *TaskService) GetTask(ctx context.Context, id uint64) (*models.Task, error) {
	if err := requirePositiveID("id", id); err != nil {
		return nil, err
	}

	task, err := s.store.Tasks().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storeError("find task", err)
	}
	return task, nil
}

// CreateTask validates the input, applies defaults and stores a new task
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, newValidationError("title", "a task title is required")
	}
	if err := validateTaskText(title, strings.TrimSpace(input.AssignedTo)); err != nil {
		return nil, err
	}

	now := s.clock.now()
	task := &models.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      models.TaskStatusOpen,
		Priority:    models.TaskPriorityNormal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if strings.TrimSpace(input.Status) != "" {
		status, err := parseStatus("status", input.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	if strings.TrimSpace(input.Priority) != "" {
		priority, err := parsePriority("priority", input.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = priority
	}
	if strings.TrimSpace(input.DueDate) != "" {
		dueDate, err := parseDate("dueDate", input.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &dueDate
	}
	if strings.TrimSpace(input.AssignedUserID) != "" {
		userID, err := ParseID("assignedUserId", input.AssignedUserID)
		if err != nil {
			return nil, err
		}
		task.AssignedUserID = &userID
	}
	if assignedTo := strings.TrimSpace(input.AssignedTo); assignedTo != "" {
		task.AssignedTo = &assignedTo
	}

	var created *models.Task
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if task.AssignedUserID != nil {
			if err := ensureAssignee(ctx, tx, *task.AssignedUserID); err != nil {
				return err
			}
		}
		if err := tx.Tasks().Create(ctx, task); err != nil {
			return err
		}
		var err error
		created, err = tx.Tasks().FindByID(ctx, task.ID)
		return err
	})
	if err != nil {
		return nil, storeError("create task", err)
	}
	return created, nil
}

// UpdateTask applies a partial update and returns the refreshed task
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input UpdateTaskInput) (*models.Task, error) {
	update, err := buildTaskUpdate(input)
	if err != nil {
		return nil, err
	}
	if err := requirePositiveID("id", id); err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, id, update)
}

// AssignTask sets or clears the assignee and optionally the status
func (s *TaskService) AssignTask(ctx context.Context, id uint64, input AssignTaskInput) (*models.Task, error) {
	return s.UpdateTask(ctx, id, UpdateTaskInput{
		Status:         input.Status,
		AssignedUserID: input.AssignedUserID,
	})
}

// DeleteTask removes a task
func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	if err := requirePositiveID("id", id); err != nil {
		return err
	}

	if err := s.store.Tasks().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return storeError("delete task", err)
	}
	return nil
}

func (s *TaskService) applyUpdate(ctx context.Context, id uint64, update repository.TaskUpdate) (*models.Task, error) {
	update.UpdatedAt = s.clock.now()

	var updated *models.Task
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Tasks().FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		if update.AssignedUserID.Set && !update.AssignedUserID.Null {
			if err := ensureAssignee(ctx, tx, update.AssignedUserID.Value); err != nil {
				return err
			}
		}
		if err := tx.Tasks().Update(ctx, id, update); err != nil {
			return err
		}
		var err error
		updated, err = tx.Tasks().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, storeError("update task", err)
	}
	return updated, nil
}

// ensureAssignee checks that an assigned user id references a stored user
func ensureAssignee(ctx context.Context, tx repository.Store, userID uint64) error {
	if _, err := tx.Users().FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newValidationError("assignedUserId", "does not reference an existing user")
		}
		return err
	}
	return nil
}

func buildTaskFilter(input ListTasksInput) (repository.TaskFilter, error) {
	filter := repository.TaskFilter{Sort: repository.ParseSortKey(input.Sort)}

	if strings.TrimSpace(input.Status) != "" {
		status, err := parseStatus("status", input.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if strings.TrimSpace(input.Priority) != "" {
		priority, err := parsePriority("priority", input.Priority)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}
	if strings.TrimSpace(input.AssignedUserID) != "" {
		userID, err := ParseID("assignedUserId", input.AssignedUserID)
		if err != nil {
			return filter, err
		}
		filter.AssignedUserID = &userID
	}
	if strings.TrimSpace(input.DueBefore) != "" {
		dueBefore, err := parseDate("dueBefore", input.DueBefore)
		if err != nil {
			return filter, err
		}
		filter.DueBefore = &dueBefore
	}
	if strings.TrimSpace(input.DueAfter) != "" {
		dueAfter, err := parseDate("dueAfter", input.DueAfter)
		if err != nil {
			return filter, err
		}
		filter.DueAfter = &dueAfter
	}

	return filter, nil
}

// buildTaskUpdate validates every supplied field before anything is written
func buildTaskUpdate(input UpdateTaskInput) (repository.TaskUpdate, error) {
	var update repository.TaskUpdate
	fields := 0

	if input.Title.Set {
		title := strings.TrimSpace(input.Title.Value)
		if input.Title.Null || title == "" {
			return update, newValidationError("title", "updated title must be a non-empty string")
		}
		if err := validateTaskText(title, ""); err != nil {
			return update, err
		}
		update.Title = &title
		fields++
	}
	if input.Description.Set {
		description := ""
		if !input.Description.Null {
			description = strings.TrimSpace(input.Description.Value)
		}
		update.Description = &description
		fields++
	}
	if input.Status != nil {
		status, err := parseStatus("status", *input.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
		fields++
	}
	if input.Priority != nil {
		priority, err := parsePriority("priority", *input.Priority)
		if err != nil {
			return update, err
		}
		update.Priority = &priority
		fields++
	}
	if input.DueDate.Set {
		if input.DueDate.Null || strings.TrimSpace(input.DueDate.Value) == "" {
			update.DueDate = models.Null[models.Date]()
		} else {
			dueDate, err := parseDate("dueDate", input.DueDate.Value)
			if err != nil {
				return update, err
			}
			update.DueDate = models.NewNullable(dueDate)
		}
		fields++
	}
	if input.AssignedUserID.Set {
		if input.AssignedUserID.Null || strings.TrimSpace(input.AssignedUserID.Value) == "" {
			update.AssignedUserID = models.Null[uint64]()
		} else {
			userID, err := ParseID("assignedUserId", input.AssignedUserID.Value)
			if err != nil {
				return update, err
			}
			update.AssignedUserID = models.NewNullable(userID)
		}
		fields++
	}
	if input.AssignedTo.Set {
		assignedTo := strings.TrimSpace(input.AssignedTo.Value)
		if input.AssignedTo.Null || assignedTo == "" {
			update.AssignedTo = models.Null[string]()
		} else {
			if err := validateTaskText("", assignedTo); err != nil {
				return update, err
			}
			update.AssignedTo = models.NewNullable(assignedTo)
		}
		fields++
	}

	if fields == 0 {
		return update, ErrNothingToUpdate
	}
	return update, nil
}
