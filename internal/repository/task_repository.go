package repository

import (
	"context"

	"github.com/yukikurage/task-tracker-api/internal/database"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List retrieves tasks with filtering and ordering
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}

	query := r.db.WithContext(ctx).Model(&models.Task{}).Scopes(database.WithAssignedUser)
	query = filter.Apply(query)
	query = filter.Sort.Apply(query)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Scopes(database.WithAssignedUser).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit("AssignedUser").Create(task).Error
}

// Update applies a partial update
func (r *GormTaskRepository) Update(ctx context.Context, id uint64, update TaskUpdate) error {
	return r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", id).
		Updates(update.columns()).Error
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (u TaskUpdate) columns() map[string]any {
	cols := map[string]any{"updated_at": u.UpdatedAt}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.Status != nil {
		cols["status"] = string(*u.Status)
	}
	if u.Priority != nil {
		cols["priority"] = string(*u.Priority)
	}
	if u.DueDate.Set {
		if u.DueDate.Null {
			cols["due_date"] = nil
		} else {
			cols["due_date"] = u.DueDate.Value
		}
	}
	if u.AssignedUserID.Set {
		if u.AssignedUserID.Null {
			cols["assigned_user_id"] = nil
		} else {
			cols["assigned_user_id"] = u.AssignedUserID.Value
		}
	}
	if u.AssignedTo.Set {
		if u.AssignedTo.Null {
			cols["assigned_to"] = nil
		} else {
			cols["assigned_to"] = u.AssignedTo.Value
		}
	}
	return cols
}
