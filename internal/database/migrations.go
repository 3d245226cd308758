package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// taskIndexes backs the listing filters, the sort strategies and the
// analytics counts
var taskIndexes = []struct {
	name    string
	columns string
}{
	{"idx_tasks_status", "status"},
	{"idx_tasks_priority", "priority"},
	{"idx_tasks_due_date", "due_date"},
	{"idx_tasks_assigned_user_id", "assigned_user_id"},
	{"idx_tasks_created_at", "created_at"},
}

// AddIndexes adds the task indexes that do not exist yet
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range taskIndexes {
		if migrator.HasIndex(&models.Task{}, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON tasks (%s)", idx.name, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "columns", idx.columns)
	}

	return nil
}
