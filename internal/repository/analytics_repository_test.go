package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/testutil"
)

func TestAnalyticsRepository_CountTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAnalyticsRepository(db)
	ada := testutil.CreateUser(t, db, "Ada", "ada@example.com")
	today := testutil.Today()

	testutil.CreateTask(t, db, "overdue", testutil.WithDueInDays(-1), testutil.WithAssignee(ada))
	testutil.CreateTask(t, db, "due today", testutil.WithDueInDays(0), testutil.WithStatus(models.TaskStatusInProgress))
	testutil.CreateTask(t, db, "done late", testutil.WithDueInDays(-3), testutil.WithStatus(models.TaskStatusCompleted), testutil.WithAssignee(ada))
	testutil.CreateTask(t, db, "undated")

	counts, err := repo.CountTasks(context.Background(), nil, today)
	require.NoError(t, err)
	assert.Equal(t, TaskCounts{Total: 4, Completed: 1, Open: 3, Overdue: 1}, counts)

	counts, err = repo.CountTasks(context.Background(), &ada.ID, today)
	require.NoError(t, err)
	assert.Equal(t, TaskCounts{Total: 2, Completed: 1, Open: 1, Overdue: 1}, counts)
}

func TestAnalyticsRepository_CountTasksEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)

	counts, err := NewAnalyticsRepository(db).CountTasks(context.Background(), nil, testutil.Today())
	require.NoError(t, err)
	assert.Equal(t, TaskCounts{}, counts)
}

func TestAnalyticsRepository_Upcoming(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAnalyticsRepository(db)
	today := testutil.Today()

	testutil.CreateTask(t, db, "yesterday", testutil.WithDueInDays(-1))
	testutil.CreateTask(t, db, "in three", testutil.WithDueInDays(3))
	testutil.CreateTask(t, db, "today", testutil.WithDueInDays(0))
	testutil.CreateTask(t, db, "in seven", testutil.WithDueInDays(7))
	testutil.CreateTask(t, db, "in eight", testutil.WithDueInDays(8))
	testutil.CreateTask(t, db, "done", testutil.WithDueInDays(1), testutil.WithStatus(models.TaskStatusCompleted))

	tasks, err := repo.Upcoming(context.Background(), today, today.AddDays(7), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"today", "in three", "in seven"}, titles(tasks))

	tasks, err = repo.Upcoming(context.Background(), today, today.AddDays(7), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"today", "in three"}, titles(tasks))
}
