package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"github.com/yukikurage/task-tracker-api/internal/services"
	"github.com/yukikurage/task-tracker-api/internal/testutil"
)

func TestWatchSummary_PrintsOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateTask(t, db, "Overdue", testutil.WithDueInDays(-1))
	testutil.CreateTask(t, db, "Done", testutil.WithStatus(models.TaskStatusCompleted))

	analytics := services.NewAnalyticsService(repository.NewStore(db), testutil.Clock)

	var buf bytes.Buffer
	require.NoError(t, watchSummary(context.Background(), analytics, 0, &buf))

	var summary dto.SummaryDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, int64(2), summary.Total)
	assert.Equal(t, int64(1), summary.Completed)
	assert.Equal(t, int64(1), summary.Open)
	assert.Equal(t, int64(1), summary.Overdue)
}

func TestWatchSummary_RefreshesUntilCancelled(t *testing.T) {
	db := testutil.NewTestDB(t)
	analytics := services.NewAnalyticsService(repository.NewStore(db), testutil.Clock)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	require.NoError(t, watchSummary(ctx, analytics, 20*time.Millisecond, &buf))

	assert.Greater(t, strings.Count(buf.String(), `"total"`), 1)
}
