package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/testutil"
)

// AnalyticsHandlerTestSuite serves requests through the full router
type AnalyticsHandlerTestSuite struct {
	apiTestSuite
}

func (suite *AnalyticsHandlerTestSuite) TestSummary() {
	testutil.CreateTask(suite.T(), suite.db, "late", testutil.WithDueInDays(-1))
	testutil.CreateTask(suite.T(), suite.db, "soon", testutil.WithDueInDays(2))
	testutil.CreateTask(suite.T(), suite.db, "done", testutil.WithStatus(models.TaskStatusCompleted))

	w := suite.request(http.MethodGet, "/api/analytics/summary", nil)
	suite.Equal(http.StatusOK, w.Code)

	var summary dto.SummaryDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	suite.Equal(int64(3), summary.Total)
	suite.Equal(int64(1), summary.Completed)
	suite.Equal(int64(2), summary.Open)
	suite.Equal(int64(1), summary.Overdue)
	suite.Require().Len(summary.Upcoming, 1)
	suite.Equal("soon", summary.Upcoming[0].Title)
}

func (suite *AnalyticsHandlerTestSuite) TestSummary_EmptyUpcomingIsArray() {
	w := suite.request(http.MethodGet, "/api/analytics/summary", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"total":0,"completed":0,"open":0,"overdue":0,"upcoming":[]}`, w.Body.String())
}

func (suite *AnalyticsHandlerTestSuite) TestUserStats() {
	ada := testutil.CreateUser(suite.T(), suite.db, "Ada", "ada@example.com")
	testutil.CreateTask(suite.T(), suite.db, "late", testutil.WithAssignee(ada), testutil.WithDueInDays(-1))
	testutil.CreateTask(suite.T(), suite.db, "done", testutil.WithAssignee(ada), testutil.WithStatus(models.TaskStatusCompleted))

	w := suite.request(http.MethodGet, "/api/analytics/user/1", nil)
	suite.Equal(http.StatusOK, w.Code)

	var stats dto.UserStatsDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	suite.Equal("Ada", stats.User.Name)
	suite.Equal(int64(2), stats.Assigned)
	suite.Equal(int64(1), stats.Completed)
	suite.Equal(int64(1), stats.Overdue)
}

func (suite *AnalyticsHandlerTestSuite) TestUserStats_Errors() {
	w := suite.request(http.MethodGet, "/api/analytics/user/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/analytics/user/999999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AnalyticsHandlerTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/api/health", nil)
	suite.Equal(http.StatusOK, w.Code)

	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ok", body["status"])
	suite.NotEmpty(body["timestamp"])
}

func TestAnalyticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}
