package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/testutil"
	"gorm.io/gorm"
)

// apiTestSuite serves requests through the full router over a fresh store
type apiTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *apiTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.db = testutil.NewTestDB(suite.T())
	suite.router = NewRouter(RouterConfig{
		DB:     suite.db,
		Clock:  testutil.Clock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// Helper function to perform a request against the router
func (suite *apiTestSuite) request(method, url string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, url, nil)
	case string:
		req = httptest.NewRequest(method, url, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		data, err := json.Marshal(b)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *apiTestSuite) decodeTask(w *httptest.ResponseRecorder) dto.TaskDTO {
	var task dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	return task
}

func (suite *apiTestSuite) decodeError(w *httptest.ResponseRecorder) apierrors.APIError {
	var apiErr apierrors.APIError
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}
