package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, APIError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tasks/1", nil)

	Respond(c, err)

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond_Validation(t *testing.T) {
	_, err := services.ParseID("assignedUserId", "abc")
	w, body := respond(t, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeInvalidInput, body.Code)
	assert.Equal(t, "assignedUserId: must be a positive integer", body.Message)
	assert.Equal(t, map[string]any{"field": "assignedUserId"}, body.Details)
}

func TestRespond_ValidationWithoutField(t *testing.T) {
	w, body := respond(t, services.ErrNothingToUpdate)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "nothing to update", body.Message)
	assert.Nil(t, body.Details)
}

func TestRespond_NotFound(t *testing.T) {
	w, body := respond(t, fmt.Errorf("lookup: %w", services.ErrTaskNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrCodeNotFound, body.Code)
	assert.Equal(t, "Task not found", body.Message)
}

func TestRespond_StoreErrorIsOpaque(t *testing.T) {
	cause := fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused")
	w, body := respond(t, &services.StoreError{Op: "list tasks", Err: cause})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, ErrCodeInternalError, body.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
