package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

const taskIDKey = "task_id"

// RequireTaskID parses the :id path parameter of task routes. Requests with
// a malformed id are rejected before reaching the handler.
func RequireTaskID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := services.ParseID("id", c.Param("id"))
		if err != nil {
			apierrors.Respond(c, err)
			c.Abort()
			return
		}
		c.Set(taskIDKey, id)
		c.Next()
	}
}

// GetTaskID returns the id parsed by RequireTaskID
func GetTaskID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(taskIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok
}
