package services

import (
	"time"

	"github.com/yukikurage/task-tracker-api/internal/models"
)

// Clock returns the current time. Services evaluate it per call.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func (c Clock) today() models.Date {
	return models.DateOf(c.now())
}
