package services

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/task-tracker-api/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of v and reports the first failure as a
// ValidationError naming the offending field.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newValidationError("", err.Error())
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return newValidationError(fe.Field(), "is required")
	case "max":
		return newValidationError(fe.Field(), fmt.Sprintf("must be at most %s characters", fe.Param()))
	default:
		return newValidationError(fe.Field(), fmt.Sprintf("failed %q validation", fe.Tag()))
	}
}

// ParseID parses a record id. Only positive integers that fit a signed
// 64-bit column are accepted.
func ParseID(field, raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 63)
	if err != nil || id == 0 {
		return 0, newValidationError(field, "must be a positive integer")
	}
	return id, nil
}

func parseStatus(field, raw string) (models.TaskStatus, error) {
	status := models.TaskStatus(strings.TrimSpace(raw))
	if !status.Valid() {
		return "", newValidationError(field, fmt.Sprintf("must be one of %s, %s, %s",
			models.TaskStatusOpen, models.TaskStatusInProgress, models.TaskStatusCompleted))
	}
	return status, nil
}

func parsePriority(field, raw string) (models.TaskPriority, error) {
	priority := models.TaskPriority(strings.TrimSpace(raw))
	if !priority.Valid() {
		return "", newValidationError(field, fmt.Sprintf("must be one of %s, %s, %s",
			models.TaskPriorityLow, models.TaskPriorityNormal, models.TaskPriorityHigh))
	}
	return priority, nil
}

func parseDate(field, raw string) (models.Date, error) {
	date, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, newValidationError(field, "must be a valid date (YYYY-MM-DD)")
	}
	return date, nil
}

func requirePositiveID(field string, id uint64) error {
	if id == 0 || id > math.MaxInt64 {
		return newValidationError(field, "must be a positive integer")
	}
	return nil
}

// taskText carries the length-limited task columns through the validator
type taskText struct {
	Title      string `json:"title" validate:"max=255"`
	AssignedTo string `json:"assignedTo" validate:"max=255"`
}

func validateTaskText(title, assignedTo string) error {
	return validateStruct(taskText{Title: title, AssignedTo: assignedTo})
}
