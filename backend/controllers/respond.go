package controllers

import (
	"errors"
	"time"

	"skillaudit/backend/services"
	"skillaudit/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps service-layer errors onto HTTP statuses. The NotFound /
// PersistenceError split lets clients distinguish "nothing there" from
// "operation failed".
func serviceError(c *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		return utils.BadRequest(c, validation.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProgramInUse):
		return utils.Conflict(c, err.Error())
	default:
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}
}

// parseDate accepts RFC3339 or plain yyyy-mm-dd input dates; anything else
// yields the zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
