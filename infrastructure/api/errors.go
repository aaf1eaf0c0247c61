package api

import (
	"log/slog"
	"tienda-live/errors"

	"github.com/gofiber/fiber/v2"
)

type errorClass struct {
	target error
	status int
	reason string
}

var errorClasses = []errorClass{
	{errors.ErrInvalidRequest, fiber.StatusBadRequest, "invalid-request"},
	{errors.ErrInvalidStatus, fiber.StatusBadRequest, "invalid-status"},
	{errors.ErrNoFieldsToUpdate, fiber.StatusBadRequest, "no-fields"},
	{errors.ErrInvalidState, fiber.StatusBadRequest, "invalid-state"},
	{errors.ErrPromotionNotFound, fiber.StatusNotFound, "not-found"},
	{errors.ErrOrderNotFound, fiber.StatusNotFound, "not-found"},
	{errors.ErrReviewNotFound, fiber.StatusNotFound, "not-found"},
	{errors.ErrConfigNotFound, fiber.StatusNotFound, "not-found"},
	{errors.ErrCodeAlreadyExists, fiber.StatusConflict, "conflict"},
	{errors.ErrCapExceeded, fiber.StatusConflict, "exhausted"},
	{errors.ErrCustomerCapExceeded, fiber.StatusConflict, "customer-exhausted"},
}

// classify maps an error onto an HTTP status and a stable reason code.
func classify(err error) (int, string) {
	for _, class := range errorClasses {
		if errors.Is(err, class.target) {
			return class.status, class.reason
		}
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, "http"
	}
	return fiber.StatusInternalServerError, "internal"
}

func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, reason := classify(err)
		message := err.Error()
		if status >= fiber.StatusInternalServerError {
			log.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
			message = "internal server error"
		}
		return c.Status(status).JSON(ErrorResponse{Error: message, Reason: reason})
	}
}
