package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hr-assistant-be/internal/dto"
)

// ErrorHandlerMiddleware maps pipeline errors to their HTTP status.
// AppError carries its own status; the daily-limit error maps to 429 with
// usage details; anything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *dto.AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(fiber.Map{
				"code":    appErr.Status,
				"error":   appErr.Code,
				"message": appErr.Message,
			})
		}

		var limitErr *dto.LimitExceededError
		if errors.As(err, &limitErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":        fiber.StatusTooManyRequests,
				"error":       "LIMIT_EXCEEDED",
				"message":     limitErr.Error(),
				"limit":       limitErr.Limit,
				"used":        limitErr.Used,
				"reset_after": limitErr.ResetAfter,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
