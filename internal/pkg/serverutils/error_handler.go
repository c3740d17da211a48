package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware catches panics and unhandled handler errors at the
// top of the stack and converts them to a generic 500 JSON body, so no raw
// error or stack trace crosses the HTTP boundary.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "panic recovered", map[string]interface{}{
					"panic": r,
					"path":  ctx.Path(),
				})
				_ = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "internal server error",
				})
			}
		}()

		err := ctx.Next()
		if err != nil {
			// Router-level errors (404, 405) keep their status; everything
			// else is an unhandled failure.
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
				return ctx.Status(fiberErr.Code).JSON(fiber.Map{
					"error": fiberErr.Message,
				})
			}
			log.Error("http", "unhandled handler error", map[string]interface{}{
				"error": err.Error(),
				"path":  ctx.Path(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
		return nil
	}
}
