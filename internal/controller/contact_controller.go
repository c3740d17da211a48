// FILE: internal/controller/contact_controller.go
package controller

import (
	"errors"
	"strconv"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
}

func NewContactController(service service.IContactService) IContactController {
	return &contactController{service: service}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Submit)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ContactErrorResponse{
			Error: "invalid request body",
		})
	}

	clientKey := serverutils.ClientKey(ctx)

	result, err := c.service.Submit(ctx.Context(), clientKey, &req)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.ContactErrorResponse{
				Error: ve.Message,
			})
		}
		if errors.Is(err, service.ErrRateLimited) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.ContactErrorResponse{
				Error:      "too many messages sent, please try again later",
				RetryAfter: "1 hour",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ContactErrorResponse{
			Error: "failed to send message, please try again",
		})
	}

	// Body is the provider's acknowledgment verbatim; the remaining quota
	// travels in a header.
	ctx.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	return ctx.JSON(result.Ack)
}
