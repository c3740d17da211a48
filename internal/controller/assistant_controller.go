// FILE: internal/controller/assistant_controller.go
package controller

import (
	"errors"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant")
	h.Post("/chat", c.Chat)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.AssistantChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.AssistantErrorResponse{
			Error: "invalid request body",
		})
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.AssistantErrorResponse{
				Error: ve.Message,
			})
		}
		switch {
		case errors.Is(err, service.ErrUpstreamRateLimited):
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.AssistantErrorResponse{
				Error: err.Error(),
			})
		case errors.Is(err, service.ErrUpstreamQuota):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(dto.AssistantErrorResponse{
				Error: err.Error(),
			})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(dto.AssistantErrorResponse{
				Error: "something went wrong, please try again",
			})
		}
	}

	return ctx.JSON(res)
}
