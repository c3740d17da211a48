// FILE: internal/controller/portfolio_controller.go
package controller

import (
	"errors"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPortfolioController interface {
	RegisterRoutes(r fiber.Router)
}

type portfolioController struct {
	service service.IPortfolioService
}

func NewPortfolioController(service service.IPortfolioService) IPortfolioController {
	return &portfolioController{service: service}
}

func (c *portfolioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/portfolio")

	// Public reads for the marketing page
	h.Get("/profile", c.GetProfile)
	h.Get("/skills", c.ListSkills)
	h.Get("/experiences", c.ListExperiences)
	h.Get("/projects", c.ListProjects)
	h.Get("/certifications", c.ListCertifications)
	h.Get("/documentation", c.ListDocumentation)

	// Owner content management
	o := h.Group("/", serverutils.OwnerMiddleware)
	o.Put("/profile", c.UpsertProfile)

	o.Post("/skills", c.CreateSkill)
	o.Put("/skills/reorder", c.ReorderSkills)
	o.Put("/skills/:id", c.UpdateSkill)
	o.Delete("/skills/:id", c.DeleteSkill)

	o.Post("/experiences", c.CreateExperience)
	o.Put("/experiences/reorder", c.ReorderExperiences)
	o.Put("/experiences/:id", c.UpdateExperience)
	o.Delete("/experiences/:id", c.DeleteExperience)

	o.Post("/projects", c.CreateProject)
	o.Put("/projects/reorder", c.ReorderProjects)
	o.Put("/projects/:id", c.UpdateProject)
	o.Delete("/projects/:id", c.DeleteProject)

	o.Post("/certifications", c.CreateCertification)
	o.Put("/certifications/:id", c.UpdateCertification)
	o.Delete("/certifications/:id", c.DeleteCertification)

	o.Post("/documentation", c.CreateDocumentation)
	o.Put("/documentation/reorder", c.ReorderDocumentation)
	o.Put("/documentation/:id", c.UpdateDocumentation)
	o.Delete("/documentation/:id", c.DeleteDocumentation)
}

func (c *portfolioController) respondError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Record not found"))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params("id"))
}

// --- Profile ---

func (c *portfolioController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.Context())
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *portfolioController) UpsertProfile(ctx *fiber.Ctx) error {
	var req dto.UpsertProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpsertProfile(ctx.Context(), &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile saved", res))
}

// --- Skills ---

func (c *portfolioController) ListSkills(ctx *fiber.Ctx) error {
	res, err := c.service.ListSkills(ctx.Context())
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Skills", res))
}

func (c *portfolioController) CreateSkill(ctx *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateSkill(ctx.Context(), &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Skill created", res))
}

func (c *portfolioController) UpdateSkill(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid skill ID"))
	}

	var req dto.SkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateSkill(ctx.Context(), id, &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Skill updated", res))
}

func (c *portfolioController) DeleteSkill(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid skill ID"))
	}
	if err := c.service.DeleteSkill(ctx.Context(), id); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Skill deleted", nil))
}

func (c *portfolioController) ReorderSkills(ctx *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err := c.service.ReorderSkills(ctx.Context(), &req); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Skills reordered", nil))
}

// --- Experiences ---

func (c *portfolioController) ListExperiences(ctx *fiber.Ctx) error {
	res, err := c.service.ListExperiences(ctx.Context())
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Experiences", res))
}

func (c *portfolioController) CreateExperience(ctx *fiber.Ctx) error {
	var req dto.ExperienceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateExperience(ctx.Context(), &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Experience created", res))
}

func (c *portfolioController) UpdateExperience(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid experience ID"))
	}

	var req dto.ExperienceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateExperience(ctx.Context(), id, &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Experience updated", res))
}

func (c *portfolioController) DeleteExperience(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid experience ID"))
	}
	if err := c.service.DeleteExperience(ctx.Context(), id); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Experience deleted", nil))
}

func (c *portfolioController) ReorderExperiences(ctx *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err := c.service.ReorderExperiences(ctx.Context(), &req); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Experiences reordered", nil))
}

// --- Projects ---

func (c *portfolioController) ListProjects(ctx *fiber.Ctx) error {
	featuredOnly := ctx.QueryBool("featured", false)
	res, err := c.service.ListProjects(ctx.Context(), featuredOnly)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Projects", res))
}

func (c *portfolioController) CreateProject(ctx *fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateProject(ctx.Context(), &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Project created", res))
}

func (c *portfolioController) UpdateProject(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid project ID"))
	}

	var req dto.ProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateProject(ctx.Context(), id, &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Project updated", res))
}

func (c *portfolioController) DeleteProject(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid project ID"))
	}
	if err := c.service.DeleteProject(ctx.Context(), id); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Project deleted", nil))
}

func (c *portfolioController) ReorderProjects(ctx *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err := c.service.ReorderProjects(ctx.Context(), &req); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Projects reordered", nil))
}

// --- Certifications ---

func (c *portfolioController) ListCertifications(ctx *fiber.Ctx) error {
	res, err := c.service.ListCertifications(ctx.Context())
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Certifications", res))
}

func (c *portfolioController) CreateCertification(ctx *fiber.Ctx) error {
	var req dto.CertificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateCertification(ctx.Context(), &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Certification created", res))
}

func (c *portfolioController) UpdateCertification(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid certification ID"))
	}

	var req dto.CertificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateCertification(ctx.Context(), id, &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Certification updated", res))
}

func (c *portfolioController) DeleteCertification(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid certification ID"))
	}
	if err := c.service.DeleteCertification(ctx.Context(), id); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Certification deleted", nil))
}

// --- Documentation ---

func (c *portfolioController) ListDocumentation(ctx *fiber.Ctx) error {
	res, err := c.service.ListDocumentation(ctx.Context())
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Documentation", res))
}

func (c *portfolioController) CreateDocumentation(ctx *fiber.Ctx) error {
	var req dto.DocumentationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateDocumentation(ctx.Context(), &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Documentation created", res))
}

func (c *portfolioController) UpdateDocumentation(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid documentation ID"))
	}

	var req dto.DocumentationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateDocumentation(ctx.Context(), id, &req)
	if err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Documentation updated", res))
}

func (c *portfolioController) DeleteDocumentation(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid documentation ID"))
	}
	if err := c.service.DeleteDocumentation(ctx.Context(), id); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Documentation deleted", nil))
}

func (c *portfolioController) ReorderDocumentation(ctx *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err := c.service.ReorderDocumentation(ctx.Context(), &req); err != nil {
		return c.respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Documentation reordered", nil))
}
