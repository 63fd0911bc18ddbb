package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/authctx"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/services"
)

type GuideHandler struct {
	guideService *services.GuideService
}

func NewGuideHandler(guideService *services.GuideService) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

func (h *GuideHandler) List(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	guides, err := h.guideService.List(caller)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewGuideListResponse(guides))
}

func (h *GuideHandler) Get(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	guide, err := h.guideService.Get(caller, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewGuideResponse(guide))
}

func (h *GuideHandler) Create(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	guide, err := h.guideService.Create(caller, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewGuideResponse(guide))
}

func (h *GuideHandler) Update(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var req dto.UpdateGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	guide, err := h.guideService.Update(caller, id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewGuideResponse(guide))
}

func (h *GuideHandler) Delete(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.guideService.Delete(caller, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Guide deleted"})
}

// ListActivities serves GET /guides/:id/activities in canonical day order.
func (h *GuideHandler) ListActivities(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	activities, err := h.guideService.ListActivities(caller, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewActivityListResponse(activities))
}
