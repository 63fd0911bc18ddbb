package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/authctx"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	activities, err := h.activityService.List(caller)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewActivityListResponse(activities))
}

func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	activity, err := h.activityService.Get(caller, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewActivityResponse(activity))
}

func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	activity, err := h.activityService.Create(caller, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewActivityResponse(activity))
}

func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	activity, err := h.activityService.Update(caller, id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewActivityResponse(activity))
}

func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.activityService.Delete(caller, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Activity deleted"})
}
