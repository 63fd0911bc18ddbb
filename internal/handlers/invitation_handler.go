package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/authctx"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/services"
)

type InvitationHandler struct {
	invitationService *services.InvitationService
}

func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

func (h *InvitationHandler) List(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	invitations, err := h.invitationService.List(caller)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewInvitationListResponse(invitations))
}

func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	inv, err := h.invitationService.Create(caller, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewInvitationResponse(inv))
}

func (h *InvitationHandler) Delete(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.invitationService.Delete(caller, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Invitation deleted"})
}

// Accept serves POST /invitations/:id/accept.
func (h *InvitationHandler) Accept(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	inv, err := h.invitationService.Accept(caller, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewInvitationResponse(inv))
}
