package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/authctx"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the caller's own projection with the derived role.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(dto.NewUserResponse(caller))
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	users, err := h.userService.List(caller)
	if err != nil {
		return respondServiceError(c, err)
	}

	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = dto.NewUserResponse(&users[i])
	}
	return c.JSON(out)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	user, err := h.userService.Get(caller, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	user, err := h.userService.Create(caller, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	user, err := h.userService.Update(caller, id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	caller, err := authctx.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.userService.Delete(caller, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
