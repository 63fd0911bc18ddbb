package authctx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/models"
)

const currentUserKey = "current_user"

// GetUserID extracts the caller's UUID from the JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// SetCurrentUser stores the resolved user row for the request.
func SetCurrentUser(c *fiber.Ctx, u *models.User) {
	c.Locals(currentUserKey, u)
}

// CurrentUser returns the user row resolved by the auth middleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	if u, ok := c.Locals(currentUserKey).(*models.User); ok && u != nil {
		return u, nil
	}
	return nil, errors.New("no authenticated user in context")
}
