package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tripfolio/guides-backend/internal/authctx"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/models"
	"gorm.io/gorm"
)

// LoadUser resolves the JWT subject to a user row once per request and
// stores it in context locals. The DB row is authoritative over claims,
// so a role change takes effect without waiting for token expiry.
func LoadUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authctx.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		authctx.SetCurrentUser(c, &user)
		return c.Next()
	}
}
