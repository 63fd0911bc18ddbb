package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tripfolio/guides-backend/internal/authctx"
	"github.com/tripfolio/guides-backend/internal/config"
	"github.com/tripfolio/guides-backend/internal/dto"
)

// AdminRequired gates a route on admin access. It checks, in order: the
// static admin token header, the config allow-list of admin emails, and
// the is_staff flag on the resolved user row. Runs after LoadUser.
func AdminRequired(cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		user, err := authctx.CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if user.IsStaff || (user.Email != "" && containsFold(adminEmails, user.Email)) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func containsFold(list []string, val string) bool {
	for _, item := range list {
		if strings.EqualFold(item, val) {
			return true
		}
	}
	return false
}
