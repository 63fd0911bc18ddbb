package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tripfolio/guides-backend/internal/config"
	"github.com/tripfolio/guides-backend/internal/handlers"
	"github.com/tripfolio/guides-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	guideHandler *handlers.GuideHandler,
	activityHandler *handlers.ActivityHandler,
	invitationHandler *handlers.InvitationHandler,
	userHandler *handlers.UserHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no auth)
	api.Get("/health", healthHandler.Check)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Everything below requires a valid token and a resolved user row.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.LoadUser(db))

	protected.Get("/me", userHandler.Me)

	protected.Get("/guides", guideHandler.List)
	protected.Post("/guides", guideHandler.Create)
	protected.Get("/guides/:id", guideHandler.Get)
	protected.Put("/guides/:id", guideHandler.Update)
	protected.Patch("/guides/:id", guideHandler.Update)
	protected.Delete("/guides/:id", guideHandler.Delete)
	protected.Get("/guides/:id/activities", guideHandler.ListActivities)

	protected.Get("/activities", activityHandler.List)
	protected.Post("/activities", activityHandler.Create)
	protected.Get("/activities/:id", activityHandler.Get)
	protected.Put("/activities/:id", activityHandler.Update)
	protected.Patch("/activities/:id", activityHandler.Update)
	protected.Delete("/activities/:id", activityHandler.Delete)

	protected.Get("/invitations", invitationHandler.List)
	protected.Post("/invitations", invitationHandler.Create)
	protected.Delete("/invitations/:id", invitationHandler.Delete)
	protected.Post("/invitations/:id/accept", invitationHandler.Accept)

	// Account management is admin-only.
	admin := protected.Group("/users", middleware.AdminRequired(cfg))
	admin.Get("", userHandler.List)
	admin.Post("", userHandler.Create)
	admin.Get("/:id", userHandler.Get)
	admin.Put("/:id", userHandler.Update)
	admin.Patch("/:id", userHandler.Update)
	admin.Delete("/:id", userHandler.Delete)
}
