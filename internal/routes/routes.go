package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/littlesous/backend/internal/config"
	"github.com/littlesous/backend/internal/handlers"
	"github.com/littlesous/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	childHandler *handlers.ChildHandler,
	interviewHandler *handlers.InterviewHandler,
	recipeHandler *handlers.RecipeHandler,
	webhookHandler *handlers.WebhookHandler,
	healthHandler *handlers.HealthHandler,
	legalHandler *handlers.LegalHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Legal pages (public)
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

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

	// Protected auth routes — apply JWT middleware per route so the
	// public /auth group above stays untouched
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Children (protected)
	children := api.Group("/children", middleware.JWTProtected(cfg))
	children.Post("/", childHandler.Create)
	children.Get("/", childHandler.List)
	children.Get("/:id", childHandler.Get)
	children.Put("/:id", childHandler.Update)
	children.Delete("/:id", childHandler.Delete)
	children.Post("/:childId/interview/start", interviewHandler.Start)
	children.Get("/:childId/recipes", recipeHandler.ListByChild)

	// Interviews (protected)
	interviews := api.Group("/interviews", middleware.JWTProtected(cfg))
	interviews.Get("/:id", interviewHandler.Get)
	interviews.Post("/:id/answer", interviewHandler.SubmitAnswer)
	interviews.Post("/:id/complete", interviewHandler.Complete)
	interviews.Post("/:id/abandon", interviewHandler.Abandon)

	// Recipes (protected)
	recipes := api.Group("/recipes", middleware.JWTProtected(cfg))
	recipes.Get("/:id", recipeHandler.Get)
	recipes.Put("/:id/favorite", recipeHandler.SetFavorite)
	recipes.Put("/:id/printed", recipeHandler.SetPrinted)
	recipes.Put("/:id/memory", recipeHandler.SetMemory)
	recipes.Put("/:id/template", recipeHandler.SetTemplate)

	// Webhooks — authenticated by shared secret header, no JWT
	webhooks := api.Group("/webhooks")
	webhooks.Post("/revenuecat", webhookHandler.HandleRevenueCat)
}
