package routes

import (
	"github.com/berkekarsli/taskbox-backend/internal/config"
	"github.com/berkekarsli/taskbox-backend/internal/handlers"
	"github.com/berkekarsli/taskbox-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	pageHandler *handlers.PageHandler,
) {
	// Browser test pages
	app.Get("/", pageHandler.Register)
	app.Get("/register", pageHandler.Register)
	app.Get("/login", pageHandler.Login)
	app.Get("/dashboard", pageHandler.Dashboard)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	v1 := api.Group("/v1")

	// Auth — public
	auth := v1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Tasks — bearer token required
	tasks := v1.Group("/tasks", middleware.JWTProtected(cfg))
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Admin — bearer token + admin role
	admin := v1.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired())
	admin.Get("/users", adminHandler.ListUsers)
	// delete-all registers before :id so the literal segment wins
	admin.Delete("/users/delete-all", adminHandler.DeleteAllUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
}
