package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sedes-api/internal/application/auth"
	"github.com/tu-usuario/sedes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	HeadquarterUC *usecase.HeadquarterUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:email", userHandler.Get)
	users.Put("/:email", userHandler.Update)
	users.Patch("/:email/status", userHandler.UpdateStatus)
	users.Patch("/:email/password", userHandler.UpdatePassword)
	users.Delete("/:email", userHandler.Delete)

	// Headquarters
	headquarters := api.Group("/headquarters")
	hqHandler := NewHeadquarterHandler(deps.HeadquarterUC)
	headquarters.Get("/active", hqHandler.ListActive)
}
