package handlers

import (
	"maestro/internal/app"
	"maestro/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewUserHandler(*app, api).Register()
	NewReconciliationHandler(*app, api).Register()
	NewInferenceHandler(*app, api).Register()
	NewCatalogHandler(*app, api).Register()

	return nil
}
