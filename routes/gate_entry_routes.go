package routes

import (
	"gatestore-app/config"
	"gatestore-app/controllers"
	"gatestore-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupGateEntryRoutes(app *fiber.App, db *gorm.DB) {
	gateEntryController := controllers.NewGateEntryController(db)
	api := app.Group(config.MAIN_ROUTES+"/gate-entry", middleware.AuthMiddleware)

	api.Post("/", middleware.RequirePermission("gate_entry.create"), gateEntryController.CreateGateEntry)
	api.Get("/pending-stage-1", middleware.RequirePermission("gate_entry.stage1"), gateEntryController.GetPendingStage1)
	api.Post("/:id/stage-1", middleware.RequirePermission("gate_entry.stage1"), gateEntryController.Stage1Decision)
	api.Get("/final-pending", middleware.RequirePermission("gate_entry.final"), gateEntryController.GetPendingFinal)
	api.Post("/:id/final", middleware.RequirePermission("gate_entry.final"), gateEntryController.FinalDecision)
}
