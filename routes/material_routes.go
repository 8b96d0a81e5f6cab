package routes

import (
	"gatestore-app/config"
	"gatestore-app/controllers"
	"gatestore-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMaterialRoutes(app *fiber.App, db *gorm.DB) {
	materialController := controllers.NewMaterialController(db)
	api := app.Group(config.MAIN_ROUTES+"/materials", middleware.AuthMiddleware)

	api.Post("/", middleware.RequirePermission("material.create"), materialController.CreateMaterial)
	api.Get("/", middleware.RequirePermission("material.list"), materialController.GetAllMaterials)
	api.Get("/export", middleware.RequirePermission("material.export"), materialController.ExportExcel)
}
