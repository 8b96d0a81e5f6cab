package routes

import (
	"gatestore-app/config"
	"gatestore-app/controllers"
	"gatestore-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOfficerRoutes(app *fiber.App, db *gorm.DB) {
	officerController := controllers.NewOfficerController(db)
	api := app.Group(config.MAIN_ROUTES+"/officers", middleware.AuthMiddleware)

	api.Get("/", middleware.RequirePermission("officer.list"), officerController.GetAllOfficers)
}
