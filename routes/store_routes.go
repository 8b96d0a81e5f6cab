package routes

import (
	"gatestore-app/config"
	"gatestore-app/controllers"
	"gatestore-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStoreRoutes(app *fiber.App, db *gorm.DB) {
	storeController := controllers.NewStoreController(db)
	api := app.Group(config.MAIN_ROUTES+"/store", middleware.AuthMiddleware)

	api.Get("/pending", middleware.RequirePermission("store.verify"), storeController.GetPendingVerification)
	api.Post("/:id/process", middleware.RequirePermission("store.verify"), storeController.RecordVerification)
	api.Put("/:id/process", middleware.RequirePermission("store.edit"), storeController.EditVerification)
	api.Get("/items", middleware.RequirePermission("store.items"), storeController.GetStoreItems)
}
