package routes

import (
	"gatestore-app/config"
	"gatestore-app/controllers"
	"gatestore-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupIssueRoutes(app *fiber.App, db *gorm.DB) {
	issueController := controllers.NewIssueController(db)
	api := app.Group(config.MAIN_ROUTES+"/issue", middleware.AuthMiddleware)

	api.Post("/request", middleware.RequirePermission("issue.request"), issueController.CreateIssueRequest)
	api.Get("/pending", middleware.RequirePermission("issue.decide"), issueController.GetPendingIssues)
	api.Post("/:id/decide", middleware.RequirePermission("issue.decide"), issueController.DecideIssue)
	api.Get("/history", middleware.RequirePermission("issue.history"), issueController.GetIssueHistory)
	api.Get("/:id/receipt", middleware.RequirePermission("issue.receipt"), issueController.GetIssueReceipt)
}
