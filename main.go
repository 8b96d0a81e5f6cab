package main

import (
	"fmt"
	"log"

	"gatestore-app/config"
	"gatestore-app/controllers/idgen"
	"gatestore-app/database"
	"gatestore-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.OpenMainDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupGateEntryRoutes(app, db)
	routes.SetupStoreRoutes(app, db)
	routes.SetupMaterialRoutes(app, db)
	routes.SetupIssueRoutes(app, db)
	routes.SetupOfficerRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
