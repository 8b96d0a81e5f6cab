// database/migrate.go
package database

import (
	"gatestore-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginLog{},
		&models.GateEntry{},
		&models.InwardProcess{},
		&models.InwardItem{},
		&models.Material{},
		&models.InventoryLog{},
		&models.MaterialIssue{},
	)
}
