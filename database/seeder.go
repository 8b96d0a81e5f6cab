// database/seeder.go
package database

import (
	"errors"
	"log"

	"gatestore-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
	SeedMaterials(db)
}

// SeedUsers creates the default accounts used for first login.
// Passwords here are bootstrap credentials and should be rotated
// after deployment.
func SeedUsers(db *gorm.DB) {
	type seedUser struct {
		Username string
		Password string
		Name     string
		Email    string
		Role     string
	}

	users := []seedUser{
		{Username: "admin", Password: "admin123", Name: "Administrator", Email: "admin@example.com", Role: models.RoleAdmin},
		{Username: "security", Password: "sec123", Name: "Gate Security", Email: "security@example.com", Role: models.RoleSecurity},
		{Username: "officer", Password: "off123", Name: "Duty Officer", Email: "officer@example.com", Role: models.RoleOfficer},
		{Username: "store", Password: "store123", Name: "Store Manager", Email: "store@example.com", Role: models.RoleStoreManager},
		{Username: "rajshekhar", Password: "off123", Name: "Rajshekhar", Email: "rajshekhar@example.com", Role: models.RoleOfficer},
		{Username: "nikhil", Password: "off123", Name: "Nikhil", Email: "nikhil@example.com", Role: models.RoleOfficer},
	}

	for _, u := range users {
		var existing models.User
		err := db.Where("username = ?", u.Username).First(&existing).Error
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Failed to hash password for user:", u.Username, err)
			continue
		}

		user := models.User{
			Username: u.Username,
			Password: string(hashed),
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("Failed to insert user:", u.Username, err)
		} else {
			log.Println("Insert user:", u.Username)
		}
	}
}

// SeedMaterials loads a small starter catalog so the issue workflow is
// usable before any inward deliveries arrive.
func SeedMaterials(db *gorm.DB) {
	materials := []models.Material{
		{Code: "ELEC-001", Name: "Copper Wire 2.5mm", Category: models.CategoryElectrical, Unit: "Mtr", MinStockLevel: 100},
		{Code: "MECH-001", Name: "Bearing 6204", Category: models.CategoryMechanical, Unit: "Nos", MinStockLevel: 50},
		{Code: "STAT-001", Name: "A4 Paper Ream", Category: models.CategoryStationary, Unit: "Box", MinStockLevel: 20},
	}

	for _, m := range materials {
		var existing models.Material
		if err := db.Where("code = ?", m.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&m)
			}
		}
	}
}
