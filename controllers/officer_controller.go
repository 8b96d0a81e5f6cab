package controllers

import (
	"gatestore-app/repositories"
	"gatestore-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OfficerController struct {
	Service *services.UserService
}

func NewOfficerController(db *gorm.DB) *OfficerController {
	return &OfficerController{
		Service: services.NewUserService(repositories.NewRepository(db)),
	}
}

// GetAllOfficers feeds the officer assignment dropdowns on the security and
// store dashboards.
func (c *OfficerController) GetAllOfficers(ctx *fiber.Ctx) error {
	officers, err := c.Service.ListOfficers(principal(ctx))
	if err != nil {
		return failWorkflow(ctx, err)
	}

	type officerRow struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}
	rows := make([]officerRow, 0, len(officers))
	for _, officer := range officers {
		rows = append(rows, officerRow{ID: officer.ID, Name: officer.Name, Role: officer.Role})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Officers retrieved successfully",
		"data":    rows,
	})
}
