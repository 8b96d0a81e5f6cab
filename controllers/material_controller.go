package controllers

import (
	"fmt"
	"net/http"

	"gatestore-app/models"
	"gatestore-app/repositories"
	"gatestore-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type MaterialController struct {
	Service *services.MaterialService
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{
		Service: services.NewMaterialService(repositories.NewRepository(db)),
	}
}

func (c *MaterialController) CreateMaterial(ctx *fiber.Ctx) error {
	var input services.MaterialInput

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid material",
			"error":   err.Error(),
		})
	}

	material, err := c.Service.Create(principal(ctx), input)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Material created successfully",
		"data":    material,
	})
}

// materialRow is a catalog entry plus its derived stock deviation.
type materialRow struct {
	models.Material
	StockDeviation float64 `json:"stock_deviation"`
}

func (c *MaterialController) GetAllMaterials(ctx *fiber.Ctx) error {
	filter := repositories.MaterialFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}

	materials, err := c.Service.List(principal(ctx), filter)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	rows := make([]materialRow, 0, len(materials))
	for _, material := range materials {
		rows = append(rows, materialRow{
			Material:       material,
			StockDeviation: material.StockDeviation(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Materials retrieved successfully",
		"data":    rows,
	})
}

func (c *MaterialController) ExportExcel(ctx *fiber.Ctx) error {
	materials, err := c.Service.List(principal(ctx), repositories.MaterialFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	})
	if err != nil {
		return failWorkflow(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Code")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "Unit")
	f.SetCellValue(sheet, "E1", "Current Stock")
	f.SetCellValue(sheet, "F1", "Min Stock")
	f.SetCellValue(sheet, "G1", "Deviation")

	for i, material := range materials {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), material.Code)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), material.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), material.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), material.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), material.CurrentStock)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), material.MinStockLevel)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), material.StockDeviation())
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
