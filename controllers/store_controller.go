package controllers

import (
	"gatestore-app/repositories"
	"gatestore-app/services"
	"gatestore-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StoreController exposes the store manager's side of the workflow:
// verification of approved deliveries and the shelved inventory view.
type StoreController struct {
	Entries   *services.GateEntryService
	Materials *services.MaterialService
}

func NewStoreController(db *gorm.DB) *StoreController {
	store := repositories.NewRepository(db)
	return &StoreController{
		Entries:   services.NewGateEntryService(store, utils.NewMailer()),
		Materials: services.NewMaterialService(store),
	}
}

func (c *StoreController) GetPendingVerification(ctx *fiber.Ctx) error {
	entries, err := c.Entries.PendingVerification(principal(ctx))
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Entries awaiting verification retrieved",
		"data":    entries,
	})
}

func (c *StoreController) RecordVerification(ctx *fiber.Ctx) error {
	entryID, err := parseRecordID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid entry id",
		})
	}

	var input services.VerificationInput
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
			"message": "Invalid verification",
			"error":   err.Error(),
		})
	}

	entry, err := c.Entries.RecordVerification(principal(ctx), entryID, input)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Store verification recorded, pending final approval",
		"data":    entry,
	})
}

func (c *StoreController) EditVerification(ctx *fiber.Ctx) error {
	entryID, err := parseRecordID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid entry id",
		})
	}

	var input services.VerificationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	entry, err := c.Entries.EditVerification(principal(ctx), entryID, input)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Verification updated",
		"data":    entry,
	})
}

func (c *StoreController) GetStoreItems(ctx *fiber.Ctx) error {
	items, err := c.Materials.StoreItems(principal(ctx))
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Store items retrieved",
		"data":    items,
	})
}
