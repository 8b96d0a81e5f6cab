package controllers

import (
	"gatestore-app/repositories"
	"gatestore-app/services"
	"gatestore-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GateEntryController exposes the two-stage delivery approval workflow.
type GateEntryController struct {
	Service *services.GateEntryService
}

func NewGateEntryController(db *gorm.DB) *GateEntryController {
	store := repositories.NewRepository(db)
	return &GateEntryController{
		Service: services.NewGateEntryService(store, utils.NewMailer()),
	}
}

func (c *GateEntryController) CreateGateEntry(ctx *fiber.Ctx) error {
	var input services.CreateEntryInput

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
			"message": "Invalid gate entry",
			"error":   err.Error(),
		})
	}

	entry, err := c.Service.CreateEntry(principal(ctx), input)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Gate entry created, pending officer approval",
		"data": fiber.Map{
			"id":               entry.ID,
			"gate_pass_number": entry.GatePassNumber,
			"stage1_status":    entry.Stage1Status,
		},
	})
}

func (c *GateEntryController) GetPendingStage1(ctx *fiber.Ctx) error {
	entries, err := c.Service.PendingStage1(principal(ctx))
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Pending stage 1 entries retrieved",
		"data":    entries,
	})
}

type decisionPayload struct {
	Decision string `json:"decision" validate:"required"`
	Remarks  string `json:"remarks"`
}

func (c *GateEntryController) Stage1Decision(ctx *fiber.Ctx) error {
	entryID, err := parseRecordID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid entry id",
		})
	}

	var payload decisionPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	entry, err := c.Service.DecideStage1(principal(ctx), entryID, payload.Decision, payload.Remarks)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stage 1 decision recorded",
		"data": fiber.Map{
			"id":               entry.ID,
			"gate_pass_number": entry.GatePassNumber,
			"stage1_status":    entry.Stage1Status,
		},
	})
}

func (c *GateEntryController) GetPendingFinal(ctx *fiber.Ctx) error {
	entries, err := c.Service.PendingFinal(principal(ctx))
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Pending final approval entries retrieved",
		"data":    entries,
	})
}

func (c *GateEntryController) FinalDecision(ctx *fiber.Ctx) error {
	entryID, err := parseRecordID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid entry id",
		})
	}

	var payload decisionPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	entry, err := c.Service.DecideFinal(principal(ctx), entryID, payload.Decision, payload.Remarks)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Final decision recorded",
		"data": fiber.Map{
			"id":               entry.ID,
			"gate_pass_number": entry.GatePassNumber,
			"stage2_status":    entry.Stage2Status,
		},
	})
}
