package controllers

import (
	"gatestore-app/repositories"
	"gatestore-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IssueController struct {
	Service *services.IssueService
}

func NewIssueController(db *gorm.DB) *IssueController {
	return &IssueController{
		Service: services.NewIssueService(repositories.NewRepository(db)),
	}
}

func (c *IssueController) CreateIssueRequest(ctx *fiber.Ctx) error {
	var input services.IssueRequestInput

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
			"message": "Invalid issue request",
			"error":   err.Error(),
		})
	}

	issue, err := c.Service.Request(principal(ctx), input)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Issue request created, pending officer approval",
		"data":    issue,
	})
}

func (c *IssueController) GetPendingIssues(ctx *fiber.Ctx) error {
	issues, err := c.Service.Pending(principal(ctx))
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Pending issues retrieved",
		"data":    issues,
	})
}

func (c *IssueController) DecideIssue(ctx *fiber.Ctx) error {
	issueID, err := parseRecordID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid issue id",
		})
	}

	var payload struct {
		Decision string `json:"decision" validate:"required"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	issue, err := c.Service.Decide(principal(ctx), issueID, payload.Decision)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Issue decision recorded",
		"data": fiber.Map{
			"id":            issue.ID,
			"status":        issue.Status,
			"issue_note_no": issue.IssueNoteNo,
		},
	})
}

func (c *IssueController) GetIssueHistory(ctx *fiber.Ctx) error {
	issues, err := c.Service.History(principal(ctx), ctx.Query("status"))
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Issue history retrieved",
		"data":    issues,
	})
}

func (c *IssueController) GetIssueReceipt(ctx *fiber.Ctx) error {
	issueID, err := parseRecordID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid issue id",
		})
	}

	receipt, err := c.Service.Receipt(principal(ctx), issueID)
	if err != nil {
		return failWorkflow(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Issue receipt retrieved",
		"data":    receipt,
	})
}
