package controllers

import (
	"errors"
	"strconv"

	"gatestore-app/services"
	"gatestore-app/types"

	"github.com/gofiber/fiber/v2"
)

func principal(ctx *fiber.Ctx) services.Principal {
	id, _ := ctx.Locals("userID").(float64)
	role, _ := ctx.Locals("role").(string)
	name, _ := ctx.Locals("username").(string)
	return services.Principal{ID: uint(id), Role: role, Name: name}
}

func parseRecordID(ctx *fiber.Ctx, param string) (types.SnowflakeID, error) {
	id, err := strconv.ParseInt(ctx.Params(param), 10, 64)
	if err != nil {
		return 0, err
	}
	return types.SnowflakeID(id), nil
}

// failWorkflow maps the service error taxonomy onto HTTP statuses and the
// standard response envelope.
func failWorkflow(ctx *fiber.Ctx, err error) error {
	var (
		validationErr *services.ValidationError
		authzErr      *services.AuthorizationError
		stateErr      *services.StateError
		notFoundErr   *services.NotFoundError
		stockErr      *services.InsufficientStockError
	)

	status := fiber.StatusInternalServerError
	message := "Internal server error"
	switch {
	case errors.As(err, &validationErr):
		status, message = fiber.StatusBadRequest, "Invalid request"
	case errors.As(err, &authzErr):
		status, message = fiber.StatusForbidden, "Forbidden"
	case errors.As(err, &notFoundErr):
		status, message = fiber.StatusNotFound, "Not found"
	case errors.As(err, &stateErr):
		status, message = fiber.StatusConflict, "Invalid state"
	case errors.As(err, &stockErr):
		status, message = fiber.StatusUnprocessableEntity, "Insufficient stock"
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
