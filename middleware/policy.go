package middleware

import (
	"gatestore-app/models"

	"github.com/gofiber/fiber/v2"
)

// rolePolicy maps each exposed operation to the roles that may reach it.
// Routes consult this table through RequirePermission instead of comparing
// role strings inline; the services still enforce the same rules themselves.
var rolePolicy = map[string][]string{
	"gate_entry.create": {models.RoleSecurity, models.RoleAdmin},
	"gate_entry.stage1": {models.RoleOfficer, models.RoleAdmin},
	"gate_entry.final":  {models.RoleOfficer, models.RoleAdmin},

	"store.verify": {models.RoleStoreManager, models.RoleAdmin},
	"store.edit":   {models.RoleOfficer, models.RoleAdmin},
	"store.items":  {models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin},

	"material.create": {models.RoleOfficer, models.RoleAdmin},
	"material.list":   {models.RoleSecurity, models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin},
	"material.export": {models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin},

	"issue.request": {models.RoleStoreManager, models.RoleAdmin},
	"issue.decide":  {models.RoleOfficer, models.RoleAdmin},
	"issue.history": {models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin},
	"issue.receipt": {models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin},

	"officer.list": {models.RoleSecurity, models.RoleStoreManager, models.RoleAdmin},
}

// Allowed reports whether a role may reach an operation.
func Allowed(operation, role string) bool {
	for _, allowed := range rolePolicy[operation] {
		if allowed == role {
			return true
		}
	}
	return false
}

// RequirePermission gates a route on the policy table. Must run after
// AuthMiddleware.
func RequirePermission(operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid role",
			})
		}
		if !Allowed(operation, role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: You do not have permission",
			})
		}
		return c.Next()
	}
}
