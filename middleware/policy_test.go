package middleware

import (
	"testing"

	"gatestore-app/models"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		operation string
		role      string
		want      bool
	}{
		{"gate_entry.create", models.RoleSecurity, true},
		{"gate_entry.create", models.RoleOfficer, false},
		{"gate_entry.stage1", models.RoleOfficer, true},
		{"gate_entry.stage1", models.RoleStoreManager, false},
		{"store.verify", models.RoleStoreManager, true},
		{"store.verify", models.RoleSecurity, false},
		{"store.edit", models.RoleOfficer, true},
		{"store.edit", models.RoleStoreManager, false},
		{"issue.request", models.RoleStoreManager, true},
		{"issue.decide", models.RoleOfficer, true},
		{"issue.decide", models.RoleStoreManager, false},
		{"material.list", models.RoleSecurity, true},
		{"officer.list", models.RoleSecurity, true},
		{"officer.list", models.RoleOfficer, false},
		{"unknown.op", models.RoleAdmin, false},
		{"issue.decide", "", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Allowed(c.operation, c.role), "%s / %s", c.operation, c.role)
	}
}

func TestAdminAllowedEverywhereExceptUnknown(t *testing.T) {
	for operation := range rolePolicy {
		assert.True(t, Allowed(operation, models.RoleAdmin), operation)
	}
}
