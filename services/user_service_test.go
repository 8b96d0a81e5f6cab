package services

import (
	"testing"

	"gatestore-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOfficers(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "security", models.RoleSecurity)
	store.addUser(2, "officer", models.RoleOfficer)
	store.addUser(4, "admin", models.RoleAdmin)
	svc := NewUserService(store)

	// admins can approve too, so they appear alongside officers
	officers, err := svc.ListOfficers(security)
	require.NoError(t, err)
	require.Len(t, officers, 2)
	usernames := []string{officers[0].Username, officers[1].Username}
	assert.ElementsMatch(t, []string{"officer", "admin"}, usernames)

	_, err = svc.ListOfficers(officer)
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
}
