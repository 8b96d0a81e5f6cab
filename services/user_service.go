package services

import (
	"gatestore-app/models"
	"gatestore-app/repositories"
)

type UserService struct {
	store repositories.Store
}

func NewUserService(store repositories.Store) *UserService {
	return &UserService{store: store}
}

// ListOfficers returns the accounts that can be assigned as approving officer
// on gate entries and issue requests.
func (s *UserService) ListOfficers(actor Principal) ([]models.User, error) {
	if !actor.HasRole(models.RoleSecurity, models.RoleStoreManager, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "not allowed to list officers"}
	}
	return s.store.ListOfficers()
}
