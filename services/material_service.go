package services

import (
	"errors"
	"strings"

	"gatestore-app/models"
	"gatestore-app/repositories"
)

// MaterialService owns the catalog and the read side of the inventory ledger.
// Stock counters are never edited here; only the two workflows mutate them.
type MaterialService struct {
	store repositories.Store
}

func NewMaterialService(store repositories.Store) *MaterialService {
	return &MaterialService{store: store}
}

type MaterialInput struct {
	Code          string `json:"code" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Category      string `json:"category" validate:"required"`
	Unit          string `json:"unit" validate:"required"`
	MinStockLevel int    `json:"min_stock_level" validate:"required"`
}

// Create adds a catalog master record with zero opening stock.
func (s *MaterialService) Create(actor Principal, input MaterialInput) (*models.Material, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can create materials"}
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, &ValidationError{Reason: "material code is required"}
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, &ValidationError{Reason: "material name is required"}
	}
	if !models.ValidCategory(input.Category) {
		return nil, &ValidationError{Reason: "unknown material category: " + input.Category}
	}
	if !models.ValidUnit(input.Unit) {
		return nil, &ValidationError{Reason: "unknown material unit: " + input.Unit}
	}
	if input.MinStockLevel <= 0 {
		return nil, &ValidationError{Reason: "minimum stock level must be positive"}
	}

	if _, err := s.store.GetMaterialByCode(code); err == nil {
		return nil, &ValidationError{Reason: "material code already exists"}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	material := &models.Material{
		Code:          code,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Category:      input.Category,
		Unit:          input.Unit,
		MinStockLevel: input.MinStockLevel,
		CurrentStock:  0,
		CreatedBy:     int(actor.ID),
	}
	if err := s.store.CreateMaterial(material); err != nil {
		return nil, err
	}
	return material, nil
}

// List returns catalog entries, optionally filtered by category and a
// free-text match on code or name. Readable by every role.
func (s *MaterialService) List(actor Principal, filter repositories.MaterialFilter) ([]models.Material, error) {
	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		return nil, &ValidationError{Reason: "unknown material category: " + filter.Category}
	}
	return s.store.ListMaterials(filter)
}

// StoreItems returns the shelved inward lines visible to the caller. Officers
// see only their own entries and without the officer column; the store manager
// and admins see everything.
func (s *MaterialService) StoreItems(actor Principal) ([]repositories.StoreItem, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "not allowed to view store inventory"}
	}

	officerID := uint(0)
	if actor.Role == models.RoleOfficer {
		officerID = actor.ID
	}
	items, err := s.store.ListStoreItems(officerID)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleOfficer {
		for i := range items {
			items[i].OfficerName = ""
		}
	}
	return items, nil
}
