package models

import (
	"gorm.io/gorm"
)

// Material categories.
const (
	CategoryConsumable    = "CONSUMABLE"
	CategorySpare         = "SPARE"
	CategoryAsset         = "ASSET"
	CategoryFireAndSafety = "FIRE_AND_SAFETY"
	CategoryAutomation    = "AUTOMATION"
	CategoryElectrical    = "ELECTRICAL"
	CategoryMechanical    = "MECHANICAL"
	CategoryChemicals     = "CHEMICALS"
	CategoryOilsAndLubes  = "OILS_AND_LUBRICANTS"
	CategoryStationary    = "STATIONARY"
)

var MaterialCategories = []string{
	CategoryConsumable,
	CategorySpare,
	CategoryAsset,
	CategoryFireAndSafety,
	CategoryAutomation,
	CategoryElectrical,
	CategoryMechanical,
	CategoryChemicals,
	CategoryOilsAndLubes,
	CategoryStationary,
}

var MaterialUnits = []string{"Nos", "Kg", "Ltr", "Mtr", "Box", "Set", "Roll"}

func ValidCategory(category string) bool {
	for _, c := range MaterialCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidUnit(unit string) bool {
	for _, u := range MaterialUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Material is a catalog master record. CurrentStock is mutated only by the
// gate entry and issue workflows, never edited directly.
type Material struct {
	gorm.Model
	Code          string `json:"code" gorm:"unique"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Unit          string `json:"unit"`
	MinStockLevel int    `json:"min_stock_level"`
	CurrentStock  int    `json:"current_stock" gorm:"default:0"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

// StockDeviation is the reorder indicator (current - min) / min.
func (m *Material) StockDeviation() float64 {
	if m.MinStockLevel <= 0 {
		return 0
	}
	return float64(m.CurrentStock-m.MinStockLevel) / float64(m.MinStockLevel)
}

// Inventory ledger transaction types.
const (
	TransactionInward = "INWARD"
	TransactionIssue  = "ISSUE"
)

// InventoryLog is one ledger line per stock mutation. ChangeQuantity is signed;
// BalanceAfter snapshots the material stock right after the mutation.
type InventoryLog struct {
	gorm.Model
	MaterialID      uint   `json:"material_id"`
	ChangeQuantity  int    `json:"change_quantity"`
	BalanceAfter    int    `json:"balance_after"`
	TransactionType string `json:"transaction_type"`
	ReferenceNo     string `json:"reference_no"`
	CreatedByID     uint   `json:"created_by_id"`
}
