package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockDeviation(t *testing.T) {
	m := Material{MinStockLevel: 10, CurrentStock: 15}
	assert.InDelta(t, 0.5, m.StockDeviation(), 1e-9)

	m = Material{MinStockLevel: 10, CurrentStock: 5}
	assert.InDelta(t, -0.5, m.StockDeviation(), 1e-9)

	// no threshold means no deviation signal
	m = Material{MinStockLevel: 0, CurrentStock: 5}
	assert.Zero(t, m.StockDeviation())
}

func TestValidCategoryAndUnit(t *testing.T) {
	for _, c := range MaterialCategories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("GADGETS"))
	assert.False(t, ValidCategory("electrical"))

	for _, u := range MaterialUnits {
		assert.True(t, ValidUnit(u), u)
	}
	assert.False(t, ValidUnit("Bag"))
	assert.False(t, ValidUnit("nos"))
}

func TestIsApprover(t *testing.T) {
	assert.True(t, (&User{Role: RoleOfficer}).IsApprover())
	assert.True(t, (&User{Role: RoleAdmin}).IsApprover())
	assert.False(t, (&User{Role: RoleSecurity}).IsApprover())
	assert.False(t, (&User{Role: RoleStoreManager}).IsApprover())
}
