package services

import (
	"testing"

	"gatestore-app/models"
	"gatestore-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaterialFixture() (*fakeStore, *MaterialService) {
	store := newFakeStore()
	store.addUser(2, "officer", models.RoleOfficer)
	store.addUser(3, "store", models.RoleStoreManager)
	return store, NewMaterialService(store)
}

func TestCreateMaterial(t *testing.T) {
	_, svc := newMaterialFixture()

	material, err := svc.Create(officer, MaterialInput{
		Code:          " ELEC-100 ",
		Name:          "Cable Tray",
		Category:      models.CategoryElectrical,
		Unit:          "Mtr",
		MinStockLevel: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "ELEC-100", material.Code)
	assert.Equal(t, 0, material.CurrentStock)
}

func TestCreateMaterialValidation(t *testing.T) {
	store, svc := newMaterialFixture()
	store.addMaterial(10, "ELEC-001", 0)

	valid := MaterialInput{
		Code:          "ELEC-100",
		Name:          "Cable Tray",
		Category:      models.CategoryElectrical,
		Unit:          "Mtr",
		MinStockLevel: 10,
	}

	var authErr *AuthorizationError
	_, err := svc.Create(manager, valid)
	require.ErrorAs(t, err, &authErr)

	var valErr *ValidationError
	cases := []func(MaterialInput) MaterialInput{
		func(in MaterialInput) MaterialInput { in.Code = "  "; return in },
		func(in MaterialInput) MaterialInput { in.Name = ""; return in },
		func(in MaterialInput) MaterialInput { in.Category = "GADGETS"; return in },
		func(in MaterialInput) MaterialInput { in.Unit = "Bag"; return in },
		func(in MaterialInput) MaterialInput { in.MinStockLevel = 0; return in },
		func(in MaterialInput) MaterialInput { in.Code = "ELEC-001"; return in }, // duplicate
	}
	for _, mutate := range cases {
		_, err := svc.Create(officer, mutate(valid))
		require.ErrorAs(t, err, &valErr)
	}
}

func TestListMaterials(t *testing.T) {
	store, svc := newMaterialFixture()
	store.addMaterial(10, "ELEC-001", 0)
	mech := store.addMaterial(11, "MECH-001", 0)
	mech.Category = models.CategoryMechanical

	all, err := svc.List(manager, repositories.MaterialFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	electrical, err := svc.List(manager, repositories.MaterialFilter{Category: models.CategoryElectrical})
	require.NoError(t, err)
	require.Len(t, electrical, 1)
	assert.Equal(t, "ELEC-001", electrical[0].Code)

	byCode, err := svc.List(manager, repositories.MaterialFilter{Search: "MECH"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "MECH-001", byCode[0].Code)

	byName, err := svc.List(manager, repositories.MaterialFilter{Search: "Material"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	none, err := svc.List(manager, repositories.MaterialFilter{Search: "HYDRAULIC"})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.List(manager, repositories.MaterialFilter{Category: "GADGETS"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestStoreItemsVisibility(t *testing.T) {
	store, svc := newMaterialFixture()
	store.items = []ownedStoreItem{
		{officerID: 2, item: repositories.StoreItem{MaterialCode: "ELEC-001", OfficerName: "Duty Officer"}},
		{officerID: 5, item: repositories.StoreItem{MaterialCode: "MECH-001", OfficerName: "Other Officer"}},
	}

	// the store manager sees every line with the officer column
	all, err := svc.StoreItems(manager)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Duty Officer", all[0].OfficerName)

	// officers see only their own lines and no officer column
	mine, err := svc.StoreItems(officer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "ELEC-001", mine[0].MaterialCode)
	assert.Empty(t, mine[0].OfficerName)

	_, err = svc.StoreItems(security)
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
}
