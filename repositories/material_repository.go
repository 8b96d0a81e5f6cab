package repositories

import (
	"gatestore-app/models"

	"gorm.io/gorm"
)

func (r *Repository) CreateMaterial(material *models.Material) error {
	return r.db.Create(material).Error
}

func (r *Repository) SaveMaterial(material *models.Material) error {
	return r.db.Save(material).Error
}

func (r *Repository) GetMaterial(id uint) (*models.Material, error) {
	var material models.Material
	if err := r.db.First(&material, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &material, nil
}

func (r *Repository) GetMaterialByCode(code string) (*models.Material, error) {
	var material models.Material
	if err := r.db.Where("code = ?", code).First(&material).Error; err != nil {
		return nil, notFound(err)
	}
	return &material, nil
}

func (r *Repository) ListMaterials(filter MaterialFilter) ([]models.Material, error) {
	query := r.db.Order("code")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
	}

	var materials []models.Material
	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// AdjustStock applies a signed delta to current_stock as a single conditional
// UPDATE. The guard keeps the row-level mutation atomic: two approvals racing
// on the same material serialize on the row, and a debit below zero matches
// no row at all. Returns the balance after the mutation.
func (r *Repository) AdjustStock(materialID uint, delta int) (int, error) {
	res := r.db.Model(&models.Material{}).
		Where("id = ? AND current_stock + ? >= 0", materialID, delta).
		UpdateColumn("current_stock", gorm.Expr("current_stock + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrInsufficientStock
	}

	var material models.Material
	if err := r.db.Select("current_stock").First(&material, materialID).Error; err != nil {
		return 0, notFound(err)
	}
	return material.CurrentStock, nil
}

func (r *Repository) CreateInventoryLog(entry *models.InventoryLog) error {
	return r.db.Create(entry).Error
}

// ListStoreItems returns the shelved lines of finally approved entries,
// optionally scoped to one requesting officer.
func (r *Repository) ListStoreItems(officerID uint) ([]StoreItem, error) {
	sqlStoreItems := `select i.id, m.name as material_name, m.code as material_code,
	m.category, m.unit, i.quantity_received as quantity,
	i.store_room, i.rack_no, i.shelf_no,
	p.invoice_date as inward_date, e.gate_pass_number, u.name as officer_name
	from inward_items i
	inner join inward_processes p on i.inward_process_id = p.id
	inner join gate_entries e on p.gate_entry_id = e.id
	left join materials m on i.material_id = m.id
	left join users u on e.request_officer_id = u.id
	where e.stage2_status = 'APPROVED' and i.deleted_at is null`

	args := []interface{}{}
	if officerID != 0 {
		sqlStoreItems += " and e.request_officer_id = ?"
		args = append(args, officerID)
	}
	sqlStoreItems += " order by p.invoice_date desc, i.id"

	var items []StoreItem
	if err := r.db.Raw(sqlStoreItems, args...).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
