package repositories

import (
	"gatestore-app/models"
	"gatestore-app/types"
)

func (r *Repository) CreateGateEntry(entry *models.GateEntry) error {
	return r.db.Create(entry).Error
}

func (r *Repository) GetGateEntry(id types.SnowflakeID) (*models.GateEntry, error) {
	var entry models.GateEntry
	err := r.db.Preload("InwardProcess.Items").First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &entry, nil
}

func (r *Repository) SaveGateEntry(entry *models.GateEntry) error {
	return r.db.Save(entry).Error
}

// TransitionStage2 flips the stage 2 status only while it still holds the
// expected value. Of two concurrent deciders the second matches no row and
// gets ErrStateConflict, which makes the decision single-shot.
func (r *Repository) TransitionStage2(id types.SnowflakeID, from, to string) error {
	res := r.db.Model(&models.GateEntry{}).
		Where("id = ? AND stage2_status = ?", id, from).
		UpdateColumn("stage2_status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateConflict
	}
	return nil
}

// LastGatePassNumber returns the most recently issued gate pass, or "" when
// no entry exists yet.
func (r *Repository) LastGatePassNumber() (string, error) {
	var entry models.GateEntry
	err := r.db.Unscoped().Order("id DESC").Limit(1).Find(&entry).Error
	if err != nil {
		return "", err
	}
	return entry.GatePassNumber, nil
}

func (r *Repository) ListGateEntries(filter GateEntryFilter) ([]models.GateEntry, error) {
	query := r.db.Preload("InwardProcess.Items").Order("created_at DESC")

	if filter.Stage1Status != "" {
		query = query.Where("stage1_status = ?", filter.Stage1Status)
	}
	if filter.Stage2Status != "" {
		query = query.Where("stage2_status = ?", filter.Stage2Status)
	}
	if filter.OfficerID != 0 {
		query = query.Where("request_officer_id = ?", filter.OfficerID)
	}

	var entries []models.GateEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	if filter.Verified == nil {
		return entries, nil
	}

	// InwardProcess presence is filtered after the preload so the query stays
	// portable across all three drivers.
	filtered := entries[:0]
	for _, entry := range entries {
		if entry.Verified() == *filter.Verified {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

func (r *Repository) CreateInwardProcess(process *models.InwardProcess) error {
	return r.db.Create(process).Error
}

func (r *Repository) SaveInwardProcess(process *models.InwardProcess) error {
	return r.db.Save(process).Error
}

// ReplaceInwardItems swaps the item lines of a verification in place. Used by
// the officer correction path only, never after final approval.
func (r *Repository) ReplaceInwardItems(processID uint, items []models.InwardItem) error {
	if err := r.db.Unscoped().
		Where("inward_process_id = ?", processID).
		Delete(&models.InwardItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].InwardProcessID = processID
	}
	return r.db.Create(&items).Error
}
