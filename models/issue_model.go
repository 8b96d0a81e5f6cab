package models

import (
	"time"

	"gatestore-app/controllers/idgen"
	"gatestore-app/types"

	"gorm.io/gorm"
)

// MaterialIssue is one outgoing-material request. PENDING until the targeted
// officer (or an admin) decides; APPROVED debits stock exactly once.
type MaterialIssue struct {
	gorm.Model
	ID                types.SnowflakeID `json:"id" gorm:"primaryKey"`
	MaterialID        uint              `json:"material_id"`
	QuantityRequested int               `json:"quantity_requested"`
	Purpose           string            `json:"purpose"`
	RequestingDept    string            `json:"requesting_dept"`
	RequestedByID     uint              `json:"requested_by_id"`
	OfficerID         uint              `json:"officer_id"`
	Status            string            `json:"status" gorm:"default:'PENDING'"`
	ApprovedByID      *uint             `json:"approved_by_id"`
	ApprovedAt        *time.Time        `json:"approved_at"`
	IssueNoteNo       string            `json:"issue_note_no"`

	Material *Material `gorm:"foreignKey:MaterialID" json:"material"`
}

func (i *MaterialIssue) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == 0 {
		i.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
