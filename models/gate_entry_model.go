package models

import (
	"time"

	"gatestore-app/controllers/idgen"
	"gatestore-app/types"

	"gorm.io/gorm"
)

// Shared approval statuses for both gate entry stages and material issues.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// GateEntry is one vendor delivery tracked from the gate to the shelf.
// Stage 1 is the officer's go-ahead before physical verification, stage 2 the
// final approval that credits inventory.
type GateEntry struct {
	gorm.Model
	ID               types.SnowflakeID `json:"id" gorm:"primaryKey"`
	GatePassNumber   string            `json:"gate_pass_number" gorm:"unique"`
	VendorName       string            `json:"vendor_name"`
	VendorLocation   string            `json:"vendor_location"`
	VehicleNumber    string            `json:"vehicle_number"`
	DriverName       string            `json:"driver_name"`
	DriverPhone      string            `json:"driver_phone"`
	MaterialDesc     string            `json:"material_desc"`
	ApproxQuantity   int               `json:"approx_quantity"`
	CreatedByID      uint              `json:"created_by_id"`
	RequestOfficerID uint              `json:"request_officer_id"`
	Stage1Status     string            `json:"stage1_status" gorm:"default:'PENDING'"`
	Stage1Remarks    string            `json:"stage1_remarks"`
	Stage2Status     string            `json:"stage2_status" gorm:"default:'PENDING'"`
	Stage2Remarks    string            `json:"stage2_remarks"`

	// Relations
	InwardProcess *InwardProcess `gorm:"foreignKey:GateEntryID;references:ID;constraint:OnDelete:CASCADE" json:"inward_process"`
}

func (e *GateEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == 0 {
		e.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

// Verified reports whether the store manager has recorded the inward process.
func (e *GateEntry) Verified() bool {
	return e.InwardProcess != nil
}

// InwardProcess is the store manager's verification record for one entry.
// At most one per gate entry; immutable once stage 2 is decided.
type InwardProcess struct {
	gorm.Model
	GateEntryID       types.SnowflakeID `json:"gate_entry_id" gorm:"uniqueIndex"`
	InvoiceNo         string            `json:"invoice_no"`
	InvoiceDate       string            `json:"invoice_date" gorm:"type:date"`
	VendorName        string            `json:"vendor_name"`
	Remarks           string            `json:"remarks"`
	PhysicalCheckDone bool              `json:"physical_check_done"`
	FinalApprovedByID *uint             `json:"final_approved_by_id"`
	FinalApprovedAt   *time.Time        `json:"final_approved_at"`

	Items []InwardItem `gorm:"foreignKey:InwardProcessID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
}

// InwardItem is one physical line item received and shelved. MaterialID stays
// nil until the item is classified against the catalog; only classified items
// credit stock on final approval.
type InwardItem struct {
	gorm.Model
	InwardProcessID  uint   `json:"inward_process_id"`
	MaterialID       *uint  `json:"material_id"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Unit             string `json:"unit"`
	QuantityReceived int    `json:"quantity_received"`
	StoreRoom        string `json:"store_room"`
	RackNo           string `json:"rack_no"`
	ShelfNo          string `json:"shelf_no"`
}
