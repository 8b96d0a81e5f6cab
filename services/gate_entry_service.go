package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gatestore-app/models"
	"gatestore-app/repositories"
	"gatestore-app/types"
)

// GateEntryService drives the two-stage delivery approval workflow:
// security logs the arrival, the assigned officer clears it (stage 1), the
// store manager verifies and shelves it, and the officer's final decision
// (stage 2) credits inventory exactly once.
type GateEntryService struct {
	store    repositories.Store
	notifier Notifier
}

func NewGateEntryService(store repositories.Store, notifier Notifier) *GateEntryService {
	return &GateEntryService{store: store, notifier: notifier}
}

type CreateEntryInput struct {
	VendorName       string `json:"vendor_name" validate:"required"`
	VendorLocation   string `json:"vendor_location"`
	VehicleNumber    string `json:"vehicle_number"`
	DriverName       string `json:"driver_name"`
	DriverPhone      string `json:"driver_phone"`
	MaterialDesc     string `json:"material_desc"`
	ApproxQuantity   int    `json:"approx_quantity"`
	RequestOfficerID uint   `json:"request_officer_id" validate:"required"`
}

type VerificationItemInput struct {
	MaterialID       *uint  `json:"material_id"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Unit             string `json:"unit"`
	QuantityReceived int    `json:"quantity_received" validate:"required"`
	StoreRoom        string `json:"store_room"`
	RackNo           string `json:"rack_no"`
	ShelfNo          string `json:"shelf_no"`
}

type VerificationInput struct {
	InvoiceNo   string                  `json:"invoice_no" validate:"required"`
	InvoiceDate string                  `json:"invoice_date"`
	VendorName  string                  `json:"vendor_name"`
	Remarks     string                  `json:"remarks"`
	Items       []VerificationItemInput `json:"items" validate:"required"`
}

// CreateEntry logs a vendor arrival at the gate and assigns the approving
// officer. Both stages start PENDING.
func (s *GateEntryService) CreateEntry(actor Principal, input CreateEntryInput) (*models.GateEntry, error) {
	if !actor.HasRole(models.RoleSecurity, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only security can log gate entries"}
	}
	if strings.TrimSpace(input.VendorName) == "" {
		return nil, &ValidationError{Reason: "vendor name is required"}
	}

	officer, err := s.store.GetUser(input.RequestOfficerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &ValidationError{Reason: "requested officer not found"}
	}
	if err != nil {
		return nil, err
	}
	if !officer.IsApprover() {
		return nil, &ValidationError{Reason: "requested user cannot approve gate entries"}
	}

	entry := &models.GateEntry{
		VendorName:       strings.TrimSpace(input.VendorName),
		VendorLocation:   input.VendorLocation,
		VehicleNumber:    input.VehicleNumber,
		DriverName:       input.DriverName,
		DriverPhone:      input.DriverPhone,
		MaterialDesc:     input.MaterialDesc,
		ApproxQuantity:   input.ApproxQuantity,
		CreatedByID:      actor.ID,
		RequestOfficerID: officer.ID,
		Stage1Status:     models.StatusPending,
		Stage2Status:     models.StatusPending,
	}

	// Gate pass generation and insert share one transaction so two arrivals
	// logged at the same moment cannot take the same number.
	err = s.store.Transaction(func(tx repositories.Store) error {
		last, err := tx.LastGatePassNumber()
		if err != nil {
			return err
		}
		entry.GatePassNumber = NextGatePassNumber(last)
		return tx.CreateGateEntry(entry)
	})
	if err != nil {
		return nil, err
	}

	s.notify(officer.Email, "Gate entry "+entry.GatePassNumber+" awaiting approval",
		fmt.Sprintf("Vendor %s arrived at the gate. Pass %s is waiting for your stage 1 decision.",
			entry.VendorName, entry.GatePassNumber))

	return entry, nil
}

// PendingStage1 lists entries awaiting the caller's stage 1 decision. Admins
// see every pending entry.
func (s *GateEntryService) PendingStage1(actor Principal) ([]models.GateEntry, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can review gate approvals"}
	}
	filter := repositories.GateEntryFilter{Stage1Status: models.StatusPending}
	if !actor.IsAdmin() {
		filter.OfficerID = actor.ID
	}
	return s.store.ListGateEntries(filter)
}

// DecideStage1 records the officer's initial approval or rejection.
// Rejection terminates the workflow.
func (s *GateEntryService) DecideStage1(actor Principal, entryID types.SnowflakeID, decision, remarks string) (*models.GateEntry, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can decide gate approvals"}
	}
	if !validDecision(decision) {
		return nil, &ValidationError{Reason: "decision must be APPROVED or REJECTED"}
	}

	entry, err := s.getEntry(entryID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && entry.RequestOfficerID != actor.ID {
		return nil, &AuthorizationError{Reason: "entry is assigned to another officer"}
	}
	if entry.Stage1Status != models.StatusPending {
		return nil, &StateError{Reason: "stage 1 already decided"}
	}

	entry.Stage1Status = decision
	entry.Stage1Remarks = remarks
	if err := s.store.SaveGateEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// PendingVerification lists stage 1 approved entries that the store manager
// has not verified yet.
func (s *GateEntryService) PendingVerification(actor Principal) ([]models.GateEntry, error) {
	if !actor.HasRole(models.RoleStoreManager, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only the store manager can verify deliveries"}
	}
	unverified := false
	return s.store.ListGateEntries(repositories.GateEntryFilter{
		Stage1Status: models.StatusApproved,
		Stage2Status: models.StatusPending,
		Verified:     &unverified,
	})
}

// RecordVerification attaches the store manager's inward process to a stage 1
// approved entry. Inventory is not touched here; the credit happens on the
// final decision.
func (s *GateEntryService) RecordVerification(actor Principal, entryID types.SnowflakeID, input VerificationInput) (*models.GateEntry, error) {
	if !actor.HasRole(models.RoleStoreManager, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only the store manager can verify deliveries"}
	}
	if err := validateVerification(input); err != nil {
		return nil, err
	}

	entry, err := s.getEntry(entryID)
	if err != nil {
		return nil, err
	}
	if entry.Stage1Status != models.StatusApproved {
		return nil, &StateError{Reason: "entry is not stage 1 approved"}
	}
	if entry.Verified() {
		return nil, &StateError{Reason: "entry already verified"}
	}

	err = s.store.Transaction(func(tx repositories.Store) error {
		items, err := buildInwardItems(tx, input.Items)
		if err != nil {
			return err
		}
		process := &models.InwardProcess{
			GateEntryID:       entry.ID,
			InvoiceNo:         input.InvoiceNo,
			InvoiceDate:       input.InvoiceDate,
			VendorName:        input.VendorName,
			Remarks:           input.Remarks,
			PhysicalCheckDone: true,
			Items:             items,
		}
		if err := tx.CreateInwardProcess(process); err != nil {
			return err
		}
		entry.InwardProcess = process
		return nil
	})
	if err != nil {
		return nil, err
	}

	if officer, oErr := s.store.GetUser(entry.RequestOfficerID); oErr == nil {
		s.notify(officer.Email, "Gate entry "+entry.GatePassNumber+" verified",
			fmt.Sprintf("Store verification for pass %s is complete and awaits your final decision.",
				entry.GatePassNumber))
	}

	return entry, nil
}

// EditVerification is the officer's correction path: invoice metadata and item
// lines are replaced in place. Only available while stage 2 is undecided.
func (s *GateEntryService) EditVerification(actor Principal, entryID types.SnowflakeID, input VerificationInput) (*models.GateEntry, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can correct a verification"}
	}
	if err := validateVerification(input); err != nil {
		return nil, err
	}

	entry, err := s.getEntry(entryID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && entry.RequestOfficerID != actor.ID {
		return nil, &AuthorizationError{Reason: "entry is assigned to another officer"}
	}
	if !entry.Verified() {
		return nil, &StateError{Reason: "entry has not been verified yet"}
	}
	if entry.Stage2Status != models.StatusPending {
		return nil, &StateError{Reason: "verification is locked after the final decision"}
	}

	err = s.store.Transaction(func(tx repositories.Store) error {
		items, err := buildInwardItems(tx, input.Items)
		if err != nil {
			return err
		}
		process := entry.InwardProcess
		process.InvoiceNo = input.InvoiceNo
		process.InvoiceDate = input.InvoiceDate
		process.VendorName = input.VendorName
		process.Remarks = input.Remarks
		if err := tx.SaveInwardProcess(process); err != nil {
			return err
		}
		if err := tx.ReplaceInwardItems(process.ID, items); err != nil {
			return err
		}
		process.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// PendingFinal lists verified entries awaiting the caller's stage 2 decision.
func (s *GateEntryService) PendingFinal(actor Principal) ([]models.GateEntry, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can review final approvals"}
	}
	verified := true
	filter := repositories.GateEntryFilter{
		Stage1Status: models.StatusApproved,
		Stage2Status: models.StatusPending,
		Verified:     &verified,
	}
	if !actor.IsAdmin() {
		filter.OfficerID = actor.ID
	}
	return s.store.ListGateEntries(filter)
}

// DecideFinal records the stage 2 decision. Approval credits current stock
// for every classified item and appends one ledger line each, all inside one
// transaction with the status flip; a second call fails with StateError and
// leaves stock untouched.
func (s *GateEntryService) DecideFinal(actor Principal, entryID types.SnowflakeID, decision, remarks string) (*models.GateEntry, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can decide final approvals"}
	}
	if !validDecision(decision) {
		return nil, &ValidationError{Reason: "decision must be APPROVED or REJECTED"}
	}

	entry, err := s.getEntry(entryID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && entry.RequestOfficerID != actor.ID {
		return nil, &AuthorizationError{Reason: "entry is assigned to another officer"}
	}
	if !entry.Verified() {
		return nil, &StateError{Reason: "entry has not been verified yet"}
	}
	if entry.Stage2Status != models.StatusPending {
		return nil, &StateError{Reason: "final decision already made"}
	}

	if decision == models.StatusRejected {
		err = s.store.Transaction(func(tx repositories.Store) error {
			if err := tx.TransitionStage2(entry.ID, models.StatusPending, models.StatusRejected); err != nil {
				if errors.Is(err, repositories.ErrStateConflict) {
					return &StateError{Reason: "final decision already made"}
				}
				return err
			}
			entry.Stage2Status = models.StatusRejected
			entry.Stage2Remarks = remarks
			return tx.SaveGateEntry(entry)
		})
		if err != nil {
			return nil, err
		}
		return entry, nil
	}

	now := time.Now()
	err = s.store.Transaction(func(tx repositories.Store) error {
		// Claim the decision before crediting anything. A concurrent decider
		// fails this conditional update and rolls back with nothing credited;
		// the pre-checks above only catch sequential repeats.
		if err := tx.TransitionStage2(entry.ID, models.StatusPending, models.StatusApproved); err != nil {
			if errors.Is(err, repositories.ErrStateConflict) {
				return &StateError{Reason: "final decision already made"}
			}
			return err
		}
		for _, item := range entry.InwardProcess.Items {
			if item.MaterialID == nil {
				continue
			}
			balance, err := tx.AdjustStock(*item.MaterialID, item.QuantityReceived)
			if err != nil {
				return err
			}
			logEntry := &models.InventoryLog{
				MaterialID:      *item.MaterialID,
				ChangeQuantity:  item.QuantityReceived,
				BalanceAfter:    balance,
				TransactionType: models.TransactionInward,
				ReferenceNo:     entry.GatePassNumber,
				CreatedByID:     actor.ID,
			}
			if err := tx.CreateInventoryLog(logEntry); err != nil {
				return err
			}
		}
		entry.InwardProcess.FinalApprovedByID = &actor.ID
		entry.InwardProcess.FinalApprovedAt = &now
		if err := tx.SaveInwardProcess(entry.InwardProcess); err != nil {
			return err
		}
		entry.Stage2Status = models.StatusApproved
		entry.Stage2Remarks = remarks
		return tx.SaveGateEntry(entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *GateEntryService) getEntry(entryID types.SnowflakeID) (*models.GateEntry, error) {
	entry, err := s.store.GetGateEntry(entryID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Entity: "gate entry"}
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *GateEntryService) notify(to, subject, body string) {
	if s.notifier == nil || to == "" {
		return
	}
	s.notifier.Notify(to, subject, body)
}

func validateVerification(input VerificationInput) error {
	if strings.TrimSpace(input.InvoiceNo) == "" {
		return &ValidationError{Reason: "invoice number is required"}
	}
	if len(input.Items) == 0 {
		return &ValidationError{Reason: "at least one received item is required"}
	}
	for _, item := range input.Items {
		if item.QuantityReceived <= 0 {
			return &ValidationError{Reason: "quantity received must be positive"}
		}
		if item.Category != "" && !models.ValidCategory(item.Category) {
			return &ValidationError{Reason: "unknown material category: " + item.Category}
		}
		if item.Unit != "" && !models.ValidUnit(item.Unit) {
			return &ValidationError{Reason: "unknown material unit: " + item.Unit}
		}
	}
	return nil
}

// buildInwardItems resolves each line's material reference and pushes the
// classification fields back onto the catalog record when they differ.
// Lines without a material reference stay uncataloged and never credit stock.
func buildInwardItems(tx repositories.Store, inputs []VerificationItemInput) ([]models.InwardItem, error) {
	items := make([]models.InwardItem, 0, len(inputs))
	for _, input := range inputs {
		if input.MaterialID != nil {
			material, err := tx.GetMaterial(*input.MaterialID)
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, &NotFoundError{Entity: "material"}
			}
			if err != nil {
				return nil, err
			}
			changed := false
			if input.Description != "" && input.Description != material.Description {
				material.Description = input.Description
				changed = true
			}
			if input.Category != "" && input.Category != material.Category {
				material.Category = input.Category
				changed = true
			}
			if input.Unit != "" && input.Unit != material.Unit {
				material.Unit = input.Unit
				changed = true
			}
			if changed {
				if err := tx.SaveMaterial(material); err != nil {
					return nil, err
				}
			}
		}
		items = append(items, models.InwardItem{
			MaterialID:       input.MaterialID,
			Description:      input.Description,
			Category:         input.Category,
			Unit:             input.Unit,
			QuantityReceived: input.QuantityReceived,
			StoreRoom:        input.StoreRoom,
			RackNo:           input.RackNo,
			ShelfNo:          input.ShelfNo,
		})
	}
	return items, nil
}
