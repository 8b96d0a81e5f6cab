package services

import (
	"errors"
	"fmt"
	"time"

	"gatestore-app/models"
	"gatestore-app/repositories"
	"gatestore-app/types"

	"github.com/google/uuid"
)

// IssueService drives the outgoing-material workflow: the store manager files
// a request against the catalog and the targeted officer approves or rejects
// it. Approval debits stock exactly once and never below zero.
type IssueService struct {
	store repositories.Store
}

func NewIssueService(store repositories.Store) *IssueService {
	return &IssueService{store: store}
}

type IssueRequestInput struct {
	MaterialID        uint   `json:"material_id" validate:"required"`
	QuantityRequested int    `json:"quantity_requested" validate:"required"`
	Purpose           string `json:"purpose"`
	RequestingDept    string `json:"requesting_dept"`
	OfficerID         uint   `json:"officer_id" validate:"required"`
}

// Request files an issue request. Stock availability is not checked here; the
// check happens at approval time against the stock of that moment.
func (s *IssueService) Request(actor Principal, input IssueRequestInput) (*models.MaterialIssue, error) {
	if !actor.HasRole(models.RoleStoreManager, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only the store manager can request issues"}
	}
	if input.QuantityRequested <= 0 {
		return nil, &ValidationError{Reason: "quantity requested must be positive"}
	}

	if _, err := s.store.GetMaterial(input.MaterialID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Entity: "material"}
		}
		return nil, err
	}

	officer, err := s.store.GetUser(input.OfficerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &ValidationError{Reason: "target officer not found"}
	}
	if err != nil {
		return nil, err
	}
	if !officer.IsApprover() {
		return nil, &ValidationError{Reason: "target user cannot approve issues"}
	}

	issue := &models.MaterialIssue{
		MaterialID:        input.MaterialID,
		QuantityRequested: input.QuantityRequested,
		Purpose:           input.Purpose,
		RequestingDept:    input.RequestingDept,
		RequestedByID:     actor.ID,
		OfficerID:         officer.ID,
		Status:            models.StatusPending,
	}
	if err := s.store.CreateIssue(issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// Pending lists issue requests awaiting the caller's decision.
func (s *IssueService) Pending(actor Principal) ([]models.MaterialIssue, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can review issue requests"}
	}
	filter := repositories.IssueFilter{Status: models.StatusPending}
	if !actor.IsAdmin() {
		filter.OfficerID = actor.ID
	}
	return s.store.ListIssues(filter)
}

// Decide approves or rejects a pending issue. Approval runs the stock check,
// the debit, the ledger line and the status flip as one transaction; when
// stock is short the request stays PENDING and InsufficientStockError is
// returned.
func (s *IssueService) Decide(actor Principal, issueID types.SnowflakeID, decision string) (*models.MaterialIssue, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "only officers can decide issue requests"}
	}
	if !validDecision(decision) {
		return nil, &ValidationError{Reason: "decision must be APPROVED or REJECTED"}
	}

	issue, err := s.getIssue(issueID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && issue.OfficerID != actor.ID {
		return nil, &AuthorizationError{Reason: "issue is assigned to another officer"}
	}
	if issue.Status != models.StatusPending {
		return nil, &StateError{Reason: "issue already decided"}
	}

	if decision == models.StatusRejected {
		if err := s.store.TransitionIssueStatus(issue.ID, models.StatusPending, models.StatusRejected); err != nil {
			if errors.Is(err, repositories.ErrStateConflict) {
				return nil, &StateError{Reason: "issue already decided"}
			}
			return nil, err
		}
		issue.Status = models.StatusRejected
		return issue, nil
	}

	now := time.Now()
	err = s.store.Transaction(func(tx repositories.Store) error {
		// Claim the decision before touching stock. A concurrent decider
		// fails this conditional update and rolls back with nothing debited;
		// the pre-checks above only catch sequential repeats.
		if err := tx.TransitionIssueStatus(issue.ID, models.StatusPending, models.StatusApproved); err != nil {
			if errors.Is(err, repositories.ErrStateConflict) {
				return &StateError{Reason: "issue already decided"}
			}
			return err
		}
		material, err := tx.GetMaterial(issue.MaterialID)
		if errors.Is(err, repositories.ErrNotFound) {
			return &NotFoundError{Entity: "material"}
		}
		if err != nil {
			return err
		}

		balance, err := tx.AdjustStock(material.ID, -issue.QuantityRequested)
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return &InsufficientStockError{
				MaterialCode: material.Code,
				Available:    material.CurrentStock,
				Requested:    issue.QuantityRequested,
			}
		}
		if err != nil {
			return err
		}

		issue.Status = models.StatusApproved
		issue.ApprovedByID = &actor.ID
		issue.ApprovedAt = &now
		issue.IssueNoteNo = newIssueNoteNo()
		if err := tx.SaveIssue(issue); err != nil {
			return err
		}

		return tx.CreateInventoryLog(&models.InventoryLog{
			MaterialID:      material.ID,
			ChangeQuantity:  -issue.QuantityRequested,
			BalanceAfter:    balance,
			TransactionType: models.TransactionIssue,
			ReferenceNo:     issue.IssueNoteNo,
			CreatedByID:     actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return issue, nil
}

// History lists issue requests, optionally narrowed to one status. Officers
// see only requests targeted at them.
func (s *IssueService) History(actor Principal, status string) ([]models.MaterialIssue, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "not allowed to view issue history"}
	}
	if status != "" && status != models.StatusPending &&
		status != models.StatusApproved && status != models.StatusRejected {
		return nil, &ValidationError{Reason: "unknown issue status: " + status}
	}
	filter := repositories.IssueFilter{Status: status}
	if actor.Role == models.RoleOfficer {
		filter.OfficerID = actor.ID
	}
	return s.store.ListIssues(filter)
}

// IssueReceipt is the printable issue note for an approved request.
type IssueReceipt struct {
	IssueNoteNo    string     `json:"issue_note_no"`
	MaterialCode   string     `json:"material_code"`
	MaterialName   string     `json:"material_name"`
	Unit           string     `json:"unit"`
	Quantity       int        `json:"quantity"`
	Purpose        string     `json:"purpose"`
	RequestingDept string     `json:"requesting_dept"`
	RequestedBy    string     `json:"requested_by"`
	ApprovedBy     string     `json:"approved_by"`
	ApprovedAt     *time.Time `json:"approved_at"`
}

// Receipt renders the issue note for an approved issue.
func (s *IssueService) Receipt(actor Principal, issueID types.SnowflakeID) (*IssueReceipt, error) {
	if !actor.HasRole(models.RoleOfficer, models.RoleStoreManager, models.RoleAdmin) {
		return nil, &AuthorizationError{Reason: "not allowed to view issue receipts"}
	}

	issue, err := s.getIssue(issueID)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleOfficer && issue.OfficerID != actor.ID {
		return nil, &AuthorizationError{Reason: "issue is assigned to another officer"}
	}
	if issue.Status != models.StatusApproved {
		return nil, &StateError{Reason: "receipt is only available for approved issues"}
	}

	material := issue.Material
	if material == nil {
		material, err = s.store.GetMaterial(issue.MaterialID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, &NotFoundError{Entity: "material"}
			}
			return nil, err
		}
	}

	receipt := &IssueReceipt{
		IssueNoteNo:    issue.IssueNoteNo,
		MaterialCode:   material.Code,
		MaterialName:   material.Name,
		Unit:           material.Unit,
		Quantity:       issue.QuantityRequested,
		Purpose:        issue.Purpose,
		RequestingDept: issue.RequestingDept,
		ApprovedAt:     issue.ApprovedAt,
	}
	if requester, rErr := s.store.GetUser(issue.RequestedByID); rErr == nil {
		receipt.RequestedBy = requester.Name
	}
	if issue.ApprovedByID != nil {
		if approver, aErr := s.store.GetUser(*issue.ApprovedByID); aErr == nil {
			receipt.ApprovedBy = approver.Name
		}
	}
	return receipt, nil
}

func (s *IssueService) getIssue(issueID types.SnowflakeID) (*models.MaterialIssue, error) {
	issue, err := s.store.GetIssue(issueID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Entity: "issue request"}
	}
	if err != nil {
		return nil, err
	}
	return issue, nil
}

func newIssueNoteNo() string {
	id := uuid.New()
	return fmt.Sprintf("NOTE-%X", id[:4])
}
