package repositories

import (
	"errors"
	"time"

	"gatestore-app/models"
	"gatestore-app/types"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientStock indicates a conditional stock update matched no row,
	// i.e. the debit would have driven current_stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStateConflict indicates a conditional status transition matched no
	// row, i.e. another decision already landed on the record.
	ErrStateConflict = errors.New("state already changed")
)

type GateEntryFilter struct {
	Stage1Status string
	Stage2Status string
	OfficerID    uint  // 0 = any officer
	Verified     *bool // nil = either
}

type MaterialFilter struct {
	Category string
	Search   string // matches code or name
}

type IssueFilter struct {
	Status    string // "" = any
	OfficerID uint   // 0 = any officer
}

// StoreItem is one shelved line in the store inventory view.
type StoreItem struct {
	ID             uint   `json:"id"`
	MaterialName   string `json:"material_name"`
	MaterialCode   string `json:"material_code"`
	Category       string `json:"category"`
	Unit           string `json:"unit"`
	Quantity       int    `json:"quantity"`
	StoreRoom      string `json:"store_room"`
	RackNo         string `json:"rack_no"`
	ShelfNo        string `json:"shelf_no"`
	InwardDate     string `json:"inward_date"`
	GatePassNumber string `json:"gate_pass_number"`
	OfficerName    string `json:"officer_name"`
}

// Store is the persistence boundary consumed by the workflow services.
// The GORM Repository implements it for production; tests swap in a fake.
type Store interface {
	// Transaction runs fn against a store bound to one database transaction.
	// Returning an error rolls every write back.
	Transaction(fn func(Store) error) error

	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	ListOfficers() ([]models.User, error)
	CreateLoginLog(entry *models.LoginLog) error
	CloseLoginLog(userID uint, at time.Time) error

	// Gate entries
	CreateGateEntry(entry *models.GateEntry) error
	GetGateEntry(id types.SnowflakeID) (*models.GateEntry, error)
	SaveGateEntry(entry *models.GateEntry) error
	TransitionStage2(id types.SnowflakeID, from, to string) error
	LastGatePassNumber() (string, error)
	ListGateEntries(filter GateEntryFilter) ([]models.GateEntry, error)

	// Inward processes
	CreateInwardProcess(process *models.InwardProcess) error
	SaveInwardProcess(process *models.InwardProcess) error
	ReplaceInwardItems(processID uint, items []models.InwardItem) error

	// Materials and inventory ledger
	CreateMaterial(material *models.Material) error
	SaveMaterial(material *models.Material) error
	GetMaterial(id uint) (*models.Material, error)
	GetMaterialByCode(code string) (*models.Material, error)
	ListMaterials(filter MaterialFilter) ([]models.Material, error)
	AdjustStock(materialID uint, delta int) (int, error)
	CreateInventoryLog(entry *models.InventoryLog) error
	ListStoreItems(officerID uint) ([]StoreItem, error)

	// Material issues
	CreateIssue(issue *models.MaterialIssue) error
	GetIssue(id types.SnowflakeID) (*models.MaterialIssue, error)
	SaveIssue(issue *models.MaterialIssue) error
	TransitionIssueStatus(id types.SnowflakeID, from, to string) error
	ListIssues(filter IssueFilter) ([]models.MaterialIssue, error)
}

// Repository is the GORM-backed Store.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Transaction(fn func(Store) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
