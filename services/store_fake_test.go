package services

import (
	"strings"
	"time"

	"gatestore-app/models"
	"gatestore-app/repositories"
	"gatestore-app/types"
)

// fakeStore is an in-memory repositories.Store. Reads hand out copies, so
// nothing persists until the matching Save; Transaction runs against a clone
// and commits it back only on success, which mirrors rollback behavior.
type fakeStore struct {
	users     map[uint]*models.User
	entries   map[types.SnowflakeID]*models.GateEntry
	processes map[types.SnowflakeID]*models.InwardProcess
	materials map[uint]*models.Material
	issues    map[types.SnowflakeID]*models.MaterialIssue
	logs      []models.InventoryLog
	loginLogs []models.LoginLog
	items     []ownedStoreItem

	lastGatePass string
	nextID       uint
	nextSnowID   int64
}

type ownedStoreItem struct {
	officerID uint
	item      repositories.StoreItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     map[uint]*models.User{},
		entries:   map[types.SnowflakeID]*models.GateEntry{},
		processes: map[types.SnowflakeID]*models.InwardProcess{},
		materials: map[uint]*models.Material{},
		issues:    map[types.SnowflakeID]*models.MaterialIssue{},
	}
}

func (s *fakeStore) addUser(id uint, name, role string) *models.User {
	u := &models.User{Name: name, Username: name, Email: name + "@example.com", Role: role, IsActive: true}
	u.ID = id
	s.users[id] = u
	return u
}

func (s *fakeStore) addMaterial(id uint, code string, stock int) *models.Material {
	m := &models.Material{
		Code:          code,
		Name:          "Material " + code,
		Category:      models.CategoryElectrical,
		Unit:          "Nos",
		MinStockLevel: 1,
		CurrentStock:  stock,
	}
	m.ID = id
	s.materials[id] = m
	return m
}

func (s *fakeStore) genID() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) genSnowID() types.SnowflakeID {
	s.nextSnowID++
	return types.SnowflakeID(s.nextSnowID)
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, u := range s.users {
		c.users[id] = copyUser(u)
	}
	for id, e := range s.entries {
		c.entries[id] = copyEntry(e)
	}
	for id, p := range s.processes {
		c.processes[id] = copyProcess(p)
	}
	for id, m := range s.materials {
		c.materials[id] = copyMaterial(m)
	}
	for id, i := range s.issues {
		c.issues[id] = copyIssue(i)
	}
	c.logs = append(c.logs, s.logs...)
	c.loginLogs = append(c.loginLogs, s.loginLogs...)
	c.items = append(c.items, s.items...)
	c.lastGatePass = s.lastGatePass
	c.nextID = s.nextID
	c.nextSnowID = s.nextSnowID
	return c
}

func (s *fakeStore) Transaction(fn func(repositories.Store) error) error {
	tx := s.clone()
	if err := fn(tx); err != nil {
		return err
	}
	*s = *tx
	return nil
}

// Users

func (s *fakeStore) GetUser(id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return copyUser(u), nil
}

func (s *fakeStore) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeStore) ListOfficers() ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		if (u.Role == models.RoleOfficer || u.Role == models.RoleAdmin) && u.IsActive {
			out = append(out, *copyUser(u))
		}
	}
	return out, nil
}

func (s *fakeStore) CreateLoginLog(entry *models.LoginLog) error {
	s.loginLogs = append(s.loginLogs, *entry)
	return nil
}

func (s *fakeStore) CloseLoginLog(userID uint, at time.Time) error {
	for i := range s.loginLogs {
		if s.loginLogs[i].UserID == userID && s.loginLogs[i].LogoutAt == nil {
			s.loginLogs[i].LogoutAt = &at
		}
	}
	return nil
}

// Gate entries

func (s *fakeStore) CreateGateEntry(entry *models.GateEntry) error {
	if entry.ID == 0 {
		entry.ID = s.genSnowID()
	}
	s.entries[entry.ID] = copyEntry(entry)
	s.lastGatePass = entry.GatePassNumber
	return nil
}

func (s *fakeStore) GetGateEntry(id types.SnowflakeID) (*models.GateEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := copyEntry(e)
	if p, ok := s.processes[id]; ok {
		out.InwardProcess = copyProcess(p)
	}
	return out, nil
}

func (s *fakeStore) SaveGateEntry(entry *models.GateEntry) error {
	if _, ok := s.entries[entry.ID]; !ok {
		return repositories.ErrNotFound
	}
	saved := copyEntry(entry)
	saved.InwardProcess = nil
	s.entries[entry.ID] = saved
	return nil
}

func (s *fakeStore) TransitionStage2(id types.SnowflakeID, from, to string) error {
	e, ok := s.entries[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if e.Stage2Status != from {
		return repositories.ErrStateConflict
	}
	e.Stage2Status = to
	return nil
}

func (s *fakeStore) LastGatePassNumber() (string, error) {
	return s.lastGatePass, nil
}

func (s *fakeStore) ListGateEntries(filter repositories.GateEntryFilter) ([]models.GateEntry, error) {
	var out []models.GateEntry
	for id, e := range s.entries {
		if filter.Stage1Status != "" && e.Stage1Status != filter.Stage1Status {
			continue
		}
		if filter.Stage2Status != "" && e.Stage2Status != filter.Stage2Status {
			continue
		}
		if filter.OfficerID != 0 && e.RequestOfficerID != filter.OfficerID {
			continue
		}
		_, verified := s.processes[id]
		if filter.Verified != nil && verified != *filter.Verified {
			continue
		}
		item := copyEntry(e)
		if verified {
			item.InwardProcess = copyProcess(s.processes[id])
		}
		out = append(out, *item)
	}
	return out, nil
}

// Inward processes

func (s *fakeStore) CreateInwardProcess(process *models.InwardProcess) error {
	if process.ID == 0 {
		process.ID = s.genID()
	}
	for i := range process.Items {
		if process.Items[i].ID == 0 {
			process.Items[i].ID = s.genID()
		}
		process.Items[i].InwardProcessID = process.ID
	}
	s.processes[process.GateEntryID] = copyProcess(process)
	return nil
}

func (s *fakeStore) SaveInwardProcess(process *models.InwardProcess) error {
	if _, ok := s.processes[process.GateEntryID]; !ok {
		return repositories.ErrNotFound
	}
	s.processes[process.GateEntryID] = copyProcess(process)
	return nil
}

func (s *fakeStore) ReplaceInwardItems(processID uint, items []models.InwardItem) error {
	for _, p := range s.processes {
		if p.ID == processID {
			p.Items = nil
			for _, item := range items {
				if item.ID == 0 {
					item.ID = s.genID()
				}
				item.InwardProcessID = processID
				p.Items = append(p.Items, item)
			}
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Materials and ledger

func (s *fakeStore) CreateMaterial(material *models.Material) error {
	if material.ID == 0 {
		material.ID = s.genID()
	}
	s.materials[material.ID] = copyMaterial(material)
	return nil
}

func (s *fakeStore) SaveMaterial(material *models.Material) error {
	if _, ok := s.materials[material.ID]; !ok {
		return repositories.ErrNotFound
	}
	s.materials[material.ID] = copyMaterial(material)
	return nil
}

func (s *fakeStore) GetMaterial(id uint) (*models.Material, error) {
	m, ok := s.materials[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return copyMaterial(m), nil
}

func (s *fakeStore) GetMaterialByCode(code string) (*models.Material, error) {
	for _, m := range s.materials {
		if m.Code == code {
			return copyMaterial(m), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeStore) ListMaterials(filter repositories.MaterialFilter) ([]models.Material, error) {
	var out []models.Material
	for _, m := range s.materials {
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(m.Code, filter.Search) &&
			!strings.Contains(m.Name, filter.Search) {
			continue
		}
		out = append(out, *copyMaterial(m))
	}
	return out, nil
}

func (s *fakeStore) AdjustStock(materialID uint, delta int) (int, error) {
	m, ok := s.materials[materialID]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	if m.CurrentStock+delta < 0 {
		return 0, repositories.ErrInsufficientStock
	}
	m.CurrentStock += delta
	return m.CurrentStock, nil
}

func (s *fakeStore) CreateInventoryLog(entry *models.InventoryLog) error {
	s.logs = append(s.logs, *entry)
	return nil
}

func (s *fakeStore) ListStoreItems(officerID uint) ([]repositories.StoreItem, error) {
	var out []repositories.StoreItem
	for _, owned := range s.items {
		if officerID != 0 && owned.officerID != officerID {
			continue
		}
		out = append(out, owned.item)
	}
	return out, nil
}

// Issues

func (s *fakeStore) CreateIssue(issue *models.MaterialIssue) error {
	if issue.ID == 0 {
		issue.ID = s.genSnowID()
	}
	s.issues[issue.ID] = copyIssue(issue)
	return nil
}

func (s *fakeStore) GetIssue(id types.SnowflakeID) (*models.MaterialIssue, error) {
	i, ok := s.issues[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := copyIssue(i)
	if m, ok := s.materials[i.MaterialID]; ok {
		out.Material = copyMaterial(m)
	}
	return out, nil
}

func (s *fakeStore) SaveIssue(issue *models.MaterialIssue) error {
	if _, ok := s.issues[issue.ID]; !ok {
		return repositories.ErrNotFound
	}
	saved := copyIssue(issue)
	saved.Material = nil
	s.issues[issue.ID] = saved
	return nil
}

func (s *fakeStore) TransitionIssueStatus(id types.SnowflakeID, from, to string) error {
	i, ok := s.issues[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if i.Status != from {
		return repositories.ErrStateConflict
	}
	i.Status = to
	return nil
}

func (s *fakeStore) ListIssues(filter repositories.IssueFilter) ([]models.MaterialIssue, error) {
	var out []models.MaterialIssue
	for _, i := range s.issues {
		if filter.Status != "" && i.Status != filter.Status {
			continue
		}
		if filter.OfficerID != 0 && i.OfficerID != filter.OfficerID {
			continue
		}
		out = append(out, *copyIssue(i))
	}
	return out, nil
}

// copy helpers

func copyUser(u *models.User) *models.User {
	c := *u
	return &c
}

func copyEntry(e *models.GateEntry) *models.GateEntry {
	c := *e
	c.InwardProcess = nil
	return &c
}

func copyProcess(p *models.InwardProcess) *models.InwardProcess {
	c := *p
	c.Items = append([]models.InwardItem(nil), p.Items...)
	return &c
}

func copyMaterial(m *models.Material) *models.Material {
	c := *m
	return &c
}

func copyIssue(i *models.MaterialIssue) *models.MaterialIssue {
	c := *i
	c.Material = nil
	return &c
}
