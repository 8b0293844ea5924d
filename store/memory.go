package store

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"entropy/apperr"
	"entropy/models"
)

// Memory is an in-process Store. Each user record carries its own mutex so
// requests for different users never contend; module counters are plain
// atomics.
type Memory struct {
	mu      sync.RWMutex
	nextID  uint
	users   map[uint]*userEntry
	byEmail map[string]uint

	modules   map[uint]*models.Module
	moduleIDs []uint // ascending catalog order
}

var _ Store = (*Memory)(nil)

type userEntry struct {
	mu   sync.Mutex
	user *models.User
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[uint]*userEntry),
		byEmail: make(map[string]uint),
		modules: make(map[uint]*models.Module),
	}
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return apperr.Conflict("Email is already registered!")
	}

	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	m.users[user.ID] = &userEntry{user: user.Clone()}
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *Memory) UserByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.RLock()
	entry, ok := m.users[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("User not found!")
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.user.Clone(), nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	id, ok := m.byEmail[email]
	m.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("User not found!")
	}
	return m.UserByID(context.Background(), id)
}

func (m *Memory) Users(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	ids := make([]uint, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		user, err := m.UserByID(context.Background(), id)
		if err != nil {
			continue // removed between snapshot and read
		}
		users = append(users, *user)
	}
	return users, nil
}

func (m *Memory) UpdateUser(_ context.Context, id uint, fn func(*models.User) error) (*models.User, error) {
	m.mu.RLock()
	entry, ok := m.users[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("User not found!")
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	updated := entry.user.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	updated.Version++
	updated.UpdatedAt = time.Now()
	entry.user = updated
	return updated.Clone(), nil
}

func (m *Memory) SeedModules(_ context.Context, modules []models.Module) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.modules) > 0 {
		return nil
	}
	for i := range modules {
		module := modules[i]
		m.modules[module.ID] = &module
		m.moduleIDs = append(m.moduleIDs, module.ID)
	}
	sort.Slice(m.moduleIDs, func(i, j int) bool { return m.moduleIDs[i] < m.moduleIDs[j] })
	return nil
}

func (m *Memory) ModuleByID(_ context.Context, id uint) (*models.Module, error) {
	m.mu.RLock()
	module, ok := m.modules[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("Module not found!")
	}
	return copyModule(module), nil
}

func (m *Memory) Modules(_ context.Context) ([]models.Module, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	modules := make([]models.Module, 0, len(m.moduleIDs))
	for _, id := range m.moduleIDs {
		modules = append(modules, *copyModule(m.modules[id]))
	}
	return modules, nil
}

func (m *Memory) IncrementEnrolled(_ context.Context, id uint) (*models.Module, error) {
	m.mu.RLock()
	module, ok := m.modules[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("Module not found!")
	}
	atomic.AddInt64(&module.Enrolled, 1)
	return copyModule(module), nil
}

func (m *Memory) SetEnrolledCount(_ context.Context, id uint, count int64) error {
	m.mu.RLock()
	module, ok := m.modules[id]
	m.mu.RUnlock()
	if !ok {
		return apperr.NotFound("Module not found!")
	}
	atomic.StoreInt64(&module.Enrolled, count)
	return nil
}

// copyModule snapshots a module. Only the counter is ever written after
// seeding, so the remaining fields can be read without synchronization.
func copyModule(module *models.Module) *models.Module {
	return &models.Module{
		ID:          module.ID,
		Category:    module.Category,
		Title:       module.Title,
		Description: module.Description,
		Duration:    module.Duration,
		Level:       module.Level,
		VideoURL:    module.VideoURL,
		Enrolled:    atomic.LoadInt64(&module.Enrolled),
	}
}
