package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"steam-intake/internal/auth/models"
)

// MemoryUsers is the in-process user store. Email lookup is case-insensitive.
type MemoryUsers struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*models.User
	byEmail map[string]uuid.UUID
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *MemoryUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, exists := m.byEmail[key]; exists {
		return ErrDuplicateEmail
	}
	m.byID[u.ID] = u
	m.byEmail[key] = u.ID
	return nil
}

func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return m.byID[id], nil
}

func (m *MemoryUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

// MemorySessions is the default session store.
type MemorySessions struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*models.Session
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{byID: make(map[uuid.UUID]*models.Session)}
}

func (m *MemorySessions) Create(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[s.ID] = s
	return nil
}

func (m *MemorySessions) FindByID(_ context.Context, id uuid.UUID) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *MemorySessions) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}
