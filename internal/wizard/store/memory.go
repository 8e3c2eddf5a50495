package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"steam-intake/internal/wizard/models"
)

var (
	ErrNotFound = errors.New("wizard session not found")
	// ErrBusy means an advance or submit is already in flight for the session.
	ErrBusy = errors.New("wizard session is busy")
)

// Memory keeps wizard sessions in process memory, one per user. Sessions are
// never persisted; an abandoned wizard is simply garbage collected with the
// process.
type Memory struct {
	mu       sync.RWMutex
	byUser   map[uuid.UUID]*models.WizardSession
	inFlight map[uuid.UUID]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		byUser:   make(map[uuid.UUID]*models.WizardSession),
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// Save upserts the user's wizard session.
func (m *Memory) Save(_ context.Context, ws *models.WizardSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws.UpdatedAt = time.Now().UTC()
	m.byUser[ws.UserID] = ws
	return nil
}

// FindByUser returns the user's wizard session, or ErrNotFound.
func (m *Memory) FindByUser(_ context.Context, userID uuid.UUID) (*models.WizardSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ws, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return ws, nil
}

// Delete discards the user's wizard session. Deleting a missing session is
// not an error.
func (m *Memory) Delete(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
	delete(m.inFlight, userID)
	return nil
}

// Acquire takes the per-user busy latch guarding network-bound operations.
// A second caller gets ErrBusy until Release.
func (m *Memory) Acquire(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.inFlight[userID]; busy {
		return ErrBusy
	}
	m.inFlight[userID] = struct{}{}
	return nil
}

// Release frees the busy latch. Safe to call when not held.
func (m *Memory) Release(_ context.Context, userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, userID)
}
