package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"steam-intake/internal/auth/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists accounts. In-memory only; accounts live as long as the
// process.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// SessionStore persists login sessions; the redis variant survives restarts,
// the memory variant is the default.
type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
