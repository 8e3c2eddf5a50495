package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"golang.org/x/crypto/bcrypt"

	"steam-intake/internal/auth/models"
	"steam-intake/internal/auth/store"
	dErrors "steam-intake/pkg/domain-errors"
)

const (
	tokenIssuer     = "steam-intake"
	sessionLifetime = 24 * time.Hour
	minPasswordLen  = 6
)

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

// Service handles account registration and login sessions.
type Service struct {
	users      store.UserStore
	sessions   store.SessionStore
	signingKey []byte
	logger     *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(users store.UserStore, sessions store.SessionStore, signingKey string, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, fmt.Errorf("user store is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if signingKey == "" {
		return nil, fmt.Errorf("signing key is required")
	}

	svc := &Service{
		users:      users,
		sessions:   sessions,
		signingKey: []byte(signingKey),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Register creates an account. Duplicate emails conflict.
func (s *Service) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if !govalidator.IsEmail(email) {
		return nil, dErrors.New(dErrors.CodeValidation, "email is not valid")
	}
	if len(password) < minPasswordLen {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("password must be at least %d characters long", minPasswordLen))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and opens a session, returning a signed bearer
// token. The session records a readable device label from the User-Agent.
func (s *Service) Login(ctx context.Context, email, password, userAgent string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Device:    deviceLabel(userAgent),
		CreatedAt: now,
		ExpiresAt: now.Add(sessionLifetime),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to create session")
	}

	token, err := s.generateToken(user.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}

	s.logger.InfoContext(ctx, "user logged in",
		"user_id", user.ID, "session_id", session.ID, "device", session.Device)
	return token, nil
}

// Validate checks a bearer token and its backing session.
func (s *Service) Validate(ctx context.Context, token string) (*Identity, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session is no longer active")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up session")
	}
	if session.Expired(time.Now()) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session has expired")
	}

	return &Identity{UserID: userID, SessionID: sessionID}, nil
}

// Logout ends a session. Idempotent.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to end session")
	}
	s.logger.InfoContext(ctx, "session ended", "session_id", sessionID)
	return nil
}

// deviceLabel renders "Chrome 120 on Linux" style labels, falling back to
// "Unknown device" for empty or unrecognized agents.
func deviceLabel(uaString string) string {
	if uaString == "" {
		return "Unknown device"
	}
	ua := useragent.New(uaString)
	name, version := ua.Browser()
	if name == "" {
		return "Unknown device"
	}
	label := name
	if version != "" {
		if i := strings.Index(version, "."); i > 0 {
			version = version[:i]
		}
		label += " " + version
	}
	if os := ua.OS(); os != "" {
		label += " on " + os
	}
	return label
}
