package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"steam-intake/internal/auth/store"
	dErrors "steam-intake/pkg/domain-errors"
)

const chromeUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type AuthServiceSuite struct {
	suite.Suite
	sessions *store.MemorySessions
	svc      *Service
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.sessions = store.NewMemorySessions()
	svc, err := New(store.NewMemoryUsers(), s.sessions, "test-signing-key")
	s.Require().NoError(err)
	s.svc = svc
}

func (s *AuthServiceSuite) register() {
	_, err := s.svc.Register(context.Background(), "hero@example.com", "Sam Hero", "hunter66")
	s.Require().NoError(err)
}

func (s *AuthServiceSuite) TestRegister() {
	ctx := context.Background()

	s.Run("creates an account", func() {
		user, err := s.svc.Register(ctx, "hero@example.com", "Sam Hero", "hunter66")
		s.Require().NoError(err)
		s.Equal("hero@example.com", user.Email)
		s.NotEmpty(user.PasswordHash)
	})

	s.Run("duplicate email conflicts case-insensitively", func() {
		_, err := s.svc.Register(ctx, "Hero@Example.com", "Other", "hunter66")
		s.Require().Error(err)
		s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
	})

	s.Run("rejects short passwords", func() {
		_, err := s.svc.Register(ctx, "two@example.com", "Two", "short")
		s.Require().Error(err)
		s.Equal(dErrors.CodeValidation, dErrors.CodeOf(err))
	})

	s.Run("rejects bad emails", func() {
		_, err := s.svc.Register(ctx, "not-an-email", "Nope", "hunter66")
		s.Require().Error(err)
	})
}

func (s *AuthServiceSuite) TestLoginAndValidate() {
	ctx := context.Background()
	s.register()

	s.Run("round trip", func() {
		token, err := s.svc.Login(ctx, "hero@example.com", "hunter66", chromeUA)
		s.Require().NoError(err)
		s.NotEmpty(token)

		identity, err := s.svc.Validate(ctx, token)
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, identity.UserID)
		s.NotEqual(uuid.Nil, identity.SessionID)

		session, err := s.sessions.FindByID(ctx, identity.SessionID)
		s.Require().NoError(err)
		s.Contains(session.Device, "Chrome")
		s.Contains(session.Device, "Linux")
	})

	s.Run("wrong password is unauthorized", func() {
		_, err := s.svc.Login(ctx, "hero@example.com", "wrong-pass", chromeUA)
		s.Require().Error(err)
		s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
	})

	s.Run("unknown email gets the same message as a wrong password", func() {
		_, err := s.svc.Login(ctx, "ghost@example.com", "hunter66", chromeUA)
		s.Require().Error(err)
		s.Equal("invalid email or password", dErrors.MessageOf(err))
	})

	s.Run("garbage token is unauthorized", func() {
		_, err := s.svc.Validate(ctx, "not.a.token")
		s.Require().Error(err)
		s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
	})
}

func (s *AuthServiceSuite) TestLogout() {
	ctx := context.Background()
	s.register()

	token, err := s.svc.Login(ctx, "hero@example.com", "hunter66", "")
	s.Require().NoError(err)
	identity, err := s.svc.Validate(ctx, token)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Logout(ctx, identity.SessionID))

	_, err = s.svc.Validate(ctx, token)
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))

	// Logging out twice is fine.
	s.NoError(s.svc.Logout(ctx, identity.SessionID))
}

func (s *AuthServiceSuite) TestExpiredSession() {
	ctx := context.Background()
	s.register()

	token, err := s.svc.Login(ctx, "hero@example.com", "hunter66", "")
	s.Require().NoError(err)
	identity, err := s.svc.Validate(ctx, token)
	s.Require().NoError(err)

	session, err := s.sessions.FindByID(ctx, identity.SessionID)
	s.Require().NoError(err)
	session.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = s.svc.Validate(ctx, token)
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}
