package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"steam-intake/internal/registration"
	"steam-intake/internal/wizard/metrics"
	"steam-intake/internal/wizard/models"
)

// Geocoder resolves a street address to coordinates. Failures block the
// first step's advance.
type Geocoder interface {
	Resolve(ctx context.Context, line, city, state, zip string) (lat, lon float64, err error)
}

// Registrar submits completed registrations to the remote matching service.
type Registrar interface {
	RegisterMentor(ctx context.Context, p *registration.MentorPayload) error
	RegisterMentee(ctx context.Context, p *registration.MenteePayload) error
}

// Exporter writes the local CSV snapshot of a submission.
type Exporter interface {
	WriteMentor(p *registration.MentorPayload) (string, error)
	WriteMentee(p *registration.MenteePayload) (string, error)
}

// Store holds in-flight wizard sessions and the per-user busy latch that
// guards network-bound operations.
type Store interface {
	Save(ctx context.Context, ws *models.WizardSession) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.WizardSession, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	Acquire(ctx context.Context, userID uuid.UUID) error
	Release(ctx context.Context, userID uuid.UUID)
}

// Service is the wizard controller: it owns every answer record, resolves
// the branching step graph, and orchestrates submission.
type Service struct {
	store     Store
	geocoder  Geocoder
	registrar Registrar
	exporter  Exporter
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(store Store, geocoder Geocoder, registrar Registrar, exporter Exporter, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("wizard store is required")
	}
	if geocoder == nil {
		return nil, fmt.Errorf("geocoder is required")
	}
	if registrar == nil {
		return nil, fmt.Errorf("registrar is required")
	}
	if exporter == nil {
		return nil, fmt.Errorf("exporter is required")
	}

	svc := &Service{
		store:     store,
		geocoder:  geocoder,
		registrar: registrar,
		exporter:  exporter,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}
