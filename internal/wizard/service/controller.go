package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"steam-intake/internal/geocode"
	"steam-intake/internal/wizard/models"
	"steam-intake/internal/wizard/steps"
	"steam-intake/internal/wizard/store"
	dErrors "steam-intake/pkg/domain-errors"
)

// Start returns the user's wizard session, creating an empty one at the
// first step when none exists. Restarting never discards answers; a wizard
// in progress is simply resumed.
func (s *Service) Start(ctx context.Context, userID uuid.UUID) (*models.WizardSession, error) {
	if ws, err := s.store.FindByUser(ctx, userID); err == nil {
		return ws, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load wizard session")
	}

	ws := &models.WizardSession{
		ID:        uuid.New(),
		UserID:    userID,
		Step:      models.StepBasic,
		Answers:   models.NewAnswerRecord(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, ws); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save wizard session")
	}

	s.metrics.IncSessionsStarted()
	s.logger.InfoContext(ctx, "wizard session started",
		"wizard_session_id", ws.ID, "user_id", userID)
	return ws, nil
}

// Get returns the user's wizard session or a not-found domain error.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*models.WizardSession, error) {
	ws, err := s.store.FindByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "no wizard session in progress")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load wizard session")
	}
	return ws, nil
}

// Advance validates the update for the current step, merges it into the
// answer record, and moves the session along the branch for its role. The
// record is only mutated when the whole transition succeeds.
func (s *Service) Advance(ctx context.Context, userID uuid.UUID, update models.StepUpdate) (*models.WizardSession, error) {
	ws, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updateStep, err := update.Step()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid step update")
	}
	if updateStep != ws.Step {
		return nil, dErrors.New(dErrors.CodeBadRequest, "update does not match the current step")
	}

	switch ws.Step {
	case models.StepBasic:
		return s.advanceBasic(ctx, ws, *update.Basic)
	case models.StepMentorProfile:
		if err := steps.ValidateMentor(*update.Mentor); err != nil {
			return nil, err
		}
		steps.ApplyMentor(ws.Answers, *update.Mentor)
	case models.StepMenteeProfile:
		if err := steps.ValidateMentee(*update.Mentee); err != nil {
			return nil, err
		}
		steps.ApplyMentee(ws.Answers, *update.Mentee)
	case models.StepScheduling:
		return nil, dErrors.New(dErrors.CodeBadRequest, "the final step is submitted, not advanced")
	}

	from := ws.Step
	ws.Step = models.StepScheduling
	if err := s.store.Save(ctx, ws); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save wizard session")
	}
	s.metrics.IncStepsAdvanced(string(from))
	return ws, nil
}

// advanceBasic leaves the first step: local validation, role check, then the
// address lookup unless coordinates are already resolved for the submitted
// address. All three can block with nothing merged.
func (s *Service) advanceBasic(ctx context.Context, ws *models.WizardSession, u models.BasicUpdate) (*models.WizardSession, error) {
	if err := steps.ValidateBasic(ws.Answers, u); err != nil {
		return nil, err
	}

	role := u.Role
	if role == "" {
		role = ws.Answers.Role
	}
	if role == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "select a role (mentor or mentee) to continue")
	}

	addressChanged := u.AddressLine1 != ws.Answers.AddressLine1 ||
		u.City != ws.Answers.City ||
		u.State != ws.Answers.State ||
		u.Zipcode != ws.Answers.Zipcode

	var lat, lon float64
	needLookup := addressChanged || !ws.Answers.HasCoordinates()
	if needLookup {
		if err := s.store.Acquire(ctx, ws.UserID); err != nil {
			return nil, busyError(err)
		}
		defer s.store.Release(ctx, ws.UserID)

		var err error
		lat, lon, err = s.geocoder.Resolve(ctx, u.AddressLine1, u.City, u.State, u.Zipcode)
		if err != nil {
			s.metrics.IncGeocodeFailures(geocode.FailureReason(err))
			s.logger.WarnContext(ctx, "address lookup failed",
				"wizard_session_id", ws.ID, "error", err)
			return nil, dErrors.Wrap(err, dErrors.CodeUnprocessable, "address could not be verified")
		}
	}

	steps.ApplyBasic(ws.Answers, u)
	if needLookup {
		ws.Answers.Latitude = &lat
		ws.Answers.Longitude = &lon
	}
	ws.Step = models.ProfileStep(role)

	if err := s.store.Save(ctx, ws); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save wizard session")
	}
	s.metrics.IncStepsAdvanced(string(models.StepBasic))
	return ws, nil
}

// Back moves one step toward the start: both profile steps return to Basic,
// Scheduling returns to the profile step for the stored role, and Basic is a
// no-op.
func (s *Service) Back(ctx context.Context, userID uuid.UUID) (*models.WizardSession, error) {
	ws, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch ws.Step {
	case models.StepBasic:
		return ws, nil
	case models.StepMentorProfile, models.StepMenteeProfile:
		ws.Step = models.StepBasic
	case models.StepScheduling:
		ws.Step = models.ProfileStep(ws.Answers.Role)
	}

	if err := s.store.Save(ctx, ws); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save wizard session")
	}
	return ws, nil
}

func busyError(err error) error {
	if errors.Is(err, store.ErrBusy) {
		return dErrors.New(dErrors.CodeConflict, "another request for this wizard is still in flight")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to lock wizard session")
}
