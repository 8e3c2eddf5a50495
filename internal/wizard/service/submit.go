package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"steam-intake/internal/registration"
	"steam-intake/internal/wizard/models"
	"steam-intake/internal/wizard/steps"
	dErrors "steam-intake/pkg/domain-errors"
)

// Submit completes the wizard: it validates the final page, merges it,
// writes the CSV snapshot, and POSTs the role-specific payload to the
// registration service. The snapshot is written before the remote call and
// is not rolled back when the call fails. On a confirmed 2xx the wizard
// session is discarded; callers end the auth session afterwards.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, u models.SchedulingUpdate) error {
	ws, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if ws.Step != models.StepScheduling {
		return dErrors.New(dErrors.CodeBadRequest, "the wizard is not on the final step")
	}
	if err := steps.ValidateScheduling(u); err != nil {
		return err
	}

	if err := s.store.Acquire(ctx, userID); err != nil {
		return busyError(err)
	}
	defer s.store.Release(ctx, userID)

	// Merged answers survive a failed remote call so a retry does not
	// retype the page.
	steps.ApplyScheduling(ws.Answers, u)
	if err := s.store.Save(ctx, ws); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save wizard session")
	}

	started := time.Now()
	role := ws.Answers.Role
	if err := s.register(ctx, ws); err != nil {
		s.metrics.IncSubmissionFailures(string(role))
		return err
	}
	s.metrics.ObserveSubmitLatency(time.Since(started).Seconds())
	s.metrics.IncSubmissions(string(role))

	if err := s.store.Delete(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "failed to discard wizard session after submit",
			"wizard_session_id", ws.ID, "error", err)
	}
	s.logger.InfoContext(ctx, "registration submitted",
		"wizard_session_id", ws.ID, "role", role)
	return nil
}

func (s *Service) register(ctx context.Context, ws *models.WizardSession) error {
	switch ws.Answers.Role {
	case models.RoleMentor:
		payload, err := registration.BuildMentor(ws.Answers)
		if err != nil {
			return err
		}
		s.snapshot(ctx, ws, func() (string, error) { return s.exporter.WriteMentor(payload) })
		return s.remoteError(s.registrar.RegisterMentor(ctx, payload))
	case models.RoleMentee:
		payload, err := registration.BuildMentee(ws.Answers)
		if err != nil {
			return err
		}
		s.snapshot(ctx, ws, func() (string, error) { return s.exporter.WriteMentee(payload) })
		return s.remoteError(s.registrar.RegisterMentee(ctx, payload))
	default:
		return dErrors.New(dErrors.CodeBadRequest, "no role recorded for this wizard")
	}
}

// snapshot writes the CSV export. A failed export is logged but never blocks
// the remote submission.
func (s *Service) snapshot(ctx context.Context, ws *models.WizardSession, write func() (string, error)) {
	path, err := write()
	if err != nil {
		s.logger.WarnContext(ctx, "csv snapshot failed",
			"wizard_session_id", ws.ID, "error", err)
		return
	}
	s.logger.InfoContext(ctx, "csv snapshot written",
		"wizard_session_id", ws.ID, "path", path)
}

func (s *Service) remoteError(err error) error {
	if err == nil {
		return nil
	}
	var remote *registration.RemoteError
	if errors.As(err, &remote) {
		return dErrors.Wrap(remote, dErrors.CodeBadGateway, remote.Error())
	}
	return dErrors.Wrap(err, dErrors.CodeBadGateway, "registration service unavailable")
}
