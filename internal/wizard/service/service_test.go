package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"steam-intake/internal/geocode"
	"steam-intake/internal/registration"
	"steam-intake/internal/wizard/models"
	"steam-intake/internal/wizard/store"
	dErrors "steam-intake/pkg/domain-errors"
)

type fakeGeocoder struct {
	lat, lon float64
	err      error
	calls    int
}

func (f *fakeGeocoder) Resolve(context.Context, string, string, string, string) (float64, float64, error) {
	f.calls++
	return f.lat, f.lon, f.err
}

type fakeRegistrar struct {
	err     error
	mentors []*registration.MentorPayload
	mentees []*registration.MenteePayload
}

func (f *fakeRegistrar) RegisterMentor(_ context.Context, p *registration.MentorPayload) error {
	f.mentors = append(f.mentors, p)
	return f.err
}

func (f *fakeRegistrar) RegisterMentee(_ context.Context, p *registration.MenteePayload) error {
	f.mentees = append(f.mentees, p)
	return f.err
}

type fakeExporter struct {
	mentorWrites int
	menteeWrites int
	err          error
}

func (f *fakeExporter) WriteMentor(*registration.MentorPayload) (string, error) {
	f.mentorWrites++
	return "mentor_form_data.csv", f.err
}

func (f *fakeExporter) WriteMentee(*registration.MenteePayload) (string, error) {
	f.menteeWrites++
	return "mentee_form_data.csv", f.err
}

type WizardServiceSuite struct {
	suite.Suite
	store     *store.Memory
	geocoder  *fakeGeocoder
	registrar *fakeRegistrar
	exporter  *fakeExporter
	svc       *Service
	userID    uuid.UUID
}

func TestWizardServiceSuite(t *testing.T) {
	suite.Run(t, new(WizardServiceSuite))
}

func (s *WizardServiceSuite) SetupTest() {
	s.store = store.NewMemory()
	s.geocoder = &fakeGeocoder{lat: 45.52, lon: -122.68}
	s.registrar = &fakeRegistrar{}
	s.exporter = &fakeExporter{}
	s.userID = uuid.New()

	svc, err := New(s.store, s.geocoder, s.registrar, s.exporter)
	s.Require().NoError(err)
	s.svc = svc
}

func (s *WizardServiceSuite) basicUpdate(role models.Role) models.StepUpdate {
	return models.StepUpdate{Basic: &models.BasicUpdate{
		Email:        "hero@example.com",
		Name:         "Sam Hero",
		AddressLine1: "1 Main St",
		City:         "Portland",
		State:        "OR",
		Zipcode:      "97201",
		Role:         role,
	}}
}

func (s *WizardServiceSuite) schedulingUpdate() models.SchedulingUpdate {
	return models.SchedulingUpdate{Availability: []string{
		"Monday-7am to 9am",
		"Tuesday-9am to 11am",
		"Friday-5pm to 7pm",
	}}
}

// walkToScheduling drives a fresh session to the final step.
func (s *WizardServiceSuite) walkToScheduling(role models.Role) *models.WizardSession {
	ctx := context.Background()
	_, err := s.svc.Start(ctx, s.userID)
	s.Require().NoError(err)

	ws, err := s.svc.Advance(ctx, s.userID, s.basicUpdate(role))
	s.Require().NoError(err)

	if role == models.RoleMentor {
		ws, err = s.svc.Advance(ctx, s.userID, models.StepUpdate{Mentor: &models.MentorUpdate{}})
	} else {
		ws, err = s.svc.Advance(ctx, s.userID, models.StepUpdate{Mentee: &models.MenteeUpdate{
			Interests:     []int{1, models.Interests.OtherID()},
			InterestOther: "Chess",
		}})
	}
	s.Require().NoError(err)
	s.Require().Equal(models.StepScheduling, ws.Step)
	return ws
}

func (s *WizardServiceSuite) TestStart() {
	ctx := context.Background()

	s.Run("creates an empty session at the first step", func() {
		ws, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(models.StepBasic, ws.Step)
		s.Equal(1, ws.Answers.Capacity)
		s.Empty(ws.Answers.Role)
	})

	s.Run("is idempotent and never discards answers", func() {
		first, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		again, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(first.ID, again.ID)
	})
}

func (s *WizardServiceSuite) TestAdvanceBranching() {
	ctx := context.Background()

	s.Run("mentor routes to the mentor profile", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		ws, err := s.svc.Advance(ctx, s.userID, s.basicUpdate(models.RoleMentor))
		s.Require().NoError(err)
		s.Equal(models.StepMentorProfile, ws.Step)
	})

	s.Run("mentee routes to the mentee profile", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		ws, err := s.svc.Advance(ctx, s.userID, s.basicUpdate(models.RoleMentee))
		s.Require().NoError(err)
		s.Equal(models.StepMenteeProfile, ws.Step)
	})

	s.Run("no role rejects with nothing merged", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		_, err = s.svc.Advance(ctx, s.userID, s.basicUpdate(""))
		s.Require().Error(err)
		s.Equal(dErrors.CodeBadRequest, dErrors.CodeOf(err))

		ws, err := s.svc.Get(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(models.StepBasic, ws.Step)
		s.Empty(ws.Answers.Email)
	})

	s.Run("update must match the current step", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		_, err = s.svc.Advance(ctx, s.userID, models.StepUpdate{Mentor: &models.MentorUpdate{}})
		s.Require().Error(err)
		s.Equal(dErrors.CodeBadRequest, dErrors.CodeOf(err))
	})
}

func (s *WizardServiceSuite) TestEnrichmentGate() {
	ctx := context.Background()

	s.Run("failure blocks the first step", func() {
		s.SetupTest()
		s.geocoder.err = geocode.ErrNotFound
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)

		_, err = s.svc.Advance(ctx, s.userID, s.basicUpdate(models.RoleMentor))
		s.Require().Error(err)
		s.Equal(dErrors.CodeUnprocessable, dErrors.CodeOf(err))
		s.Contains(dErrors.MessageOf(err), "address could not be verified")

		ws, err := s.svc.Get(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(models.StepBasic, ws.Step)
		s.False(ws.Answers.HasCoordinates())
	})

	s.Run("success stores coordinates", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		ws, err := s.svc.Advance(ctx, s.userID, s.basicUpdate(models.RoleMentor))
		s.Require().NoError(err)
		s.Require().True(ws.Answers.HasCoordinates())
		s.InDelta(45.52, *ws.Answers.Latitude, 0.001)
		s.InDelta(-122.68, *ws.Answers.Longitude, 0.001)
	})

	s.Run("unchanged address skips the lookup on re-advance", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		_, err = s.svc.Advance(ctx, s.userID, s.basicUpdate(models.RoleMentor))
		s.Require().NoError(err)
		s.Equal(1, s.geocoder.calls)

		_, err = s.svc.Back(ctx, s.userID)
		s.Require().NoError(err)
		_, err = s.svc.Advance(ctx, s.userID, s.basicUpdate(models.RoleMentor))
		s.Require().NoError(err)
		s.Equal(1, s.geocoder.calls)
	})

	s.Run("edited address is resolved again", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		_, err = s.svc.Advance(ctx, s.userID, s.basicUpdate(models.RoleMentor))
		s.Require().NoError(err)

		_, err = s.svc.Back(ctx, s.userID)
		s.Require().NoError(err)
		moved := s.basicUpdate(models.RoleMentor)
		moved.Basic.City = "Salem"
		_, err = s.svc.Advance(ctx, s.userID, moved)
		s.Require().NoError(err)
		s.Equal(2, s.geocoder.calls)
	})
}

func (s *WizardServiceSuite) TestBack() {
	ctx := context.Background()

	s.Run("no-op on the first step", func() {
		s.SetupTest()
		_, err := s.svc.Start(ctx, s.userID)
		s.Require().NoError(err)
		ws, err := s.svc.Back(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(models.StepBasic, ws.Step)
	})

	s.Run("scheduling returns to the profile for the stored role", func() {
		s.SetupTest()
		s.walkToScheduling(models.RoleMentee)
		ws, err := s.svc.Back(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(models.StepMenteeProfile, ws.Step)
	})
}

func (s *WizardServiceSuite) TestSubmit() {
	ctx := context.Background()

	s.Run("rejects fewer than three slots with session intact", func() {
		s.SetupTest()
		s.walkToScheduling(models.RoleMentor)
		err := s.svc.Submit(ctx, s.userID, models.SchedulingUpdate{
			Availability: []string{"Monday-7am to 9am"},
		})
		s.Require().Error(err)
		s.Equal(dErrors.CodeValidation, dErrors.CodeOf(err))
		s.Zero(s.exporter.mentorWrites)

		ws, err := s.svc.Get(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(models.StepScheduling, ws.Step)
	})

	s.Run("mentor defaults flow into the payload", func() {
		s.SetupTest()
		s.walkToScheduling(models.RoleMentor)
		err := s.svc.Submit(ctx, s.userID, s.schedulingUpdate())
		s.Require().NoError(err)

		s.Require().Len(s.registrar.mentors, 1)
		p := s.registrar.mentors[0]
		s.Equal(1, p.WillingToAdvise)
		s.Equal([]string{}, p.MatchPairIDs)
		s.True(p.IsAvailableForMatching)
		s.Zero(p.MentoringSessionsCompleted)
		s.Equal(1, s.exporter.mentorWrites)

		_, err = s.svc.Get(ctx, s.userID)
		s.Require().Error(err)
		s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
	})

	s.Run("mentee other interest is appended verbatim", func() {
		s.SetupTest()
		s.walkToScheduling(models.RoleMentee)
		err := s.svc.Submit(ctx, s.userID, s.schedulingUpdate())
		s.Require().NoError(err)

		s.Require().Len(s.registrar.mentees, 1)
		p := s.registrar.mentees[0]
		s.Equal([]any{1, models.Interests.OtherID(), "Chess"}, p.Interests)
	})

	s.Run("remote failure surfaces detail and keeps the session", func() {
		s.SetupTest()
		s.registrar.err = &registration.RemoteError{Status: 422, Detail: "email already registered"}
		s.walkToScheduling(models.RoleMentor)
		err := s.svc.Submit(ctx, s.userID, s.schedulingUpdate())
		s.Require().Error(err)
		s.Equal(dErrors.CodeBadGateway, dErrors.CodeOf(err))
		s.Equal("email already registered", dErrors.MessageOf(err))

		// CSV snapshot still written, session still there.
		s.Equal(1, s.exporter.mentorWrites)
		ws, err := s.svc.Get(ctx, s.userID)
		s.Require().NoError(err)
		s.Equal(models.StepScheduling, ws.Step)
	})

	s.Run("csv failure does not block the remote call", func() {
		s.SetupTest()
		s.exporter.err = errors.New("disk full")
		s.walkToScheduling(models.RoleMentor)
		err := s.svc.Submit(ctx, s.userID, s.schedulingUpdate())
		s.Require().NoError(err)
		s.Len(s.registrar.mentors, 1)
	})

	s.Run("busy latch rejects a re-entrant submit", func() {
		s.SetupTest()
		s.walkToScheduling(models.RoleMentor)
		s.Require().NoError(s.store.Acquire(ctx, s.userID))
		err := s.svc.Submit(ctx, s.userID, s.schedulingUpdate())
		s.Require().Error(err)
		s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
		s.store.Release(ctx, s.userID)
	})
}
