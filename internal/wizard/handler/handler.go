package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"steam-intake/internal/platform/middleware"
	"steam-intake/internal/wizard/models"
	"steam-intake/internal/wizard/service"
	dErrors "steam-intake/pkg/domain-errors"
	"steam-intake/pkg/platform/httputil"
)

// Service defines the wizard operations the handler needs.
type Service interface {
	Start(ctx context.Context, userID uuid.UUID) (*models.WizardSession, error)
	Get(ctx context.Context, userID uuid.UUID) (*models.WizardSession, error)
	Advance(ctx context.Context, userID uuid.UUID, update models.StepUpdate) (*models.WizardSession, error)
	Back(ctx context.Context, userID uuid.UUID) (*models.WizardSession, error)
	Submit(ctx context.Context, userID uuid.UUID, update models.SchedulingUpdate) error
}

// Sessions ends the login session once a submission is confirmed.
type Sessions interface {
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// Handler wires the wizard endpoints to the wizard service.
type Handler struct {
	service  Service
	sessions Sessions
	logger   *slog.Logger
}

func New(service Service, sessions Sessions, logger *slog.Logger) *Handler {
	return &Handler{service: service, sessions: sessions, logger: logger}
}

// Register mounts the wizard endpoints; all of them require auth.
func (h *Handler) Register(r chi.Router) {
	r.Post("/wizard/start", h.HandleStart)
	r.Get("/wizard", h.HandleGet)
	r.Post("/wizard/advance", h.HandleAdvance)
	r.Post("/wizard/back", h.HandleBack)
	r.Post("/wizard/submit", h.HandleSubmit)
}

// stateResponse is the wizard snapshot returned by every navigation call.
type stateResponse struct {
	Step     models.StepID          `json:"step"`
	Answers  *models.AnswerRecord   `json:"answers"`
	Progress []service.ProgressStep `json:"progress"`
}

func state(ws *models.WizardSession) stateResponse {
	return stateResponse{
		Step:     ws.Step,
		Answers:  ws.Answers,
		Progress: service.Project(ws.Step, ws.Answers.Role),
	}
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return uuid.Nil, false
	}
	return userID, true
}

// HandleStart handles POST /wizard/start.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	ws, err := h.service.Start(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, state(ws))
}

// HandleGet handles GET /wizard.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	ws, err := h.service.Get(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state(ws))
}

// HandleAdvance handles POST /wizard/advance.
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	update, err := httputil.Decode[models.StepUpdate](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ws, err := h.service.Advance(ctx, userID, *update)
	if err != nil {
		h.logger.WarnContext(ctx, "advance rejected",
			"request_id", middleware.GetRequestID(ctx),
			"user_id", userID,
			"error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state(ws))
}

// HandleBack handles POST /wizard/back.
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	ws, err := h.service.Back(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state(ws))
}

// HandleSubmit handles POST /wizard/submit. On a confirmed registration the
// login session is ended as well; the caller lands back at the entry screen.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	update, err := httputil.Decode[models.SchedulingUpdate](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Submit(ctx, userID, *update); err != nil {
		h.logger.WarnContext(ctx, "submission failed",
			"request_id", middleware.GetRequestID(ctx),
			"user_id", userID,
			"error", err)
		httputil.WriteError(w, err)
		return
	}

	if sessionID := middleware.GetSessionID(ctx); sessionID != uuid.Nil {
		if err := h.sessions.Logout(ctx, sessionID); err != nil {
			h.logger.WarnContext(ctx, "failed to end session after submit",
				"request_id", middleware.GetRequestID(ctx),
				"session_id", sessionID,
				"error", err)
		}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "submitted"})
}
