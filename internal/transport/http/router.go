package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "steam-intake/internal/auth/handler"
	"steam-intake/internal/platform/middleware"
	wizardhandler "steam-intake/internal/wizard/handler"
)

// Deps collects everything the router mounts.
type Deps struct {
	Auth      *authhandler.Handler
	Wizard    *wizardhandler.Handler
	Validator middleware.Validator
	Logger    *slog.Logger
}

// NewRouter wires all endpoints. The wizard and logout live behind the
// bearer-token middleware; registration, login, health, and metrics are
// public.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	d.Auth.RegisterPublic(r)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth(d.Validator, d.Logger))
		d.Auth.RegisterProtected(protected)
		d.Wizard.Register(protected)
	})

	return r
}
