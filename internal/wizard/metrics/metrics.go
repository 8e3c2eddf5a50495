package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the wizard module.
type Metrics struct {
	SessionsStarted    prometheus.Counter
	StepsAdvanced      *prometheus.CounterVec
	GeocodeFailures    *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	SubmissionFailures *prometheus.CounterVec
	SubmitLatency      prometheus.Histogram
}

// New creates a Metrics instance with all wizard metrics registered.
func New() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_wizard_sessions_started_total",
			Help: "Total wizard sessions started",
		}),
		StepsAdvanced: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_wizard_steps_advanced_total",
			Help: "Total successful step advances by step",
		}, []string{"step"}),
		GeocodeFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_wizard_geocode_failures_total",
			Help: "Total failed address lookups by reason",
		}, []string{"reason"}), // reason: "not_found", "invalid_response", "lookup_failed"
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_wizard_submissions_total",
			Help: "Total successful registrations by role",
		}, []string{"role"}),
		SubmissionFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_wizard_submission_failures_total",
			Help: "Total failed registration attempts by role",
		}, []string{"role"}),
		SubmitLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "intake_wizard_submit_duration_seconds",
			Help:    "Duration of the full submit path including the remote call",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncSessionsStarted records a new wizard session.
func (m *Metrics) IncSessionsStarted() {
	if m != nil {
		m.SessionsStarted.Inc()
	}
}

// IncStepsAdvanced records a successful advance out of step.
func (m *Metrics) IncStepsAdvanced(step string) {
	if m != nil {
		m.StepsAdvanced.WithLabelValues(step).Inc()
	}
}

// IncGeocodeFailures records a failed address lookup.
func (m *Metrics) IncGeocodeFailures(reason string) {
	if m != nil {
		m.GeocodeFailures.WithLabelValues(reason).Inc()
	}
}

// IncSubmissions records a confirmed registration.
func (m *Metrics) IncSubmissions(role string) {
	if m != nil {
		m.Submissions.WithLabelValues(role).Inc()
	}
}

// IncSubmissionFailures records a registration attempt that did not confirm.
func (m *Metrics) IncSubmissionFailures(role string) {
	if m != nil {
		m.SubmissionFailures.WithLabelValues(role).Inc()
	}
}

// ObserveSubmitLatency records the total submit duration in seconds.
func (m *Metrics) ObserveSubmitLatency(seconds float64) {
	if m != nil {
		m.SubmitLatency.Observe(seconds)
	}
}
