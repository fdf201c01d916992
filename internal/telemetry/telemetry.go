// Package telemetry provides OpenTelemetry instrumentation for the triage
// service. It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "triage"

// departmentNone labels classifications where no department keyword matched.
const departmentNone = "none"

// Metrics holds all triage Prometheus metrics.
type Metrics struct {
	// Classification metrics
	ComplaintsClassified *prometheus.CounterVec
	ClassifyDuration     prometheus.Histogram

	// Authenticity metrics
	AuthenticityChecks  *prometheus.CounterVec
	AuthenticitySignals *prometheus.CounterVec

	// Submission metrics
	ComplaintsSubmitted *prometheus.CounterVec
	SubmissionsRejected prometheus.Counter

	// Scraper metrics
	ScraperImported prometheus.Counter
	ScraperRejected prometheus.Counter
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		ComplaintsClassified: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "complaints_classified_total",
			Help:      "Complaints classified, by detected department and urgency.",
		}, []string{"department", "urgency"}),
		ClassifyDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "classify_duration_seconds",
			Help:      "Time spent in a single classification.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 6),
		}),
		AuthenticityChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "authenticity_checks_total",
			Help:      "Authenticity verdicts, by label.",
		}, []string{"label"}),
		AuthenticitySignals: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "authenticity_signals_total",
			Help:      "Individual authenticity signals fired, by flag.",
		}, []string{"flag"}),
		ComplaintsSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "complaints_submitted_total",
			Help:      "Complaints accepted into the backlog, by source.",
		}, []string{"source"}),
		SubmissionsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "submissions_rejected_total",
			Help:      "Submissions rejected as likely fake.",
		}),
		ScraperImported: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "scraper_imported_total",
			Help:      "Social posts imported as complaints.",
		}),
		ScraperRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "scraper_rejected_total",
			Help:      "Social posts skipped by the authenticity screen.",
		}),
	}
}

// RecordClassification records one classification outcome.
func (p *Provider) RecordClassification(department, urgency string, duration time.Duration) {
	if p == nil || p.Metrics == nil {
		return
	}
	if department == "" {
		department = departmentNone
	}
	p.Metrics.ComplaintsClassified.WithLabelValues(department, urgency).Inc()
	p.Metrics.ClassifyDuration.Observe(duration.Seconds())
}

// RecordAuthenticity records one authenticity verdict and its fired signals.
func (p *Provider) RecordAuthenticity(label string, flags []string) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.AuthenticityChecks.WithLabelValues(label).Inc()
	for _, flag := range flags {
		p.Metrics.AuthenticitySignals.WithLabelValues(flag).Inc()
	}
}

// RecordSubmission records a complaint accepted into the backlog.
func (p *Provider) RecordSubmission(source string) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.ComplaintsSubmitted.WithLabelValues(source).Inc()
}

// RecordRejection records a submission rejected as likely fake.
func (p *Provider) RecordRejection() {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.SubmissionsRejected.Inc()
}

// RecordScrape records the outcome of one scraper pass.
func (p *Provider) RecordScrape(imported, rejected int) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.ScraperImported.Add(float64(imported))
	p.Metrics.ScraperRejected.Add(float64(rejected))
}
