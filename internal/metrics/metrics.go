package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business
	WebhookEventsTotal *prometheus.CounterVec
	SettlementsTotal   *prometheus.CounterVec
	TopUpsTotal        *prometheus.CounterVec
	PublishTotal       *prometheus.CounterVec
	UsersCreated       prometheus.Counter

	// Validation
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "billing_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "billing_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		WebhookEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_webhook_events_total",
				Help: "Inbound YooKassa webhook deliveries by event and outcome",
			},
			[]string{"event", "outcome"},
		),
		SettlementsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_settlements_total",
				Help: "Settlement attempts by outcome",
			},
			[]string{"outcome"},
		),
		TopUpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_topups_total",
				Help: "Top-up initiations by outcome",
			},
			[]string{"outcome"},
		),
		PublishTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_campaign_publish_total",
				Help: "Campaign publish attempts by outcome",
			},
			[]string{"outcome"},
		),
		UsersCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "billing_users_created_total",
				Help: "Users created with the initial balance grant",
			},
		),
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_validation_errors_total",
				Help: "Request validation failures",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "billing_validation_duration_seconds",
				Help:    "Duration of request validation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) RecordWebhookEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.WebhookEventsTotal.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) RecordSettlement(outcome string) {
	if m == nil {
		return
	}
	m.SettlementsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordTopUp(outcome string) {
	if m == nil {
		return
	}
	m.TopUpsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordPublish(outcome string) {
	if m == nil {
		return
	}
	m.PublishTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordUserCreated() {
	if m == nil {
		return
	}
	m.UsersCreated.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	if m == nil {
		return
	}
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ValidationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
