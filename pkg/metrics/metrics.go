package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsCreated     *prometheus.CounterVec
	LeadsAssigned    prometheus.Counter
	InquiriesCreated prometheus.Counter
	QuizSubmissions  *prometheus.CounterVec
	ChatMessages     prometheus.Counter
	CampaignsBuilt   *prometheus.CounterVec
	LoginAttempts    *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		// Business metrics
		LeadsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_created_total",
				Help: "Total number of leads created",
			},
			[]string{"source"}, // form, webhook, manual
		),
		LeadsAssigned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_assigned_total",
			Help: "Total number of leads assigned through rotation",
		}),
		InquiriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inquiries_created_total",
			Help: "Total number of contact-form inquiries",
		}),
		QuizSubmissions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_submissions_total",
				Help: "Total number of career quiz submissions",
			},
			[]string{"path"}, // ai, fallback
		),
		ChatMessages: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total number of chat messages appended",
		}),
		CampaignsBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaigns_built_total",
				Help: "Total number of generated campaigns and outreach sets",
			},
			[]string{"kind", "path"}, // kind: email, leadgen; path: ai, fallback
		),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/leads/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordLeadCreated increments the leads created counter
func (m *Metrics) RecordLeadCreated(source string) {
	if source == "" {
		source = "manual"
	}
	m.LeadsCreated.WithLabelValues(source).Inc()
}

// RecordLeadAssigned increments the rotation assignment counter
func (m *Metrics) RecordLeadAssigned() {
	m.LeadsAssigned.Inc()
}

// RecordInquiry increments the inquiries counter
func (m *Metrics) RecordInquiry() {
	m.InquiriesCreated.Inc()
}

// RecordQuizSubmission increments the quiz counter for the path taken
func (m *Metrics) RecordQuizSubmission(aiGenerated bool) {
	path := "fallback"
	if aiGenerated {
		path = "ai"
	}
	m.QuizSubmissions.WithLabelValues(path).Inc()
}

// RecordChatMessage increments the chat message counter
func (m *Metrics) RecordChatMessage() {
	m.ChatMessages.Inc()
}

// RecordCampaignBuilt increments the campaign counter for the path taken
func (m *Metrics) RecordCampaignBuilt(kind string, aiGenerated bool) {
	path := "fallback"
	if aiGenerated {
		path = "ai"
	}
	m.CampaignsBuilt.WithLabelValues(kind, path).Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}
