package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Prefix = "cloth_cafe"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	registry *prometheus.Registry

	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	OrdersCreated       *prometheus.CounterVec
	OrderTransitions    *prometheus.CounterVec
	RelaySubmissions    *prometheus.CounterVec
	MembershipDecisions *prometheus.CounterVec
	AdminLogins         *prometheus.CounterVec
}

// New registers every collector on reg. Passing a fresh registry keeps tests
// independent of each other.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: Prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    Prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		OrdersCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: Prefix + "_orders_created_total",
				Help: "Total number of orders placed",
			},
			[]string{"payment_method"},
		),
		OrderTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: Prefix + "_order_status_transitions_total",
				Help: "Total number of order status changes",
			},
			[]string{"status"},
		),
		RelaySubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: Prefix + "_relay_submissions_total",
				Help: "Total number of notification relay submissions",
			},
			[]string{"kind", "result"},
		),
		MembershipDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: Prefix + "_membership_decisions_total",
				Help: "Total number of membership request decisions",
			},
			[]string{"decision"},
		),
		AdminLogins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: Prefix + "_admin_logins_total",
				Help: "Total number of admin login attempts",
			},
			[]string{"result"},
		),
	}
}

// NewDefault builds a registry that also exports process and Go runtime
// metrics.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordOrderCreated(paymentMethod string) {
	m.OrdersCreated.WithLabelValues(paymentMethod).Inc()
}

func (m *Metrics) RecordOrderTransition(status string) {
	m.OrderTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordRelay(kind string, err error) {
	m.RelaySubmissions.WithLabelValues(kind, result(err)).Inc()
}

func (m *Metrics) RecordMembershipDecision(decision string) {
	m.MembershipDecisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) RecordAdminLogin(err error) {
	m.AdminLogins.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latency labelled by route template so
// ids in the path do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		status := strconv.Itoa(rec.status)

		m.HttpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		m.HttpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}
