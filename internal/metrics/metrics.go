package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa los collectors del servicio. Todos los métodos toleran
// receptor nil, así los tests y la CLI pueden no instrumentar.
type Metrics struct {
	HTTPRequestTotal    *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	MatchesRanked *prometheus.CounterVec

	NotificationsEmitted    *prometheus.CounterVec
	NotificationsSuppressed *prometheus.CounterVec

	PersistenceFailures *prometheus.CounterVec
	DeliveryFailures    *prometheus.CounterVec
}

var (
	global   *Metrics
	globalMu sync.Mutex
)

// Default devuelve la instancia registrada en el registry global de prometheus.
func Default() *Metrics {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		global = New(prometheus.DefaultRegisterer)
	}
	return global
}

// New crea los collectors y los registra en reg. Si alguno ya estaba
// registrado se reutiliza el existente.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petfinder_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "petfinder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		MatchesRanked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petfinder_matches_ranked_total",
			Help: "Sightings scored against a lost pet",
		}, []string{"species"}),

		NotificationsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petfinder_notifications_emitted_total",
			Help: "Notifications pushed to an inbox",
		}, []string{"type", "urgency"}),

		NotificationsSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petfinder_notifications_suppressed_total",
			Help: "Alert evaluations that produced no notification",
		}, []string{"type", "reason"}),

		PersistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petfinder_persistence_failures_total",
			Help: "Snapshot writes that failed (state stays in memory)",
		}, []string{"key"}),

		DeliveryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petfinder_delivery_failures_total",
			Help: "Notification deliveries to external sinks that failed",
		}, []string{"sink"}),
	}

	m.HTTPRequestTotal = registerOrGet(reg, m.HTTPRequestTotal)
	m.HTTPRequestDuration = registerOrGet(reg, m.HTTPRequestDuration)
	m.MatchesRanked = registerOrGet(reg, m.MatchesRanked)
	m.NotificationsEmitted = registerOrGet(reg, m.NotificationsEmitted)
	m.NotificationsSuppressed = registerOrGet(reg, m.NotificationsSuppressed)
	m.PersistenceFailures = registerOrGet(reg, m.PersistenceFailures)
	m.DeliveryFailures = registerOrGet(reg, m.DeliveryFailures)

	return m
}

func registerOrGet[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

func (m *Metrics) ObserveMatches(species string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.MatchesRanked.WithLabelValues(species).Add(float64(n))
}

func (m *Metrics) NotificationEmitted(typ, urgency string) {
	if m == nil {
		return
	}
	m.NotificationsEmitted.WithLabelValues(typ, urgency).Inc()
}

func (m *Metrics) NotificationSuppressed(typ, reason string) {
	if m == nil {
		return
	}
	m.NotificationsSuppressed.WithLabelValues(typ, reason).Inc()
}

func (m *Metrics) PersistenceFailed(key string) {
	if m == nil {
		return
	}
	m.PersistenceFailures.WithLabelValues(key).Inc()
}

func (m *Metrics) DeliveryFailed(sink string) {
	if m == nil {
		return
	}
	m.DeliveryFailures.WithLabelValues(sink).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestTotal.WithLabelValues(method, route, statusClass(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
