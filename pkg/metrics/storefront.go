package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeConfirmed = "confirmed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// StorefrontMetrics tracks sessions and checkout attempts.
type StorefrontMetrics struct {
	sessions  prometheus.Gauge
	checkouts *prometheus.CounterVec
}

func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_active_sessions",
		Help: "Browsing sessions currently held in memory.",
	})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "Checkout attempts by tenant and outcome.",
	}, []string{"tenant", "outcome"})
	reg.MustRegister(sessions, checkouts)
	return &StorefrontMetrics{
		sessions:  sessions,
		checkouts: checkouts,
	}
}

func (m *StorefrontMetrics) SetSessions(n int) {
	if m == nil || m.sessions == nil {
		return
	}
	m.sessions.Set(float64(n))
}

func (m *StorefrontMetrics) IncCheckout(tenant, outcome string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(tenant), normalizeLabel(outcome)).Inc()
}
