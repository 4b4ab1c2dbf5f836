package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBackendMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBackendMetrics(reg)

	m.Observe("productos", 120*time.Millisecond, nil)
	m.Observe("productos", 80*time.Millisecond, errors.New("boom"))
	m.Observe("", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("productos", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("productos", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("unknown", "success")))
}

func TestStorefrontMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.SetSessions(3)
	m.IncCheckout("acme", OutcomeConfirmed)
	m.IncCheckout("acme", OutcomeConfirmed)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.checkouts.WithLabelValues("acme", OutcomeConfirmed)))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var b *BackendMetrics
	var s *StorefrontMetrics

	assert.NotPanics(t, func() {
		b.Observe("x", time.Second, nil)
		s.SetSessions(1)
		s.IncCheckout("x", OutcomeFailed)
		NewBackendMetrics(nil).Observe("x", time.Second, nil)
		NewStorefrontMetrics(nil).IncCheckout("x", OutcomeFailed)
	})
}
