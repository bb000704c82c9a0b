package prometheus

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/webike_rental_service/internal/core/domain"
)

type PrometheusAdapter struct {
	registry      *prometheus.Registry
	rentsStarted  prometheus.Counter
	rentsReturned prometheus.Counter
	activeRents   prometheus.Gauge
	revenue       prometheus.Counter
	rentHours     prometheus.Histogram
	failures      *prometheus.CounterVec
}

func NewPrometheusAdapter(namespace string) *PrometheusAdapter {
	a := &PrometheusAdapter{
		registry: prometheus.NewRegistry(),
		rentsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rents_started_total",
			Help:      "Number of rents opened.",
		}),
		rentsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rents_returned_total",
			Help:      "Number of bikes returned.",
		}),
		activeRents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rents",
			Help:      "Rents currently open.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Sum of amounts charged on return.",
		}),
		rentHours: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rent_duration_hours",
			Help:      "Billed duration of returned rents.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 24, 72},
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Failed rental service operations by reason.",
		}, []string{"operation", "reason"}),
	}

	a.registry.MustRegister(
		a.rentsStarted,
		a.rentsReturned,
		a.activeRents,
		a.revenue,
		a.rentHours,
		a.failures,
	)
	return a
}

func (a *PrometheusAdapter) Registry() *prometheus.Registry {
	return a.registry
}

func (a *PrometheusAdapter) RecordRentStarted() {
	a.rentsStarted.Inc()
	a.activeRents.Inc()
}

func (a *PrometheusAdapter) RecordRentReturned(amount float64, elapsed time.Duration) {
	a.rentsReturned.Inc()
	a.activeRents.Dec()
	a.revenue.Add(amount)
	a.rentHours.Observe(elapsed.Hours())
}

func (a *PrometheusAdapter) RecordFailure(operation string, err error) {
	a.failures.WithLabelValues(operation, reason(err)).Inc()
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrBikeNotFound):
		return "bike_not_found"
	case errors.Is(err, domain.ErrUnavailableBike):
		return "unavailable_bike"
	case errors.Is(err, domain.ErrYouCantReturnThisBike):
		return "rent_not_found"
	case errors.Is(err, domain.ErrEmailRegistered):
		return "email_registered"
	case errors.Is(err, domain.ErrBikeRegistered):
		return "bike_registered"
	case errors.Is(err, domain.ErrUserHasActiveRent):
		return "user_has_active_rent"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return "other"
	}
}
