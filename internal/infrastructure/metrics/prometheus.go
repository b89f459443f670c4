// Package metrics holds the Prometheus instrumentation for the REST service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	BookingsCreated   prometheus.Counter
	BookingsCancelled prometheus.Counter

	CallsInitiated  prometheus.Counter
	CallsSettled    prometheus.Counter
	CallsMissed     *prometheus.CounterVec
	CallRingSweeps  prometheus.Counter
	BilledMinutes   prometheus.Counter

	TopUpsConfirmed prometheus.Counter
}

// NewMetrics creates and registers Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xaosao_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),

		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xaosao_request_duration_seconds",
				Help:    "Duration of HTTP request processing",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "xaosao_bookings_created_total",
			Help: "Total number of bookings created",
		}),

		BookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "xaosao_bookings_cancelled_total",
			Help: "Total number of bookings cancelled",
		}),

		CallsInitiated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "xaosao_calls_initiated_total",
			Help: "Total number of call sessions initiated",
		}),

		CallsSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "xaosao_calls_settled_total",
			Help: "Total number of call sessions settled",
		}),

		CallsMissed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xaosao_calls_missed_total",
				Help: "Total number of ring timeouts, by reporter",
			},
			[]string{"source"},
		),

		CallRingSweeps: promauto.NewCounter(prometheus.CounterOpts{
			Name: "xaosao_call_ring_sweeps_total",
			Help: "Total number of reaper sweep runs",
		}),

		BilledMinutes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "xaosao_call_billed_minutes_total",
			Help: "Total billed call minutes",
		}),

		TopUpsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "xaosao_topups_confirmed_total",
			Help: "Total number of confirmed wallet top-ups",
		}),
	}
}
