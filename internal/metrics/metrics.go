package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "motel_admin",
			Name:      "bookings_created_total",
			Help:      "Count of room bookings created.",
		},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "motel_admin",
			Name:      "booking_transitions_total",
			Help:      "Count of booking lifecycle transitions by target status.",
		},
		[]string{"to"},
	)

	extensionsApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "motel_admin",
			Name:      "time_extensions_applied_total",
			Help:      "Count of time extensions applied to bookings.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingTransitions, extensionsApplied)
	})
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingTransition(to string) {
	bookingTransitions.WithLabelValues(to).Inc()
}

func IncExtensionApplied() {
	extensionsApplied.Inc()
}
