package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "restaurant_orders",
			Subsystem: "lifecycle",
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed",
		},
	)

	ordersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "restaurant_orders",
			Subsystem: "lifecycle",
			Name:      "orders_cancelled_total",
			Help:      "Total number of orders cancelled by their owners",
		},
	)

	cancelRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restaurant_orders",
			Subsystem: "lifecycle",
			Name:      "cancel_rejected_total",
			Help:      "Total number of rejected cancellation attempts",
		},
		[]string{"reason"},
	)

	statusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restaurant_orders",
			Subsystem: "lifecycle",
			Name:      "status_updates_total",
			Help:      "Total number of administrative status updates",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		ordersCancelled,
		cancelRejected,
		statusUpdates,
	)
}
