package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "checkouts_total",
			Help:      "Total number of checkout requests by outcome",
		},
		[]string{"status"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of successful checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	webhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Total number of payment webhook events by outcome",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		checkoutDuration,
		webhookEventsTotal,
	)
}
