package main

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	telemetryOnce sync.Once

	methodSelected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitplan",
			Name:      "bodyfat_method_selected_total",
			Help:      "Count of calculations by body-fat method actually used.",
		},
		[]string{"method"},
	)

	methodFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fitplan",
			Name:      "method_label_fallback_total",
			Help:      "Count of unrecognized method labels defaulted to deurenberg.",
		},
	)

	planRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitplan",
			Name:      "plan_requests_total",
			Help:      "Count of workout plan generations by outcome.",
		},
		[]string{"status"},
	)
)

// registerTelemetry registers the counters (idempotent).
func registerTelemetry() {
	telemetryOnce.Do(func() {
		prometheus.MustRegister(methodSelected, methodFallbacks, planRequests)
	})
}

func observeMethodSelected(method string) {
	methodSelected.WithLabelValues(method).Inc()
}

func observeMethodFallback() {
	methodFallbacks.Inc()
}

func observePlanRequest(status string) {
	planRequests.WithLabelValues(status).Inc()
}
