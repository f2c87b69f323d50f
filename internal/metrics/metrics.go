// Package metrics exposes the storefront's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DispatchAttempts counts delivery attempts per tier and outcome.
	DispatchAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "secureshop",
		Name:      "dispatch_attempts_total",
		Help:      "Order notification delivery attempts by tier and outcome.",
	}, []string{"tier", "outcome"})

	// OrdersSubmitted counts completed checkout submissions.
	OrdersSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "secureshop",
		Name:      "orders_submitted_total",
		Help:      "Total number of completed checkout submissions.",
	})
)

func init() {
	prometheus.MustRegister(DispatchAttempts, OrdersSubmitted)
}

// Handler serves the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
