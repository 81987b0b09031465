package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roble_client",
			Name:      "requests_total",
			Help:      "HTTP requests sent, including refresh-cycle retries.",
		},
		[]string{"kind", "method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roble_client",
			Name:      "request_failures_total",
			Help:      "Requests that surfaced an error to the caller.",
		},
		[]string{"kind"},
	)

	tokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roble_client",
			Name:      "token_refresh_total",
			Help:      "Refresh cycles by outcome.",
		},
		[]string{"outcome"},
	)
)
