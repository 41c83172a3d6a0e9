package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "muxdata_client",
			Name:      "requests_total",
			Help:      "API requests dispatched, by resource and method.",
		},
		[]string{"resource", "method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "muxdata_client",
			Name:      "request_failures_total",
			Help:      "API requests that ended in a transport error or non-2xx status.",
		},
		[]string{"resource"},
	)
)
