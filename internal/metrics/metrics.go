// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes Prometheus counters for prompt generation and
// provider calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generations
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptpilot_generations_total",
			Help: "Prompts served, by source",
		},
		[]string{"source"}, // ai|fallback
	)

	// Provider calls
	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptpilot_provider_requests_total",
			Help: "Outbound provider calls by provider and result",
		},
		[]string{"provider", "result"}, // result: success|error|not_configured
	)
	ProviderDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptpilot_provider_duration_seconds",
			Help:    "Duration of outbound provider calls",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
		[]string{"provider"},
	)

	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptpilot_http_requests_total",
			Help: "HTTP requests by method, route pattern and status",
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		Generations,
		ProviderRequests,
		ProviderDurationSeconds,
		HTTPRequests,
	)
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncGeneration counts one served prompt.
func IncGeneration(source string) {
	Generations.WithLabelValues(source).Inc()
}

// ObserveProviderRequest records the outcome and latency of a provider call.
// Calls that never left the process (not_configured) skip the histogram.
func ObserveProviderRequest(provider, result string, d time.Duration) {
	ProviderRequests.WithLabelValues(provider, result).Inc()
	if result != "not_configured" {
		ProviderDurationSeconds.WithLabelValues(provider).Observe(d.Seconds())
	}
}

// IncHTTPRequest counts one handled HTTP request.
func IncHTTPRequest(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
