// Copyright (c) 2026 Jeremy Hahn
// Copyright (c) 2026 Automate The Things, LLC
//
// This file is part of go-enclave.
//
// go-enclave is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package metrics provides Prometheus instrumentation for enclave
// connections: attempt counters by backend and outcome, connect
// latency, and the number of open connections.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all enclave metrics.
	Namespace = "enclave"

	// Label names
	LabelBackend = "backend"
	LabelStatus  = "status"

	// StatusSuccess marks a successful connection attempt. Failures
	// carry the error kind as the status label.
	StatusSuccess = "success"
)

var (
	// ConnectsTotal tracks connection attempts by backend and outcome.
	// Failed attempts are labeled with the error kind so operators can
	// separate retryable connection failures from credential problems.
	ConnectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "connects_total",
			Help:      "Total number of enclave connection attempts by backend and outcome",
		},
		[]string{LabelBackend, LabelStatus},
	)

	// ConnectDuration tracks how long connection attempts take.
	// Buckets span cheap local keyring opens through slow network or
	// USB attached hardware modules.
	ConnectDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "connect_duration_seconds",
			Help:      "Duration of enclave connection attempts in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{LabelBackend},
	)

	// OpenConnections tracks currently open enclave connections.
	OpenConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "open_connections",
			Help:      "Number of currently open enclave connections by backend",
		},
		[]string{LabelBackend},
	)
)

// RecordConnect records one connection attempt.
func RecordConnect(backend, status string, seconds float64) {
	ConnectsTotal.WithLabelValues(backend, status).Inc()
	ConnectDuration.WithLabelValues(backend).Observe(seconds)
}

// ConnectionOpened increments the open-connections gauge.
func ConnectionOpened(backend string) {
	OpenConnections.WithLabelValues(backend).Inc()
}

// ConnectionClosed decrements the open-connections gauge.
func ConnectionClosed(backend string) {
	OpenConnections.WithLabelValues(backend).Dec()
}
