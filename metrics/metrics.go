// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus instruments for the exchange and the
// HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all prometheus metrics for the server
type Metrics struct {
	// Exchange operations
	UsersRegistered       prometheus.Counter
	AddressesAssigned     prometheus.Counter
	AddressRequestsFailed *prometheus.CounterVec
	PostcardsReceived     prometheus.Counter
	ConfirmationsRejected *prometheus.CounterVec
	SelectionCandidates   prometheus.Histogram

	// HTTP
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "postcrossing_users_registered_total",
			Help: "Total number of registered users",
		}),
		AddressesAssigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "postcrossing_addresses_assigned_total",
			Help: "Total number of postcards assigned to a recipient",
		}),
		AddressRequestsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postcrossing_address_requests_failed_total",
				Help: "Address requests that did not assign a recipient",
			},
			[]string{"reason"},
		),
		PostcardsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "postcrossing_postcards_received_total",
			Help: "Total number of postcards confirmed as received",
		}),
		ConfirmationsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postcrossing_confirmations_rejected_total",
				Help: "Receipt confirmations that were rejected",
			},
			[]string{"reason"},
		),
		SelectionCandidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "postcrossing_selection_candidates",
			Help:    "Number of candidates scored per address request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "postcrossing_http_request_duration_seconds",
				Help:    "HTTP request duration by route and status code",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "code"},
		),
	}

	reg.MustRegister(
		m.UsersRegistered,
		m.AddressesAssigned,
		m.AddressRequestsFailed,
		m.PostcardsReceived,
		m.ConfirmationsRejected,
		m.SelectionCandidates,
		m.RequestDuration,
	)

	return m
}
