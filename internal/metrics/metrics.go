// Package metrics provides Prometheus metrics for the bidding service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "freelance"
)

var (
	// BidsSubmittedTotal counts submission attempts by outcome.
	BidsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bids",
			Name:      "submitted_total",
			Help:      "Total bid submissions by result",
		},
		[]string{"result"},
	)

	// BidStatusTransitionsTotal counts applied status changes by target status.
	BidStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bids",
			Name:      "status_transitions_total",
			Help:      "Total bid status transitions by target status",
		},
		[]string{"status"},
	)

	CatalogFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "fallbacks_total",
			Help:      "Times the built-in project list replaced the fetched catalog",
		},
	)

	RatingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "ratings_total",
			Help:      "Total star ratings recorded",
		},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
