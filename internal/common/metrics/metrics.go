// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LeadsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_scoring_leads_scored_total",
			Help: "Total number of leads scored, by tier",
		},
		[]string{"tier"},
	)

	LeadsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_scoring_leads_failed_total",
			Help: "Total number of leads that failed scoring",
		},
		[]string{"error_code"},
	)

	RetrievalFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_scoring_retrieval_failures_total",
			Help: "Total number of website/listing retrievals that were unavailable",
		},
		[]string{"target"},
	)

	LeadScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "lead_scoring_duration_seconds",
			Help: "Duration of per-lead scoring in seconds",
		},
		[]string{"stage"},
	)

	LeadsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lead_scoring_leads_in_flight",
			Help: "Number of leads currently being scored",
		},
	)
)
