// Package metrics declares the Prometheus collectors exported by adgate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adgate"

// Metrics groups every collector the engine updates.
type Metrics struct {
	Decisions        *prometheus.CounterVec
	EvaluateDuration prometheus.Histogram
	Impressions      *prometheus.CounterVec
	Revenue          prometheus.Counter
	Completions      prometheus.Counter
	RecordFailures   prometheus.Counter
	Retries          *prometheus.CounterVec
	CampaignsClosed  prometheus.Counter
}

// New creates the collectors and registers them with reg. A nil reg creates
// unregistered collectors, which is convenient in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admission_decisions_total",
			Help:      "Admission decisions by terminal status and denial reason.",
		}, []string{"status", "reason"}),
		EvaluateDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "admission_evaluate_seconds",
			Help:      "Latency of admission evaluation.",
			Buckets:   prometheus.DefBuckets,
		}),
		Impressions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impressions_total",
			Help:      "Impressions recorded, split by fallback campaign usage.",
		}, []string{"fallback"}),
		Revenue: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impression_revenue_total",
			Help:      "Revenue booked at serve time in settlement currency.",
		}),
		Completions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impression_completions_total",
			Help:      "Impressions reported as watched to the end.",
		}),
		RecordFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impression_record_failures_total",
			Help:      "Impressions whose first write failed and were queued for retry.",
		}),
		Retries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impression_retries_total",
			Help:      "Outcome of impression retries.",
		}, []string{"outcome"}),
		CampaignsClosed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_completed_total",
			Help:      "Campaigns moved to completed at selection time.",
		}),
	}
}
