package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "td_feed_fetch_total",
			Help: "Feed fetch attempts",
		},
		[]string{"source"},
	)

	FeedFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "td_feed_fetch_errors_total",
			Help: "Feed fetches that degraded to empty data",
		},
		[]string{"source"},
	)

	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "td_feed_fetch_duration_seconds",
			Help: "Feed fetch latency",
		},
		[]string{"source"},
	)

	FeedItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "td_feed_items",
			Help: "Items collected per source on the last pass",
		},
		[]string{"source"},
	)

	ReportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "td_reports_generated_total",
			Help: "Weekly reports generated",
		},
	)

	ThreatScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "td_threat_score",
			Help: "Threat score of the last generated report",
		},
	)
)
