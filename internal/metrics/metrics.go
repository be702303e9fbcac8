// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resumeclf"

var (
	// Extractions counts documents by the strategy that produced their text.
	// Documents no strategy could read are counted under "none".
	Extractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total",
		Help:      "Documents processed by the text extractor, by winning strategy.",
	}, []string{"media_type", "strategy"})

	Classifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classifications_total",
		Help:      "Classification requests by outcome.",
	}, []string{"outcome"})

	PredictedCategories = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predicted_categories_total",
		Help:      "Successful classifications by predicted category.",
	}, []string{"category"})

	ClassificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "classification_duration_seconds",
		Help:      "Time spent normalizing, vectorizing and scoring one resume.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	WorkerJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "worker_jobs_total",
		Help:      "Queue jobs handled by the analysis worker, by final status.",
	}, []string{"status"})
)
