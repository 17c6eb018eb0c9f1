// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	DocumentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legal_documents_rendered_total",
			Help: "Documents rendered by type and language",
		},
		[]string{"document_type", "language"},
	)

	CitationsSuggested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legal_citations_suggested_total",
			Help: "Citations suggested per reference category",
		},
		[]string{"category"},
	)

	ArtifactBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "legal_artifact_bytes",
			Help:    "Size of projected document files",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"format"},
	)

	AskAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legal_ask_answers_total",
			Help: "Answers returned by source kind and cache outcome",
		},
		[]string{"source_kind", "cache"},
	)
)
