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
)

// Assessment outcomes. Percentages are observed on finalized results only.
var (
	percentBuckets = prometheus.LinearBuckets(0, 10, 11)

	AssessmentOverallPercentage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "emis_assessment_overall_percentage",
			Help:    "Overall percentage of finalized facility assessments",
			Buckets: percentBuckets,
		},
	)

	SectionPercentage = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emis_section_percentage",
			Help:    "Section percentage of finalized facility assessments",
			Buckets: percentBuckets,
		},
		[]string{"section"},
	)

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emis_reports_generated_total",
			Help: "Reports rendered or served from cache",
		},
		[]string{"kind", "cache"},
	)

	ReportsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emis_reports_delivered_total",
			Help: "Report delivery attempts by outcome",
		},
		[]string{"status"},
	)
)
