package api

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type submissionMetrics struct {
	total    *prometheus.CounterVec
	duration prometheus.Observer
}

var (
	submissionMetricsOnce sync.Once
	submissionMetricsInst *submissionMetrics
)

func globalSubmissionMetrics() *submissionMetrics {
	submissionMetricsOnce.Do(func() {
		submissionMetricsInst = newSubmissionMetrics()
	})
	return submissionMetricsInst
}

func newSubmissionMetrics() *submissionMetrics {
	return &submissionMetrics{
		total: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contactform",
			Subsystem: "api",
			Name:      "submissions_total",
			Help:      "Contact form submissions, labeled by category and result",
		}, []string{"category", "status"}),
		duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "contactform",
			Subsystem: "api",
			Name:      "submission_duration_seconds",
			Help:      "End-to-end duration of submission handling",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
