package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "skeletonio"

	metricLabelRoute  = "route"
	metricLabelStatus = "status"
)

// Metrics is the structure that holds all prometheus metrics
var (
	// CapturesCompletedCounter count the number of hierarchy captures that ran through
	CapturesCompletedCounter = newCounterVec(
		"captures_completed_count",
		"Number of hierarchy captures that completed",
	)
	// CapturesFailedCounter count the number of captures aborted by a host error
	CapturesFailedCounter = newCounterVec(
		"captures_failed_count",
		"Number of hierarchy captures that failed due to an error",
	)
	// CaptureDuration observe the duration of each capture
	CaptureDuration = newSummaryVec(
		"capture_duration_seconds",
		"Duration in seconds for each completed capture",
	)
	// ReconstructsCompletedCounter count the number of record trees replayed into live nodes
	ReconstructsCompletedCounter = newCounterVec(
		"reconstructs_completed_count",
		"Number of record trees that were reconstructed",
	)
	// ReconstructsFailedCounter count the number of reconstructions aborted by a host error
	ReconstructsFailedCounter = newCounterVec(
		"reconstructs_failed_count",
		"Number of reconstructions that failed due to an error",
	)
	// LibrarySaveFailedCounter count the number of failed attempts to persist a skeleton
	LibrarySaveFailedCounter = newCounterVec(
		"library_save_failed_count",
		"Number of failures to store a skeleton in the library",
	)
	// ServiceRequestCounter count the number of requests for each route
	ServiceRequestCounter = newCounterVec(
		"service_request_count",
		"Count of requests for each route",
		metricLabelRoute, metricLabelStatus,
	)
	// ServiceRequestDuration observe the duration of requests for each route
	ServiceRequestDuration = newSummaryVec(
		"service_request_duration_seconds",
		"Seconds to serve a request for each route",
		metricLabelRoute, metricLabelStatus,
	)
)

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
