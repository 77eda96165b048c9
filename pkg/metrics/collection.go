// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	roundsGenerated     prometheus.CounterVec
	generateElapsedTime prometheus.HistogramVec
	degradedReasons     prometheus.CounterVec
	matchesRecorded     prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	roundsGenerated := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "court_engine_rounds_generated",
			Help: "A counter of generated rounds by format, match count and sitting count",
		}, []string{"format", "numMatches", "numSitting"})

	//nolint:promlinter
	generateElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "court_engine_generate_elapsed_time_ms",
			Help:    "A histogram of round/court generation elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"format", "function"})

	degradedReasons := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "court_engine_degraded_reasons",
			Help: "A counter for degraded match generation reasons",
		}, []string{"format", "reason"})

	matchesRecorded := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "court_engine_matches_recorded",
			Help: "A counter of completed matches folded into ratings and stats",
		}, []string{"format"})

	return prometheusMetrics{
		roundsGenerated:     *roundsGenerated,
		generateElapsedTime: *generateElapsedTime,
		degradedReasons:     *degradedReasons,
		matchesRecorded:     *matchesRecorded,
	}
}

func (metrics prometheusMetrics) RoundGenerated(format string, numMatches int, numSitting int) {
	metrics.roundsGenerated.With(prometheus.Labels{"format": format, "numMatches": strconv.Itoa(numMatches), "numSitting": strconv.Itoa(numSitting)}).Add(float64(1))
}

func (metrics prometheusMetrics) AddGenerateElapsedTimeMs(format, function string, elapsedTime time.Duration) {
	metrics.generateElapsedTime.With(prometheus.Labels{"format": format, "function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddDegradedReason(format string, reason string) {
	metrics.degradedReasons.With(prometheus.Labels{"format": format, "reason": reason}).Add(float64(1))
}

func (metrics prometheusMetrics) MatchRecorded(format string) {
	metrics.matchesRecorded.With(prometheus.Labels{"format": format}).Add(float64(1))
}
