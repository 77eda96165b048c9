package testsetup

import (
	"time"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) RoundGenerated(format string, numMatches int, numSitting int) {
}

func (s stubMetricsCollection) AddGenerateElapsedTimeMs(format, function string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddDegradedReason(format string, reason string) {
}

func (s stubMetricsCollection) MatchRecorded(format string) {
}

func NewMetrics() metrics.EngineMetrics {
	return stubMetricsCollection{}
}
