// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type EngineMetrics interface {
	RoundGenerated(format string, numMatches int, numSitting int)
	AddGenerateElapsedTimeMs(format, function string, elapsedTime time.Duration)
	AddDegradedReason(format string, reason string)
	MatchRecorded(format string)
}

func NewMetrics(registry *prometheus.Registry) EngineMetrics {
	return setupPrometheusMetrics(registry)
}
