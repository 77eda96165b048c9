// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"
)

type Config struct {
	RatingKFactor         float64 `env:"RATING_K_FACTOR"          envDefault:"24"  envDocs:"elo-style K factor applied to team rating deltas after a scored match"`
	SitCompensationPoints int     `env:"SIT_COMPENSATION_POINTS"  envDefault:"1"   envDocs:"compensation points credited to each sitting player per round (display only)"`
	MixedModeWeight       int     `env:"MIXED_MODE_WEIGHT"        envDefault:"70"  envDocs:"draw weight for the mixed composition under randomized_modes"`
	SingleModeWeight      int     `env:"SINGLE_MODE_WEIGHT"       envDefault:"15"  envDocs:"draw weight for each single-gender composition under randomized_modes"`
	TeamRatingGapSoftMax  float64 `env:"TEAM_RATING_GAP_SOFT_MAX" envDefault:"2"   envDocs:"intra-match team rating gap the splitter tries to stay under when the pool allows it"`
}

// FromEnv loads the configuration from environment variables, falling back
// to the documented defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with every tunable at its default
// value, ignoring the environment.
func Default() *Config {
	return &Config{
		RatingKFactor:         24,
		SitCompensationPoints: 1,
		MixedModeWeight:       70,
		SingleModeWeight:      15,
		TeamRatingGapSoftMax:  2,
	}
}
