// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package grouping contains the interchangeable algorithms that turn a set
// of eligible players into 2-vs-2 team assignments: skill-clustering
// (mexicano), opponent-rotation (americano), fixed-partner, and the
// gender-balanced mexicano variant.
package grouping

import (
	"math/rand"

	"github.com/elliotchance/pie/v2"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/constants"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/envelope"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
)

// Strategy turns eligible players into team pairings, one pairing per match
// to be filled for this call.
//
// Degradations returned by a strategy carry the match index within this
// call in their Court field; the court assigner rebases them to real court
// numbers.
type Strategy interface {
	// Name returns the format name this strategy implements.
	Name() string

	// Group builds up to matchCount pairings from the eligible players.
	// Strategies never fail: when a constraint cannot be satisfied they
	// relax it and report a degradation instead.
	Group(scope *envelope.Scope, eligible []*models.Player, matchCount int, hist *roster.History) ([]models.Pairing, []models.Degradation)
}

// ForFormat returns the Strategy for a tournament format name.
func ForFormat(format string, cfg *config.Config, rnd *rand.Rand) (Strategy, error) {
	switch format {
	case constants.FormatMexicano:
		return NewMexicano(cfg), nil
	case constants.FormatAmericano:
		return NewAmericano(rnd), nil
	case constants.FormatFixedPartner:
		return NewFixedPartner(cfg), nil
	case constants.FormatMixedMexicano:
		return NewMixedMexicano(cfg), nil
	default:
		return nil, models.ConfigurationErrorUnknownFormat
	}
}

// sortByRatingDesc returns a new slice with the players ordered from the
// highest to the lowest rating.
func sortByRatingDesc(players []*models.Player) []*models.Player {
	return pie.SortUsing(players, func(a, b *models.Player) bool {
		return a.Rating > b.Rating
	})
}
