// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package scheduler

import (
	"github.com/elliotchance/pie/v2"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/mathutil"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
)

// selection is the candidate selector's output for one generation call:
// who plays, who sits, and how many matches can be filled.
type selection struct {
	playing    []*models.Player
	sitting    []*models.Player
	matchCount int
}

// selectCandidates computes the eligible pool for the round (skip-listed
// and excluded players removed), decides how many matches fit, and picks
// the sitters that keep sit counts level across the roster.
func (e *Engine) selectCandidates(roundNumber, requestedCourts int, excluded map[playerdata.ID]struct{}) selection {
	scratch := models.GetPlayerScratch()
	defer func() { models.PutPlayerScratch(scratch) }()

	for _, p := range e.roster.Players() {
		if p.ShouldSkip(roundNumber) {
			continue
		}
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		scratch = append(scratch, p)
	}

	matchCount := mathutil.Min(requestedCourts, len(scratch)/4)
	sitCount := len(scratch) - matchCount*4

	// Shuffle before the stable sort so ties in the fairness keys resolve
	// randomly rather than by roster order.
	ordered := append([]*models.Player{}, scratch...)
	e.rnd.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	ordered = pie.SortStableUsing(ordered, func(a, b *models.Player) bool {
		if a.SitCount != b.SitCount {
			return a.SitCount < b.SitCount
		}
		// Players on a long play streak rest first.
		return a.ConsecutiveSits < b.ConsecutiveSits
	})

	return selection{
		sitting:    ordered[:sitCount],
		playing:    ordered[sitCount:],
		matchCount: matchCount,
	}
}

// applyPlayCounters advances the fairness counters for players placed in a
// match.
func (e *Engine) applyPlayCounters(playing []*models.Player) {
	for _, p := range playing {
		p.PlayCount++
		p.ConsecutivePlays++
		p.ConsecutiveSits = 0
	}
}

// applySitCounters advances the fairness counters for sitting players and
// credits their compensation points.
func (e *Engine) applySitCounters(sitting []*models.Player) {
	for _, p := range sitting {
		p.SitCount++
		p.ConsecutiveSits++
		p.ConsecutivePlays = 0
		p.CompensationPoints += e.cfg.SitCompensationPoints
	}
}
