// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package grouping

import (
	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/constants"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/envelope"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
)

// partnerUnit is a validated fixed pair treated as an atomic scheduling
// unit. Only opponents rotate between rounds.
type partnerUnit struct {
	a, b *models.Player
}

func (u partnerUnit) combinedRating() float64 {
	return u.a.Rating + u.b.Rating
}

// fixedPartner schedules pre-assigned pairs against each other. Players
// whose partner is missing, asymmetric, or ineligible fall back to
// skill-clustering rather than failing the call.
type fixedPartner struct {
	cfg      *config.Config
	fallback Strategy
}

// NewFixedPartner returns the fixed-partner grouping strategy.
func NewFixedPartner(cfg *config.Config) Strategy {
	return &fixedPartner{cfg: cfg, fallback: NewMexicano(cfg)}
}

func (f *fixedPartner) Name() string {
	return constants.FormatFixedPartner
}

func (f *fixedPartner) Group(scope *envelope.Scope, eligible []*models.Player, matchCount int, hist *roster.History) ([]models.Pairing, []models.Degradation) {
	units, leftovers := f.validateUnits(eligible)

	// Strongest units first, mirroring the skill-clustering court order.
	units = pie.SortUsing(units, func(x, y partnerUnit) bool {
		return x.combinedRating() > y.combinedRating()
	})

	pairings := make([]models.Pairing, 0, matchCount)
	var degradations []models.Degradation
	for len(units) >= 2 && len(pairings) < matchCount {
		unit := units[0]
		units = units[1:]
		oppIdx := f.pickOpponentUnit(unit, units, hist)
		opp := units[oppIdx]
		units = append(units[:oppIdx], units[oppIdx+1:]...)

		pairings = append(pairings, models.Pairing{
			Team1: models.NewTeam(unit.a, unit.b),
			Team2: models.NewTeam(opp.a, opp.b),
		})
	}

	// An unpaired trailing unit joins the fallback pool as two ordinary
	// players.
	if len(units) == 1 && len(pairings) < matchCount {
		leftovers = append(leftovers, units[0].a, units[0].b)
		degradations = append(degradations, models.Degradation{Court: len(pairings), Reason: constants.DegradeReasonPartnerUnitUnpaired})
	}

	if remaining := matchCount - len(pairings); remaining > 0 && len(leftovers) >= 4 {
		fallbackPairings, fallbackDegs := f.fallback.Group(scope, leftovers, remaining, hist)
		for i := range fallbackPairings {
			degradations = append(degradations, models.Degradation{Court: len(pairings) + i, Reason: constants.DegradeReasonPartnerMapInvalid})
		}
		for _, d := range fallbackDegs {
			d.Court += len(pairings)
			degradations = append(degradations, d)
		}
		pairings = append(pairings, fallbackPairings...)
	}

	scope.Log.WithFields(logrus.Fields{
		"strategy":  f.Name(),
		"eligible":  len(eligible),
		"units":     len(pairings) * 2,
		"leftovers": len(leftovers),
		"pairings":  len(pairings),
	}).Debug("fixed-partner grouping done")

	return pairings, degradations
}

// validateUnits extracts symmetric partner pairs from the eligible set.
// Every player not covered by a valid pair lands in leftovers.
func (f *fixedPartner) validateUnits(eligible []*models.Player) (units []partnerUnit, leftovers []*models.Player) {
	byID := make(map[playerdata.ID]*models.Player, len(eligible))
	for _, p := range eligible {
		byID[p.ID] = p
	}

	claimed := make(map[playerdata.ID]struct{}, len(eligible))
	for _, p := range eligible {
		if _, done := claimed[p.ID]; done {
			continue
		}
		partner, ok := byID[p.PartnerID]
		if !ok || partner.ID == p.ID || partner.PartnerID != p.ID {
			continue
		}
		if _, done := claimed[partner.ID]; done {
			continue
		}
		claimed[p.ID] = struct{}{}
		claimed[partner.ID] = struct{}{}
		units = append(units, partnerUnit{a: p, b: partner})
	}

	for _, p := range eligible {
		if _, done := claimed[p.ID]; !done {
			leftovers = append(leftovers, p)
		}
	}
	return units, leftovers
}

// pickOpponentUnit chooses the unit whose members have opposed the given
// unit's members the fewest times, so opponents rotate across rounds.
func (f *fixedPartner) pickOpponentUnit(unit partnerUnit, candidates []partnerUnit, hist *roster.History) int {
	bestIdx := 0
	bestScore := f.crossOpponentScore(unit, candidates[0], hist)
	for i := 1; i < len(candidates); i++ {
		if score := f.crossOpponentScore(unit, candidates[i], hist); score < bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx
}

func (f *fixedPartner) crossOpponentScore(u1, u2 partnerUnit, hist *roster.History) int {
	score := 0
	for _, a := range []*models.Player{u1.a, u1.b} {
		for _, b := range []*models.Player{u2.a, u2.b} {
			score += hist.OpponentCount(a.ID, b.ID)
		}
	}
	return score
}
