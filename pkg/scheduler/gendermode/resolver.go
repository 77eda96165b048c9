// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package gendermode decides, per match, which gender composition to
// attempt and degrades to an ungendered grouping when the roster cannot
// support the request. It wraps a base grouping strategy so the engine
// selects the whole pipeline once at construction time.
package gendermode

import (
	"math/rand"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/constants"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/envelope"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/scheduler/grouping"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/utils"
)

// Resolver implements grouping.Strategy by delegating to the base strategy
// and layering the configured gender preference on top.
type Resolver struct {
	pref  string
	base  grouping.Strategy
	mixed grouping.Strategy
	cfg   *config.Config
	rnd   *rand.Rand
}

// New wraps the base strategy with the given gender preference.
func New(pref string, base grouping.Strategy, cfg *config.Config, rnd *rand.Rand) (*Resolver, error) {
	known := []string{constants.GenderPreferenceAny, constants.GenderPreferenceMixedOnly, constants.GenderPreferenceRandomizedModes}
	if !utils.Contains(known, pref) {
		return nil, models.ConfigurationErrorUnknownGender
	}
	return &Resolver{
		pref:  pref,
		base:  base,
		mixed: grouping.NewMixedMexicano(cfg),
		cfg:   cfg,
		rnd:   rnd,
	}, nil
}

func (r *Resolver) Name() string {
	return r.base.Name()
}

func (r *Resolver) Group(scope *envelope.Scope, eligible []*models.Player, matchCount int, hist *roster.History) ([]models.Pairing, []models.Degradation) {
	switch r.pref {
	case constants.GenderPreferenceMixedOnly:
		return r.mixed.Group(scope, eligible, matchCount, hist)
	case constants.GenderPreferenceRandomizedModes:
		return r.groupRandomized(scope, eligible, matchCount, hist)
	default:
		return r.base.Group(scope, eligible, matchCount, hist)
	}
}

// groupRandomized draws a composition per match among the feasible ones,
// weighted heavily toward mixed, then fills the match from the remaining
// pool. Infeasible compositions never enter the draw, so every match gets
// a valid grouping.
func (r *Resolver) groupRandomized(scope *envelope.Scope, eligible []*models.Player, matchCount int, hist *roster.History) ([]models.Pairing, []models.Degradation) {
	remaining := pie.SortUsing(eligible, func(a, b *models.Player) bool {
		return a.Rating > b.Rating
	})

	pairings := make([]models.Pairing, 0, matchCount)
	var degradations []models.Degradation
	for i := 0; i < matchCount && len(remaining) >= 4; i++ {
		composition, ok := r.drawComposition(remaining)
		if !ok {
			// No composition fits the remaining genders; ungendered split.
			group := remaining[:4]
			remaining = remaining[4:]
			pairing, _ := grouping.SplitBalanced(group, hist)
			pairings = append(pairings, pairing)
			degradations = append(degradations, models.Degradation{Court: i, Reason: constants.DegradeReasonNoFeasibleComposition})
			continue
		}

		var pairing models.Pairing
		switch composition {
		case constants.CompositionMixed:
			group, rest, _ := grouping.TakeMixedGroup(remaining)
			remaining = rest
			pairing = grouping.ArrangeMixedTeams(group, hist)
		default:
			group, rest := takeSingleGenderGroup(remaining, composition)
			remaining = rest
			pairing, _ = grouping.SplitBalanced(group, hist)
		}
		pairings = append(pairings, pairing)
	}

	scope.Log.WithFields(logrus.Fields{
		"preference": r.pref,
		"eligible":   len(eligible),
		"matchCount": matchCount,
		"pairings":   len(pairings),
		"degraded":   len(degradations),
	}).Debug("randomized composition grouping done")

	return pairings, degradations
}

// drawComposition picks a composition by weighted draw over the subset
// feasible for the remaining pool.
func (r *Resolver) drawComposition(pool []*models.Player) (string, bool) {
	males, females, wildcards := genderCounts(pool)

	type weighted struct {
		composition string
		weight      int
	}
	candidates := make([]weighted, 0, 3)
	if min(males, 2)+min(females, 2)+wildcards >= 4 {
		candidates = append(candidates, weighted{constants.CompositionMixed, r.cfg.MixedModeWeight})
	}
	if males+wildcards >= 4 {
		candidates = append(candidates, weighted{constants.CompositionSingleMale, r.cfg.SingleModeWeight})
	}
	if females+wildcards >= 4 {
		candidates = append(candidates, weighted{constants.CompositionSingleFemale, r.cfg.SingleModeWeight})
	}
	if len(candidates) == 0 {
		return "", false
	}

	total := 0
	for _, c := range candidates {
		total += c.weight
	}
	draw := r.rnd.Intn(total)
	for _, c := range candidates {
		draw -= c.weight
		if draw < 0 {
			return c.composition, true
		}
	}
	return candidates[len(candidates)-1].composition, true
}

// takeSingleGenderGroup takes the four highest-rated players that qualify
// for the single-gender composition, strict genders before wildcards.
func takeSingleGenderGroup(pool []*models.Player, composition string) (group, rest []*models.Player) {
	qualifies := func(p *models.Player) bool {
		if composition == constants.CompositionSingleMale {
			return p.IsMale()
		}
		return p.IsFemale()
	}

	group = make([]*models.Player, 0, 4)
	taken := make(map[int]struct{}, 4)
	// Strict genders first so wildcards stay available for later matches.
	for pass := 0; pass < 2 && len(group) < 4; pass++ {
		for i, p := range pool {
			if len(group) == 4 {
				break
			}
			if _, ok := taken[i]; ok {
				continue
			}
			strict := p.Gender != models.GenderUnspecified
			if (pass == 0) != strict {
				continue
			}
			if qualifies(p) {
				group = append(group, p)
				taken[i] = struct{}{}
			}
		}
	}

	rest = make([]*models.Player, 0, len(pool)-len(group))
	for i, p := range pool {
		if _, ok := taken[i]; !ok {
			rest = append(rest, p)
		}
	}
	return group, rest
}

func genderCounts(pool []*models.Player) (males, females, wildcards int) {
	for _, p := range pool {
		switch p.Gender {
		case models.GenderMale:
			males++
		case models.GenderFemale:
			females++
		default:
			wildcards++
		}
	}
	return males, females, wildcards
}
