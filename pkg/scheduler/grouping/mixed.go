// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package grouping

import (
	"github.com/sirupsen/logrus"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/constants"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/envelope"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/mathutil"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
)

// mixedMexicano is the gender-balanced skill-clustering strategy: groups
// are still formed in rating order, but each group must be arrangeable as
// one male and one female per team. Unspecified-gender players fill either
// slot. Groups that cannot satisfy the constraint fall back to the plain
// balanced split and report a degradation.
type mixedMexicano struct {
	cfg *config.Config
}

// NewMixedMexicano returns the gender-balanced grouping strategy.
func NewMixedMexicano(cfg *config.Config) Strategy {
	return &mixedMexicano{cfg: cfg}
}

func (m *mixedMexicano) Name() string {
	return constants.FormatMixedMexicano
}

func (m *mixedMexicano) Group(scope *envelope.Scope, eligible []*models.Player, matchCount int, hist *roster.History) ([]models.Pairing, []models.Degradation) {
	remaining := sortByRatingDesc(eligible)

	pairings := make([]models.Pairing, 0, matchCount)
	var degradations []models.Degradation
	for i := 0; i < matchCount && len(remaining) >= 4; i++ {
		group, rest, feasible := TakeMixedGroup(remaining)
		remaining = rest

		var pairing models.Pairing
		switch {
		case feasible:
			pairing = ArrangeMixedTeams(group, hist)
		default:
			var repeated bool
			pairing, repeated = SplitBalanced(group, hist)
			degradations = append(degradations, models.Degradation{Court: i, Reason: constants.DegradeReasonMixedNotSupported})
			if repeated {
				degradations = append(degradations, models.Degradation{Court: i, Reason: constants.DegradeReasonPartnerRepeated})
			}
		}
		pairings = append(pairings, pairing)
	}

	scope.Log.WithFields(logrus.Fields{
		"strategy":   m.Name(),
		"eligible":   len(eligible),
		"matchCount": matchCount,
		"pairings":   len(pairings),
		"degraded":   len(degradations),
	}).Debug("gender-balanced grouping done")

	return pairings, degradations
}

// TakeMixedGroup walks the rating-ordered pool and takes the first four
// players that can be arranged as two male and two female slots, counting
// unspecified players as wildcards. When no such four exist it takes the
// top four as-is and reports the group as infeasible.
func TakeMixedGroup(pool []*models.Player) (group, rest []*models.Player, feasible bool) {
	group = make([]*models.Player, 0, 4)
	taken := make(map[int]struct{}, 4)
	males, females := 0, 0
	for i, p := range pool {
		strictMales := males
		strictFemales := females
		switch p.Gender {
		case models.GenderMale:
			strictMales++
		case models.GenderFemale:
			strictFemales++
		}
		if strictMales > 2 || strictFemales > 2 {
			continue
		}
		males, females = strictMales, strictFemales
		group = append(group, p)
		taken[i] = struct{}{}
		if len(group) == 4 {
			break
		}
	}

	if len(group) < 4 {
		return pool[:4], pool[4:], false
	}

	rest = make([]*models.Player, 0, len(pool)-4)
	for i, p := range pool {
		if _, ok := taken[i]; !ok {
			rest = append(rest, p)
		}
	}
	return group, rest, true
}

// ArrangeMixedTeams splits a feasible group of 4 into two mixed teams,
// assigning strict genders to their slots first and wildcards to whatever
// remains, then picks the cross pairing with the smaller rating gap that
// avoids repeating the previous round's partnerships when possible.
func ArrangeMixedTeams(group []*models.Player, hist *roster.History) models.Pairing {
	maleSlots := make([]*models.Player, 0, 2)
	femaleSlots := make([]*models.Player, 0, 2)
	wildcards := make([]*models.Player, 0, 2)
	for _, p := range group {
		switch p.Gender {
		case models.GenderMale:
			maleSlots = append(maleSlots, p)
		case models.GenderFemale:
			femaleSlots = append(femaleSlots, p)
		default:
			wildcards = append(wildcards, p)
		}
	}
	for _, w := range wildcards {
		if len(maleSlots) < 2 {
			maleSlots = append(maleSlots, w)
		} else {
			femaleSlots = append(femaleSlots, w)
		}
	}

	// Two cross arrangements keep one male and one female per team.
	straight := models.Pairing{
		Team1: models.NewTeam(maleSlots[0], femaleSlots[0]),
		Team2: models.NewTeam(maleSlots[1], femaleSlots[1]),
	}
	crossed := models.Pairing{
		Team1: models.NewTeam(maleSlots[0], femaleSlots[1]),
		Team2: models.NewTeam(maleSlots[1], femaleSlots[0]),
	}

	straightRepeats := pairingRepeatsLastPartner(straight, hist)
	crossedRepeats := pairingRepeatsLastPartner(crossed, hist)
	if straightRepeats && !crossedRepeats {
		return crossed
	}
	if crossedRepeats && !straightRepeats {
		return straight
	}
	if pairingGap(crossed) < pairingGap(straight) {
		return crossed
	}
	return straight
}

func pairingRepeatsLastPartner(p models.Pairing, hist *roster.History) bool {
	return hist.WerePartnersLastRound(p.Team1.Players[0].ID, p.Team1.Players[1].ID) ||
		hist.WerePartnersLastRound(p.Team2.Players[0].ID, p.Team2.Players[1].ID)
}

func pairingGap(p models.Pairing) float64 {
	return mathutil.AbsDiff(p.Team1.AverageRating(), p.Team2.AverageRating())
}
