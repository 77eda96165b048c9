// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package grouping

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/constants"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/envelope"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
)

// americano is the opponent-rotation strategy. It grows each group of 4
// around a pivot player by repeatedly adding the candidate with the lowest
// accumulated opponent count against the group so far, then splits the
// group to minimize repeated opponents. Over many rounds this approximates
// a round robin.
type americano struct {
	rnd *rand.Rand
}

// NewAmericano returns the opponent-rotation grouping strategy.
func NewAmericano(rnd *rand.Rand) Strategy {
	return &americano{rnd: rnd}
}

func (a *americano) Name() string {
	return constants.FormatAmericano
}

func (a *americano) Group(scope *envelope.Scope, eligible []*models.Player, matchCount int, hist *roster.History) ([]models.Pairing, []models.Degradation) {
	pool := append([]*models.Player{}, eligible...)
	// Shuffling first keeps pivot choice from favoring roster order when
	// history counts are tied, which matters most in the early rounds.
	a.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	pairings := make([]models.Pairing, 0, matchCount)
	for i := 0; i < matchCount && len(pool) >= 4; i++ {
		group, rest := a.nextGroup(pool, hist)
		pool = rest
		pairings = append(pairings, SplitMinOpponents(group, hist))
	}

	scope.Log.WithFields(logrus.Fields{
		"strategy":   a.Name(),
		"eligible":   len(eligible),
		"matchCount": matchCount,
		"pairings":   len(pairings),
	}).Debug("opponent-rotation grouping done")

	return pairings, nil
}

// nextGroup takes the pool's first player as pivot and greedily adds the
// three candidates with the lowest opponent counts against the group built
// so far, ties broken by the lowest partner counts.
func (a *americano) nextGroup(pool []*models.Player, hist *roster.History) (group, rest []*models.Player) {
	group = []*models.Player{pool[0]}
	rest = append([]*models.Player{}, pool[1:]...)

	for len(group) < 4 {
		bestIdx := 0
		bestOpp, bestPartner := a.groupScore(group, rest[0], hist)
		for i := 1; i < len(rest); i++ {
			opp, partner := a.groupScore(group, rest[i], hist)
			if opp < bestOpp || (opp == bestOpp && partner < bestPartner) {
				bestIdx, bestOpp, bestPartner = i, opp, partner
			}
		}
		group = append(group, rest[bestIdx])
		rest = append(rest[:bestIdx], rest[bestIdx+1:]...)
	}

	return group, rest
}

func (a *americano) groupScore(group []*models.Player, candidate *models.Player, hist *roster.History) (opponents, partners int) {
	for _, member := range group {
		opponents += hist.OpponentCount(member.ID, candidate.ID)
		partners += hist.PartnerCount(member.ID, candidate.ID)
	}
	return opponents, partners
}
