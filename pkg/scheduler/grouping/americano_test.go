// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package grouping

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/testsetup"
)

// recordPairing feeds a generated pairing back into the history the way
// the stats updater does once the match completes.
func recordPairing(hist *roster.History, pairing models.Pairing) {
	hist.IncrementPartners(pairing.Team1.Players[0].ID, pairing.Team1.Players[1].ID)
	hist.IncrementPartners(pairing.Team2.Players[0].ID, pairing.Team2.Players[1].ID)
	for _, a := range pairing.Team1.Players {
		for _, b := range pairing.Team2.Players {
			hist.IncrementOpponents(a.ID, b.ID)
		}
	}
}

func TestAmericanoRotatesOpponents(t *testing.T) {
	scope := testsetup.NewTestScope()
	players := make([]*models.Player, 8)
	for i := range players {
		players[i] = &models.Player{ID: playerdata.ID(fmt.Sprintf("p%d", i+1)), Rating: 1000}
	}
	strategy := NewAmericano(rand.New(rand.NewSource(7)))
	hist := roster.NewHistory()

	const rounds = 14
	for r := 0; r < rounds; r++ {
		pairings, _ := strategy.Group(scope, players, 2, hist)
		require.Len(t, pairings, 2)
		for _, pairing := range pairings {
			recordPairing(hist, pairing)
		}
	}

	// 8 opponent-pair increments per round over 28 unordered pairs: a
	// perfectly even rotation reaches 4 per pair after 14 rounds. The
	// greedy rotation must stay near that and leave no pair unmet.
	maxCount, minCount := 0, rounds
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			c := hist.OpponentCount(players[i].ID, players[j].ID)
			if c > maxCount {
				maxCount = c
			}
			if c < minCount {
				minCount = c
			}
		}
	}
	assert.LessOrEqual(t, maxCount, 8, "one pair dominates opponent repetition")
	assert.GreaterOrEqual(t, minCount, 1, "some pair never met in %d rounds", rounds)
}

func TestAmericanoPartitionsWholePool(t *testing.T) {
	scope := testsetup.NewTestScope()
	players := make([]*models.Player, 12)
	for i := range players {
		players[i] = &models.Player{ID: playerdata.ID(fmt.Sprintf("p%d", i+1)), Rating: 1000 + float64(i)}
	}
	strategy := NewAmericano(rand.New(rand.NewSource(3)))

	pairings, degradations := strategy.Group(scope, players, 3, roster.NewHistory())
	require.Len(t, pairings, 3)
	assert.Empty(t, degradations)

	seen := make(map[playerdata.ID]struct{})
	for _, pairing := range pairings {
		for _, p := range pairing.Players() {
			_, dup := seen[p.ID]
			assert.False(t, dup, "player %s placed twice", p.ID)
			seen[p.ID] = struct{}{}
		}
	}
	assert.Len(t, seen, 12)
}

func TestSplitMinOpponentsPrefersFreshMatchups(t *testing.T) {
	players := ratedPlayers(1000, 1000, 1000, 1000)
	hist := roster.NewHistory()

	// p1 has faced p2 often; the split should put them on the same team.
	hist.IncrementOpponents(players[0].ID, players[1].ID)
	hist.IncrementOpponents(players[0].ID, players[1].ID)
	hist.IncrementOpponents(players[0].ID, players[1].ID)

	pairing := SplitMinOpponents(players, hist)
	sameTeam := pairing.Team1.Contains(players[0].ID) && pairing.Team1.Contains(players[1].ID) ||
		pairing.Team2.Contains(players[0].ID) && pairing.Team2.Contains(players[1].ID)
	assert.True(t, sameTeam, "heavily repeated opponents should partner instead")
}
