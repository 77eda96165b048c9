// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package grouping

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/testsetup"
)

// partneredPlayers builds n players with symmetric fixed pairs:
// (p1,p2), (p3,p4), ...
func partneredPlayers(n int) []*models.Player {
	players := make([]*models.Player, n)
	for i := 0; i < n; i++ {
		players[i] = &models.Player{
			ID:     playerdata.ID(fmt.Sprintf("p%d", i+1)),
			Rating: 1000 + float64(n-i)*10,
		}
	}
	for i := 0; i+1 < n; i += 2 {
		players[i].PartnerID = players[i+1].ID
		players[i+1].PartnerID = players[i].ID
	}
	return players
}

func TestFixedPartnerUsesConfiguredPairs(t *testing.T) {
	scope := testsetup.NewTestScope()
	players := partneredPlayers(8)
	strategy := NewFixedPartner(config.Default())

	pairings, degradations := strategy.Group(scope, players, 2, roster.NewHistory())
	require.Len(t, pairings, 2)
	assert.Empty(t, degradations)

	for _, pairing := range pairings {
		for _, team := range []models.Team{pairing.Team1, pairing.Team2} {
			a, b := team.Players[0], team.Players[1]
			assert.Equal(t, a.PartnerID, b.ID, "team must be a configured partner pair")
			assert.Equal(t, b.PartnerID, a.ID)
		}
	}
}

func TestFixedPartnerFallsBackOnBrokenMap(t *testing.T) {
	scope := testsetup.NewTestScope()
	players := partneredPlayers(8)
	// Break one pair asymmetrically: p1 points at p2, p2 points elsewhere.
	players[1].PartnerID = "nobody"
	strategy := NewFixedPartner(config.Default())

	pairings, degradations := strategy.Group(scope, players, 2, roster.NewHistory())
	require.Len(t, pairings, 2, "broken partner data must degrade, not fail")
	assert.NotEmpty(t, degradations)

	seen := make(map[playerdata.ID]struct{})
	for _, pairing := range pairings {
		for _, p := range pairing.Players() {
			_, dup := seen[p.ID]
			assert.False(t, dup, "player %s placed twice", p.ID)
			seen[p.ID] = struct{}{}
		}
	}
	assert.Len(t, seen, 8)
}

func TestFixedPartnerMissingMapFallsBackEntirely(t *testing.T) {
	scope := testsetup.NewTestScope()
	players := ratedPlayers(1400, 1300, 1200, 1100)
	strategy := NewFixedPartner(config.Default())

	pairings, degradations := strategy.Group(scope, players, 1, roster.NewHistory())
	require.Len(t, pairings, 1)
	assert.NotEmpty(t, degradations)
	assert.Len(t, pairings[0].Players(), 4)
}

func TestFixedPartnerRotatesOpponentUnits(t *testing.T) {
	scope := testsetup.NewTestScope()
	players := partneredPlayers(8)
	strategy := NewFixedPartner(config.Default())
	hist := roster.NewHistory()

	// Unit (p1,p2) has already faced unit (p3,p4) heavily.
	for _, a := range []playerdata.ID{"p1", "p2"} {
		for _, b := range []playerdata.ID{"p3", "p4"} {
			hist.IncrementOpponents(a, b)
			hist.IncrementOpponents(a, b)
		}
	}

	pairings, _ := strategy.Group(scope, players, 2, hist)
	require.Len(t, pairings, 2)

	for _, pairing := range pairings {
		p1Side := pairing.Team1.Contains("p1") || pairing.Team2.Contains("p1")
		p3Opposes := pairing.Team1.Contains("p1") && pairing.Team2.Contains("p3") ||
			pairing.Team2.Contains("p1") && pairing.Team1.Contains("p3")
		if p1Side {
			assert.False(t, p3Opposes, "unit p1/p2 should rotate to a fresher opponent unit")
		}
	}
}
