// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package gendermode

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/constants"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/scheduler/grouping"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/testsetup"
)

func genderedPlayers(males, females, unspecified int) []*models.Player {
	players := make([]*models.Player, 0, males+females+unspecified)
	add := func(prefix string, n int, g models.Gender) {
		for i := 0; i < n; i++ {
			players = append(players, &models.Player{
				ID:     playerdata.ID(fmt.Sprintf("%s%d", prefix, i+1)),
				Rating: 1000 + float64(len(players))*10,
				Gender: g,
			})
		}
	}
	add("m", males, models.GenderMale)
	add("f", females, models.GenderFemale)
	add("u", unspecified, models.GenderUnspecified)
	return players
}

func newResolver(t *testing.T, pref string, seed int64) *Resolver {
	t.Helper()
	cfg := config.Default()
	rnd := rand.New(rand.NewSource(seed))
	resolver, err := New(pref, grouping.NewMexicano(cfg), cfg, rnd)
	require.NoError(t, err)
	return resolver
}

func TestNewRejectsUnknownPreference(t *testing.T) {
	cfg := config.Default()
	_, err := New("sometimes", grouping.NewMexicano(cfg), cfg, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, models.ConfigurationErrorUnknownGender)
}

func TestAnyPreferenceIgnoresGender(t *testing.T) {
	scope := testsetup.NewTestScope()
	resolver := newResolver(t, constants.GenderPreferenceAny, 1)
	players := genderedPlayers(8, 0, 0)

	pairings, degradations := resolver.Group(scope, players, 2, roster.NewHistory())
	assert.Len(t, pairings, 2)
	assert.Empty(t, degradations)
}

func TestMixedOnlyComposition(t *testing.T) {
	scope := testsetup.NewTestScope()
	resolver := newResolver(t, constants.GenderPreferenceMixedOnly, 1)
	players := genderedPlayers(4, 4, 0)

	pairings, degradations := resolver.Group(scope, players, 2, roster.NewHistory())
	require.Len(t, pairings, 2)
	assert.Empty(t, degradations)

	for _, pairing := range pairings {
		for _, team := range []models.Team{pairing.Team1, pairing.Team2} {
			males := 0
			for _, p := range team.Players {
				if p.Gender == models.GenderMale {
					males++
				}
			}
			assert.Equal(t, 1, males, "mixed_only team must hold exactly one male")
		}
	}
}

func TestMixedOnlySingleGenderPoolStillGenerates(t *testing.T) {
	scope := testsetup.NewTestScope()
	resolver := newResolver(t, constants.GenderPreferenceMixedOnly, 1)
	players := genderedPlayers(0, 8, 0)

	pairings, degradations := resolver.Group(scope, players, 2, roster.NewHistory())
	assert.Len(t, pairings, 2, "an all-female pool must degrade, not fail")
	assert.NotEmpty(t, degradations)
}

func TestRandomizedModesAllMalePool(t *testing.T) {
	scope := testsetup.NewTestScope()
	resolver := newResolver(t, constants.GenderPreferenceRandomizedModes, 5)
	players := genderedPlayers(8, 0, 0)

	// Only the single-gender-male composition is feasible; the draw must
	// exclude the rest and still produce both matches every time.
	for i := 0; i < 20; i++ {
		pairings, degradations := resolver.Group(scope, players, 2, roster.NewHistory())
		require.Len(t, pairings, 2)
		assert.Empty(t, degradations)
	}
}

func TestRandomizedModesBalancedPoolProducesValidMatches(t *testing.T) {
	scope := testsetup.NewTestScope()
	resolver := newResolver(t, constants.GenderPreferenceRandomizedModes, 11)
	players := genderedPlayers(6, 6, 2)

	for i := 0; i < 25; i++ {
		pairings, _ := resolver.Group(scope, players, 3, roster.NewHistory())
		require.Len(t, pairings, 3)

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
}

func TestDrawCompositionExcludesInfeasible(t *testing.T) {
	resolver := newResolver(t, constants.GenderPreferenceRandomizedModes, 2)

	// 3 males + 1 female: no composition fits four players.
	pool := genderedPlayers(3, 1, 0)
	_, ok := resolver.drawComposition(pool)
	assert.False(t, ok)

	// Two males, one female and a wildcard support mixed and nothing else.
	pool = genderedPlayers(2, 1, 1)
	composition, ok := resolver.drawComposition(pool)
	require.True(t, ok)
	assert.Equal(t, constants.CompositionMixed, composition)
}
