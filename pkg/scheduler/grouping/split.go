// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package grouping

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/mathutil"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
)

// pairSplits enumerates the ways a group of 4 players can be split into two
// teams of 2. The first player is pinned to team 1, which leaves exactly
// three distinct splits and avoids counting mirrored team orders twice.
var pairSplits = buildPairSplits()

func buildPairSplits() [][2][2]int {
	splits := make([][2][2]int, 0, 3)
	for _, team1 := range combin.Combinations(4, 2) {
		if team1[0] != 0 {
			continue
		}
		var team2 [2]int
		n := 0
		for i := 0; i < 4; i++ {
			if i != team1[0] && i != team1[1] {
				team2[n] = i
				n++
			}
		}
		splits = append(splits, [2][2]int{{team1[0], team1[1]}, team2})
	}
	return splits
}

func pairingForSplit(group []*models.Player, split [2][2]int) models.Pairing {
	return models.Pairing{
		Team1: models.NewTeam(group[split[0][0]], group[split[0][1]]),
		Team2: models.NewTeam(group[split[1][0]], group[split[1][1]]),
	}
}

// repeatsLastPartner reports whether either team of the split repeats a
// partnership from the immediately preceding round.
func repeatsLastPartner(group []*models.Player, split [2][2]int, hist *roster.History) bool {
	for _, team := range split {
		if hist.WerePartnersLastRound(group[team[0]].ID, group[team[1]].ID) {
			return true
		}
	}
	return false
}

// SplitBalanced splits a group of 4 into the two teams with the smallest
// inter-team average-rating gap, preferring splits that do not repeat
// either player's partnership from the immediately preceding round. The
// returned flag is true when every split repeats a partnership and the
// repeat had to be allowed.
func SplitBalanced(group []*models.Player, hist *roster.History) (models.Pairing, bool) {
	candidates := pairSplits
	filtered := make([][2][2]int, 0, len(pairSplits))
	for _, split := range pairSplits {
		if !repeatsLastPartner(group, split, hist) {
			filtered = append(filtered, split)
		}
	}
	repeated := len(filtered) == 0
	if !repeated {
		candidates = filtered
	}

	best := candidates[0]
	bestGap := splitGap(group, best)
	for _, split := range candidates[1:] {
		if gap := splitGap(group, split); gap < bestGap {
			best, bestGap = split, gap
		}
	}
	return pairingForSplit(group, best), repeated
}

func splitGap(group []*models.Player, split [2][2]int) float64 {
	p := pairingForSplit(group, split)
	return mathutil.AbsDiff(p.Team1.AverageRating(), p.Team2.AverageRating())
}

// SplitMinOpponents splits a group of 4 minimizing the summed opponent
// count across the four cross-team pairs, breaking ties by the lowest
// summed partner count of the two teams.
func SplitMinOpponents(group []*models.Player, hist *roster.History) models.Pairing {
	best := pairSplits[0]
	bestOpp, bestPartner := splitHistoryScore(group, best, hist)
	for _, split := range pairSplits[1:] {
		opp, partner := splitHistoryScore(group, split, hist)
		if opp < bestOpp || (opp == bestOpp && partner < bestPartner) {
			best, bestOpp, bestPartner = split, opp, partner
		}
	}
	return pairingForSplit(group, best)
}

func splitHistoryScore(group []*models.Player, split [2][2]int, hist *roster.History) (opponents int, partners int) {
	for _, i := range split[0] {
		for _, j := range split[1] {
			opponents += hist.OpponentCount(group[i].ID, group[j].ID)
		}
	}
	for _, team := range split {
		partners += hist.PartnerCount(group[team[0]].ID, group[team[1]].ID)
	}
	return opponents, partners
}
