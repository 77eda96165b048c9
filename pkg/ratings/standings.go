// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package ratings

import (
	"github.com/elliotchance/pie/v2"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
)

// Standings returns the players ranked for display: total points first,
// then wins, then rating. The input is not modified.
func Standings(players []*models.Player) []*models.Player {
	return pie.SortUsing(players, func(a, b *models.Player) bool {
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Rating > b.Rating
	})
}
