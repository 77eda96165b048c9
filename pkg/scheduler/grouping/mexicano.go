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

// mexicano is the skill-clustering strategy: players are sorted by rating
// and consumed four at a time, so the strongest group lands on the first
// court of the call and the average rating never increases court to court.
type mexicano struct {
	cfg *config.Config
}

// NewMexicano returns the skill-clustering grouping strategy.
func NewMexicano(cfg *config.Config) Strategy {
	return &mexicano{cfg: cfg}
}

func (m *mexicano) Name() string {
	return constants.FormatMexicano
}

func (m *mexicano) Group(scope *envelope.Scope, eligible []*models.Player, matchCount int, hist *roster.History) ([]models.Pairing, []models.Degradation) {
	sorted := sortByRatingDesc(eligible)

	pairings := make([]models.Pairing, 0, matchCount)
	var degradations []models.Degradation
	for i := 0; i < matchCount && (i+1)*4 <= len(sorted); i++ {
		group := sorted[i*4 : (i+1)*4]
		pairing, repeated := SplitBalanced(group, hist)
		if repeated {
			degradations = append(degradations, models.Degradation{Court: i, Reason: constants.DegradeReasonPartnerRepeated})
		}
		if gap := mathutil.AbsDiff(pairing.Team1.AverageRating(), pairing.Team2.AverageRating()); gap > m.cfg.TeamRatingGapSoftMax {
			scope.Log.WithFields(logrus.Fields{
				"match": i,
				"gap":   gap,
			}).Debug("team rating gap above soft max")
		}
		pairings = append(pairings, pairing)
	}

	scope.Log.WithFields(logrus.Fields{
		"strategy":   m.Name(),
		"eligible":   len(eligible),
		"matchCount": matchCount,
		"pairings":   len(pairings),
	}).Debug("skill-clustering grouping done")

	return pairings, degradations
}
