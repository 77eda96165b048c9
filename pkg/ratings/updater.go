// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package ratings folds completed match scores into player ratings,
// cumulative records, and the pairwise partner/opponent history.
package ratings

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/envelope"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
)

// Updater applies one completed match to the roster it was generated from.
// Score legality is the score-entry collaborator's concern; any score
// handed here is assumed validated.
type Updater struct {
	k float64
}

func NewUpdater(cfg *config.Config) *Updater {
	return &Updater{k: cfg.RatingKFactor}
}

// Apply folds the match result into both teams' players and increments the
// pairwise history exactly once for this match.
func (u *Updater) Apply(scope *envelope.Scope, match *models.Match, ros *roster.Roster) error {
	if match == nil || !match.Completed || match.Team1Score == nil || match.Team2Score == nil {
		return models.ErrMatchNotCompleted
	}

	team1, err := resolveTeam(match.Team1, ros)
	if err != nil {
		return err
	}
	team2, err := resolveTeam(match.Team2, ros)
	if err != nil {
		return err
	}

	score1, score2 := *match.Team1Score, *match.Team2Score
	delta := u.ratingDelta(teamRating(team1), teamRating(team2), score1, score2)

	switch {
	case score1 > score2:
		applyWin(team1, score1, delta)
		applyLoss(team2, score2, delta)
	case score2 > score1:
		applyWin(team2, score2, delta)
		applyLoss(team1, score1, delta)
	default:
		applyTie(team1, score1)
		applyTie(team2, score2)
	}

	hist := ros.History()
	hist.IncrementPartners(team1[0].ID, team1[1].ID)
	hist.IncrementPartners(team2[0].ID, team2[1].ID)
	for _, a := range team1 {
		for _, b := range team2 {
			hist.IncrementOpponents(a.ID, b.ID)
		}
	}

	scope.Log.WithFields(logrus.Fields{
		"court":       match.Court,
		"team1Score":  score1,
		"team2Score":  score2,
		"ratingDelta": delta,
	}).Info("match result recorded")

	return nil
}

// ratingDelta returns the amount the winning side gains and the losing
// side loses. It is elo-style on team-average ratings and always
// non-negative, so a win never decreases a rating and a loss never
// increases one. Ties leave ratings untouched.
func (u *Updater) ratingDelta(rating1, rating2 float64, score1, score2 int) float64 {
	if score1 == score2 {
		return 0
	}
	winner, loser := rating1, rating2
	if score2 > score1 {
		winner, loser = rating2, rating1
	}
	expected := 1 / (1 + math.Pow(10, (loser-winner)/400))
	return u.k * (1 - expected)
}

func resolveTeam(team models.Team, ros *roster.Roster) ([2]*models.Player, error) {
	var resolved [2]*models.Player
	for i, p := range team.Players {
		live, ok := ros.Get(p.ID)
		if !ok {
			return resolved, models.ErrUnknownPlayer
		}
		resolved[i] = live
	}
	return resolved, nil
}

func teamRating(team [2]*models.Player) float64 {
	return (team[0].Rating + team[1].Rating) / 2
}

func applyWin(team [2]*models.Player, points int, delta float64) {
	for _, p := range team {
		p.Wins++
		p.TotalPoints += points
		p.Rating += delta
		p.WinStreak++
		p.LossStreak = 0
	}
}

func applyLoss(team [2]*models.Player, points int, delta float64) {
	for _, p := range team {
		p.Losses++
		p.TotalPoints += points
		p.Rating -= delta
		p.LossStreak++
		p.WinStreak = 0
	}
}

func applyTie(team [2]*models.Player, points int) {
	for _, p := range team {
		p.Ties++
		p.TotalPoints += points
		p.WinStreak = 0
		p.LossStreak = 0
	}
}
