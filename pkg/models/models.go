// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package models contains the plain-data shapes shared between the engine
// and its callers: players, teams, matches, rounds, and degradation
// diagnostics.
package models

import (
	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
)

// Gender of a player. Unspecified players act as wildcards in gender-aware
// groupings.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = ""
)

// PlayerStatus is advisory. The engine never filters by status; the caller
// passes only the players it wants considered.
type PlayerStatus string

const (
	PlayerStatusActive   PlayerStatus = "active"
	PlayerStatusLate     PlayerStatus = "late"
	PlayerStatusNoShow   PlayerStatus = "no_show"
	PlayerStatusDeparted PlayerStatus = "departed"
	PlayerStatusInactive PlayerStatus = "inactive"
)

// Player is one tournament participant. The engine owns its copy of the
// player set and mutates it in place as rounds are generated and results
// are recorded.
type Player struct {
	ID     playerdata.ID `json:"id"     x-nullable:"false"`
	Name   string        `json:"name"`
	Rating float64       `json:"rating"`

	// Fairness counters maintained by the candidate selector.
	PlayCount        int `json:"play_count"`
	SitCount         int `json:"sit_count"`
	ConsecutivePlays int `json:"consecutive_plays"`
	ConsecutiveSits  int `json:"consecutive_sits"`

	// Cumulative record maintained by the stats updater.
	TotalPoints int `json:"total_points"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Ties        int `json:"ties"`
	WinStreak   int `json:"win_streak"`
	LossStreak  int `json:"loss_streak"`

	// Policy fields owned by the caller.
	Status             PlayerStatus     `json:"status"`
	Gender             Gender           `json:"gender,omitempty"`
	PartnerID          playerdata.ID    `json:"partner_id,omitempty"`
	SkipRounds         map[int]struct{} `json:"skip_rounds,omitempty"`
	CompensationPoints int              `json:"compensation_points"`
}

// ShouldSkip reports whether the player is force-excluded from the given
// round number.
func (p *Player) ShouldSkip(roundNumber int) bool {
	if p.SkipRounds == nil {
		return false
	}
	_, ok := p.SkipRounds[roundNumber]
	return ok
}

// IsMale reports whether the player can fill a male slot. Unspecified
// gender counts as a wildcard.
func (p *Player) IsMale() bool {
	return p.Gender == GenderMale || p.Gender == GenderUnspecified
}

// IsFemale reports whether the player can fill a female slot.
func (p *Player) IsFemale() bool {
	return p.Gender == GenderFemale || p.Gender == GenderUnspecified
}

// Team is exactly two players partnered for one match.
type Team struct {
	Players [2]*Player `json:"players"`
}

// NewTeam builds a team from two players.
func NewTeam(a, b *Player) Team {
	return Team{Players: [2]*Player{a, b}}
}

// AverageRating returns the mean rating of the team's two players.
func (t Team) AverageRating() float64 {
	return stat.Mean([]float64{t.Players[0].Rating, t.Players[1].Rating}, nil)
}

// IDs returns the team's player IDs.
func (t Team) IDs() []playerdata.ID {
	return []playerdata.ID{t.Players[0].ID, t.Players[1].ID}
}

// Contains reports whether id is one of the team's players.
func (t Team) Contains(id playerdata.ID) bool {
	return t.Players[0].ID == id || t.Players[1].ID == id
}

// Pairing is one generated 2-vs-2 assignment before it is bound to a court.
type Pairing struct {
	Team1 Team
	Team2 Team
}

// Players returns all four players of the pairing.
func (p Pairing) Players() []*Player {
	return []*Player{p.Team1.Players[0], p.Team1.Players[1], p.Team2.Players[0], p.Team2.Players[1]}
}

// AverageRating returns the mean rating across the pairing's four players.
func (p Pairing) AverageRating() float64 {
	ratings := make([]float64, 0, 4)
	for _, pl := range p.Players() {
		ratings = append(ratings, pl.Rating)
	}
	return stat.Mean(ratings, nil)
}

// Match is one court's contest for a round. Scores stay nil until the
// score-entry layer records them.
type Match struct {
	Court      int  `json:"court"`
	Team1      Team `json:"team1"`
	Team2      Team `json:"team2"`
	Team1Score *int `json:"team1_score,omitempty"`
	Team2Score *int `json:"team2_score,omitempty"`
	Completed  bool `json:"completed"`
}

// Players returns all four players of the match.
func (m *Match) Players() []*Player {
	return Pairing{Team1: m.Team1, Team2: m.Team2}.Players()
}

// PlayerIDs returns the IDs of all four players of the match.
func (m *Match) PlayerIDs() []playerdata.ID {
	return append(m.Team1.IDs(), m.Team2.IDs()...)
}

// Degradation reports that a match was generated under a relaxed
// constraint. Degradations are informational; they never fail a call.
type Degradation struct {
	Court  int    `json:"court"`
	Reason string `json:"reason"`
}

// Round is one generation unit: at most one match per court plus the
// disjoint set of sitting players.
type Round struct {
	RoundID        string        `json:"round_id"`
	Number         int           `json:"number"`
	Matches        []*Match      `json:"matches"`
	SittingPlayers []*Player     `json:"sitting_players"`
	Degradations   []Degradation `json:"degradations,omitempty"`
}

// PlayingIDs returns the IDs of every player placed in a match this round.
func (r *Round) PlayingIDs() []playerdata.ID {
	ids := make([]playerdata.ID, 0, len(r.Matches)*4)
	for _, m := range r.Matches {
		ids = append(ids, m.PlayerIDs()...)
	}
	return ids
}

// CopyPlayers deep-copies a player list. Used by the engine to take
// ownership of the caller's roster at construction.
func CopyPlayers(players []*Player) []*Player {
	copied, err := copystructure.Copy(players)
	if err != nil {
		logrus.Warn("failed copy players:", err)
		return nil
	}
	return copied.([]*Player)
}
