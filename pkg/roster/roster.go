// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package roster holds the engine-owned player collection and the pairwise
// partner/opponent history for one engine instance's lifetime.
package roster

import (
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
)

// MinPlayers is the smallest usable roster: one 2-vs-2 match.
const MinPlayers = 4

// Roster is the authoritative player collection for one engine instance.
// The engine deep-copies the caller's players at construction and mutates
// its own copy from then on.
type Roster struct {
	players []*models.Player
	byID    map[playerdata.ID]*models.Player
	history *History
}

// New validates and copies the given players into a fresh roster.
func New(players []*models.Player) (*Roster, error) {
	if len(players) < MinPlayers {
		return nil, models.ConfigurationErrorNotEnoughPlayers
	}

	copied := models.CopyPlayers(players)
	if copied == nil {
		return nil, models.ConfigurationErrorNilPlayer
	}

	byID := make(map[playerdata.ID]*models.Player, len(copied))
	for _, p := range copied {
		if p == nil {
			return nil, models.ConfigurationErrorNilPlayer
		}
		if _, exists := byID[p.ID]; exists {
			return nil, models.ConfigurationErrorDuplicateID
		}
		byID[p.ID] = p
	}

	return &Roster{
		players: copied,
		byID:    byID,
		history: NewHistory(),
	}, nil
}

// Players returns the live player collection. Callers read these to render
// standings; the engine mutates them as rounds complete.
func (r *Roster) Players() []*models.Player {
	return r.players
}

// Get returns the roster's player with the given id.
func (r *Roster) Get(id playerdata.ID) (*models.Player, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Len returns the roster size.
func (r *Roster) Len() int {
	return len(r.players)
}

// History returns the pairwise partner/opponent history store.
func (r *Roster) History() *History {
	return r.history
}

// RestoreHistory replaces the pairwise history with the given snapshot.
// Callers that persist round records can rebuild the history after an
// engine reconstruction; without this the history starts empty.
func (r *Roster) RestoreHistory(snap HistorySnapshot) {
	r.history = NewHistoryFromSnapshot(snap)
}
