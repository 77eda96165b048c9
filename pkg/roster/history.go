// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package roster

import (
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
)

// History tracks how often every unordered player pair has partnered and
// opposed. Counts are kept in flat maps keyed by a canonical (sorted) id
// pair, so both orderings of a pair hit the same entry.
type History struct {
	partnerCount  map[string]int
	opponentCount map[string]int

	// lastPartner remembers each player's partner from the most recently
	// generated round, for the immediate-repeat avoidance check. It is
	// written at generation time, unlike the counts which are written when
	// results are recorded.
	lastPartner map[playerdata.ID]playerdata.ID
}

// HistorySnapshot is the serializable form of a History. All maps are
// plain string-keyed so callers can marshal it alongside their round
// records.
type HistorySnapshot struct {
	PartnerCounts  map[string]int    `json:"partner_counts"`
	OpponentCounts map[string]int    `json:"opponent_counts"`
	LastPartners   map[string]string `json:"last_partners"`
}

func NewHistory() *History {
	return &History{
		partnerCount:  make(map[string]int),
		opponentCount: make(map[string]int),
		lastPartner:   make(map[playerdata.ID]playerdata.ID),
	}
}

// NewHistoryFromSnapshot rebuilds a History from a snapshot taken with
// Snapshot.
func NewHistoryFromSnapshot(snap HistorySnapshot) *History {
	h := NewHistory()
	for k, v := range snap.PartnerCounts {
		h.partnerCount[k] = v
	}
	for k, v := range snap.OpponentCounts {
		h.opponentCount[k] = v
	}
	for k, v := range snap.LastPartners {
		h.lastPartner[playerdata.ID(k)] = playerdata.ID(v)
	}
	return h
}

// PartnerCount returns how many times a and b have been on the same team.
func (h *History) PartnerCount(a, b playerdata.ID) int {
	return h.partnerCount[playerdata.PairKey(a, b)]
}

// OpponentCount returns how many times a and b have been on opposing teams.
func (h *History) OpponentCount(a, b playerdata.ID) int {
	return h.opponentCount[playerdata.PairKey(a, b)]
}

// IncrementPartners records one more partnered match for the pair.
func (h *History) IncrementPartners(a, b playerdata.ID) {
	h.partnerCount[playerdata.PairKey(a, b)]++
}

// IncrementOpponents records one more opposed match for the pair.
func (h *History) IncrementOpponents(a, b playerdata.ID) {
	h.opponentCount[playerdata.PairKey(a, b)]++
}

// NotePartners records a and b as each other's most recent partner.
func (h *History) NotePartners(a, b playerdata.ID) {
	h.lastPartner[a] = b
	h.lastPartner[b] = a
}

// WerePartnersLastRound reports whether a and b partnered in the most
// recently generated round.
func (h *History) WerePartnersLastRound(a, b playerdata.ID) bool {
	return h.lastPartner[a] == b
}

// Snapshot returns a serializable copy of the history.
func (h *History) Snapshot() HistorySnapshot {
	snap := HistorySnapshot{
		PartnerCounts:  make(map[string]int, len(h.partnerCount)),
		OpponentCounts: make(map[string]int, len(h.opponentCount)),
		LastPartners:   make(map[string]string, len(h.lastPartner)),
	}
	for k, v := range h.partnerCount {
		snap.PartnerCounts[k] = v
	}
	for k, v := range h.opponentCount {
		snap.OpponentCounts[k] = v
	}
	for k, v := range h.lastPartner {
		snap.LastPartners[string(k)] = string(v)
	}
	return snap
}
