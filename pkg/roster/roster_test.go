// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package roster

import (
	"fmt"
	"testing"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/testsetup"
)

func testPlayers(n int) []*models.Player {
	players := make([]*models.Player, n)
	for i := 0; i < n; i++ {
		players[i] = &models.Player{
			ID:     playerdata.ID(fmt.Sprintf("p%d", i+1)),
			Name:   fmt.Sprintf("Player %d", i+1),
			Rating: 1000 + float64(i)*10,
		}
	}
	return players
}

func TestNewRequiresFourPlayers(t *testing.T) {
	t.Parallel()

	_, err := New(testPlayers(3))
	assert.ErrorIs(t, err, models.ConfigurationErrorNotEnoughPlayers)

	ros, err := New(testPlayers(4))
	require.NoError(t, err)
	assert.Equal(t, 4, ros.Len())
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	players := testPlayers(4)
	players[3].ID = players[0].ID

	_, err := New(players)
	assert.ErrorIs(t, err, models.ConfigurationErrorDuplicateID)
}

func TestNewCopiesPlayers(t *testing.T) {
	t.Parallel()

	input := testPlayers(4)
	ros, err := New(input)
	require.NoError(t, err)

	owned, ok := ros.Get("p1")
	require.True(t, ok)
	owned.Rating = 2000

	assert.Equal(t, float64(1000), input[0].Rating, "caller's players must stay untouched")
}

func TestHistoryCountsAreSymmetric(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.IncrementPartners("a", "b")
	h.IncrementOpponents("b", "c")
	h.IncrementOpponents("c", "b")

	assert.Equal(t, 1, h.PartnerCount("a", "b"))
	assert.Equal(t, 1, h.PartnerCount("b", "a"))
	assert.Equal(t, 2, h.OpponentCount("b", "c"))
	assert.Equal(t, 2, h.OpponentCount("c", "b"))
	assert.Equal(t, 0, h.OpponentCount("a", "b"))
}

func TestHistoryLastPartner(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.NotePartners("a", "b")
	assert.True(t, h.WerePartnersLastRound("a", "b"))
	assert.True(t, h.WerePartnersLastRound("b", "a"))

	h.NotePartners("a", "c")
	assert.False(t, h.WerePartnersLastRound("a", "b"))
	assert.True(t, h.WerePartnersLastRound("a", "c"))
}

func TestHistorySnapshotRoundtrip(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.IncrementPartners("a", "b")
	h.IncrementOpponents("a", "c")
	h.NotePartners("a", "b")

	restored := NewHistoryFromSnapshot(h.Snapshot())
	assert.Equal(t, 1, restored.PartnerCount("a", "b"))
	assert.Equal(t, 1, restored.OpponentCount("a", "c"))
	assert.True(t, restored.WerePartnersLastRound("b", "a"))
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	h := NewHistory()
	h.IncrementPartners("a", "b")
	snap := h.Snapshot()
	h.IncrementPartners("a", "b")
	h.NotePartners("a", "c")

	g.Expect(snap.PartnerCounts).To(gomega.HaveLen(1))
	g.Expect(snap.PartnerCounts[playerdata.PairKey("a", "b")]).To(gomega.Equal(1))
	g.Expect(snap.LastPartners).To(gomega.BeEmpty())
}

func TestRestoreHistoryReplacesCounts(t *testing.T) {
	t.Parallel()

	ros, err := New(testPlayers(4))
	require.NoError(t, err)
	ros.History().IncrementPartners("p1", "p2")

	ros.RestoreHistory(HistorySnapshot{
		PartnerCounts: map[string]int{playerdata.PairKey("p3", "p4"): 5},
	})

	assert.Equal(t, 0, ros.History().PartnerCount("p1", "p2"))
	assert.Equal(t, 5, ros.History().PartnerCount("p3", "p4"))
}
