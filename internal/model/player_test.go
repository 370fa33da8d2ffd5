package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerKey_CaseAndWhitespace(t *testing.T) {
	a := NewPlayerKey("Tom Brady", "NE", "QB")
	b := NewPlayerKey("tom brady", " ne ", "qb")

	assert.Equal(t, a, b)
	assert.Equal(t, PlayerKey("TOM BRADY/NE/QB"), a)
}

func TestNewPlayerKey_DistinctParts(t *testing.T) {
	assert.NotEqual(t, NewPlayerKey("Mike Williams", "LAC", "WR"), NewPlayerKey("Mike Williams", "TB", "WR"))
	assert.NotEqual(t, NewPlayerKey("Mike Williams", "LAC", "WR"), NewPlayerKey("Mike Williams", "LAC", "TE"))
}

func TestPlayerRecord_Lifecycle(t *testing.T) {
	p := NewPlayerRecord("LeSean McCoy", "Buf", "RB", "alice")

	assert.False(t, p.Drafted())
	assert.Nil(t, p.DraftRound)
	assert.Nil(t, p.KeeperRound)
	assert.Equal(t, FreeAgentLabel, p.DraftRoundLabel())

	p.SetDraft(7, "bob")
	require.NotNil(t, p.DraftRound)
	assert.True(t, p.Drafted())
	assert.Equal(t, 7, *p.DraftRound)
	assert.Equal(t, "7", p.DraftRoundLabel())

	p.SetKeeper("7", 4)
	require.NotNil(t, p.KeeperRound)
	assert.Equal(t, 4, *p.KeeperRound)
	assert.Equal(t, "7", p.RoundLabel)
}

// ---------------------------------------------------------------------------
// Roster
// ---------------------------------------------------------------------------

func TestRoster_InsertionOrder(t *testing.T) {
	r := NewRoster()
	r.Put(NewPlayerRecord("C", "Pit", "QB", "x"))
	r.Put(NewPlayerRecord("A", "Buf", "RB", "x"))
	r.Put(NewPlayerRecord("B", "NE", "WR", "x"))

	keys := r.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, []PlayerKey{"C/PIT/QB", "A/BUF/RB", "B/NE/WR"}, keys)
}

func TestRoster_ReplaceKeepsPosition(t *testing.T) {
	r := NewRoster()
	r.Put(NewPlayerRecord("A", "Buf", "RB", "first"))
	r.Put(NewPlayerRecord("B", "NE", "WR", "x"))
	r.Put(NewPlayerRecord("a", "BUF", "rb", "second"))

	require.Equal(t, 2, r.Len())
	recs := r.Records()
	assert.Equal(t, "second", recs[0].LastManager)
	assert.Equal(t, "B", recs[1].Name)

	got, ok := r.Get(NewPlayerKey("A", "Buf", "RB"))
	require.True(t, ok)
	assert.Equal(t, "second", got.LastManager)
}

func TestRoster_GetMissing(t *testing.T) {
	r := NewRoster()
	_, ok := r.Get("NOPE/NE/QB")
	assert.False(t, ok)
}
