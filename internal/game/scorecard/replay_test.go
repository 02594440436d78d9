package scorecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/tenpin/internal/game/bowling"
)

func intPtr(v int) *int { return &v }

func TestReplay_CompleteGame(t *testing.T) {
	card, err := LoadFromBytes([]byte(validCardYAML))
	require.NoError(t, err)

	res, err := Replay(card, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "league-night-1", res.ID)
	assert.Equal(t, "Alice", res.Bowler)
	assert.Equal(t, 167, res.Score)
	assert.True(t, res.Complete)
	assert.Equal(t, []int{20, 39, 48, 66, 74, 84, 90, 120, 148, 167}, res.RunningTotals)
}

func TestReplay_PartialGame(t *testing.T) {
	card := &Card{ID: "partial", Bowler: "Cy", Rolls: []int{5, 4, 10, 5, 2}}
	res, err := Replay(card, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 33, res.Score)
	assert.False(t, res.Complete)
	assert.Equal(t, []int{9, 26, 33}, res.RunningTotals)
}

func TestReplay_RejectedRoll(t *testing.T) {
	card := &Card{ID: "bad", Bowler: "Dee", Rolls: []int{3, 8}}
	_, err := Replay(card, zap.NewNop())
	require.ErrorIs(t, err, bowling.ErrInvalidFrameTotal)
	assert.Contains(t, err.Error(), "roll 1")
}

func TestReplay_TooManyRolls(t *testing.T) {
	rolls := make([]int, 21)
	card := &Card{ID: "long", Bowler: "Eve", Rolls: rolls}
	_, err := Replay(card, zap.NewNop())
	assert.ErrorIs(t, err, bowling.ErrGameComplete)
}

func TestReplay_ScoreMismatch(t *testing.T) {
	card := &Card{ID: "wrong", Bowler: "Fay", Rolls: []int{7, 2}, ExpectedScore: intPtr(10)}
	res, err := Replay(card, zap.NewNop())
	require.ErrorIs(t, err, ErrScoreMismatch)
	assert.Equal(t, 9, res.Score, "the computed result is still returned")
}

func TestReplay_LogsWithBowler(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	card := &Card{ID: "logged", Bowler: "Gus", Rolls: []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}}

	res, err := Replay(card, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 300, res.Score)

	complete := logs.FilterMessage("game complete").All()
	require.Len(t, complete, 1)
	fields := complete[0].ContextMap()
	assert.Equal(t, "Gus", fields["bowler"])
	assert.Equal(t, "logged", fields["game_id"])
	assert.Equal(t, 12, logs.FilterMessage("roll recorded").Len())
}
