package bowling_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tenpin/internal/game/bowling"
)

// drawGame rolls a random, always-valid sequence of at most maxRolls rolls,
// stopping early when the game completes.
func drawGame(rt *rapid.T, maxRolls int) *bowling.Ledger {
	l := bowling.NewLedger()
	for i := 0; i < maxRolls && !l.Complete(); i++ {
		pins := rapid.IntRange(0, l.PinsStanding()).Draw(rt, fmt.Sprintf("roll%d", i))
		_, err := l.Roll(pins)
		require.NoError(rt, err)
	}
	return l
}

// flatScore scores a completed game directly from its roll sequence.
func flatScore(rolls []int) int {
	score, i := 0, 0
	for frame := 0; frame < bowling.FrameCount; frame++ {
		switch {
		case rolls[i] == bowling.MaxPins:
			score += bowling.MaxPins + rolls[i+1] + rolls[i+2]
			i++
		case rolls[i]+rolls[i+1] == bowling.MaxPins:
			score += bowling.MaxPins + rolls[i+2]
			i += 2
		default:
			score += rolls[i] + rolls[i+1]
			i += 2
		}
	}
	return score
}

// TestProperty_CompletedGameScoreInRange verifies that a finished game scores
// within [0, 300] and matches an independent flat-roll scorer.
func TestProperty_CompletedGameScoreInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := drawGame(rt, 21)
		require.True(rt, l.Complete(), "21 valid rolls always finish a game")

		score := l.Score()
		assert.GreaterOrEqual(rt, score, 0)
		assert.LessOrEqual(rt, score, 300)
		assert.Equal(rt, flatScore(l.Rolls()), score)
		assert.Len(rt, l.RunningTotals(), bowling.FrameCount)
	})
}

// TestProperty_ScoreIdempotent verifies repeated Score calls agree and leave the rolls untouched.
func TestProperty_ScoreIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := drawGame(rt, rapid.IntRange(0, 21).Draw(rt, "rolls"))
		rolls := l.Rolls()
		first := l.Score()
		assert.Equal(rt, first, l.Score())
		assert.Equal(rt, rolls, l.Rolls())
	})
}

// TestProperty_ScoreNeverDecreases verifies that recording a roll can only
// resolve frames, never reduce the score.
func TestProperty_ScoreNeverDecreases(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := bowling.NewLedger()
		prev := 0
		for i := 0; !l.Complete(); i++ {
			pins := rapid.IntRange(0, l.PinsStanding()).Draw(rt, fmt.Sprintf("roll%d", i))
			_, err := l.Roll(pins)
			require.NoError(rt, err)
			score := l.Score()
			assert.GreaterOrEqual(rt, score, prev)
			prev = score
		}
	})
}

// TestProperty_RejectedRollLeavesLedgerUnchanged verifies that any failing
// Roll call has no side effect.
func TestProperty_RejectedRollLeavesLedgerUnchanged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := drawGame(rt, rapid.IntRange(0, 21).Draw(rt, "rolls"))
		pins := rapid.IntRange(-5, 15).Draw(rt, "pins")

		before := l.Clone()
		_, err := l.Roll(pins)
		if err == nil {
			return
		}

		assert.True(rt,
			errorIsAny(err, bowling.ErrInvalidInput, bowling.ErrGameComplete, bowling.ErrInvalidFrameTotal),
			"unexpected error kind: %v", err)
		assert.Equal(rt, before.Rolls(), l.Rolls())
		assert.Equal(rt, before.Score(), l.Score())
		bf, br := before.Cursor()
		af, ar := l.Cursor()
		assert.Equal(rt, bf, af)
		assert.Equal(rt, br, ar)
	})
}

// TestProperty_RunningTotalsAgreeWithScore verifies the last running total is the score.
func TestProperty_RunningTotalsAgreeWithScore(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := drawGame(rt, rapid.IntRange(0, 21).Draw(rt, "rolls"))
		totals := l.RunningTotals()
		if len(totals) == 0 {
			assert.Equal(rt, 0, l.Score())
			return
		}
		assert.Equal(rt, totals[len(totals)-1], l.Score())
		for i := 1; i < len(totals); i++ {
			assert.GreaterOrEqual(rt, totals[i], totals[i-1])
		}
	})
}

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
