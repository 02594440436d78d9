package scorecard

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tenpin/internal/game/bowling"
)

// Result is the outcome of replaying a Card.
type Result struct {
	ID            string
	Bowler        string
	Score         int
	RunningTotals []int
	Complete      bool
}

// Replay feeds every roll of card into a fresh game.
//
// Precondition: card must be non-nil and valid; logger must be non-nil.
// Postcondition: Returns the replayed Result, or an error wrapping the
// ledger's rejection (with the offending roll index) or ErrScoreMismatch.
func Replay(card *Card, logger *zap.Logger) (Result, error) {
	rec := bowling.NewRecorder(card.ID, logger.With(zap.String("bowler", card.Bowler)))
	for i, pins := range card.Rolls {
		if _, err := rec.Roll(pins); err != nil {
			return Result{}, fmt.Errorf("card %q roll %d: %w", card.ID, i, err)
		}
	}

	res := Result{
		ID:            card.ID,
		Bowler:        card.Bowler,
		Score:         rec.Score(),
		RunningTotals: rec.RunningTotals(),
		Complete:      rec.Complete(),
	}
	if card.ExpectedScore != nil && *card.ExpectedScore != res.Score {
		return res, fmt.Errorf("card %q: %w: expected %d, got %d",
			card.ID, ErrScoreMismatch, *card.ExpectedScore, res.Score)
	}
	return res, nil
}
