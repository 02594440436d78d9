package simulate

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tenpin/internal/game/bowling"
)

// Result is the outcome of one simulated game.
type Result struct {
	ID     string
	Rolls  []int
	Score  int
	Totals []int
}

// Play bowls one complete game, drawing every roll from the pins still standing.
//
// Precondition: src must be non-nil.
// Postcondition: the returned ledger is complete.
func Play(src Source) (*bowling.Ledger, error) {
	l := bowling.NewLedger()
	for !l.Complete() {
		pins := src.Intn(l.PinsStanding() + 1)
		if _, err := l.Roll(pins); err != nil {
			return nil, fmt.Errorf("simulate: rolling %d pins: %w", pins, err)
		}
	}
	return l, nil
}

// Run plays the given number of games and logs each final score at info level.
//
// Precondition: games >= 0; src and logger must be non-nil.
// Postcondition: len(results) == games, or a non-nil error.
func Run(games int, src Source, logger *zap.Logger) ([]Result, error) {
	if games < 0 {
		return nil, fmt.Errorf("simulate: games must be >= 0, got %d", games)
	}
	results := make([]Result, 0, games)
	for i := 0; i < games; i++ {
		l, err := Play(src)
		if err != nil {
			return nil, err
		}
		res := Result{
			ID:     uuid.NewString(),
			Rolls:  l.Rolls(),
			Score:  l.Score(),
			Totals: l.RunningTotals(),
		}
		logger.Info("simulated game",
			zap.String("game_id", res.ID),
			zap.Ints("rolls", res.Rolls),
			zap.Int("score", res.Score),
		)
		results = append(results, res)
	}
	return results, nil
}
