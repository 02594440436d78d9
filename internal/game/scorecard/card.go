// Package scorecard loads recorded games from YAML files and replays them
// through the bowling ledger.
package scorecard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrScoreMismatch is returned by Replay when a card's expected score differs
// from the score the ledger computes.
var ErrScoreMismatch = errors.New("score mismatch")

// Card is one recorded game.
type Card struct {
	// ID identifies the game in logs; a uuid is generated when the file omits it.
	ID string
	// Bowler is the display name of the player.
	Bowler string
	// Rolls holds every pin count in the order bowled.
	Rolls []int
	// ExpectedScore, when non-nil, is checked against the replayed score.
	ExpectedScore *int
}

// Validate checks the card's structural invariants. Roll legality is left to
// the ledger during Replay.
//
// Postcondition: Returns nil if valid, or an error describing all violations.
func (c *Card) Validate() error {
	var errs []string
	if c.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if strings.TrimSpace(c.Bowler) == "" {
		errs = append(errs, "bowler must not be empty")
	}
	if len(c.Rolls) == 0 {
		errs = append(errs, "rolls must not be empty")
	}
	if c.ExpectedScore != nil && (*c.ExpectedScore < 0 || *c.ExpectedScore > 300) {
		errs = append(errs, fmt.Sprintf("expected_score must be in [0, 300], got %d", *c.ExpectedScore))
	}
	if len(errs) > 0 {
		return fmt.Errorf("card %q: %s", c.ID, strings.Join(errs, "; "))
	}
	return nil
}
