package bowling

import (
	"sync"

	"go.uber.org/zap"
)

// Recorder wraps a Ledger with a lock and a logger so one game can be shared
// between goroutines. Accepted rolls are logged at debug level; the terminal
// roll is logged at info level.
//
// All methods are safe for concurrent use.
type Recorder struct {
	mu     sync.RWMutex
	id     string
	ledger *Ledger
	logger *zap.Logger
}

// NewRecorder creates a Recorder for a new, empty game.
//
// Precondition: id must be non-empty; logger must be non-nil.
func NewRecorder(id string, logger *zap.Logger) *Recorder {
	return &Recorder{
		id:     id,
		ledger: NewLedger(),
		logger: logger.With(zap.String("game_id", id)),
	}
}

// ID returns the game identifier given to NewRecorder.
func (r *Recorder) ID() string {
	return r.id
}

// Roll records a roll and returns the same Recorder for chaining.
//
// Postcondition: on failure the error is returned unchanged and the game is
// not modified.
func (r *Recorder) Roll(pins int) (*Recorder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frame, roll := r.ledger.Cursor()
	if _, err := r.ledger.Roll(pins); err != nil {
		return nil, err
	}
	score := r.ledger.Score()
	r.logger.Debug("roll recorded",
		zap.Int("frame", frame),
		zap.Int("roll", roll),
		zap.Int("pins", pins),
		zap.Int("score", score),
	)
	if r.ledger.Complete() {
		r.logger.Info("game complete", zap.Int("score", score))
	}
	return r, nil
}

// Score returns the cumulative score of every resolved frame.
func (r *Recorder) Score() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.Score()
}

// ScoreThrough returns the cumulative score of frames [0, upToFrame).
func (r *Recorder) ScoreThrough(upToFrame int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.ScoreThrough(upToFrame)
}

// RunningTotals returns the cumulative score after each resolved frame.
func (r *Recorder) RunningTotals() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.RunningTotals()
}

// Complete reports whether the game's terminal roll has been recorded.
func (r *Recorder) Complete() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.Complete()
}

// Snapshot returns an independent copy of the game's ledger.
func (r *Recorder) Snapshot() *Ledger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.Clone()
}
