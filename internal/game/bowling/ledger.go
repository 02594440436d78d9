package bowling

import "fmt"

// step is the cursor movement taken after an accepted roll.
type step int

const (
	stepNextRoll step = iota + 1
	stepNextFrame
)

// transitionKey identifies a cursor position and the kind of roll just made.
type transitionKey struct {
	final  bool
	roll   int
	strike bool
}

// transitions is the complete roll-acceptance state machine. A strike in the
// second roll of a regular frame is a 0-then-10 spare and ends the frame like
// any other second roll.
var transitions = map[transitionKey]step{
	{final: false, roll: 0, strike: false}: stepNextRoll,
	{final: false, roll: 0, strike: true}:  stepNextFrame,
	{final: false, roll: 1, strike: false}: stepNextFrame,
	{final: false, roll: 1, strike: true}:  stepNextFrame,
	{final: true, roll: 0, strike: false}:  stepNextRoll,
	{final: true, roll: 0, strike: true}:   stepNextRoll,
	{final: true, roll: 1, strike: false}:  stepNextRoll,
	{final: true, roll: 1, strike: true}:   stepNextRoll,
	{final: true, roll: 2, strike: false}:  stepNextRoll,
	{final: true, roll: 2, strike: true}:   stepNextRoll,
}

// cursor routes the next roll to a frame and slot.
type cursor struct {
	frame int
	roll  int
}

// advance returns the cursor position after pins were recorded at c.
//
// Precondition: c is a position the ledger accepted a roll at.
func (c cursor) advance(pins int) cursor {
	key := transitionKey{final: c.frame == finalFrame, roll: c.roll, strike: pins == MaxPins}
	switch transitions[key] {
	case stepNextRoll:
		return cursor{frame: c.frame, roll: c.roll + 1}
	case stepNextFrame:
		return cursor{frame: c.frame + 1}
	default:
		panic(fmt.Sprintf("bowling: no transition from frame %d roll %d", c.frame, c.roll))
	}
}

// Ledger records the rolls of a single game and computes its score.
//
// A Ledger is not safe for concurrent use; see Recorder.
type Ledger struct {
	frames  [FrameCount]Frame
	started int
	cur     cursor
}

// NewLedger creates an empty game.
//
// Postcondition: no frame is started and the cursor is at frame 0, roll 0.
func NewLedger() *Ledger {
	l := &Ledger{}
	for i := range l.frames {
		l.frames[i].index = i
	}
	return l
}

// Roll records a roll of pins and returns the same ledger for chaining.
//
// Precondition: none; every rejection is reported as an error.
// Postcondition: on success the roll is stored and the cursor advanced. On
// failure the ledger is unchanged and the error wraps ErrInvalidInput,
// ErrGameComplete, or ErrInvalidFrameTotal.
func (l *Ledger) Roll(pins int) (*Ledger, error) {
	if err := l.accept(pins); err != nil {
		return nil, err
	}
	l.record(pins)
	return l, nil
}

// RollAll records each roll in order and stops at the first rejection.
// Rolls accepted before the rejection remain recorded.
func (l *Ledger) RollAll(pins ...int) (*Ledger, error) {
	for i, p := range pins {
		if _, err := l.Roll(p); err != nil {
			return nil, fmt.Errorf("roll %d: %w", i, err)
		}
	}
	return l, nil
}

func (l *Ledger) accept(pins int) error {
	if pins < 0 || pins > MaxPins {
		return fmt.Errorf("%w: pins must be in [0, %d], got %d", ErrInvalidInput, MaxPins, pins)
	}
	if l.Complete() {
		return fmt.Errorf("%w: frame %d has no rolls remaining", ErrGameComplete, finalFrame)
	}
	if standing := l.PinsStanding(); pins > standing {
		return fmt.Errorf("%w: frame %d roll %d has %d pins standing, got %d",
			ErrInvalidFrameTotal, l.cur.frame, l.cur.roll, standing, pins)
	}
	return nil
}

func (l *Ledger) record(pins int) {
	f := &l.frames[l.cur.frame]
	if l.cur.roll == 0 {
		f.index = l.cur.frame
		l.started++
	}
	f.rolls[l.cur.roll] = Slot{Pins: pins, Played: true}
	l.cur = l.cur.advance(pins)
}

// Complete reports whether the game's terminal roll has been recorded.
func (l *Ledger) Complete() bool {
	if l.cur.frame != finalFrame {
		return false
	}
	switch l.cur.roll {
	case maxRolls:
		return true
	case 2:
		return !l.frames[finalFrame].bonusEarned()
	default:
		return false
	}
}

// PinsStanding returns the largest pin count the next roll may record.
//
// Postcondition: returns 0 when the game is complete, otherwise a value in [0, MaxPins].
func (l *Ledger) PinsStanding() int {
	if l.Complete() {
		return 0
	}
	f := l.frames[l.cur.frame]
	r0, _ := f.Roll(0)
	r1, _ := f.Roll(1)
	switch l.cur.roll {
	case 1:
		if r0 == MaxPins {
			return MaxPins
		}
		return MaxPins - r0
	case 2:
		// Fresh rack after a double strike or a spare.
		if r0 == MaxPins && r1 != MaxPins {
			return MaxPins - r1
		}
		return MaxPins
	default:
		return MaxPins
	}
}

// Cursor returns the zero-based frame and roll the next roll will be recorded at.
func (l *Ledger) Cursor() (frame, roll int) {
	return l.cur.frame, l.cur.roll
}

// FramesStarted returns the number of frames with at least one recorded roll.
func (l *Ledger) FramesStarted() int {
	return l.started
}

// Frame returns a view of frame i.
//
// Postcondition: returns false when i is out of range or the frame has not started.
func (l *Ledger) Frame(i int) (Frame, bool) {
	if i < 0 || i >= l.started {
		return Frame{}, false
	}
	return l.frames[i], true
}

// Rolls returns every recorded roll in the order it was bowled.
func (l *Ledger) Rolls() []int {
	var out []int
	for i := 0; i < l.started; i++ {
		f := l.frames[i]
		for j := 0; j < f.Capacity(); j++ {
			if pins, ok := f.Roll(j); ok {
				out = append(out, pins)
			}
		}
	}
	return out
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	cp := *l
	return &cp
}
