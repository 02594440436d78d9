// Package bowling provides the ten-pin game ledger: roll acceptance and
// score aggregation for a single game.
//
// Frames and rolls are zero-indexed throughout. Frame 9 is the final frame.
package bowling

const (
	// FrameCount is the number of frames in a game.
	FrameCount = 10
	// MaxPins is the number of pins racked at the start of a frame.
	MaxPins = 10

	finalFrame = FrameCount - 1
	// maxRolls is the slot capacity of the final frame; regular frames use two.
	maxRolls = 3
)

// Slot is a single roll position within a frame.
//
// Invariant: Pins is meaningful only when Played is true. An unplayed slot is
// distinct from a played roll of zero pins.
type Slot struct {
	Pins   int
	Played bool
}

// Frame is a read-only view of one frame's rolls.
type Frame struct {
	index int
	rolls [maxRolls]Slot
}

// Index returns the zero-based frame number.
func (f Frame) Index() int {
	return f.index
}

// Capacity returns the number of roll slots this frame carries: three for
// the final frame, two otherwise.
func (f Frame) Capacity() int {
	if f.index == finalFrame {
		return maxRolls
	}
	return 2
}

// Roll returns the pins for roll j and whether that roll has been played.
//
// Postcondition: returns (0, false) for unplayed or out-of-range slots.
func (f Frame) Roll(j int) (int, bool) {
	if j < 0 || j >= f.Capacity() {
		return 0, false
	}
	s := f.rolls[j]
	return s.Pins, s.Played
}

// IsStrike reports whether the first roll knocked down every pin.
func (f Frame) IsStrike() bool {
	r0, ok := f.Roll(0)
	return ok && r0 == MaxPins
}

// IsSpare reports whether the first two rolls knocked down every pin and the
// first roll was not a strike.
func (f Frame) IsSpare() bool {
	r0, ok0 := f.Roll(0)
	r1, ok1 := f.Roll(1)
	return ok0 && ok1 && r0 != MaxPins && r0+r1 == MaxPins
}

// bonusEarned reports whether the final frame is entitled to a third roll.
func (f Frame) bonusEarned() bool {
	r0, _ := f.Roll(0)
	r1, _ := f.Roll(1)
	return r0 == MaxPins || r0+r1 == MaxPins
}
