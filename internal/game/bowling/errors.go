package bowling

import "errors"

// ErrInvalidInput is returned when a roll's pin count is outside [0, MaxPins].
var ErrInvalidInput = errors.New("invalid input")

// ErrGameComplete is returned when a roll is submitted after the game's terminal roll.
var ErrGameComplete = errors.New("game complete")

// ErrInvalidFrameTotal is returned when a roll would knock down more pins
// than are standing in the current two-roll window.
var ErrInvalidFrameTotal = errors.New("invalid frame total")
