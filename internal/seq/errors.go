package seq

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence is returned when a sequence has a symbol outside the
// alphabet an operation accepts.
var ErrInvalidSequence = errors.New("invalid sequence")

// InvalidSequenceError reports the first offending symbol in a sequence.
type InvalidSequenceError struct {
	// Symbol is the rejected symbol
	Symbol rune

	// Index is the symbol's 0-based position in the input
	Index int
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("found %q at index %d: enter a valid DNA sequence", e.Symbol, e.Index)
}

// Unwrap lets errors.Is match ErrInvalidSequence.
func (e *InvalidSequenceError) Unwrap() error {
	return ErrInvalidSequence
}
