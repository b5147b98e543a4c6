package physics

import (
	"errors"
	"fmt"
)

var (
	// ErrCoincident indicates two bodies at the same position, where the
	// inverse-square force is undefined.
	ErrCoincident = errors.New("physics: coincident bodies (zero separation)")

	// ErrInvalidMass indicates a non-positive or non-finite mass.
	ErrInvalidMass = errors.New("physics: mass must be positive")

	// ErrInvalidRadius indicates a non-positive or non-finite radius.
	ErrInvalidRadius = errors.New("physics: radius must be positive")
)

// NumericFault reports a force evaluation that could not be completed.
type NumericFault struct {
	Body  string
	Other string
	Err   error
}

func (e *NumericFault) Error() string {
	return fmt.Sprintf("attraction %s -> %s: %v", e.Body, e.Other, e.Err)
}

func (e *NumericFault) Unwrap() error {
	return e.Err
}
