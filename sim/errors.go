package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned when Release is asked for an out-of-range row
// or a row whose pool is empty. State is untouched when it is returned.
var ErrInvalidAction = errors.New("invalid action")

// ErrInvariantViolation marks internal consistency failures. These are defects
// in the simulator and are raised as panics carrying an *InvariantViolation.
var ErrInvariantViolation = errors.New("invariant violation")

// InvariantViolation describes a broken simulator invariant.
type InvariantViolation struct {
	Op     string // "Type.Method" that observed the violation
	Detail string
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: %v: %s", v.Op, ErrInvariantViolation, v.Detail)
}

func (v *InvariantViolation) Unwrap() error {
	return ErrInvariantViolation
}

// violate panics with an InvariantViolation.
func violate(op, format string, args ...any) {
	panic(&InvariantViolation{Op: op, Detail: fmt.Sprintf(format, args...)})
}
