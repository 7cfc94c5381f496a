package birel

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict is matched by every *ConflictError via errors.Is.
	ErrConflict = errors.New("bijection conflict")

	// ErrInconsistent is wrapped by every violation reported by Verify.
	ErrInconsistent = errors.New("relation index inconsistent")
)

// ConflictError indicates a Bijection write that would bind a key or a value
// a second time.
//
// Side tells which binding blocked the write: Forward means Attempted.A was
// already bound to Existing.B, Inverse means Attempted.B was already bound to
// Existing.A.
type ConflictError[A, B comparable] struct {
	Attempted Pair[A, B]
	Existing  Pair[A, B]
	Side      Side
}

func (e *ConflictError[A, B]) Error() string {
	if e.Side == Inverse {
		return fmt.Sprintf("bijection conflict: cannot bind %v to %v, value already bound to %v",
			e.Attempted.A, e.Attempted.B, e.Existing.A)
	}
	return fmt.Sprintf("bijection conflict: cannot bind %v to %v, key already bound to %v",
		e.Attempted.A, e.Attempted.B, e.Existing.B)
}

// Is reports whether target is ErrConflict.
func (e *ConflictError[A, B]) Is(target error) bool {
	return target == ErrConflict
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistent, fmt.Sprintf(format, args...))
}
