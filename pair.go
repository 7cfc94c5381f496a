package birel

import "fmt"

// Pair is one stored (A, B) relationship. Pairs are not stored as objects;
// they are materialized on enumeration.
type Pair[A, B comparable] struct {
	A A
	B B
}

// MakePair builds a Pair.
func MakePair[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}

// Swap returns the pair with its elements exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{A: p.B, B: p.A}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.A, p.B)
}

// Side names one of the two mirrored indices.
type Side uint8

const (
	// Forward is the A -> {B} index.
	Forward Side = iota
	// Inverse is the B -> {A} index.
	Inverse
)

func (s Side) String() string {
	switch s {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}
