// Package coin resolves coin flips for drivers that execute
// recommended actions. Analyzers never flip coins; they reason about
// outcomes analytically.
package coin

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Result of a single coin flip
type Result int

// Flip outcomes
const (
	Tails Result = iota
	Heads
)

// String returns the string representation of the result
func (r Result) String() string {
	if r == Heads {
		return "heads"
	}
	return "tails"
}

// Flipper produces coin flip results
type Flipper interface {
	Flip() (Result, error)
	FlipN(n int) (heads int, err error)
}

// DiceFlipper implements Flipper with a d2 roll
type DiceFlipper struct{}

// New returns a dice-backed flipper
func New() *DiceFlipper {
	return &DiceFlipper{}
}

// Flip flips a single coin
func (f *DiceFlipper) Flip() (Result, error) {
	roll, err := dice.NewRoll(1, 2)
	if err != nil {
		return Tails, err
	}
	if roll.GetValue() == 2 {
		return Heads, nil
	}
	return Tails, nil
}

// FlipN flips n coins and returns the number of heads
func (f *DiceFlipper) FlipN(n int) (int, error) {
	heads := 0
	for i := 0; i < n; i++ {
		r, err := f.Flip()
		if err != nil {
			return heads, err
		}
		if r == Heads {
			heads++
		}
	}
	return heads, nil
}

// FixedFlipper always returns the configured result, for tests and
// deterministic replays
type FixedFlipper struct {
	Result Result
}

// Flip returns the configured result
func (f *FixedFlipper) Flip() (Result, error) {
	return f.Result, nil
}

// FlipN returns n heads when configured heads, zero otherwise
func (f *FixedFlipper) FlipN(n int) (int, error) {
	if f.Result == Heads {
		return n, nil
	}
	return 0, nil
}
