// Package input provides the knobs and buttons the explorer is steered with.
//
// Analog inputs read as a value in [0, 1]. Buttons report whether they are
// pressed; debouncing is left to the caller.
package input

import (
	"math"
	"sync/atomic"
)

type Analog interface {
	ReadNormalized() float64
}

type Button interface {
	IsPressed() bool
}

// A Knob is an analog input set from another goroutine, e.g. a keyboard.
type Knob struct {
	bits atomic.Uint64
}

func NewKnob(v float64) *Knob {
	k := &Knob{}
	k.Set(v)
	return k
}

func (k *Knob) ReadNormalized() float64 {
	return math.Float64frombits(k.bits.Load())
}

// Set moves the knob to v, clamped to [0, 1].
func (k *Knob) Set(v float64) {
	k.bits.Store(math.Float64bits(clamp01(v)))
}

// Nudge turns the knob by d, stopping at either end.
func (k *Knob) Nudge(d float64) {
	for {
		old := k.bits.Load()
		next := math.Float64bits(clamp01(math.Float64frombits(old) + d))
		if k.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

// A Latch is a button that stays pressed until it is read once. Keyboards
// deliver presses, not held state, so each Press is seen by exactly one
// IsPressed.
type Latch struct {
	pressed atomic.Bool
}

func (l *Latch) Press() {
	l.pressed.Store(true)
}

func (l *Latch) IsPressed() bool {
	return l.pressed.Swap(false)
}

var (
	_ Analog = (*Knob)(nil)
	_ Button = (*Latch)(nil)
)

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}
