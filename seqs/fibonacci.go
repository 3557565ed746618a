package seqs

import "iter"

type fibState uint8

const (
	fibNotStarted fibState = iota
	fibOneEmitted
	fibSteady
)

// Fibonacci produces 0, 1, 1, 2, 3, 5, ... one value per call to Next.
// The zero value is ready to use. A Fibonacci is single-pass: to start over,
// use a new instance. It is not safe for concurrent use.
type Fibonacci struct {
	state    fibState
	prevPrev uint32 // second most recent value
	prev     uint32 // most recent value, valid in fibSteady
}

func NewFibonacci() *Fibonacci {
	return &Fibonacci{}
}

// Next returns the next Fibonacci number. Values wrap once they leave the uint32 range.
func (f *Fibonacci) Next() uint32 {
	switch f.state {
	case fibNotStarted:
		f.state = fibOneEmitted
		f.prevPrev = 0
		return 0
	case fibOneEmitted:
		f.state = fibSteady
		f.prev = 1
		return 1
	default:
		next := f.prevPrev + f.prev
		f.prevPrev, f.prev = f.prev, next
		return next
	}
}

// All returns an unbounded sequence backed by f. Ranging over it again resumes
// where the previous loop stopped.
func (f *Fibonacci) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for yield(f.Next()) {
		}
	}
}
