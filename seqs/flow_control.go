package seqs

import (
	"iter"
	"runtime"
)

// Take yields at most n elements of seq and stops pulling from it afterwards.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// FirstNEven reads the first element of vals as a count n and returns a sequence
// of at most n even values taken from the rest of vals.
//
// ok is false only when vals is empty. A count with no evens behind it still
// returns ok == true and an empty sequence.
//
// The first element is consumed eagerly; the remainder is pulled lazily while
// the result is ranged over. The result is single-pass. Ranging over it
// releases vals when the loop ends; a result that is never ranged over
// releases vals once it is garbage collected.
func FirstNEven(vals iter.Seq[uint32]) (evens iter.Seq[uint32], ok bool) {
	next, stop := iter.Pull(vals)
	n, ok := next()
	if !ok {
		stop()
		return nil, false
	}

	rest := func(yield func(uint32) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
	taken := Take(Filter(rest, isEven), int(n))

	// stop must not reference release, or the cleanup never runs.
	release := &pullRelease{stop: stop}
	runtime.AddCleanup(release, func(stop func()) { stop() }, stop)

	return func(yield func(uint32) bool) {
		defer release.stop()
		for v := range taken {
			if !yield(v) {
				return
			}
		}
	}, true
}

// pullRelease ties the lifetime of an iter.Pull to the sequence handed out.
type pullRelease struct {
	stop func()
}

func isEven(v uint32) bool {
	return v%2 == 0
}
