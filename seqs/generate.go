package seqs

import "iter"

// Naturals yields 0, 1, 2, ... without end. The counter wraps to 0 after math.MaxUint32.
func Naturals() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := uint32(0); ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// SquareWholeNumbers yields k*k for k = 0, 1, 2, ... without end.
// Squares past the uint32 range wrap rather than stop the sequence.
func SquareWholeNumbers() iter.Seq[uint32] {
	return Map(Naturals(), square)
}
