package seqs

import "iter"

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// SumOfSquares returns the sum of the squares of vals.
// The caller guarantees that neither a square nor the running total exceeds
// the uint32 range; past that the result wraps.
func SumOfSquares(vals iter.Seq[uint32]) uint32 {
	return Sum(Map(vals, square))
}

// BoundedAbsoluteValues yields |v| for every v in vals whose absolute value is
// at most 100, preserving input order.
//
// The absolute value is computed in uint32, so math.MinInt32 maps to 2147483648
// and is dropped like any other out-of-bound value.
func BoundedAbsoluteValues(vals iter.Seq[int32]) iter.Seq[uint32] {
	return Filter(Map(vals, absUint32), func(v uint32) bool {
		return v <= 100
	})
}

func square(v uint32) uint32 {
	return v * v
}

func absUint32(v int32) uint32 {
	if v < 0 {
		return uint32(-int64(v))
	}
	return uint32(v)
}
