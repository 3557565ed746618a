/*
Package seqs provides lazy, pull-based helpers over Go iterators (iter.Seq).

It contains two layers:

  - **Combinators**: [Map], [Filter], [TryMap], [Take], [Sum]. Each returns a
    new sequence without materializing intermediate slices.
  - **Number sequences**: [SumOfSquares], [BoundedAbsoluteValues], [FirstNEven],
    [SquareWholeNumbers] and the stateful [Fibonacci] producer.

# Overflow

All arithmetic is done in uint32 and wraps on overflow. Keeping squares and sums
inside the uint32 range is the caller's obligation; the unbounded generators
never stop on their own and keep producing wrapped values past that range.

	// First ten Fibonacci numbers
	for v := range seqs.Take(seqs.NewFibonacci().All(), 10) {
		fmt.Println(v)
	}
*/
package seqs
