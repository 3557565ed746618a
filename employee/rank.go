package employee

import (
	"iter"
	"rollcall/queues"
)

// Best returns the employee with the highest Compare order in all.
// Ties go to the earliest one. ok is false when all is empty.
func Best(all iter.Seq[Employee]) (best Employee, ok bool) {
	for e := range all {
		if !ok || Compare(e, best) > 0 {
			best, ok = e, true
		}
	}
	return best, ok
}

// Worst returns the employee with the lowest Compare order in all.
// Ties go to the earliest one. ok is false when all is empty.
func Worst(all iter.Seq[Employee]) (worst Employee, ok bool) {
	for e := range all {
		if !ok || Compare(e, worst) < 0 {
			worst, ok = e, true
		}
	}
	return worst, ok
}

// Ranked yields the employees of all from highest to lowest Compare order.
// all is read completely before the first employee is yielded.
func Ranked(all iter.Seq[Employee]) iter.Seq[Employee] {
	return func(yield func(Employee) bool) {
		pq := queues.NewPriorityQueue(0, func(a, b Employee) int {
			return Compare(b, a)
		})
		for e := range all {
			pq.Enqueue(e)
		}
		for e := range pq.Drain() {
			if !yield(e) {
				return
			}
		}
	}
}
