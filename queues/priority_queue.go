package queues

import (
	"container/heap"
	"iter"
)

// PriorityItem is a handle to an element stored in a PriorityQueue.
// It stays valid until the element is dequeued or removed.
type PriorityItem[T any] struct {
	Value T
	index int
}

type internalHeap[T any] struct {
	data []*PriorityItem[T]
	cmp  func(a, b T) int
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *internalHeap[T]) Less(i, j int) bool {
	return ih.cmp(ih.data[i].Value, ih.data[j].Value) < 0
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
	ih.data[i].index = i
	ih.data[j].index = j
}

func (ih *internalHeap[T]) Push(x any) {
	idx := len(ih.data)
	item := x.(*PriorityItem[T])
	ih.data = append(ih.data, item)
	ih.data[idx].index = idx
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	lastItem := old[n-1]

	// avoid memory leak
	lastItem.index = -1
	old[n-1] = nil

	ih.data = old[0 : n-1]
	return lastItem
}

// PriorityQueue is a binary heap ordered by a comparator.
// The element that compares smallest sits at the front; pass an inverted
// comparator to get largest-first behaviour.
type PriorityQueue[T any] struct {
	heap *internalHeap[T]
}

// NewPriorityQueue creates a new PriorityQueue with the specified initial capacity.
// cmp follows the cmp.Compare convention: negative when a sorts before b.
func NewPriorityQueue[T any](initCapacity int, cmp func(a, b T) int) *PriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	if cmp == nil {
		panic("rollcall.PriorityQueue: comparator cannot be nil")
	}
	innerHeap := internalHeap[T]{
		data: make([]*PriorityItem[T], 0, initCapacity),
		cmp:  cmp,
	}
	heap.Init(&innerHeap)

	return &PriorityQueue[T]{
		heap: &innerHeap,
	}
}

func (pq *PriorityQueue[T]) Enqueue(value T) *PriorityItem[T] {
	item := &PriorityItem[T]{Value: value}
	heap.Push(pq.heap, item)
	return item
}

func (pq *PriorityQueue[T]) EnqueueAll(values ...T) {
	for _, v := range values {
		pq.Enqueue(v)
	}
}

func (pq *PriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(*PriorityItem[T]).Value, true
}

func (pq *PriorityQueue[T]) Peek() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return pq.heap.data[0].Value, true
}

// UpdateItem restores heap order after item.Value has been changed in place.
func (pq *PriorityQueue[T]) UpdateItem(item *PriorityItem[T]) {
	if item.index < 0 || item.index >= pq.heap.Len() {
		panic("rollcall.PriorityQueue: UpdateItem called with invalid PriorityItem")
	}
	heap.Fix(pq.heap, item.index)
}

func (pq *PriorityQueue[T]) RemoveItem(item *PriorityItem[T]) {
	if item.index < 0 || item.index >= pq.heap.Len() {
		panic("rollcall.PriorityQueue: RemoveItem called with invalid PriorityItem")
	}
	heap.Remove(pq.heap, item.index)
}

// Drain dequeues elements front to back as they are pulled.
// Stopping early leaves the remaining elements in the queue.
func (pq *PriorityQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := pq.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}

func (pq *PriorityQueue[T]) Clear() {
	for i := range pq.heap.data {
		pq.heap.data[i].index = -1
		pq.heap.data[i] = nil
	}
	pq.heap.data = pq.heap.data[:0]
}
