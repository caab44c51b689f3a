package pq

import "container/heap"

// Compare orders two elements: negative if a ranks before b, zero if they
// tie, positive otherwise. (a,b) => a.priority - b.priority is typical.
type Compare[T any] func(a, b T) int

// Queue is a binary min-heap of T under a Compare function.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	h store[T]
}

// New returns an empty queue ordered by cmp.
func New[T any](cmp Compare[T]) *Queue[T] {
	return &Queue[T]{h: store[T]{cmp: cmp}}
}

// NewWithCapacity is New with a pre-sized backing slice.
func NewWithCapacity[T any](cmp Compare[T], capacity int) *Queue[T] {
	return &Queue[T]{h: store[T]{cmp: cmp, items: make([]T, 0, capacity)}}
}

// Push inserts item.
func (q *Queue[T]) Push(item T) {
	heap.Push(&q.h, item)
}

// Pop removes and returns the minimum element. ok is false on an empty queue.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if len(q.h.items) == 0 {
		return item, false
	}
	return heap.Pop(&q.h).(T), true
}

// Peek returns the minimum element without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if len(q.h.items) == 0 {
		return item, false
	}
	return q.h.items[0], true
}

// Len returns the number of queued elements, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.h.items) == 0 }

// store adapts a comparator-ordered slice to heap.Interface.
type store[T any] struct {
	items []T
	cmp   Compare[T]
}

func (s store[T]) Len() int           { return len(s.items) }
func (s store[T]) Less(i, j int) bool { return s.cmp(s.items[i], s.items[j]) < 0 }
func (s store[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *store[T]) Push(x any) { s.items = append(s.items, x.(T)) }

func (s *store[T]) Pop() any {
	old := s.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // drop the reference for the GC
	s.items = old[:n-1]

	return item
}
