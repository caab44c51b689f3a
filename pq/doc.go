// Package pq provides a generic binary min-heap ordered by a caller-supplied
// comparator. It backs the weighted searches (Dijkstra, A*).
//
// What:
//
//   - Push appends and bubbles the element up while it compares strictly less
//     than its parent (parent of n is (n+1)/2-1).
//   - Pop returns the root, moves the last element to the root and sinks it:
//     the left child (2n+1) is preferred, the right child (2n+2) wins only if it
//     compares strictly less; the element stops once no child is strictly less.
//   - There is no decrease-key. Callers push duplicates and discard stale
//     entries when they pop them ("lazy decrease-key").
//
// Determinism:
//
//	The sift rules above are exactly those of container/heap, which this
//	package builds on, so identical push/pop sequences always produce the
//	same output order, including among equal-priority elements.
//
// Complexity:
//
//   - Push, Pop: O(log n). Peek, Len, IsEmpty: O(1).
//   - Memory: O(n).
package pq
