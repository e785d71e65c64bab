// Package intset implements an ordered integer set whose Min operation
// runs in O(log n), used by seqtok's LZ coders to track unused output
// token ids and always hand out the smallest one. It is a min-heap
// plus lazy deletion, so Remove does not need to pay for a heap fixup.
package intset

import "container/heap"

type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// Set is an ordered set of non-negative integers supporting insertion,
// removal, and retrieval of the minimum present element.
type Set struct {
	h       intHeap
	present map[int]bool
}

// New returns an empty Set.
func New() *Set {
	return &Set{present: make(map[int]bool)}
}

// Add inserts v into the set. Re-adding a present value is a no-op.
func (s *Set) Add(v int) {
	if s.present[v] {
		return
	}
	s.present[v] = true
	heap.Push(&s.h, v)
}

// Remove deletes v from the set. Removing an absent value is a no-op.
func (s *Set) Remove(v int) {
	delete(s.present, v)
}

// Contains reports whether v is currently in the set.
func (s *Set) Contains(v int) bool {
	return s.present[v]
}

// Min returns the smallest element currently in the set. ok is false
// when the set is empty. Stale (removed) heap entries are discarded
// permanently the first time they would surface as the minimum.
func (s *Set) Min() (v int, ok bool) {
	for len(s.h) > 0 {
		top := s.h[0]
		if s.present[top] {
			return top, true
		}
		heap.Pop(&s.h)
	}
	return 0, false
}

// Len reports the number of elements currently in the set.
func (s *Set) Len() int {
	return len(s.present)
}
