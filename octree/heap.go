package octree

import "container/heap"

// nodeQueueItem is one pending node in the best-first traversal used by
// QueryNearest and QueryKNN, ordered by its AABB's squared-distance lower
// bound to the query point (ascending: smallest bound first).
type nodeQueueItem struct {
	node  Index
	bound float64
}

// nodeQueue is a min-heap of nodeQueueItem, the best-first work list of
// spec.md §4.5's nearest/KNN traversal.
type nodeQueue []nodeQueueItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].bound < q[j].bound }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeQueueItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// candidate is one accepted element in a KNN result set.
type candidate struct {
	distSq float64
	index  uint32
}

// candidateMaxHeap is a bounded max-heap over distSq (worst candidate on
// top), tie-broken by the larger element index so smaller indices survive
// a trim, matching spec.md §4.5's "ties broken by element index ascending".
type candidateMaxHeap []candidate

func (h candidateMaxHeap) Len() int { return len(h) }
func (h candidateMaxHeap) Less(i, j int) bool {
	if h[i].distSq != h[j].distSq {
		return h[i].distSq > h[j].distSq
	}
	return h[i].index > h[j].index
}
func (h candidateMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateMaxHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candidateMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ = heap.Interface(&nodeQueue{})
var _ = heap.Interface(&candidateMaxHeap{})
