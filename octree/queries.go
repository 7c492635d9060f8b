package octree

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/geomkernel/shapes"
)

// Query returns the indices of every element whose AABB overlaps s,
// exactly { i | TestOverlap(element_aabbs[i], s) } per spec.md invariant 14.
func (t *Tree) Query(s shapes.Overlapper) []uint32 {
	var out []uint32
	stack := make([]Index, 0, stackCapacity)
	stack = append(stack, 0)

	vc, volumetric := s.(shapes.VolumeContainer)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[idx]

		if volumetric && vc.Contains(n.AABB) && vc.Volume() > n.AABB.Volume() {
			for i := 0; i < n.NumElements; i++ {
				out = append(out, t.indices[n.FirstElement+i])
			}
			continue
		}

		if n.IsLeaf {
			for i := 0; i < n.NumElements; i++ {
				e := t.indices[n.FirstElement+i]
				if s.Overlaps(t.elementAABB[e]) {
					out = append(out, e)
				}
			}
			continue
		}

		for i := 0; i < n.NumStraddlers; i++ {
			e := t.indices[n.FirstElement+i]
			if s.Overlaps(t.elementAABB[e]) {
				out = append(out, e)
			}
		}
		for o := 7; o >= 0; o-- {
			if !n.HasChild(o) {
				continue
			}
			child := t.nodes[n.BaseChildIndex+Index(n.childSlot(o))]
			if s.Overlaps(child.AABB) {
				stack = append(stack, n.BaseChildIndex+Index(n.childSlot(o)))
			}
		}
	}
	return out
}

// QueryAABB returns elements overlapping box b.
func (t *Tree) QueryAABB(b shapes.AABB) []uint32 { return t.Query(b) }

// QueryRay returns elements whose AABB the ray crosses.
func (t *Tree) QueryRay(r shapes.Ray) []uint32 { return t.Query(r) }

// QuerySphere returns elements overlapping sphere s.
func (t *Tree) QuerySphere(s shapes.Sphere) []uint32 { return t.Query(s) }

// QueryNearest returns the element index closest to point, and false if
// the tree has no elements.
func (t *Tree) QueryNearest(point shapes.Vec3) (uint32, bool) {
	if len(t.elementAABB) == 0 {
		return 0, false
	}

	q := &nodeQueue{{node: 0, bound: t.nodes[0].AABB.SquaredDistance(point)}}
	heap.Init(q)

	minDistSq := math.Inf(1)
	var bestIdx uint32
	found := false

	consider := func(e uint32) {
		d := t.elementAABB[e].SquaredDistance(point)
		if d < minDistSq || (d == minDistSq && (!found || e < bestIdx)) {
			minDistSq = d
			bestIdx = e
			found = true
		}
	}

	for q.Len() > 0 {
		item := heap.Pop(q).(nodeQueueItem)
		if found && item.bound >= minDistSq {
			break
		}
		n := t.nodes[item.node]

		if n.IsLeaf {
			for i := 0; i < n.NumElements; i++ {
				consider(t.indices[n.FirstElement+i])
			}
			continue
		}
		for i := 0; i < n.NumStraddlers; i++ {
			consider(t.indices[n.FirstElement+i])
		}
		for o := 0; o < 8; o++ {
			if !n.HasChild(o) {
				continue
			}
			childIdx := n.BaseChildIndex + Index(n.childSlot(o))
			bound := t.nodes[childIdx].AABB.SquaredDistance(point)
			if !found || bound < minDistSq {
				heap.Push(q, nodeQueueItem{node: childIdx, bound: bound})
			}
		}
	}

	return bestIdx, found
}

// QueryKNN returns the k elements nearest to point, sorted ascending by
// squared distance and tie-broken by ascending element index, per
// spec.md invariant 15.
func (t *Tree) QueryKNN(point shapes.Vec3, k int) []uint32 {
	if k <= 0 || len(t.elementAABB) == 0 {
		return nil
	}

	results := &candidateMaxHeap{}
	heap.Init(results)

	q := &nodeQueue{{node: 0, bound: t.nodes[0].AABB.SquaredDistance(point)}}
	heap.Init(q)

	tau := func() float64 {
		if results.Len() < k {
			return math.Inf(1)
		}
		return (*results)[0].distSq
	}

	offer := func(e uint32) {
		d := t.elementAABB[e].SquaredDistance(point)
		if results.Len() < k {
			heap.Push(results, candidate{distSq: d, index: e})
			return
		}
		worst := (*results)[0]
		if d < worst.distSq || (d == worst.distSq && e < worst.index) {
			heap.Pop(results)
			heap.Push(results, candidate{distSq: d, index: e})
		}
	}

	for q.Len() > 0 {
		item := heap.Pop(q).(nodeQueueItem)
		if results.Len() >= k && item.bound > tau() {
			break
		}
		n := t.nodes[item.node]

		if n.IsLeaf {
			for i := 0; i < n.NumElements; i++ {
				offer(t.indices[n.FirstElement+i])
			}
			continue
		}
		for i := 0; i < n.NumStraddlers; i++ {
			offer(t.indices[n.FirstElement+i])
		}
		for o := 0; o < 8; o++ {
			if !n.HasChild(o) {
				continue
			}
			child := t.nodes[n.BaseChildIndex+Index(n.childSlot(o))]
			bound := child.AABB.SquaredDistance(point)
			if results.Len() < k || bound <= tau() {
				heap.Push(q, nodeQueueItem{node: n.BaseChildIndex + Index(n.childSlot(o)), bound: bound})
			}
		}
	}

	out := make([]uint32, results.Len())
	tmp := make([]candidate, results.Len())
	copy(tmp, *results)
	sort.Slice(tmp, func(i, j int) bool {
		if tmp[i].distSq != tmp[j].distSq {
			return tmp[i].distSq < tmp[j].distSq
		}
		return tmp[i].index < tmp[j].index
	})
	for i, c := range tmp {
		out[i] = c.index
	}
	return out
}

