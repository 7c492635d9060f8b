package octree

import (
	"math"

	"github.com/katalvlaran/geomkernel/shapes"
)

// workItem is one pending subdivision task on the explicit build stack.
type workItem struct {
	node  Index
	first int
	count int
	depth int
}

// Build constructs the tree over aabbs using policy, splitting nodes with
// more than maxPerNode elements down to maxDepth. It takes ownership of a
// private copy of aabbs. Returns ErrInvalidInput on invalid input (no
// elements, maxPerNode < 1, or maxDepth < 0).
func Build(aabbs []shapes.AABB, policy SplitPolicy, maxPerNode, maxDepth int) (*Tree, error) {
	if len(aabbs) == 0 || maxPerNode < 1 || maxDepth < 0 {
		return nil, ErrInvalidInput
	}

	t := &Tree{
		elementAABB: append([]shapes.AABB(nil), aabbs...),
		indices:     make([]uint32, len(aabbs)),
		maxDepth:    maxDepth,
	}
	for i := range t.indices {
		t.indices[i] = uint32(i)
	}

	root := Node{AABB: shapes.Union(t.elementAABB), FirstElement: 0, NumElements: len(aabbs)}
	t.nodes = append(t.nodes, root)

	stack := make([]workItem, 0, stackCapacity)
	stack = append(stack, workItem{node: 0, first: 0, count: len(aabbs), depth: 0})

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = subdivide(t, item, policy, maxPerNode, maxDepth, stack)
	}

	return t, nil
}

// subdivide processes one node: either marks it a leaf or partitions its
// element range, creates child nodes, and pushes their work items onto
// stack (returned, possibly reallocated).
func subdivide(t *Tree, item workItem, policy SplitPolicy, maxPerNode, maxDepth int, stack []workItem) []workItem {
	n := &t.nodes[item.node]
	n.FirstElement = item.first
	n.NumElements = item.count

	if item.depth >= maxDepth || item.count <= maxPerNode {
		n.IsLeaf = true
		n.NumStraddlers = 0
		return stack
	}

	split := splitPoint(t, item, policy)
	octantBoxes := octantAABBs(n.AABB, split)

	groups, straddlerCount := partitionRange(t, item, octantBoxes, policy)
	if straddlerCount == item.count {
		// every element straddles every octant boundary: stop descending.
		n.IsLeaf = true
		n.NumStraddlers = 0
		return stack
	}

	n.NumStraddlers = straddlerCount
	n.IsLeaf = false

	base := Index(len(t.nodes))
	n.BaseChildIndex = base

	offset := item.first + straddlerCount
	for octant := 0; octant < 8; octant++ {
		count := groups[octant]
		if count == 0 {
			continue
		}
		t.nodes[item.node].ChildMask |= 1 << uint(octant)

		childAABB := octantBoxes[octant]
		if policy.TightChildren {
			childAABB = tightBounds(t, offset, count, policy.Epsilon)
		}
		child := Node{AABB: childAABB, FirstElement: offset, NumElements: count}
		childIdx := Index(len(t.nodes))
		t.nodes = append(t.nodes, child)

		stack = append(stack, workItem{node: childIdx, first: offset, count: count, depth: item.depth + 1})
		offset += count
	}

	return stack
}

func tightBounds(t *Tree, first, count int, padding float64) shapes.AABB {
	boxes := make([]shapes.AABB, count)
	for i := 0; i < count; i++ {
		boxes[i] = t.elementAABB[t.indices[first+i]]
	}
	b := shapes.Union(boxes)
	if padding > 0 {
		pad := shapes.Vec3{X: padding, Y: padding, Z: padding}
		b.Min = b.Min.Sub(pad)
		b.Max = b.Max.Add(pad)
	}
	return b
}

// splitPoint computes the node's split point per policy.SplitPoint, then
// clamps it away from the node AABB's own boundary on each axis so no
// element can lie exactly on a split plane.
func splitPoint(t *Tree, item workItem, policy SplitPolicy) shapes.Vec3 {
	box := t.nodes[item.node].AABB
	var sp shapes.Vec3
	switch policy.SplitPoint {
	case SplitMean:
		sp = meanCenter(t, item)
	case SplitMedian:
		sp = medianCenter(t, item)
	default:
		sp = box.Center()
	}

	clampAxis := func(v, lo, hi float64) float64 {
		span := hi - lo
		eps := math.Max(policy.Epsilon, span*1e-6)
		if hi-lo <= 2*eps {
			return (lo + hi) / 2
		}
		if v < lo+eps {
			v = lo + eps
		}
		if v > hi-eps {
			v = hi - eps
		}
		return v
	}
	sp.X = clampAxis(sp.X, box.Min.X, box.Max.X)
	sp.Y = clampAxis(sp.Y, box.Min.Y, box.Max.Y)
	sp.Z = clampAxis(sp.Z, box.Min.Z, box.Max.Z)
	return sp
}

func meanCenter(t *Tree, item workItem) shapes.Vec3 {
	var sum shapes.Vec3
	for i := 0; i < item.count; i++ {
		sum = sum.Add(t.elementAABB[t.indices[item.first+i]].Center())
	}
	return sum.Scale(1.0 / float64(item.count))
}

func medianCenter(t *Tree, item workItem) shapes.Vec3 {
	xs := make([]float64, item.count)
	ys := make([]float64, item.count)
	zs := make([]float64, item.count)
	for i := 0; i < item.count; i++ {
		c := t.elementAABB[t.indices[item.first+i]].Center()
		xs[i], ys[i], zs[i] = c.X, c.Y, c.Z
	}
	return shapes.Vec3{X: medianOf(xs), Y: medianOf(ys), Z: medianOf(zs)}
}

func medianOf(v []float64) float64 {
	sorted := append([]float64(nil), v...)
	insertionSortFloat(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}

// insertionSortFloat sorts small slices deterministically; node fan-out is
// bounded by maxPerNode so this never runs on large inputs.
func insertionSortFloat(v []float64) {
	for i := 1; i < len(v); i++ {
		x := v[i]
		j := i - 1
		for j >= 0 && v[j] > x {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = x
	}
}

// octantAABBs returns the 8 fixed octant boxes of parent split at sp.
func octantAABBs(parent shapes.AABB, sp shapes.Vec3) [8]shapes.AABB {
	var out [8]shapes.AABB
	for o := 0; o < 8; o++ {
		min, max := parent.Min, parent.Max
		if o&1 != 0 {
			min.X = sp.X
		} else {
			max.X = sp.X
		}
		if o&2 != 0 {
			min.Y = sp.Y
		} else {
			max.Y = sp.Y
		}
		if o&4 != 0 {
			min.Z = sp.Z
		} else {
			max.Z = sp.Z
		}
		out[o] = shapes.AABB{Min: min, Max: max}
	}
	return out
}

func pointOctant(p, sp shapes.Vec3) int {
	code := 0
	if p.X >= sp.X {
		code |= 1
	}
	if p.Y >= sp.Y {
		code |= 2
	}
	if p.Z >= sp.Z {
		code |= 4
	}
	return code
}

// partitionRange stably partitions indices[first:first+count] into a
// straddler run followed by per-octant runs (in octant order), returning
// the per-octant element counts and the straddler count. -1 marks a
// straddler in the intermediate classification.
func partitionRange(t *Tree, item workItem, octantBoxes [8]shapes.AABB, policy SplitPolicy) (groups [8]int, straddlerCount int) {
	sp := octantCenterFromBoxes(octantBoxes)
	classes := make([]int, item.count)
	for i := 0; i < item.count; i++ {
		e := t.indices[item.first+i]
		box := t.elementAABB[e]
		class := -1
		switch {
		case box.IsPoint():
			class = pointOctant(box.Min, sp)
		default:
			for o := 0; o < 8; o++ {
				if octantBoxes[o].Contains(box) {
					class = o
					break
				}
			}
			if class < 0 && policy.TightChildren {
				class = pointOctant(box.Center(), sp)
			}
		}
		classes[i] = class
		if class == -1 {
			straddlerCount++
		} else {
			groups[class]++
		}
	}

	// prefix offsets: straddlers first, then octants 0..7.
	offsets := [9]int{}
	offsets[0] = 0
	run := straddlerCount
	for o := 0; o < 8; o++ {
		offsets[o+1] = run
		run += groups[o]
	}
	cursor := offsets
	out := make([]uint32, item.count)
	straddlerCursor := 0
	for i := 0; i < item.count; i++ {
		e := t.indices[item.first+i]
		class := classes[i]
		if class == -1 {
			out[straddlerCursor] = e
			straddlerCursor++
			continue
		}
		out[cursor[class+1]] = e
		cursor[class+1]++
	}
	copy(t.indices[item.first:item.first+item.count], out)
	return groups, straddlerCount
}

func octantCenterFromBoxes(boxes [8]shapes.AABB) shapes.Vec3 {
	// octant 0 is (-,-,-) and octant 7 is (+,+,+); their shared corner is
	// the split point.
	return shapes.Vec3{X: boxes[0].Max.X, Y: boxes[0].Max.Y, Z: boxes[0].Max.Z}
}
