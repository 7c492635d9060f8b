// Package octree implements the loose octree (C3): a spatial index over
// element AABBs with a configurable split policy, straddler/descended
// partitioning, best-first nearest/KNN queries, and depth-first
// range/ray/sphere queries.
package octree

import (
	"errors"

	"github.com/katalvlaran/geomkernel/shapes"
)

// Sentinel errors for octree operations.
var (
	// ErrInvalidInput indicates zero elements, max_per_node < 1, or a negative max_depth.
	ErrInvalidInput = errors.New("octree: invalid input")

	// ErrStructuralCorruption indicates ValidateStructure found a violated invariant.
	ErrStructuralCorruption = errors.New("octree: structural corruption")
)

// Index is the 32-bit handle for a tree node.
type Index = uint32

// InvalidIndex is the reserved "no such node" sentinel.
const InvalidIndex Index = ^uint32(0)

// stackCapacity is the fixed traversal stack size; max_depth is capped at
// 16 in practice (spec.md §9), so 8 octants/level bounds the work list.
const stackCapacity = 128

// SplitPointPolicy selects how a node picks its octant split point.
type SplitPointPolicy int

const (
	// SplitCenter uses the AABB midpoint.
	SplitCenter SplitPointPolicy = iota
	// SplitMean uses the mean of element centers.
	SplitMean
	// SplitMedian uses the per-axis median of element centers.
	SplitMedian
)

// SplitPolicy configures octree subdivision.
type SplitPolicy struct {
	SplitPoint     SplitPointPolicy
	TightChildren  bool
	Epsilon        float64
}

// DefaultSplitPolicy returns the policy used when none is supplied:
// center split, tight children, zero padding epsilon.
func DefaultSplitPolicy() SplitPolicy {
	return SplitPolicy{SplitPoint: SplitCenter, TightChildren: true, Epsilon: 0}
}

// Node is one node of the loose octree.
type Node struct {
	AABB           shapes.AABB
	BaseChildIndex Index
	ChildMask      uint8
	FirstElement   int
	NumElements    int
	NumStraddlers  int
	IsLeaf         bool
}

// HasChild reports whether octant o (0..7) is populated.
func (n Node) HasChild(o int) bool {
	return n.ChildMask&(1<<uint(o)) != 0
}

// childSlot returns the position of octant o among this node's children,
// counting only populated lower octants (0-based).
func (n Node) childSlot(o int) int {
	slot := 0
	for i := 0; i < o; i++ {
		if n.HasChild(i) {
			slot++
		}
	}
	return slot
}

// Tree is a built loose octree, owning the permuted element-index array.
type Tree struct {
	nodes       []Node
	elementAABB []shapes.AABB
	// indices[i] is the original element index stored at permuted slot i.
	indices  []uint32
	maxDepth int
}

// NumNodes reports the number of nodes allocated by Build.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Node returns node i.
func (t *Tree) Node(i Index) Node { return t.nodes[i] }

// ElementAABB returns the original AABB of element index e.
func (t *Tree) ElementAABB(e uint32) shapes.AABB { return t.elementAABB[e] }
