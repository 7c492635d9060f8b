package octree

// ValidateStructure checks the parent/child range invariants of spec.md
// §3: for every internal node, its element range begins with
// num_straddlers straddlers followed in order by its children's disjoint,
// contained ranges summing to the parent's count; leaves carry zero
// straddlers; child_mask's popcount matches the number of populated
// children.
func (t *Tree) ValidateStructure() bool {
	if len(t.nodes) == 0 {
		return true
	}
	return t.validateNode(0)
}

// CheckStructure wraps ValidateStructure as an error-returning check for
// callers that want the failure surfaced through the standard error path
// (e.g. after deserializing or mutating a tree) rather than a bare bool.
func (t *Tree) CheckStructure() error {
	if !t.ValidateStructure() {
		return ErrStructuralCorruption
	}
	return nil
}

func (t *Tree) validateNode(idx Index) bool {
	n := t.nodes[idx]

	if n.IsLeaf {
		return n.NumStraddlers == 0 && n.ChildMask == 0
	}

	if popcount8(n.ChildMask) == 0 {
		return false
	}

	sum := n.NumStraddlers
	expectedNext := n.FirstElement + n.NumStraddlers
	for o := 0; o < 8; o++ {
		if !n.HasChild(o) {
			continue
		}
		childIdx := n.BaseChildIndex + Index(n.childSlot(o))
		child := t.nodes[childIdx]

		if child.FirstElement != expectedNext {
			return false
		}
		if child.FirstElement < n.FirstElement || child.FirstElement+child.NumElements > n.FirstElement+n.NumElements {
			return false
		}
		if !n.AABB.Contains(child.AABB) && !child.AABB.Overlaps(n.AABB) {
			return false
		}

		sum += child.NumElements
		expectedNext += child.NumElements

		if !t.validateNode(childIdx) {
			return false
		}
	}

	return sum == n.NumElements
}

func popcount8(m uint8) int {
	count := 0
	for m != 0 {
		count += int(m & 1)
		m >>= 1
	}
	return count
}
