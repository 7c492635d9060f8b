package mesh

// GarbageCollection compacts every registry in-place, discarding
// tombstoned rows and rewriting every connectivity field to the new
// indices, per spec.md §4.2.6.
func (m *Mesh) GarbageCollection() {
	if !m.hasGarbage {
		return
	}

	nv := m.props.Vertices.Size()
	ne := m.props.Edges.Size()
	nf := m.props.Faces.Size()

	vNew := make([]uint32, nv)
	eNew := make([]uint32, ne)
	fNew := make([]uint32, nf)
	for i := range vNew {
		vNew[i] = uint32(i)
	}
	for i := range eNew {
		eNew[i] = uint32(i)
	}
	for i := range fNew {
		fNew[i] = uint32(i)
	}

	// Vertices: two-pointer sweep, deleted rows to the tail.
	liveV := nv
	for i := 0; i < liveV; {
		if m.vDeleted.Get(i) {
			liveV--
			m.props.Vertices.Swap(i, liveV)
			vNew[i], vNew[liveV] = vNew[liveV], vNew[i]
			continue
		}
		i++
	}

	// Faces.
	liveF := nf
	for i := 0; i < liveF; {
		if m.fDeleted.Get(i) {
			liveF--
			m.props.Faces.Swap(i, liveF)
			fNew[i], fNew[liveF] = fNew[liveF], fNew[i]
			continue
		}
		i++
	}

	// Edges: swap the edge row and both of its halfedge rows in lockstep.
	liveE := ne
	for i := 0; i < liveE; {
		if m.eDeleted.Get(i) {
			liveE--
			m.props.Edges.Swap(i, liveE)
			eNew[i], eNew[liveE] = eNew[liveE], eNew[i]
			m.props.Halfedges.Swap(2*i, 2*liveE)
			m.props.Halfedges.Swap(2*i+1, 2*liveE+1)
			continue
		}
		i++
	}

	m.refreshBuiltinViews()

	// vNew/eNew/fNew currently hold, at row i, the *old* index now sitting
	// there (the transient column underwent the same swaps as the data).
	// Invert them in place to get old-index -> new-row maps.
	vNew = invertPermutation(vNew, liveV)
	eNew = invertPermutation(eNew, liveE)
	fNew = invertPermutation(fNew, liveF)

	// Rewrite connectivity fields using the old->new index maps.
	for i := 0; i < liveV; i++ {
		old := m.vConn.Get(i)
		if old != invalid {
			m.vConn.Set(i, remapHalfedge(old, eNew))
		}
	}
	for i := 0; i < 2*liveE; i++ {
		c := m.hConn.Get(i)
		if c.ToVertex != invalid {
			c.ToVertex = vNew[c.ToVertex]
		}
		if c.Next != invalid {
			c.Next = remapHalfedge(c.Next, eNew)
		}
		if c.Prev != invalid {
			c.Prev = remapHalfedge(c.Prev, eNew)
		}
		if c.Face != invalid {
			c.Face = fNew[c.Face]
		}
		m.hConn.Set(i, c)
	}
	for i := 0; i < liveF; i++ {
		old := m.fConn.Get(i)
		if old != invalid {
			m.fConn.Set(i, remapHalfedge(old, eNew))
		}
	}

	m.props.Vertices.TruncateTo(liveV)
	m.props.Edges.TruncateTo(liveE)
	m.props.Halfedges.TruncateTo(2 * liveE)
	m.props.Faces.TruncateTo(liveF)
	m.FreeMemory()
	m.refreshBuiltinViews()

	m.hasGarbage = false
}

// remapHalfedge rewrites a halfedge index h under the edge permutation
// eNew, preserving the edge = h>>1 relation: the halfedge's parity bit
// is combined with its edge's new index.
func remapHalfedge(h uint32, eNew []uint32) uint32 {
	parity := h & 1
	oldEdge := h >> 1
	return eNew[oldEdge]*2 + parity
}

// invertPermutation turns oldAt (row i holds the old index now living at
// row i, for the live prefix [0,live)) into newOf (old index -> new row).
func invertPermutation(oldAt []uint32, live int) []uint32 {
	newOf := make([]uint32, len(oldAt))
	for newIdx := 0; newIdx < live; newIdx++ {
		newOf[oldAt[newIdx]] = uint32(newIdx)
	}
	return newOf
}
