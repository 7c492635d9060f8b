package mesh

// DeleteFace walks f's cycle, clears each halfedge's face reference, and
// removes any edge left fully boundary on both sides, splicing the
// surrounding boundary loop back together (spec.md §4.2.2). Returns
// ErrInvalidHandle for an invalid or already-deleted face, or
// ErrStructuralCorruption (without mutating the mesh) if the face cycle
// walk exceeds its safety cap without closing.
func (m *Mesh) DeleteFace(f FaceHandle) error {
	if !f.Valid() || m.IsFaceDeleted(f) {
		return ErrInvalidHandle
	}

	start := m.HalfedgeOfFace(f)
	h := start
	var loop []HalfedgeHandle
	cap_ := m.safetyCap()
	closed := false
	for i := 0; i < cap_; i++ {
		loop = append(loop, h)
		h = m.Next(h)
		if h == start {
			closed = true
			break
		}
	}
	if !closed {
		return ErrStructuralCorruption
	}

	seenVerts := map[uint32]VertexHandle{}
	var removableEdges []EdgeHandle

	for _, he := range loop {
		m.setFace(he, InvalidFace)
		op := m.Opposite(he)
		if m.IsBoundaryHalfedge(op) {
			removableEdges = append(removableEdges, m.Edge(he))
		}
		v := m.ToVertex(he)
		seenVerts[v.Index] = v
		fv := m.FromVertex(he)
		seenVerts[fv.Index] = fv
	}

	for _, e := range removableEdges {
		m.spliceOutBoundaryEdge(e)
	}

	for _, v := range seenVerts {
		if !m.IsVertexDeleted(v) {
			m.adjustOutgoingHalfedge(v)
		}
	}

	m.fDeleted.Set(int(f.Index), true)
	m.hasGarbage = true
	return nil
}

// spliceOutBoundaryEdge removes an edge both of whose halfedges are now
// boundary, joining its neighbors' next/prev pointers and marking it
// deleted.
func (m *Mesh) spliceOutBoundaryEdge(e EdgeHandle) {
	if m.IsEdgeDeleted(e) {
		return
	}
	h0 := m.HalfedgeOf(e, 0)
	h1 := m.HalfedgeOf(e, 1)
	if !m.IsBoundaryHalfedge(h0) || !m.IsBoundaryHalfedge(h1) {
		return
	}

	vFrom := m.FromVertex(h0)
	vTo := m.ToVertex(h0)

	prev0 := m.Prev(h0)
	next0 := m.Next(h0)
	prev1 := m.Prev(h1)
	next1 := m.Next(h1)

	if prev0 != h1 {
		m.setNext(prev0, next1)
	}
	if prev1 != h0 {
		m.setNext(prev1, next0)
	}

	if m.HalfedgeOfVertex(vFrom) == h0 || m.HalfedgeOfVertex(vFrom) == h1 {
		if next1 != h0 {
			m.setHalfedgeOfVertex(vFrom, next1)
		} else {
			m.setHalfedgeOfVertex(vFrom, HalfedgeHandle{invalid})
		}
	}
	if m.HalfedgeOfVertex(vTo) == h0 || m.HalfedgeOfVertex(vTo) == h1 {
		if next0 != h1 {
			m.setHalfedgeOfVertex(vTo, next0)
		} else {
			m.setHalfedgeOfVertex(vTo, HalfedgeHandle{invalid})
		}
	}

	m.eDeleted.Set(int(e.Index), true)
}

// DeleteEdge deletes both of e's incident faces (if present); the edge
// itself falls out through the per-face splice logic in DeleteFace, or
// is spliced directly if it was already boundary on one side. Returns
// ErrInvalidHandle for an invalid or already-deleted edge.
func (m *Mesh) DeleteEdge(e EdgeHandle) error {
	if !e.Valid() || m.IsEdgeDeleted(e) {
		return ErrInvalidHandle
	}
	h0 := m.HalfedgeOf(e, 0)
	h1 := m.HalfedgeOf(e, 1)

	f0 := m.Face(h0)
	f1 := m.Face(h1)
	if f0.Valid() {
		if err := m.DeleteFace(f0); err != nil {
			return err
		}
	}
	if f1.Valid() {
		if err := m.DeleteFace(f1); err != nil {
			return err
		}
	}
	if !m.IsEdgeDeleted(e) {
		m.spliceOutBoundaryEdge(e)
	}
	return nil
}

// DeleteVertex collects v's incident faces first (connectivity mutates
// under DeleteFace), deletes them, then marks v deleted. Returns
// ErrInvalidHandle for an invalid or already-deleted vertex, or
// ErrStructuralCorruption (without mutating the mesh) if the vertex star
// walk exceeds its safety cap without closing.
func (m *Mesh) DeleteVertex(v VertexHandle) error {
	if !v.Valid() || m.IsVertexDeleted(v) {
		return ErrInvalidHandle
	}

	var incidentFaces []FaceHandle
	if !m.IsIsolated(v) {
		start := m.HalfedgeOfVertex(v)
		h := start
		cap_ := m.safetyCap()
		closed := false
		for i := 0; i < cap_; i++ {
			f := m.Face(h)
			if f.Valid() {
				incidentFaces = append(incidentFaces, f)
			}
			h = m.CwRotated(h)
			if h == start {
				closed = true
				break
			}
		}
		if !closed {
			return ErrStructuralCorruption
		}
	}

	for _, f := range incidentFaces {
		if !m.IsFaceDeleted(f) {
			if err := m.DeleteFace(f); err != nil {
				return err
			}
		}
	}

	m.vDeleted.Set(int(v.Index), true)
	m.hasGarbage = true
	return nil
}
