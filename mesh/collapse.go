package mesh

// outgoingRing returns v's outgoing halfedges, safety-capped.
func (m *Mesh) outgoingRing(v VertexHandle) []HalfedgeHandle {
	if m.IsIsolated(v) {
		return nil
	}
	start := m.HalfedgeOfVertex(v)
	h := start
	var ring []HalfedgeHandle
	cap_ := m.safetyCap()
	for i := 0; i < cap_; i++ {
		ring = append(ring, h)
		h = m.CwRotated(h)
		if h == start {
			break
		}
	}
	return ring
}

// link returns the set of vertices adjacent to v (the endpoints of v's
// outgoing halfedges).
func (m *Mesh) link(v VertexHandle) map[uint32]bool {
	s := map[uint32]bool{}
	for _, h := range m.outgoingRing(v) {
		s[m.ToVertex(h).Index] = true
	}
	return s
}

// IsCollapseOk reports whether e satisfies the link-condition preconditions
// of spec.md §4.2.3.
func (m *Mesh) IsCollapseOk(e EdgeHandle) bool {
	if !e.Valid() || m.IsEdgeDeleted(e) {
		return false
	}
	h0 := m.HalfedgeOf(e, 0)
	v0 := m.FromVertex(h0)
	v1 := m.ToVertex(h0)
	if m.IsVertexDeleted(v0) || m.IsVertexDeleted(v1) || m.IsIsolated(v0) || m.IsIsolated(v1) {
		return false
	}

	boundary := m.IsBoundaryEdge(e)
	if !boundary && m.IsBoundaryVertex(v0) && m.IsBoundaryVertex(v1) {
		return false
	}

	l0 := m.link(v0)
	l1 := m.link(v1)
	shared := 0
	for k := range l0 {
		if l1[k] {
			shared++
		}
	}
	if boundary {
		return shared == 1
	}
	return shared == 2
}

// Collapse merges v1 = to(h0) into v0 = from(h0), which survives at
// new_pos, per spec.md §4.2.3. Returns InvalidVertex and ErrNonManifold
// without mutation if IsCollapseOk(e) fails.
func (m *Mesh) Collapse(e EdgeHandle, newPos Vec3) (VertexHandle, error) {
	if !m.IsCollapseOk(e) {
		return InvalidVertex, ErrNonManifold
	}

	h0 := m.HalfedgeOf(e, 0)
	h1 := m.HalfedgeOf(e, 1)
	v0 := m.FromVertex(h0)
	v1 := m.ToVertex(h0)

	f0 := m.Face(h0)
	f1 := m.Face(h1)

	var h0n, h0p, h0nOpp HalfedgeHandle
	var vc VertexHandle
	if f0.Valid() {
		h0n = m.Next(h0)
		h0p = m.Prev(h0)
		h0nOpp = m.Opposite(h0n)
		vc = m.ToVertex(h0n)
	}
	var h1n, h1p, h1pOpp HalfedgeHandle
	var vd VertexHandle
	if f1.Valid() {
		h1n = m.Next(h1)
		h1p = m.Prev(h1)
		h1pOpp = m.Opposite(h1p)
		vd = m.ToVertex(h1n)
	}

	v1Ring := m.outgoingRing(v1)

	for _, h := range v1Ring {
		m.setToVertex(m.Opposite(h), v0)
	}

	var survivingOutgoing HalfedgeHandle

	if f0.Valid() {
		keep := m.Edge(h0p)
		dead := m.Edge(h0n)
		_ = keep
		// h0p now occupies the external chain where h0n_opp was.
		prevOfH0nOpp := m.Prev(h0nOpp)
		nextOfH0nOpp := m.Next(h0nOpp)
		if prevOfH0nOpp != h0n {
			m.setNext(prevOfH0nOpp, h0p)
		}
		m.setNext(h0p, nextOfH0nOpp)
		m.setToVertex(h0p, m.ToVertex(h0nOpp))
		m.setFace(h0p, m.Face(h0nOpp))
		if fo := m.Face(h0nOpp); fo.Valid() && m.HalfedgeOfFace(fo) == h0nOpp {
			m.setHalfedgeOfFace(fo, h0p)
		}
		if vc.Valid() {
			if m.HalfedgeOfVertex(vc) == h0n || m.HalfedgeOfVertex(vc) == h0nOpp {
				m.setHalfedgeOfVertex(vc, h0p)
			}
		}
		m.fDeleted.Set(int(f0.Index), true)
		m.eDeleted.Set(int(dead.Index), true)
		survivingOutgoing = m.Opposite(h0p)
	}

	if f1.Valid() {
		keep := m.Edge(h1n)
		dead := m.Edge(h1p)
		_ = keep
		prevOfH1pOpp := m.Prev(h1pOpp)
		nextOfH1pOpp := m.Next(h1pOpp)
		if nextOfH1pOpp != h1p {
			m.setNext(h1n, nextOfH1pOpp)
		}
		m.setNext(prevOfH1pOpp, h1n)
		m.setToVertex(h1pOpp, m.ToVertex(h1n))
		m.setFace(h1n, m.Face(h1pOpp))
		if fo := m.Face(h1pOpp); fo.Valid() && m.HalfedgeOfFace(fo) == h1pOpp {
			m.setHalfedgeOfFace(fo, h1n)
		}
		if vd.Valid() {
			if m.HalfedgeOfVertex(vd) == h1p || m.HalfedgeOfVertex(vd) == h1pOpp {
				m.setHalfedgeOfVertex(vd, m.Opposite(h1n))
			}
		}
		m.fDeleted.Set(int(f1.Index), true)
		m.eDeleted.Set(int(dead.Index), true)
		if !survivingOutgoing.Valid() {
			survivingOutgoing = h1n
		}
	}

	m.eDeleted.Set(int(e.Index), true)
	m.vDeleted.Set(int(v1.Index), true)
	m.hasGarbage = true

	m.point.Set(int(v0.Index), newPos)

	if !survivingOutgoing.Valid() {
		for _, h := range v1Ring {
			op := m.Opposite(h)
			if !m.IsVertexDeleted(m.ToVertex(op)) && op.Valid() {
				survivingOutgoing = op
				break
			}
		}
	}
	if survivingOutgoing.Valid() {
		m.setHalfedgeOfVertex(v0, survivingOutgoing)
	}

	m.adjustOutgoingHalfedge(v0)
	if vc.Valid() {
		m.adjustOutgoingHalfedge(vc)
	}
	if vd.Valid() {
		m.adjustOutgoingHalfedge(vd)
	}

	return v0, nil
}
