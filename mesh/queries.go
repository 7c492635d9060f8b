package mesh

// Opposite returns h's opposite halfedge, h XOR 1.
func (m *Mesh) Opposite(h HalfedgeHandle) HalfedgeHandle {
	return HalfedgeHandle{h.Index ^ 1}
}

// Edge returns the edge owning halfedge h, h >> 1.
func (m *Mesh) Edge(h HalfedgeHandle) EdgeHandle {
	return EdgeHandle{h.Index >> 1}
}

// Halfedge0 returns the even (canonical) halfedge of edge e.
func (m *Mesh) Halfedge0(e EdgeHandle) HalfedgeHandle {
	return HalfedgeHandle{e.Index * 2}
}

// HalfedgeOf returns halfedge i (0 or 1) of edge e.
func (m *Mesh) HalfedgeOf(e EdgeHandle, i int) HalfedgeHandle {
	return HalfedgeHandle{e.Index*2 + uint32(i&1)}
}

// ToVertex returns the vertex h points to.
func (m *Mesh) ToVertex(h HalfedgeHandle) VertexHandle {
	return VertexHandle{m.hConn.Get(int(h.Index)).ToVertex}
}

// FromVertex returns the vertex h originates from (ToVertex of its opposite).
func (m *Mesh) FromVertex(h HalfedgeHandle) VertexHandle {
	return m.ToVertex(m.Opposite(h))
}

// Next returns the next halfedge in h's loop.
func (m *Mesh) Next(h HalfedgeHandle) HalfedgeHandle {
	return HalfedgeHandle{m.hConn.Get(int(h.Index)).Next}
}

// Prev returns the previous halfedge in h's loop.
func (m *Mesh) Prev(h HalfedgeHandle) HalfedgeHandle {
	return HalfedgeHandle{m.hConn.Get(int(h.Index)).Prev}
}

// Face returns h's incident face, or InvalidFace if h is a boundary halfedge.
func (m *Mesh) Face(h HalfedgeHandle) FaceHandle {
	return FaceHandle{m.hConn.Get(int(h.Index)).Face}
}

// HalfedgeOfVertex returns v's single outgoing halfedge.
func (m *Mesh) HalfedgeOfVertex(v VertexHandle) HalfedgeHandle {
	return HalfedgeHandle{m.vConn.Get(int(v.Index))}
}

// HalfedgeOfFace returns f's single incident halfedge.
func (m *Mesh) HalfedgeOfFace(f FaceHandle) HalfedgeHandle {
	return HalfedgeHandle{m.fConn.Get(int(f.Index))}
}

func (m *Mesh) setToVertex(h HalfedgeHandle, v VertexHandle) {
	c := m.hConn.Get(int(h.Index))
	c.ToVertex = v.Index
	m.hConn.Set(int(h.Index), c)
}

func (m *Mesh) setFace(h HalfedgeHandle, f FaceHandle) {
	c := m.hConn.Get(int(h.Index))
	c.Face = f.Index
	m.hConn.Set(int(h.Index), c)
}

// setNext sets next(a) = b and prev(b) = a, per spec.md §4.2.1 step 6.
func (m *Mesh) setNext(a, b HalfedgeHandle) {
	ca := m.hConn.Get(int(a.Index))
	ca.Next = b.Index
	m.hConn.Set(int(a.Index), ca)
	cb := m.hConn.Get(int(b.Index))
	cb.Prev = a.Index
	m.hConn.Set(int(b.Index), cb)
}

func (m *Mesh) setHalfedgeOfVertex(v VertexHandle, h HalfedgeHandle) {
	m.vConn.Set(int(v.Index), h.Index)
}

func (m *Mesh) setHalfedgeOfFace(f FaceHandle, h HalfedgeHandle) {
	m.fConn.Set(int(f.Index), h.Index)
}

// CwRotated returns the next outgoing halfedge clockwise around the from
// vertex of h: next(opposite(h)).
func (m *Mesh) CwRotated(h HalfedgeHandle) HalfedgeHandle {
	return m.Next(m.Opposite(h))
}

// CcwRotated returns the next outgoing halfedge counter-clockwise around
// the from vertex of h: opposite(prev(h)).
func (m *Mesh) CcwRotated(h HalfedgeHandle) HalfedgeHandle {
	return m.Opposite(m.Prev(h))
}

// safetyCap bounds any vertex-star walk so broken connectivity cannot spin
// forever (spec.md §9); it returns a conservative failure instead.
func (m *Mesh) safetyCap() int { return m.props.Halfedges.Size() + 1 }

// IsVertexDeleted reports whether v is tombstoned.
func (m *Mesh) IsVertexDeleted(v VertexHandle) bool { return m.vDeleted.Get(int(v.Index)) }

// IsEdgeDeleted reports whether e is tombstoned.
func (m *Mesh) IsEdgeDeleted(e EdgeHandle) bool { return m.eDeleted.Get(int(e.Index)) }

// IsFaceDeleted reports whether f is tombstoned.
func (m *Mesh) IsFaceDeleted(f FaceHandle) bool { return m.fDeleted.Get(int(f.Index)) }

// IsIsolated reports whether v has no incident halfedge.
func (m *Mesh) IsIsolated(v VertexHandle) bool {
	return !m.HalfedgeOfVertex(v).Valid()
}

// IsBoundaryHalfedge reports whether h has no incident face.
func (m *Mesh) IsBoundaryHalfedge(h HalfedgeHandle) bool {
	return !m.Face(h).Valid()
}

// IsBoundaryEdge reports whether either halfedge of e is a boundary halfedge.
func (m *Mesh) IsBoundaryEdge(e EdgeHandle) bool {
	return m.IsBoundaryHalfedge(m.HalfedgeOf(e, 0)) || m.IsBoundaryHalfedge(m.HalfedgeOf(e, 1))
}

// IsBoundaryFace always reports false: faces carry no boundary flag of
// their own in this model (only halfedges/edges/vertices do).
func (m *Mesh) IsBoundaryFace(FaceHandle) bool { return false }

// IsBoundaryVertex reports whether v is isolated or has a boundary
// halfedge in its outgoing ring.
func (m *Mesh) IsBoundaryVertex(v VertexHandle) bool {
	if m.IsIsolated(v) {
		return true
	}
	start := m.HalfedgeOfVertex(v)
	h := start
	cap_ := m.safetyCap()
	for i := 0; i < cap_; i++ {
		if m.IsBoundaryHalfedge(h) {
			return true
		}
		h = m.CwRotated(h)
		if h == start {
			return false
		}
	}
	return false
}

// Valence counts v's outgoing halfedges, capped at the halfedge registry
// size to survive broken connectivity (spec.md §4.2).
func (m *Mesh) Valence(v VertexHandle) int {
	if m.IsIsolated(v) {
		return 0
	}
	start := m.HalfedgeOfVertex(v)
	h := start
	count := 0
	cap_ := m.safetyCap()
	for i := 0; i < cap_; i++ {
		count++
		h = m.CwRotated(h)
		if h == start {
			return count
		}
	}
	return count
}

// FaceValence counts the halfedges in f's loop.
func (m *Mesh) FaceValence(f FaceHandle) int {
	start := m.HalfedgeOfFace(f)
	h := start
	count := 0
	cap_ := m.safetyCap()
	for i := 0; i < cap_; i++ {
		count++
		h = m.Next(h)
		if h == start {
			return count
		}
	}
	return count
}

// IsManifold reports whether v's star has at most one boundary "gap":
// at most one boundary halfedge among its outgoing ring.
func (m *Mesh) IsManifold(v VertexHandle) bool {
	if m.IsIsolated(v) {
		return true
	}
	start := m.HalfedgeOfVertex(v)
	h := start
	boundaryCount := 0
	cap_ := m.safetyCap()
	for i := 0; i < cap_; i++ {
		if m.IsBoundaryHalfedge(h) {
			boundaryCount++
			if boundaryCount > 1 {
				return false
			}
		}
		h = m.CwRotated(h)
		if h == start {
			return true
		}
	}
	return false
}

// FindHalfedge walks start's outgoing ring looking for to_vertex == end,
// returning InvalidHalfedge if no such halfedge exists or the registry's
// safety cap is exceeded.
func (m *Mesh) FindHalfedge(start, end VertexHandle) HalfedgeHandle {
	if m.IsIsolated(start) {
		return InvalidHalfedge
	}
	h0 := m.HalfedgeOfVertex(start)
	h := h0
	cap_ := m.safetyCap()
	for i := 0; i < cap_; i++ {
		if m.ToVertex(h) == end {
			return h
		}
		h = m.CwRotated(h)
		if h == h0 {
			return InvalidHalfedge
		}
	}
	return InvalidHalfedge
}

// adjustOutgoingHalfedge promotes a boundary halfedge of v's star to be
// v's outgoing halfedge, if one exists (spec.md §4.2.1 step 7).
func (m *Mesh) adjustOutgoingHalfedge(v VertexHandle) {
	if m.IsIsolated(v) {
		return
	}
	start := m.HalfedgeOfVertex(v)
	h := start
	cap_ := m.safetyCap()
	for i := 0; i < cap_; i++ {
		if m.IsBoundaryHalfedge(h) {
			m.setHalfedgeOfVertex(v, h)
			return
		}
		h = m.CwRotated(h)
		if h == start {
			return
		}
	}
}
