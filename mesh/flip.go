package mesh

// IsFlipOk reports whether e may be flipped: interior, both incident
// faces triangles, both endpoints valence >= 4, and edge (vc,vd) absent.
func (m *Mesh) IsFlipOk(e EdgeHandle) bool {
	if !e.Valid() || m.IsEdgeDeleted(e) {
		return false
	}
	h0 := m.HalfedgeOf(e, 0)
	h1 := m.HalfedgeOf(e, 1)
	f0 := m.Face(h0)
	f1 := m.Face(h1)
	if !f0.Valid() || !f1.Valid() {
		return false
	}
	if m.FaceValence(f0) != 3 || m.FaceValence(f1) != 3 {
		return false
	}
	va := m.FromVertex(h0)
	vb := m.ToVertex(h0)
	if m.Valence(va) < 4 || m.Valence(vb) < 4 {
		return false
	}
	vc := m.ToVertex(m.Next(h0))
	vd := m.ToVertex(m.Next(h1))
	if m.FindHalfedge(vc, vd).Valid() || m.FindHalfedge(vd, vc).Valid() {
		return false
	}
	return true
}

// Flip replaces edge e=(va,vb) with (vc,vd), the diagonal of the
// quadrilateral formed by e's two incident triangles, per spec.md §4.2.4.
func (m *Mesh) Flip(e EdgeHandle) bool {
	if !m.IsFlipOk(e) {
		return false
	}

	h0 := m.HalfedgeOf(e, 0)
	h1 := m.HalfedgeOf(e, 1)
	f0 := m.Face(h0)
	f1 := m.Face(h1)

	h0n := m.Next(h0)
	h0p := m.Prev(h0)
	h1n := m.Next(h1)
	h1p := m.Prev(h1)

	va := m.FromVertex(h0)
	vb := m.ToVertex(h0)
	vc := m.ToVertex(h0n)
	vd := m.ToVertex(h1n)

	m.setToVertex(h0, vd)
	m.setToVertex(h1, vc)

	m.setNext(h0, h1p)
	m.setNext(h1p, h0n)
	m.setNext(h0n, h0)

	m.setNext(h1, h0p)
	m.setNext(h0p, h1n)
	m.setNext(h1n, h1)

	for _, h := range []HalfedgeHandle{h0, h1p, h0n} {
		m.setFace(h, f0)
	}
	for _, h := range []HalfedgeHandle{h1, h0p, h1n} {
		m.setFace(h, f1)
	}
	m.setHalfedgeOfFace(f0, h0)
	m.setHalfedgeOfFace(f1, h1)

	if m.HalfedgeOfVertex(va) == h0 {
		m.setHalfedgeOfVertex(va, h1n)
	}
	if m.HalfedgeOfVertex(vb) == h1 {
		m.setHalfedgeOfVertex(vb, h0n)
	}

	m.adjustOutgoingHalfedge(va)
	m.adjustOutgoingHalfedge(vb)
	m.adjustOutgoingHalfedge(vc)
	m.adjustOutgoingHalfedge(vd)

	return true
}
