package mesh

// AddTriangle is a 3-vertex specialization of AddFace.
func (m *Mesh) AddTriangle(v0, v1, v2 VertexHandle) (FaceHandle, error) {
	return m.AddFace([]VertexHandle{v0, v1, v2})
}

// AddQuad is a 4-vertex specialization of AddFace.
func (m *Mesh) AddQuad(v0, v1, v2, v3 VertexHandle) (FaceHandle, error) {
	return m.AddFace([]VertexHandle{v0, v1, v2, v3})
}

// AddFace inserts a polygon spanning vertices (in order), reusing any
// existing boundary edges between consecutive vertices, per spec.md
// §4.2.1. It returns InvalidFace and ErrNonManifold (without mutating the
// mesh) if the boundary precondition fails, or ErrStructuralCorruption if
// the outward boundary rotation in step 2 exceeds its safety cap.
func (m *Mesh) AddFace(vertices []VertexHandle) (FaceHandle, error) {
	n := len(vertices)
	if n < 3 {
		return InvalidFace, ErrNonManifold
	}

	halfedges := make([]HalfedgeHandle, n)
	isNew := make([]bool, n)
	needsAdjust := make([]bool, n)

	// Step 1: boundary precondition.
	for i := 0; i < n; i++ {
		v := vertices[i]
		if !m.IsIsolated(v) && !m.IsBoundaryVertex(v) {
			return InvalidFace, ErrNonManifold
		}
		vn := vertices[(i+1)%n]
		h := m.FindHalfedge(v, vn)
		if h.Valid() {
			if !m.IsBoundaryHalfedge(h) {
				return InvalidFace, ErrNonManifold
			}
			halfedges[i] = h
			isNew[i] = false
		} else {
			isNew[i] = true
		}
	}

	// Step 2: existing-edge patch. For each consecutive pair of existing
	// halfedges whose next-pointer doesn't already connect them, splice
	// the outer boundary loop so the interior cycle can close.
	type splice struct{ a, b HalfedgeHandle }
	var nextCache []splice

	for i := 0; i < n; i++ {
		if isNew[i] || isNew[(i+1)%n] {
			continue
		}
		innerPrev := halfedges[i]
		innerNext := halfedges[(i+1)%n]
		if m.Next(innerPrev) == innerNext {
			continue
		}
		boundaryPrev := m.Opposite(innerNext)
		cap_ := m.safetyCap()
		found := false
		for k := 0; k < cap_; k++ {
			boundaryPrev = m.Opposite(m.Next(boundaryPrev))
			if m.IsBoundaryHalfedge(boundaryPrev) && boundaryPrev != innerPrev {
				found = true
				break
			}
		}
		if !found {
			return InvalidFace, ErrStructuralCorruption
		}
		if boundaryPrev == innerPrev {
			return InvalidFace, ErrNonManifold
		}
		boundaryNext := m.Next(boundaryPrev)
		nextCache = append(nextCache,
			splice{boundaryPrev, m.Next(innerPrev)},
			splice{m.Prev(innerNext), boundaryNext},
			splice{innerPrev, innerNext},
		)
	}

	// Step 3: create missing halfedges.
	for i := 0; i < n; i++ {
		if !isNew[i] {
			continue
		}
		v := vertices[i]
		vn := vertices[(i+1)%n]
		_, h0, _ := m.newEdge(v, vn)
		if !h0.Valid() {
			return InvalidFace, ErrStructuralCorruption
		}
		halfedges[i] = h0
	}

	// Step 4: create the face.
	fi, err := m.props.Faces.PushBack()
	if err != nil {
		return InvalidFace, err
	}
	m.refreshBuiltinViews()
	f := FaceHandle{uint32(fi)}
	m.setHalfedgeOfFace(f, halfedges[n-1])

	// Step 5: wire interior and schedule outer splices.
	for i := 0; i < n; i++ {
		ip1 := (i + 1) % n
		inner := isNew[i]
		innerNext := isNew[ip1]
		id := 0
		if inner {
			id |= 1
		}
		if innerNext {
			id |= 2
		}
		h := halfedges[i]
		hn := halfedges[ip1]

		switch id {
		case 0: // both existing: only the face assignment below
			needsAdjust[ip1] = m.HalfedgeOfVertex(vertices[ip1]) == hn
		case 1: // this edge new, next existing
			op := m.Opposite(h)
			nextCache = append(nextCache, splice{m.Prev(hn), op})
			m.setHalfedgeOfVertex(vertices[ip1], op)
			nextCache = append(nextCache, splice{h, hn})
		case 2: // this edge existing, next new
			opn := m.Opposite(hn)
			boundaryNext := m.Next(h)
			nextCache = append(nextCache, splice{opn, boundaryNext})
			m.setHalfedgeOfVertex(vertices[ip1], boundaryNext)
			nextCache = append(nextCache, splice{h, hn})
		case 3: // both new
			if !m.IsIsolated(vertices[ip1]) {
				boundaryNext := m.HalfedgeOfVertex(vertices[ip1])
				op := m.Opposite(h)
				nextCache = append(nextCache, splice{m.Prev(boundaryNext), op})
				nextCache = append(nextCache, splice{m.Opposite(hn), boundaryNext})
			} else {
				needsAdjust[ip1] = true
				m.setHalfedgeOfVertex(vertices[ip1], m.Opposite(h))
				nextCache = append(nextCache, splice{m.Opposite(hn), m.Opposite(h)})
			}
			nextCache = append(nextCache, splice{h, hn})
		}
		m.setFace(h, f)
	}

	// Step 6: apply next-cache.
	for _, s := range nextCache {
		m.setNext(s.a, s.b)
	}

	// Step 7: adjust vertex outgoing halfedges.
	for i := 0; i < n; i++ {
		if needsAdjust[i] {
			m.adjustOutgoingHalfedge(vertices[i])
		}
	}

	return f, nil
}
