package mesh

// Split inserts a midpoint vm into edge e = (va, vb) at pos, subdividing
// each incident triangle into two, per spec.md §4.2.5. Returns
// InvalidVertex and ErrInvalidHandle for an invalid or already-deleted
// edge.
func (m *Mesh) Split(e EdgeHandle, pos Vec3) (VertexHandle, error) {
	if !e.Valid() || m.IsEdgeDeleted(e) {
		return InvalidVertex, ErrInvalidHandle
	}

	h0 := m.HalfedgeOf(e, 0) // va -> vb
	h1 := m.HalfedgeOf(e, 1) // vb -> va

	va := m.FromVertex(h0)
	vb := m.ToVertex(h0)

	f0 := m.Face(h0)
	f1 := m.Face(h1)

	h0n := m.Next(h0)
	h0p := m.Prev(h0)
	var vc VertexHandle
	if f0.Valid() {
		vc = m.ToVertex(h0n)
	}
	h1n := m.Next(h1)
	h1p := m.Prev(h1)
	var vd VertexHandle
	if f1.Valid() {
		vd = m.ToVertex(h1n)
	}

	oldVbOutgoing := HalfedgeHandle{}
	if !m.IsIsolated(vb) {
		oldVbOutgoing = m.HalfedgeOfVertex(vb)
	}

	vm := m.AddVertex(pos)
	m.setToVertex(h0, vm)

	_, hNew, hNewOpp := m.newEdge(vm, vb)
	if !hNew.Valid() {
		return InvalidVertex, ErrStructuralCorruption
	}
	if oldVbOutgoing == h1 {
		m.setHalfedgeOfVertex(vb, hNewOpp)
	}
	m.setHalfedgeOfVertex(vm, hNew)

	if f0.Valid() {
		_, hSplit0, hSplit0Opp := m.newEdge(vm, vc)
		fi, err := m.props.Faces.PushBack()
		if err != nil {
			return InvalidVertex, err
		}
		m.refreshBuiltinViews()
		f2 := FaceHandle{uint32(fi)}

		// f0 becomes (va, vm, vc): h0, hSplit0, h0p
		m.setNext(h0, hSplit0)
		m.setNext(hSplit0, h0p)
		m.setNext(h0p, h0)
		m.setFace(h0, f0)
		m.setFace(hSplit0, f0)
		m.setFace(h0p, f0)
		m.setHalfedgeOfFace(f0, h0)

		// f2 is the new triangle (vm, vb, vc): hNew, h0n, hSplit0Opp
		m.setNext(hNew, h0n)
		m.setNext(h0n, hSplit0Opp)
		m.setNext(hSplit0Opp, hNew)
		m.setFace(hNew, f2)
		m.setFace(h0n, f2)
		m.setFace(hSplit0Opp, f2)
		m.setHalfedgeOfFace(f2, hNew)
	} else {
		m.setNext(h0, hNew)
		m.setNext(hNew, h0n)
	}

	if f1.Valid() {
		_, hSplit1, hSplit1Opp := m.newEdge(vm, vd)
		fi, err := m.props.Faces.PushBack()
		if err != nil {
			return InvalidVertex, err
		}
		m.refreshBuiltinViews()
		f3 := FaceHandle{uint32(fi)}

		// f1 becomes (vm, va, vd): h1, h1n, hSplit1Opp
		m.setNext(h1, h1n)
		m.setNext(h1n, hSplit1Opp)
		m.setNext(hSplit1Opp, h1)
		m.setFace(h1, f1)
		m.setFace(h1n, f1)
		m.setFace(hSplit1Opp, f1)
		m.setHalfedgeOfFace(f1, h1)

		// f3 is the new triangle (vb, vm, vd): hNewOpp, hSplit1, h1p
		m.setNext(hNewOpp, hSplit1)
		m.setNext(hSplit1, h1p)
		m.setNext(h1p, hNewOpp)
		m.setFace(hNewOpp, f3)
		m.setFace(hSplit1, f3)
		m.setFace(h1p, f3)
		m.setHalfedgeOfFace(f3, hNewOpp)
	} else {
		m.setNext(h1p, hNewOpp)
		m.setNext(hNewOpp, h1)
	}

	m.adjustOutgoingHalfedge(va)
	m.adjustOutgoingHalfedge(vb)
	m.adjustOutgoingHalfedge(vm)
	if vc.Valid() {
		m.adjustOutgoingHalfedge(vc)
	}
	if vd.Valid() {
		m.adjustOutgoingHalfedge(vd)
	}

	return vm, nil
}
