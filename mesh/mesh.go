package mesh

import "github.com/katalvlaran/geomkernel/property"

// Mesh is the property-backed halfedge surface: four parallel registries
// (vertices, halfedges, edges, faces) carrying the built-in connectivity
// properties of spec.md §3, plus whatever extra named properties a
// caller layers on with property.GetOrAdd.
type Mesh struct {
	props *property.PropertySet

	point      property.Property[Vec3]
	vConn      property.Property[uint32] // v:connectivity — one outgoing halfedge
	vDeleted   property.Property[bool]
	hConn      property.Property[halfedgeConnectivity]
	fConn      property.Property[uint32] // f:connectivity — one incident halfedge
	fDeleted   property.Property[bool]
	eDeleted   property.Property[bool]
	hasGarbage bool
}

// New returns an empty mesh.
func New() *Mesh {
	m := &Mesh{props: property.NewSet()}
	m.bindBuiltins()
	return m
}

func (m *Mesh) bindBuiltins() {
	m.point = property.GetOrAdd(m.props.Vertices, "v:point", Vec3{})
	m.vConn = property.GetOrAdd(m.props.Vertices, "v:connectivity", invalid)
	m.vDeleted = property.GetOrAdd(m.props.Vertices, "v:deleted", false)
	m.hConn = property.GetOrAdd(m.props.Halfedges, "h:connectivity", halfedgeConnectivity{
		ToVertex: invalid, Face: invalid, Next: invalid, Prev: invalid,
	})
	m.fConn = property.GetOrAdd(m.props.Faces, "f:connectivity", invalid)
	m.fDeleted = property.GetOrAdd(m.props.Faces, "f:deleted", false)
	m.eDeleted = property.GetOrAdd(m.props.Edges, "e:deleted", false)
}

// Clear empties the mesh back to zero vertices/halfedges/edges/faces.
func (m *Mesh) Clear() {
	m.props = property.NewSet()
	m.bindBuiltins()
	m.hasGarbage = false
}

// Reserve grows the backing registries to at least v, e, f rows (2e
// halfedges). The added rows are real default-valued rows: they count in
// VertexCount, EdgeCount, FaceCount and HalfedgeCount, and later
// AddVertex/AddFace calls append after them.
func (m *Mesh) Reserve(v, e, f int) {
	_ = m.props.Vertices.Resize(v)
	_ = m.props.Halfedges.Resize(2 * e)
	_ = m.props.Edges.Resize(e)
	_ = m.props.Faces.Resize(f)
}

// FreeMemory trims every registry's backing storage to its live size.
func (m *Mesh) FreeMemory() {
	m.props.Vertices.ShrinkToFit()
	m.props.Halfedges.ShrinkToFit()
	m.props.Edges.ShrinkToFit()
	m.props.Faces.ShrinkToFit()
}

// HasGarbage reports whether any tombstoned row is pending compaction.
func (m *Mesh) HasGarbage() bool { return m.hasGarbage }

// VertexCount, EdgeCount, FaceCount, HalfedgeCount report registry sizes,
// including tombstoned rows not yet compacted by GarbageCollection.
func (m *Mesh) VertexCount() int   { return m.props.Vertices.Size() }
func (m *Mesh) EdgeCount() int     { return m.props.Edges.Size() }
func (m *Mesh) FaceCount() int     { return m.props.Faces.Size() }
func (m *Mesh) HalfedgeCount() int { return m.props.Halfedges.Size() }

// AddVertex appends one vertex, optionally at pos (the zero vector if
// omitted), and returns its handle.
func (m *Mesh) AddVertex(pos ...Vec3) VertexHandle {
	i, err := m.props.Vertices.PushBack()
	if err != nil {
		return InvalidVertex
	}
	m.refreshBuiltinViews()
	if len(pos) > 0 {
		m.point.Set(i, pos[0])
	}
	m.vConn.Set(i, invalid)
	return VertexHandle{uint32(i)}
}

// refreshBuiltinViews re-fetches the built-in property views after a
// structural mutation that may have reallocated a column's backing slice
// (spec.md §5's borrow-discipline strategy (a)).
func (m *Mesh) refreshBuiltinViews() {
	m.point = property.GetOrAdd(m.props.Vertices, "v:point", Vec3{})
	m.vConn = property.GetOrAdd(m.props.Vertices, "v:connectivity", invalid)
	m.vDeleted = property.GetOrAdd(m.props.Vertices, "v:deleted", false)
	m.hConn = property.GetOrAdd(m.props.Halfedges, "h:connectivity", halfedgeConnectivity{
		ToVertex: invalid, Face: invalid, Next: invalid, Prev: invalid,
	})
	m.fConn = property.GetOrAdd(m.props.Faces, "f:connectivity", invalid)
	m.fDeleted = property.GetOrAdd(m.props.Faces, "f:deleted", false)
	m.eDeleted = property.GetOrAdd(m.props.Edges, "e:deleted", false)
}

// Position reads v's position.
func (m *Mesh) Position(v VertexHandle) Vec3 { return m.point.Get(int(v.Index)) }

// SetPosition writes v's position.
func (m *Mesh) SetPosition(v VertexHandle, pos Vec3) { m.point.Set(int(v.Index), pos) }

// Positions returns the live backing slice of all vertex positions,
// indexed by VertexHandle.Index. Borrowed: invalidated by the next
// structural mutation.
func (m *Mesh) Positions() []Vec3 { return m.point.Data() }

// Properties exposes the underlying registries for callers that need
// get_or_add_<kind>_property style access beyond the built-ins.
func (m *Mesh) Properties() *property.PropertySet { return m.props }

func (m *Mesh) newEdge(from, to VertexHandle) (EdgeHandle, HalfedgeHandle, HalfedgeHandle) {
	h0i, err := m.props.Halfedges.PushBack()
	if err != nil {
		return InvalidEdge, InvalidHalfedge, InvalidHalfedge
	}
	h1i, err := m.props.Halfedges.PushBack()
	if err != nil {
		return InvalidEdge, InvalidHalfedge, InvalidHalfedge
	}
	ei, err := m.props.Edges.PushBack()
	if err != nil {
		return InvalidEdge, InvalidHalfedge, InvalidHalfedge
	}
	m.refreshBuiltinViews()

	h0 := HalfedgeHandle{uint32(h0i)}
	h1 := HalfedgeHandle{uint32(h1i)}
	m.setToVertex(h0, to)
	m.setToVertex(h1, from)
	m.setFace(h0, InvalidFace)
	m.setFace(h1, InvalidFace)
	return EdgeHandle{uint32(ei)}, h0, h1
}
