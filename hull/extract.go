package hull

import (
	"github.com/katalvlaran/geomkernel/mesh"
	"github.com/katalvlaran/geomkernel/shapes"
)

// extract renumbers surviving face vertices into a dense index space and
// assembles the final Hull, per spec.md §4.4 step 6.
func extract(points []shapes.Vec3, faces []face) *Hull {
	remap := make(map[int]int)
	var vertices []shapes.Vec3
	var planes []Plane
	var faceVerts [][3]int

	for _, f := range faces {
		if f.deleted {
			continue
		}
		var dense [3]int
		for k, old := range f.verts {
			if newIdx, ok := remap[old]; ok {
				dense[k] = newIdx
			} else {
				newIdx = len(vertices)
				remap[old] = newIdx
				vertices = append(vertices, points[old])
				dense[k] = newIdx
			}
		}
		planes = append(planes, f.plane)
		faceVerts = append(faceVerts, dense)
	}

	hullFaceCount := len(planes)
	hullVertexCount := len(vertices)

	return &Hull{
		Vertices:           vertices,
		Planes:             planes,
		HullVertexCount:    hullVertexCount,
		HullFaceCount:      hullFaceCount,
		HullEdgeCount:      hullVertexCount + hullFaceCount - 2,
		InteriorPointCount: len(points) - hullVertexCount,
		faceVerts:          faceVerts,
	}
}

// BuildMesh constructs a mesh.Mesh triangulating the hull surface, one
// vertex per dense index and one triangle per surviving face. The hull's
// own faces are manifold by construction, so AddTriangle cannot fail here;
// any error indicates a broken invariant upstream and is surfaced rather
// than silently swallowed.
func (h *Hull) BuildMesh() (*mesh.Mesh, error) {
	m := mesh.New()
	handles := make([]mesh.VertexHandle, len(h.Vertices))
	for i, v := range h.Vertices {
		handles[i] = m.AddVertex(v)
	}
	for _, fv := range h.faceVerts {
		if _, err := m.AddTriangle(handles[fv[0]], handles[fv[1]], handles[fv[2]]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// BuildFromMesh extracts m's non-deleted vertex positions and runs Build
// over them, per spec.md §4.4's build_from_mesh contract. Positions()
// returns the raw backing slice, which may still carry tombstoned rows
// GarbageCollection hasn't swept yet, so deleted vertices are filtered
// out here rather than relying on a prior GC pass.
func BuildFromMesh(m *mesh.Mesh, opts ...Option) (*Hull, error) {
	positions := m.Positions()
	live := make([]shapes.Vec3, 0, len(positions))
	for i, p := range positions {
		if m.IsVertexDeleted(mesh.VertexHandle{Index: uint32(i)}) {
			continue
		}
		live = append(live, p)
	}
	return Build(live, opts...)
}
