package dec

import "github.com/katalvlaran/geomkernel/mesh"

// Operators bundles the exterior derivatives, Hodge stars, and Laplacian
// built from one mesh snapshot.
type Operators struct {
	D0        *SparseMatrix
	D1        *SparseMatrix
	Hodge0    *DiagonalMatrix
	Hodge1    *DiagonalMatrix
	Hodge2    *DiagonalMatrix
	Laplacian *SparseMatrix
}

// BuildOperators assembles every DEC operator for m in one pass.
func BuildOperators(m *mesh.Mesh) *Operators {
	d0 := BuildExteriorDerivative0(m)
	d1 := BuildExteriorDerivative1(m)
	h0 := BuildHodgeStar0(m)
	h1 := BuildHodgeStar1(m)
	h2 := BuildHodgeStar2(m)
	lap := BuildLaplacian(m, h1)
	return &Operators{D0: d0, D1: d1, Hodge0: h0, Hodge1: h1, Hodge2: h2, Laplacian: lap}
}

// BuildExteriorDerivative0 builds the #E x #V incidence operator: one row
// per non-deleted edge with +1 at its canonical halfedge's to-vertex
// column and -1 at its from-vertex column.
func BuildExteriorDerivative0(m *mesh.Mesh) *SparseMatrix {
	ne := m.EdgeCount()
	nv := m.VertexCount()
	rows := make([][]rowEntry, ne)
	for ei := 0; ei < ne; ei++ {
		e := mesh.EdgeHandle{Index: uint32(ei)}
		if m.IsEdgeDeleted(e) {
			continue
		}
		h := m.Halfedge0(e)
		to := m.ToVertex(h)
		from := m.FromVertex(h)
		rows[ei] = []rowEntry{
			{col: int(to.Index), val: 1},
			{col: int(from.Index), val: -1},
		}
	}
	return buildCSRFromRows(ne, nv, rows)
}

// BuildExteriorDerivative1 builds the #F x #E operator: walking each
// non-deleted face's halfedge loop, each halfedge contributes to its edge
// column with sign +1 if even (canonical), -1 otherwise.
func BuildExteriorDerivative1(m *mesh.Mesh) *SparseMatrix {
	nf := m.FaceCount()
	ne := m.EdgeCount()
	rows := make([][]rowEntry, nf)
	for fi := 0; fi < nf; fi++ {
		f := mesh.FaceHandle{Index: uint32(fi)}
		if m.IsFaceDeleted(f) {
			continue
		}
		start := m.HalfedgeOfFace(f)
		h := start
		var entries []rowEntry
		for k := 0; k < m.HalfedgeCount()+1; k++ {
			sign := 1.0
			if h.Index&1 != 0 {
				sign = -1.0
			}
			entries = append(entries, rowEntry{col: int(m.Edge(h).Index), val: sign})
			h = m.Next(h)
			if h == start {
				break
			}
		}
		rows[fi] = entries
	}
	return buildCSRFromRows(nf, ne, rows)
}

// BuildHodgeStar0 builds the #V diagonal of mixed Voronoi areas (Meyer et
// al. 2003): for each non-degenerate triangle, an obtuse angle assigns
// half the area to its vertex and a quarter to each other; otherwise each
// vertex accrues the cotangent-weighted opposite-edge contribution.
func BuildHodgeStar0(m *mesh.Mesh) *DiagonalMatrix {
	h0 := NewDiagonalMatrix(m.VertexCount())
	forEachFace(m, func(f mesh.FaceHandle, verts []mesh.VertexHandle, pos []mesh.Vec3) {
		if len(verts) != 3 {
			return
		}
		a, b, c := pos[0], pos[1], pos[2]
		area := triangleArea(a, b, c)
		if area < degenerateAreaEps {
			return
		}
		va, vb, vc := verts[0], verts[1], verts[2]
		switch {
		case isObtuseAt(b, a, c):
			h0.Diag[va.Index] += area / 2
			h0.Diag[vb.Index] += area / 4
			h0.Diag[vc.Index] += area / 4
		case isObtuseAt(a, b, c):
			h0.Diag[vb.Index] += area / 2
			h0.Diag[va.Index] += area / 4
			h0.Diag[vc.Index] += area / 4
		case isObtuseAt(a, c, b):
			h0.Diag[vc.Index] += area / 2
			h0.Diag[va.Index] += area / 4
			h0.Diag[vb.Index] += area / 4
		default:
			eAsq := b.Sub(c).LengthSq()
			eBsq := a.Sub(c).LengthSq()
			eCsq := a.Sub(b).LengthSq()
			cotA := cotangent(b, a, c)
			cotB := cotangent(a, b, c)
			cotC := cotangent(a, c, b)
			h0.Diag[va.Index] += (eBsq*cotB + eCsq*cotC) / 8
			h0.Diag[vb.Index] += (eAsq*cotA + eCsq*cotC) / 8
			h0.Diag[vc.Index] += (eAsq*cotA + eBsq*cotB) / 8
		}
	})
	return h0
}

// BuildHodgeStar1 builds the #E diagonal: for each edge, half the sum of
// the cotangents of the angles opposite it in its one or two incident
// triangles.
func BuildHodgeStar1(m *mesh.Mesh) *DiagonalMatrix {
	h1 := NewDiagonalMatrix(m.EdgeCount())
	forEachFace(m, func(f mesh.FaceHandle, verts []mesh.VertexHandle, pos []mesh.Vec3) {
		if len(verts) != 3 {
			return
		}
		start := m.HalfedgeOfFace(f)
		h := start
		for k := 0; k < 3; k++ {
			opp := m.ToVertex(m.Next(h))
			a := m.Position(m.FromVertex(h))
			b := m.Position(m.ToVertex(h))
			c := m.Position(opp)
			cot := cotangent(a, c, b)
			h1.Diag[m.Edge(h).Index] += cot / 2
			h = m.Next(h)
		}
	})
	return h1
}

// BuildHodgeStar2 builds the #F diagonal: 1/area per non-degenerate
// triangle, zero otherwise.
func BuildHodgeStar2(m *mesh.Mesh) *DiagonalMatrix {
	h2 := NewDiagonalMatrix(m.FaceCount())
	forEachFace(m, func(f mesh.FaceHandle, verts []mesh.VertexHandle, pos []mesh.Vec3) {
		if len(verts) != 3 {
			return
		}
		area := triangleArea(pos[0], pos[1], pos[2])
		if area < degenerateAreaEps {
			h2.Diag[f.Index] = 0
			return
		}
		h2.Diag[f.Index] = 1 / area
	})
	return h2
}

// BuildLaplacian builds the #V x #V weak-form cotangent Laplacian
// directly from hodge1 edge weights (symmetric, PSD, rows sum to zero).
func BuildLaplacian(m *mesh.Mesh, hodge1 *DiagonalMatrix) *SparseMatrix {
	nv := m.VertexCount()
	neighbors := make([][]rowEntry, nv)
	diag := make([]float64, nv)

	ne := m.EdgeCount()
	for ei := 0; ei < ne; ei++ {
		e := mesh.EdgeHandle{Index: uint32(ei)}
		if m.IsEdgeDeleted(e) {
			continue
		}
		w := hodge1.Diag[ei]
		h := m.Halfedge0(e)
		i := m.FromVertex(h).Index
		j := m.ToVertex(h).Index
		neighbors[i] = append(neighbors[i], rowEntry{col: int(j), val: -w})
		neighbors[j] = append(neighbors[j], rowEntry{col: int(i), val: -w})
		diag[i] += w
		diag[j] += w
	}

	rows := make([][]rowEntry, nv)
	for v := 0; v < nv; v++ {
		entries := append(neighbors[v], rowEntry{col: v, val: diag[v]})
		rows[v] = entries
	}
	return buildCSRFromRows(nv, nv, rows)
}

// forEachFace walks every non-deleted face of m and invokes fn with its
// ordered vertex handles and positions.
func forEachFace(m *mesh.Mesh, fn func(f mesh.FaceHandle, verts []mesh.VertexHandle, pos []mesh.Vec3)) {
	nf := m.FaceCount()
	for fi := 0; fi < nf; fi++ {
		f := mesh.FaceHandle{Index: uint32(fi)}
		if m.IsFaceDeleted(f) {
			continue
		}
		start := m.HalfedgeOfFace(f)
		h := start
		var verts []mesh.VertexHandle
		var pos []mesh.Vec3
		for k := 0; k < m.HalfedgeCount()+1; k++ {
			v := m.FromVertex(h)
			verts = append(verts, v)
			pos = append(pos, m.Position(v))
			h = m.Next(h)
			if h == start {
				break
			}
		}
		fn(f, verts, pos)
	}
}
