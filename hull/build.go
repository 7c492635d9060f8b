package hull

import "github.com/katalvlaran/geomkernel/shapes"

// Build runs Quickhull over points, returning the convex hull's V-Rep
// (and H-Rep), or an error if the input has fewer than 4 points or is
// degenerate (coincident, collinear, or coplanar) within params'
// DistanceEpsilon, per spec.md §4.4.
func Build(points []shapes.Vec3, opts ...Option) (*Hull, error) {
	params := newParams(opts)
	n := len(points)
	if n < 4 {
		return nil, ErrTooFewPoints
	}
	eps := params.DistanceEpsilon

	p0, p1, p2, p3, err := initialSimplex(points, eps)
	if err != nil {
		return nil, err
	}

	faces := buildInitialFaces(points, p0, p1, p2, p3)
	edges := newEdgeAdjacency()
	for fi := range faces {
		edges.registerFace(fi, faces[fi].verts)
	}

	used := map[int]bool{p0: true, p1: true, p2: true, p3: true}
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		assignConflict(points, faces, i, eps)
	}

	maxIter := 2 * n
	for iter := 0; iter < maxIter; iter++ {
		seedFace, eye := pickEyePoint(faces)
		if seedFace < 0 {
			break
		}

		visible := visibleFacesBFS(points, faces, edges, seedFace, eye, eps)

		horizon := extractHorizon(faces, edges, visible)
		ordered, ok := orderHorizon(horizon)
		if !ok {
			break
		}

		var orphans []int
		for fi := range visible {
			if fi == seedFace {
				continue
			}
			orphans = append(orphans, faces[fi].conflict...)
		}
		orphans = append(orphans, excludingEye(faces[seedFace].conflict, eye)...)

		for fi := range visible {
			edges.unregisterFace(fi, faces[fi].verts)
			faces[fi].deleted = true
			faces[fi].conflict = nil
		}

		var newFaces []int
		centroid := tetCentroid(points, p0, p1, p2, p3)
		for _, he := range ordered {
			nf := face{verts: [3]int{he.a, he.b, eye}}
			nf.plane = planeFromTriangle(points, nf.verts)
			if nf.plane.SignedDistance(centroid) > 0 {
				nf.verts[0], nf.verts[1] = nf.verts[1], nf.verts[0]
				nf.plane = planeFromTriangle(points, nf.verts)
			}
			fi := len(faces)
			faces = append(faces, nf)
			edges.registerFace(fi, nf.verts)
			newFaces = append(newFaces, fi)
		}

		redistribute(points, faces, newFaces, orphans, eps)
	}

	h := extract(points, faces)
	if !params.ComputePlanes {
		h.Planes = nil
	}
	if params.BuildMesh {
		hm, err := h.BuildMesh()
		if err != nil {
			return nil, err
		}
		h.Mesh = hm
	}
	return h, nil
}

func excludingEye(conflict []int, eye int) []int {
	out := make([]int, 0, len(conflict))
	for _, p := range conflict {
		if p != eye {
			out = append(out, p)
		}
	}
	return out
}

func tetCentroid(points []shapes.Vec3, p0, p1, p2, p3 int) shapes.Vec3 {
	sum := points[p0].Add(points[p1]).Add(points[p2]).Add(points[p3])
	return sum.Scale(0.25)
}

func planeFromTriangle(points []shapes.Vec3, v [3]int) Plane {
	return shapes.PlaneFromPoints(points[v[0]], points[v[1]], points[v[2]])
}
