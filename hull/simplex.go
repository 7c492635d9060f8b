package hull

import "github.com/katalvlaran/geomkernel/shapes"

// initialSimplex picks four non-degenerate extreme points to seed
// Quickhull, per spec.md §4.4 step 1.
func initialSimplex(points []shapes.Vec3, eps float64) (p0, p1, p2, p3 int, err error) {
	extremes := extremePoints(points)

	bestDistSq := -1.0
	for i := 0; i < len(extremes); i++ {
		for j := i + 1; j < len(extremes); j++ {
			a, b := extremes[i], extremes[j]
			d := points[a].Sub(points[b]).LengthSq()
			if d > bestDistSq {
				bestDistSq = d
				p0, p1 = a, b
			}
		}
	}
	if bestDistSq < eps*eps {
		return 0, 0, 0, 0, ErrDegenerate
	}

	p2 = farthestFromLine(points, p0, p1)
	cross := points[p1].Sub(points[p0]).Cross(points[p2].Sub(points[p0]))
	if cross.LengthSq() < eps*eps*points[p1].Sub(points[p0]).LengthSq() {
		return 0, 0, 0, 0, ErrDegenerate
	}

	p3 = farthestFromPlane(points, p0, p1, p2)
	plane := shapes.PlaneFromPoints(points[p0], points[p1], points[p2])
	dist := plane.SignedDistance(points[p3])
	if dist < 0 {
		dist = -dist
	}
	if dist < eps {
		return 0, 0, 0, 0, ErrDegenerate
	}

	if plane.SignedDistance(points[p3]) > 0 {
		p0, p1 = p1, p0
	}

	return p0, p1, p2, p3, nil
}

// extremePoints returns the 6 point indices minimizing/maximizing each
// axis.
func extremePoints(points []shapes.Vec3) []int {
	minX, maxX, minY, maxY, minZ, maxZ := 0, 0, 0, 0, 0, 0
	for i, p := range points {
		if p.X < points[minX].X {
			minX = i
		}
		if p.X > points[maxX].X {
			maxX = i
		}
		if p.Y < points[minY].Y {
			minY = i
		}
		if p.Y > points[maxY].Y {
			maxY = i
		}
		if p.Z < points[minZ].Z {
			minZ = i
		}
		if p.Z > points[maxZ].Z {
			maxZ = i
		}
	}
	return []int{minX, maxX, minY, maxY, minZ, maxZ}
}

func farthestFromLine(points []shapes.Vec3, a, b int) int {
	best := -1
	bestDistSq := -1.0
	dir := points[b].Sub(points[a])
	for i, p := range points {
		if i == a || i == b {
			continue
		}
		cross := dir.Cross(p.Sub(points[a]))
		d := cross.LengthSq()
		if d > bestDistSq {
			bestDistSq = d
			best = i
		}
	}
	return best
}

func farthestFromPlane(points []shapes.Vec3, a, b, c int) int {
	plane := shapes.PlaneFromPoints(points[a], points[b], points[c])
	best := -1
	bestDist := -1.0
	for i, p := range points {
		if i == a || i == b || i == c {
			continue
		}
		d := plane.SignedDistance(p)
		if d < 0 {
			d = -d
		}
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// buildInitialFaces creates the tetrahedron's 4 outward-facing triangles,
// per spec.md §4.4 step 2.
func buildInitialFaces(points []shapes.Vec3, p0, p1, p2, p3 int) []face {
	raw := [][3]int{
		{p0, p1, p2},
		{p0, p3, p1},
		{p1, p3, p2},
		{p0, p2, p3},
	}
	centroid := tetCentroid(points, p0, p1, p2, p3)

	faces := make([]face, len(raw))
	for i, v := range raw {
		f := face{verts: v}
		f.plane = planeFromTriangle(points, f.verts)
		if f.plane.SignedDistance(centroid) > 0 {
			f.verts[0], f.verts[1] = f.verts[1], f.verts[0]
			f.plane = planeFromTriangle(points, f.verts)
		}
		faces[i] = f
	}
	return faces
}
