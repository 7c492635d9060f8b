// Package hull implements the Quickhull convex-hull builder (C6): V-Rep
// (and optional H-Rep) extraction from a point cloud, with optional
// conversion into a mesh.Mesh, per spec.md §4.4.
package hull

import (
	"errors"

	"github.com/katalvlaran/geomkernel/mesh"
	"github.com/katalvlaran/geomkernel/shapes"
)

// Sentinel errors for Build.
var (
	// ErrTooFewPoints indicates fewer than 4 input points.
	ErrTooFewPoints = errors.New("hull: fewer than 4 points")

	// ErrDegenerate indicates the input is coincident, collinear, or
	// coplanar within DistanceEpsilon.
	ErrDegenerate = errors.New("hull: degenerate point set")
)

// ConvexHullParams configures Build.
type ConvexHullParams struct {
	DistanceEpsilon float64
	ComputePlanes   bool
	BuildMesh       bool
}

// Option mutates a ConvexHullParams before Build runs.
type Option func(*ConvexHullParams)

// WithDistanceEpsilon overrides the default planarity/collinearity
// tolerance. Panics on a non-positive epsilon (a programmer error).
func WithDistanceEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("hull: WithDistanceEpsilon requires eps > 0")
	}
	return func(p *ConvexHullParams) { p.DistanceEpsilon = eps }
}

// WithMesh requests that Build also emit a mesh.Mesh triangulating the
// hull surface.
func WithMesh() Option {
	return func(p *ConvexHullParams) { p.BuildMesh = true }
}

// WithComputePlanes toggles H-Rep plane computation. Build always needs
// the per-face supporting planes internally to classify conflict points,
// so this only gates whether Hull.Planes is populated for the caller;
// disabling it skips the final copy into Hull.Planes.
func WithComputePlanes(compute bool) Option {
	return func(p *ConvexHullParams) { p.ComputePlanes = compute }
}

// DefaultConvexHullParams returns the conventional epsilon with plane
// computation enabled and mesh construction disabled.
func DefaultConvexHullParams() ConvexHullParams {
	return ConvexHullParams{DistanceEpsilon: 1e-8, ComputePlanes: true, BuildMesh: false}
}

func newParams(opts []Option) ConvexHullParams {
	p := DefaultConvexHullParams()
	for _, o := range opts {
		o(&p)
	}
	return p
}

// Plane is an outward-facing supporting plane of one hull face.
type Plane = shapes.Plane

// face is one triangular hull face under construction.
type face struct {
	verts    [3]int // indices into the input point slice
	plane    Plane
	conflict []int           // points assigned to this face (candidates to expand toward)
	distTo   map[int]float64 // conflict point -> its signed distance to plane
	deleted  bool
}

// horizonEdge records one edge of the horizon loop discovered while
// expanding the hull toward an eye point.
type horizonEdge struct {
	a, b     int // directed a->b, opposite the visible face it came from
	neighbor int // the face index across this edge, pre-deletion
}

// edgeKey packs an undirected edge (lo,hi) into one map key.
func edgeKey(u, v int) int64 {
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	return int64(lo)<<32 | int64(uint32(hi))
}

// Hull is the V-Rep (and optional H-Rep) result of Build.
type Hull struct {
	Vertices []shapes.Vec3
	Planes   []Plane // one per surviving face, H-Rep

	HullVertexCount    int
	HullFaceCount      int
	HullEdgeCount      int
	InteriorPointCount int

	// Mesh is the optional halfedge triangulation of the hull surface,
	// populated only when Build ran with WithMesh().
	Mesh *mesh.Mesh

	faceVerts [][3]int // dense-remapped triangle indices, parallel to Planes
}

// FaceVertices returns the dense vertex indices (into Hull.Vertices) of
// surviving face i.
func (h *Hull) FaceVertices(i int) [3]int { return h.faceVerts[i] }
