// Package mesh implements the property-backed halfedge mesh (C4): a
// triangle/polygon surface topology built on package property, with the
// Euler operators (AddFace, Collapse, Flip, Split, the Delete family) and
// garbage-collection compaction spec.md §4.2 describes.
package mesh

import (
	"errors"

	"github.com/katalvlaran/geomkernel/property"
	"github.com/katalvlaran/geomkernel/shapes"
)

// Sentinel errors for mesh operations.
var (
	// ErrNonManifold indicates AddFace's boundary precondition failed, or a
	// splice would create a non-manifold closure (spec.md §4.2.1).
	ErrNonManifold = errors.New("mesh: non-manifold operation")

	// ErrStructuralCorruption indicates a traversal exceeded its safety cap
	// (spec.md §9) or that a new edge could not be allocated. In the second
	// case AddFace and Split may already have appended rows.
	ErrStructuralCorruption = errors.New("mesh: structural corruption")

	// ErrInvalidHandle indicates a handle argument does not refer to a live
	// row (out of range, or tombstoned).
	ErrInvalidHandle = errors.New("mesh: invalid handle")
)

// invalid is the reserved sentinel index shared by every handle kind.
const invalid = property.InvalidIndex

// VertexHandle addresses one row of the vertex registry.
type VertexHandle struct{ Index uint32 }

// HalfedgeHandle addresses one row of the halfedge registry.
type HalfedgeHandle struct{ Index uint32 }

// EdgeHandle addresses one row of the edge registry. Edge e owns
// halfedges 2e and 2e+1.
type EdgeHandle struct{ Index uint32 }

// FaceHandle addresses one row of the face registry.
type FaceHandle struct{ Index uint32 }

// InvalidVertex is the reserved "no such vertex" handle.
var InvalidVertex = VertexHandle{invalid}

// InvalidHalfedge is the reserved "no such halfedge" handle.
var InvalidHalfedge = HalfedgeHandle{invalid}

// InvalidEdge is the reserved "no such edge" handle.
var InvalidEdge = EdgeHandle{invalid}

// InvalidFace is the reserved "no such face" handle.
var InvalidFace = FaceHandle{invalid}

// Valid reports whether h is not the sentinel.
func (h VertexHandle) Valid() bool { return h.Index != invalid }

// Valid reports whether h is not the sentinel.
func (h HalfedgeHandle) Valid() bool { return h.Index != invalid }

// Valid reports whether h is not the sentinel.
func (h EdgeHandle) Valid() bool { return h.Index != invalid }

// Valid reports whether h is not the sentinel.
func (h FaceHandle) Valid() bool { return h.Index != invalid }

// halfedgeConnectivity mirrors spec.md §3's h:connectivity property.
type halfedgeConnectivity struct {
	ToVertex uint32
	Face     uint32
	Next     uint32
	Prev     uint32
}

// Vec3 is the position type stored in v:point.
type Vec3 = shapes.Vec3
