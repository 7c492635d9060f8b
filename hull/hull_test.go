package hull_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geomkernel/hull"
	"github.com/katalvlaran/geomkernel/mesh"
	"github.com/katalvlaran/geomkernel/shapes"
	"github.com/stretchr/testify/require"
)

func icosahedronVertices() []shapes.Vec3 {
	phi := (1 + math.Sqrt(5)) / 2
	signs := []float64{-1, 1}
	var pts []shapes.Vec3
	for _, s1 := range signs {
		for _, s2 := range signs {
			pts = append(pts,
				shapes.Vec3{X: 0, Y: s1 * 1, Z: s2 * phi},
				shapes.Vec3{X: s1 * 1, Y: s2 * phi, Z: 0},
				shapes.Vec3{X: s1 * phi, Y: 0, Z: s2 * 1},
			)
		}
	}
	return pts
}

// TestUnitSphereHull implements scenario S1 of spec.md.
func TestUnitSphereHull(t *testing.T) {
	pts := icosahedronVertices()
	require.Len(t, pts, 12)

	h, err := hull.Build(pts)
	require.NoError(t, err)

	require.Equal(t, 12, h.HullVertexCount)
	require.Equal(t, 20, h.HullFaceCount)
	require.Equal(t, 30, h.HullEdgeCount)

	for i := range h.Planes {
		fv := h.FaceVertices(i)
		centroid := h.Vertices[fv[0]].Add(h.Vertices[fv[1]]).Add(h.Vertices[fv[2]]).Scale(1.0 / 3)
		require.Greater(t, h.Planes[i].Normal.Dot(centroid), 0.0)
	}
}

func TestBuildWithComputePlanesDisabled(t *testing.T) {
	pts := icosahedronVertices()
	h, err := hull.Build(pts, hull.WithComputePlanes(false))
	require.NoError(t, err)
	require.Equal(t, 12, h.HullVertexCount)
	require.Nil(t, h.Planes)
}

func TestBuildRejectsTooFewPoints(t *testing.T) {
	_, err := hull.Build([]shapes.Vec3{{}, {X: 1}, {Y: 1}})
	require.ErrorIs(t, err, hull.ErrTooFewPoints)
}

func TestBuildRejectsCoplanarPoints(t *testing.T) {
	pts := []shapes.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}
	_, err := hull.Build(pts)
	require.ErrorIs(t, err, hull.ErrDegenerate)
}

func TestBuildTetrahedron(t *testing.T) {
	pts := []shapes.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	h, err := hull.Build(pts, hull.WithMesh())
	require.NoError(t, err)
	require.Equal(t, 4, h.HullVertexCount)
	require.Equal(t, 4, h.HullFaceCount)
	require.NotNil(t, h.Mesh)
	require.Equal(t, 4, h.Mesh.VertexCount())
	require.Equal(t, 4, h.Mesh.FaceCount())
}

// TestBuildFromMeshSkipsUnswepTombstone verifies that BuildFromMesh
// ignores a deleted vertex row that GarbageCollection hasn't compacted
// away yet, per spec.md §4.4's build_from_mesh contract.
func TestBuildFromMeshSkipsUnswepTombstone(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(shapes.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(shapes.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(shapes.Vec3{X: 0, Y: 1, Z: 0})
	v3 := m.AddVertex(shapes.Vec3{X: 0, Y: 0, Z: 1})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v0, v2, v3)
	require.NoError(t, err)
	_, err = m.AddTriangle(v0, v3, v1)
	require.NoError(t, err)
	_, err = m.AddTriangle(v1, v3, v2)
	require.NoError(t, err)

	stray := m.AddVertex(shapes.Vec3{X: 100, Y: 100, Z: 100})
	require.NoError(t, m.DeleteVertex(stray))
	require.True(t, m.HasGarbage())

	h, err := hull.BuildFromMesh(m)
	require.NoError(t, err)
	require.Equal(t, 4, h.HullVertexCount)
	for _, v := range h.Vertices {
		require.Less(t, v.X, 10.0)
	}
}
