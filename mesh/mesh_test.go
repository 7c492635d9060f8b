package mesh_test

import (
	"testing"

	"github.com/katalvlaran/geomkernel/mesh"
	"github.com/stretchr/testify/require"
)

func tetrahedron(m *mesh.Mesh) (v0, v1, v2, v3 mesh.VertexHandle) {
	v0 = m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 = m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 = m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	v3 = m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 1})
	_, err := m.AddTriangle(v0, v1, v2)
	if err != nil {
		panic(err)
	}
	_, err = m.AddTriangle(v0, v2, v3)
	if err != nil {
		panic(err)
	}
	_, err = m.AddTriangle(v0, v3, v1)
	if err != nil {
		panic(err)
	}
	_, err = m.AddTriangle(v1, v3, v2)
	if err != nil {
		panic(err)
	}
	return
}

// TestTetrahedronCollapse implements scenario S2 of spec.md.
func TestTetrahedronCollapse(t *testing.T) {
	m := mesh.New()
	v0, v1, _, _ := tetrahedron(m)
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 4, m.FaceCount())
	require.Equal(t, 6, m.EdgeCount())

	e := m.Edge(m.FindHalfedge(v0, v1))
	require.True(t, e.Valid())
	require.True(t, m.IsCollapseOk(e))

	survivor, err := m.Collapse(e, mesh.Vec3{X: 0.5, Y: 0, Z: 0})
	require.NoError(t, err)
	require.True(t, survivor.Valid())
	require.Equal(t, v0, survivor)

	m.GarbageCollection()
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())
	require.Equal(t, 3, m.EdgeCount())
	require.Equal(t, mesh.Vec3{X: 0.5, Y: 0, Z: 0}, m.Position(survivor))
}

// TestCollapseRejectsDeletedEdge verifies Collapse surfaces
// ErrNonManifold when IsCollapseOk fails because the edge is deleted.
func TestCollapseRejectsDeletedEdge(t *testing.T) {
	m := mesh.New()
	v0, v1, _, _ := tetrahedron(m)
	e := m.Edge(m.FindHalfedge(v0, v1))
	m.DeleteEdge(e)
	_, err := m.Collapse(e, mesh.Vec3{})
	require.ErrorIs(t, err, mesh.ErrNonManifold)
}

// TestFlipSharedDiagonal implements scenario S3 of spec.md.
func TestFlipSharedDiagonal(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 1, Y: 1, Z: 0})
	v3 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v0, v2, v3)
	require.NoError(t, err)

	h := m.FindHalfedge(v0, v2)
	require.True(t, h.Valid())
	e := m.Edge(h)

	require.True(t, m.IsFlipOk(e))
	require.True(t, m.Flip(e))

	require.False(t, m.FindHalfedge(v0, v2).Valid())
	require.False(t, m.FindHalfedge(v2, v0).Valid())
	h13 := m.FindHalfedge(v1, v3)
	h31 := m.FindHalfedge(v3, v1)
	require.True(t, h13.Valid() || h31.Valid())
}

func TestAddFaceRejectsNonBoundary(t *testing.T) {
	m := mesh.New()
	v0, v1, v2, _ := tetrahedron(m)
	got, err := m.AddFace([]mesh.VertexHandle{v0, v1, v2})
	require.False(t, got.Valid())
	require.ErrorIs(t, err, mesh.ErrNonManifold)
}

func TestDeleteFaceAndVertex(t *testing.T) {
	m := mesh.New()
	v0, v1, v2, v3 := tetrahedron(m)
	f := m.FindHalfedge(v0, v1)
	require.True(t, f.Valid())

	err := m.DeleteVertex(v3)
	require.NoError(t, err)
	require.True(t, m.HasGarbage())
	m.GarbageCollection()
	require.False(t, m.HasGarbage())
	require.Equal(t, 3, m.VertexCount())

	_ = v2
}

func TestDeleteVertexRejectsInvalidHandle(t *testing.T) {
	m := mesh.New()
	v0, v1, v2, v3 := tetrahedron(m)
	_ = v1
	_ = v2
	_ = v3
	require.NoError(t, m.DeleteVertex(v0))
	require.ErrorIs(t, m.DeleteVertex(v0), mesh.ErrInvalidHandle)
}

func TestSplitEdgeOnTriangle(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)

	e := m.Edge(m.FindHalfedge(v0, v1))
	vm, err := m.Split(e, mesh.Vec3{X: 0.5, Y: 0, Z: 0})
	require.NoError(t, err)
	require.True(t, vm.Valid())
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())

	require.True(t, m.FindHalfedge(v0, vm).Valid())
	require.True(t, m.FindHalfedge(vm, v1).Valid())
}
