package shapes_test

import (
	"testing"

	"github.com/katalvlaran/geomkernel/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBOverlapsAndContains(t *testing.T) {
	a := shapes.AABB{Min: shapes.Vec3{X: 0, Y: 0, Z: 0}, Max: shapes.Vec3{X: 2, Y: 2, Z: 2}}
	b := shapes.AABB{Min: shapes.Vec3{X: 1, Y: 1, Z: 1}, Max: shapes.Vec3{X: 3, Y: 3, Z: 3}}
	require.True(t, a.Overlaps(b))

	c := shapes.AABB{Min: shapes.Vec3{X: 5, Y: 5, Z: 5}, Max: shapes.Vec3{X: 6, Y: 6, Z: 6}}
	require.False(t, a.Overlaps(c))

	outer := shapes.AABB{Min: shapes.Vec3{X: -1, Y: -1, Z: -1}, Max: shapes.Vec3{X: 3, Y: 3, Z: 3}}
	require.True(t, outer.Contains(a))
	require.False(t, a.Contains(outer))
}

func TestAABBSquaredDistance(t *testing.T) {
	box := shapes.AABB{Min: shapes.Vec3{X: 0, Y: 0, Z: 0}, Max: shapes.Vec3{X: 1, Y: 1, Z: 1}}
	assert.InDelta(t, 0.0, box.SquaredDistance(shapes.Vec3{X: 0.5, Y: 0.5, Z: 0.5}), 1e-12)
	assert.InDelta(t, 1.0, box.SquaredDistance(shapes.Vec3{X: 2, Y: 0.5, Z: 0.5}), 1e-12)
}

func TestRayOverlapsAABB(t *testing.T) {
	box := shapes.AABB{Min: shapes.Vec3{X: 0, Y: 0, Z: 0}, Max: shapes.Vec3{X: 1, Y: 1, Z: 1}}
	r := shapes.Ray{Origin: shapes.Vec3{X: -1, Y: 0.5, Z: 0.5}, Direction: shapes.Vec3{X: 1, Y: 0, Z: 0}}
	require.True(t, r.Overlaps(box))

	miss := shapes.Ray{Origin: shapes.Vec3{X: -1, Y: 5, Z: 5}, Direction: shapes.Vec3{X: 1, Y: 0, Z: 0}}
	require.False(t, miss.Overlaps(box))
}

func TestSphereOverlapsAndContains(t *testing.T) {
	s := shapes.Sphere{Center: shapes.Vec3{X: 0, Y: 0, Z: 0}, Radius: 5}
	box := shapes.AABB{Min: shapes.Vec3{X: -1, Y: -1, Z: -1}, Max: shapes.Vec3{X: 1, Y: 1, Z: 1}}
	require.True(t, s.Overlaps(box))
	require.True(t, s.Contains(box))

	far := shapes.AABB{Min: shapes.Vec3{X: 100, Y: 100, Z: 100}, Max: shapes.Vec3{X: 101, Y: 101, Z: 101}}
	require.False(t, s.Overlaps(far))
}

func TestUnion(t *testing.T) {
	boxes := []shapes.AABB{
		{Min: shapes.Vec3{X: 0, Y: 0, Z: 0}, Max: shapes.Vec3{X: 1, Y: 1, Z: 1}},
		{Min: shapes.Vec3{X: -1, Y: 2, Z: 0}, Max: shapes.Vec3{X: 2, Y: 3, Z: 4}},
	}
	u := shapes.Union(boxes)
	assert.Equal(t, shapes.Vec3{X: -1, Y: 0, Z: 0}, u.Min)
	assert.Equal(t, shapes.Vec3{X: 2, Y: 3, Z: 4}, u.Max)
}

func TestPlaneSignedDistance(t *testing.T) {
	pl := shapes.PlaneFromPoints(
		shapes.Vec3{X: 0, Y: 0, Z: 0},
		shapes.Vec3{X: 1, Y: 0, Z: 0},
		shapes.Vec3{X: 0, Y: 1, Z: 0},
	)
	assert.InDelta(t, 1.0, pl.SignedDistance(shapes.Vec3{X: 0, Y: 0, Z: 1}), 1e-12)
}
