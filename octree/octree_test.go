package octree_test

import (
	"testing"

	"github.com/katalvlaran/geomkernel/octree"
	"github.com/katalvlaran/geomkernel/shapes"
	"github.com/stretchr/testify/require"
)

func point(x, y, z float64) shapes.AABB {
	return shapes.AABB{Min: shapes.Vec3{X: x, Y: y, Z: z}, Max: shapes.Vec3{X: x, Y: y, Z: z}}
}

func lattice27() []shapes.AABB {
	var out []shapes.AABB
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				out = append(out, point(float64(x), float64(y), float64(z)))
			}
		}
	}
	return out
}

// TestOctreeKNNOnLattice implements scenario S6 of spec.md.
func TestOctreeKNNOnLattice(t *testing.T) {
	aabbs := lattice27()
	tree, err := octree.Build(aabbs, octree.DefaultSplitPolicy(), 4, 6)
	require.NoError(t, err)
	require.True(t, tree.ValidateStructure())
	require.NoError(t, tree.CheckStructure())

	knn := tree.QueryKNN(shapes.Vec3{X: 0, Y: 0, Z: 0}, 4)
	require.Len(t, knn, 4)

	expectFirstFour := map[uint32]bool{}
	for _, i := range knn {
		expectFirstFour[i] = true
	}
	originIdx := uint32(0) // (0,0,0) is first in the generation order
	require.True(t, expectFirstFour[originIdx])

	for _, idx := range knn {
		box := tree.ElementAABB(idx)
		d := box.SquaredDistance(shapes.Vec3{})
		require.LessOrEqual(t, d, 1.0)
	}
}

func TestOctreeQueryAABBCoverage(t *testing.T) {
	aabbs := []shapes.AABB{
		{Min: shapes.Vec3{X: 0, Y: 0, Z: 0}, Max: shapes.Vec3{X: 1, Y: 1, Z: 1}},
		{Min: shapes.Vec3{X: 5, Y: 5, Z: 5}, Max: shapes.Vec3{X: 6, Y: 6, Z: 6}},
		{Min: shapes.Vec3{X: -5, Y: -5, Z: -5}, Max: shapes.Vec3{X: -4, Y: -4, Z: -4}},
	}
	tree, err := octree.Build(aabbs, octree.DefaultSplitPolicy(), 1, 8)
	require.NoError(t, err)
	require.True(t, tree.ValidateStructure())

	query := shapes.AABB{Min: shapes.Vec3{X: -1, Y: -1, Z: -1}, Max: shapes.Vec3{X: 2, Y: 2, Z: 2}}
	got := tree.QueryAABB(query)

	var want []uint32
	for i, b := range aabbs {
		if b.Overlaps(query) {
			want = append(want, uint32(i))
		}
	}
	require.ElementsMatch(t, want, got)
}

func TestOctreeQueryNearestSingleElement(t *testing.T) {
	aabbs := []shapes.AABB{point(3, 4, 0)}
	tree, err := octree.Build(aabbs, octree.DefaultSplitPolicy(), 4, 4)
	require.NoError(t, err)

	idx, found := tree.QueryNearest(shapes.Vec3{})
	require.True(t, found)
	require.Equal(t, uint32(0), idx)
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	_, err := octree.Build(nil, octree.DefaultSplitPolicy(), 4, 4)
	require.ErrorIs(t, err, octree.ErrInvalidInput)

	_, err = octree.Build([]shapes.AABB{point(0, 0, 0)}, octree.DefaultSplitPolicy(), 0, 4)
	require.ErrorIs(t, err, octree.ErrInvalidInput)
}
