package dec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geomkernel/dec"
	"github.com/katalvlaran/geomkernel/mesh"
	"github.com/stretchr/testify/require"
)

// TestSolveCGOn3x3SPD implements scenario S4 of spec.md.
func TestSolveCGOn3x3SPD(t *testing.T) {
	a := dec.NewSparseMatrix(3, 3, 5)
	a.ColIndices = []int{0, 1, 0, 1, 2}
	a.Values = []float64{4, 1, 1, 3, 2}
	a.RowOffsets = []int{0, 2, 4, 5}

	b := []float64{1, 2, 3}
	x := []float64{0, 0, 0}
	params := dec.CGParams{Tolerance: 1e-10, MaxIterations: 100}
	result, err := dec.SolveCG(a, b, x, params)
	require.NoError(t, err)

	require.True(t, result.Converged)
	require.LessOrEqual(t, result.Iterations, 3)
	require.InDelta(t, 1.0/11, x[0], 1e-8)
	require.InDelta(t, 7.0/11, x[1], 1e-8)
	require.InDelta(t, 1.5, x[2], 1e-8)
}

// TestSolveCGRejectsNonSquare verifies SolveCG surfaces ErrNotSquare for a
// non-square operator instead of running off the end of b/x.
func TestSolveCGRejectsNonSquare(t *testing.T) {
	a := dec.NewSparseMatrix(2, 3, 0)
	a.RowOffsets = []int{0, 0, 0}
	_, err := dec.SolveCG(a, []float64{0, 0}, []float64{0, 0}, dec.DefaultCGParams())
	require.ErrorIs(t, err, dec.ErrNotSquare)
}

// TestSolveCGRejectsDimensionMismatch verifies SolveCG surfaces
// ErrDimensionMismatch when b's length doesn't match the operator's size.
func TestSolveCGRejectsDimensionMismatch(t *testing.T) {
	a := dec.NewSparseMatrix(3, 3, 0)
	a.RowOffsets = []int{0, 0, 0, 0}
	_, err := dec.SolveCG(a, []float64{0, 0}, []float64{0, 0, 0}, dec.DefaultCGParams())
	require.ErrorIs(t, err, dec.ErrDimensionMismatch)
}

// TestHodge1OnEquilateralTriangle implements scenario S5 of spec.md.
func TestHodge1OnEquilateralTriangle(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 0.5, Y: math.Sqrt(3) / 2, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)

	h1 := dec.BuildHodgeStar1(m)
	want := 1.0 / (2 * math.Sqrt(3))
	for _, w := range h1.Diag {
		require.InDelta(t, want, w, 1e-9)
	}
}

func TestLaplacianRowsSumToZero(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	v3 := m.AddVertex(mesh.Vec3{X: 1, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v1, v3, v2)
	require.NoError(t, err)

	ops := dec.BuildOperators(m)
	for i := 0; i < ops.Laplacian.Rows; i++ {
		var sum float64
		for k := ops.Laplacian.RowOffsets[i]; k < ops.Laplacian.RowOffsets[i+1]; k++ {
			sum += ops.Laplacian.Values[k]
		}
		require.InDelta(t, 0, sum, 1e-9)
	}
}

// TestLaplacianIsSymmetric checks property 10 of spec.md §8: the weak-form
// cotangent Laplacian built from Hodge-1 weights is symmetric.
func TestLaplacianIsSymmetric(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	v3 := m.AddVertex(mesh.Vec3{X: 1, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v1, v3, v2)
	require.NoError(t, err)

	lap := dec.BuildOperators(m).Laplacian
	dense := toDense(lap)
	for i := 0; i < lap.Rows; i++ {
		for j := 0; j < lap.Cols; j++ {
			require.InDelta(t, dense[i][j], dense[j][i], 1e-9)
		}
	}
}

// TestD1D0IsZero checks property 8 of spec.md §8: the exterior derivative
// composition D1*D0 vanishes (the boundary of a boundary is empty).
func TestD1D0IsZero(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	v3 := m.AddVertex(mesh.Vec3{X: 1, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v1, v3, v2)
	require.NoError(t, err)

	d0 := dec.BuildExteriorDerivative0(m)
	d1 := dec.BuildExteriorDerivative1(m)
	denseD0 := toDense(d0)
	denseD1 := toDense(d1)

	for i := 0; i < d1.Rows; i++ {
		for j := 0; j < d0.Cols; j++ {
			var sum float64
			for k := 0; k < d1.Cols; k++ {
				sum += denseD1[i][k] * denseD0[k][j]
			}
			require.InDelta(t, 0, sum, 1e-9)
		}
	}
}

// toDense expands a CSR matrix into a dense row-major slice for small
// test fixtures.
func toDense(m *dec.SparseMatrix) [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = make([]float64, m.Cols)
		for k := m.RowOffsets[i]; k < m.RowOffsets[i+1]; k++ {
			out[i][m.ColIndices[k]] = m.Values[k]
		}
	}
	return out
}

func TestSparseMultiplyMatchesDense(t *testing.T) {
	a := dec.NewSparseMatrix(2, 2, 4)
	a.ColIndices = []int{0, 1, 0, 1}
	a.Values = []float64{2, 1, 1, 3}
	a.RowOffsets = []int{0, 2, 4}

	x := []float64{1, 2}
	y := make([]float64, 2)
	a.Multiply(x, y)
	require.InDelta(t, 4, y[0], 1e-12)
	require.InDelta(t, 7, y[1], 1e-12)
}
