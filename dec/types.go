// Package dec implements the discrete exterior calculus operators and the
// Jacobi-preconditioned conjugate-gradient solver (C5): the exterior
// derivatives D0/D1, the Hodge stars, the cotangent Laplacian, and
// SolveCG/SolveCGShifted, all built directly on a mesh.Mesh per spec.md
// §4.3.
package dec

import (
	"errors"

	"github.com/katalvlaran/geomkernel/mesh"
)

// Sentinel errors for dec operations.
var (
	// ErrDimensionMismatch indicates operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("dec: dimension mismatch")

	// ErrNotSquare indicates a square matrix was required.
	ErrNotSquare = errors.New("dec: matrix is not square")
)

// degenerateAreaEps is the per-triangle area threshold below which a
// triangle is treated as degenerate and skipped by the Hodge-star builders
// (spec.md §4.3).
const degenerateAreaEps = 1e-12

// SparseMatrix is a row-compressed (CSR) sparse matrix: columns of each
// row are stored in ascending order.
type SparseMatrix struct {
	Rows, Cols int
	RowOffsets []int
	ColIndices []int
	Values     []float64
}

// NewSparseMatrix returns an empty rows×cols CSR matrix with nnz
// preallocated capacity.
func NewSparseMatrix(rows, cols, nnz int) *SparseMatrix {
	return &SparseMatrix{
		Rows:       rows,
		Cols:       cols,
		RowOffsets: make([]int, rows+1),
		ColIndices: make([]int, 0, nnz),
		Values:     make([]float64, 0, nnz),
	}
}

// DiagonalMatrix stores only the diagonal of a square matrix.
type DiagonalMatrix struct {
	Diag []float64
}

// NewDiagonalMatrix returns a zero-initialized n×n diagonal matrix.
func NewDiagonalMatrix(n int) *DiagonalMatrix {
	return &DiagonalMatrix{Diag: make([]float64, n)}
}

// rowEntry is a (column, value) pair collected before being sorted and
// flushed into a SparseMatrix row.
type rowEntry struct {
	col int
	val float64
}

// buildCSRFromRows assembles a CSR matrix from a per-row list of entries,
// sorting each row's columns in ascending order before flushing it.
func buildCSRFromRows(rows, cols int, perRow [][]rowEntry) *SparseMatrix {
	nnz := 0
	for _, r := range perRow {
		nnz += len(r)
	}
	m := NewSparseMatrix(rows, cols, nnz)
	for i := 0; i < rows; i++ {
		entries := perRow[i]
		sortRowEntries(entries)
		for _, e := range entries {
			m.ColIndices = append(m.ColIndices, e.col)
			m.Values = append(m.Values, e.val)
		}
		m.RowOffsets[i+1] = len(m.ColIndices)
	}
	return m
}

// sortRowEntries sorts a row's (column, value) pairs by ascending column
// using plain insertion sort: row fan-out (mesh valence, or two columns
// for D0) is small enough that this beats sort.Slice's overhead.
func sortRowEntries(e []rowEntry) {
	for i := 1; i < len(e); i++ {
		j := i
		for j > 0 && e[j-1].col > e[j].col {
			e[j-1], e[j] = e[j], e[j-1]
			j--
		}
	}
}

// triangleArea returns the area of triangle (a,b,c).
func triangleArea(a, b, c mesh.Vec3) float64 {
	return 0.5 * b.Sub(a).Cross(c.Sub(a)).Length()
}

// cotangent returns cot(angle at vertex b in triangle a-b-c).
func cotangent(a, b, c mesh.Vec3) float64 {
	u := a.Sub(b)
	v := c.Sub(b)
	cosT := u.Dot(v)
	sinT := u.Cross(v).Length()
	if sinT < 1e-15 {
		return 0
	}
	return cosT / sinT
}

func isObtuseAt(a, b, c mesh.Vec3) bool {
	return a.Sub(b).Dot(c.Sub(b)) < 0
}
