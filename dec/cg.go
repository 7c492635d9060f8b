package dec

import "math"

// CGParams configures SolveCG/SolveCGShifted.
type CGParams struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultCGParams returns the conventional tolerance/iteration budget.
func DefaultCGParams() CGParams {
	return CGParams{Tolerance: 1e-10, MaxIterations: 1000}
}

// CGResult reports how SolveCG/SolveCGShifted terminated.
type CGResult struct {
	Iterations   int
	ResidualNorm float64
	Converged    bool
}

// linearOperator applies a matrix-like operator: y = Op(x).
type linearOperator interface {
	Multiply(x, y []float64)
}

// SolveCG runs Jacobi-preconditioned conjugate gradient for SPD A against
// rhs b, refining x in place (the initial guess in, the solution out),
// per spec.md §4.3.2. Returns ErrNotSquare if a isn't square, or
// ErrDimensionMismatch if b or x don't match a's row count.
func SolveCG(a *SparseMatrix, b []float64, x []float64, params CGParams) (CGResult, error) {
	if a.Rows != a.Cols {
		return CGResult{}, ErrNotSquare
	}
	n := a.Rows
	if len(b) != n || len(x) != n {
		return CGResult{}, ErrDimensionMismatch
	}
	diag := extractDiag(a)
	return solveCG(n, a, diag, b, x, params), nil
}

// SolveCGShifted runs the same algorithm against the operator C = αM + βA
// and a diagonal preconditioner built from α·M[i] + β·A[i,i]. Returns
// ErrNotSquare if a isn't square, or ErrDimensionMismatch if mMat, b, or x
// don't match a's row count.
func SolveCGShifted(mMat *DiagonalMatrix, alpha float64, a *SparseMatrix, beta float64, b, x []float64, params CGParams) (CGResult, error) {
	if a.Rows != a.Cols {
		return CGResult{}, ErrNotSquare
	}
	n := a.Rows
	if len(mMat.Diag) != n || len(b) != n || len(x) != n {
		return CGResult{}, ErrDimensionMismatch
	}
	op := &shiftedOperator{m: mMat, alpha: alpha, a: a, beta: beta}
	diag := make([]float64, n)
	aDiag := extractDiag(a)
	for i := 0; i < n; i++ {
		diag[i] = alpha*mMat.Diag[i] + beta*aDiag[i]
	}
	return solveCG(n, op, diag, b, x, params), nil
}

// shiftedOperator implements linearOperator for C = αM + βA.
type shiftedOperator struct {
	m     *DiagonalMatrix
	alpha float64
	a     *SparseMatrix
	beta  float64
}

func (op *shiftedOperator) Multiply(x, y []float64) {
	n := len(x)
	tmp := make([]float64, n)
	op.a.Multiply(x, tmp)
	for i := 0; i < n; i++ {
		y[i] = op.alpha*op.m.Diag[i]*x[i] + op.beta*tmp[i]
	}
}

func extractDiag(a *SparseMatrix) []float64 {
	diag := make([]float64, a.Rows)
	for i := 0; i < a.Rows; i++ {
		for k := a.RowOffsets[i]; k < a.RowOffsets[i+1]; k++ {
			if a.ColIndices[k] == i {
				diag[i] = a.Values[k]
				break
			}
		}
	}
	return diag
}

func solveCG(n int, op linearOperator, diag []float64, b, x []float64, params CGParams) CGResult {
	mInv := make([]float64, n)
	for i := 0; i < n; i++ {
		if math.Abs(diag[i]) > 1e-15 {
			mInv[i] = 1 / diag[i]
		} else {
			mInv[i] = 1
		}
	}

	r := make([]float64, n)
	ax := make([]float64, n)
	op.Multiply(x, ax)
	for i := 0; i < n; i++ {
		r[i] = b[i] - ax[i]
	}

	z := make([]float64, n)
	applyDiag(mInv, r, z)
	p := make([]float64, n)
	copy(p, z)
	rho := dot(r, z)

	tol := params.Tolerance * math.Max(norm(b), 1)

	result := CGResult{}
	ap := make([]float64, n)
	for iter := 0; iter < params.MaxIterations; iter++ {
		rn := norm(r)
		result.Iterations = iter + 1
		result.ResidualNorm = rn
		if rn < tol {
			result.Converged = true
			return result
		}

		op.Multiply(p, ap)
		pAp := dot(p, ap)
		if math.Abs(pAp) < 1e-30 {
			break
		}
		alpha := rho / pAp

		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		applyDiag(mInv, r, z)
		rhoNew := dot(r, z)
		beta := rhoNew / rho
		for i := 0; i < n; i++ {
			p[i] = z[i] + beta*p[i]
		}
		rho = rhoNew
	}

	return result
}

func applyDiag(diag, x, y []float64) {
	for i := range x {
		y[i] = diag[i] * x[i]
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
