package dec

// Multiply computes y = A·x.
func (a *SparseMatrix) Multiply(x, y []float64) {
	for i := 0; i < a.Rows; i++ {
		var sum float64
		for k := a.RowOffsets[i]; k < a.RowOffsets[i+1]; k++ {
			sum += a.Values[k] * x[a.ColIndices[k]]
		}
		y[i] = sum
	}
}

// MultiplyTranspose computes y = Aᵀ·x by zeroing y and scattering each
// row's contribution into its column positions.
func (a *SparseMatrix) MultiplyTranspose(x, y []float64) {
	for i := range y {
		y[i] = 0
	}
	for i := 0; i < a.Rows; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		for k := a.RowOffsets[i]; k < a.RowOffsets[i+1]; k++ {
			y[a.ColIndices[k]] += a.Values[k] * xi
		}
	}
}

// Nnz reports the number of stored nonzeros.
func (a *SparseMatrix) Nnz() int { return len(a.Values) }
