package dec

// Multiply computes y = D·x.
func (d *DiagonalMatrix) Multiply(x, y []float64) {
	for i, v := range d.Diag {
		y[i] = v * x[i]
	}
}

// MultiplyInverse computes y[i] = x[i]/Diag[i] where |Diag[i]| >= eps,
// else y[i] = 0.
func (d *DiagonalMatrix) MultiplyInverse(x, y []float64, eps float64) {
	for i, v := range d.Diag {
		if v < 0 {
			v = -v
		}
		if v >= eps {
			y[i] = x[i] / d.Diag[i]
		} else {
			y[i] = 0
		}
	}
}
