package timeseries

import "math"

// Correlation computes the Pearson correlation coefficient between two value
// columns. Returns false for mismatched or too-short inputs and for columns
// without variance, where the coefficient is undefined.
func Correlation(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}

	n := float64(len(x))
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var num, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0, false
	}
	return num / math.Sqrt(varX*varY), true
}
