package fcm

import (
	"gonum.org/v1/gonum/floats"
)

// Distance returns the Euclidean distance sqrt(Σ_k (a_k − b_k)^2).
// It panics if len(a) != len(b), like floats.Distance; the kernels in this
// package validate shapes before calling it. The result is exactly zero only
// when a and b are equal, and it does not underflow for tiny distinct points.
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
