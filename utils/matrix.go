package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LeastSquares returns the minimum norm solution of min ||A x - b||.
// Singular values at or below eps*max(m,n)*sigmaMax are treated as zero, so
// rank deficient and underdetermined systems are solved without failing.
// A zero matrix yields x = 0 and rank 0.
func LeastSquares(A mat.Matrix, b []float64) (x []float64, rank int, err error) {
	var (
		m, n = A.Dims()
		svd  mat.SVD
	)
	if len(b) != m {
		err = fmt.Errorf("least squares: rhs length %d does not match %d rows", len(b), m)
		return
	}
	x = make([]float64, n)
	if m == 0 || n == 0 {
		return
	}
	if !svd.Factorize(A, mat.SVDThin) {
		err = fmt.Errorf("least squares: SVD factorization of %dx%d system failed", m, n)
		return
	}
	rcond := (math.Nextafter(1, 2) - 1) * float64(max(m, n))
	if rank = svd.Rank(rcond); rank == 0 {
		return
	}
	svd.SolveVecTo(mat.NewVecDense(n, x), mat.NewVecDense(m, b), rank)
	return
}
