package geometry2D

import (
	"fmt"
	"math"

	"github.com/notargets/gocst/utils"
	"gonum.org/v1/gonum/spatial/r2"
)

// CurveCurvature estimates the signed curvature at every point of the curve
// from the circle through each point and its two neighbours. Counter
// clockwise turning is positive. The end points copy their neighbour.
func CurveCurvature(x, y []float64) (curv []float64, err error) {
	var (
		nn = len(x)
	)
	if len(y) != nn {
		err = fmt.Errorf("%w: curvature of %d x values and %d y values",
			ErrDegenerateGeometry, nn, len(y))
		return
	}
	if nn < 3 {
		err = fmt.Errorf("%w: curvature needs at least 3 points, have %d",
			ErrDegenerateGeometry, nn)
		return
	}
	curv = make([]float64, nn)
	for i := 1; i < nn-1; i++ {
		curv[i] = threePointCurvature(
			r2.Vec{X: x[i-1], Y: y[i-1]},
			r2.Vec{X: x[i], Y: y[i]},
			r2.Vec{X: x[i+1], Y: y[i+1]})
	}
	curv[0] = curv[1]
	curv[nn-1] = curv[nn-2]
	return
}

// threePointCurvature is 1/R of the circumscribed circle, R = abc/(4*Area).
// The area comes from the cancellation free form of Heron's formula.
func threePointCurvature(X1, X2, X3 r2.Vec) (k float64) {
	var (
		a = r2.Norm(r2.Sub(X1, X2))
		b = r2.Norm(r2.Sub(X2, X3))
		c = r2.Norm(r2.Sub(X3, X1))
	)
	abc := a * b * c
	if abc <= utils.TRIANGLETOL {
		return 0
	}
	area := r2.Triangle{X1, X2, X3}.Area()
	if math.IsNaN(area) {
		// Rounding pushed a collinear triple below zero area
		return 0
	}
	k = 4 * area / abc
	if r2.Cross(r2.Sub(X2, X1), r2.Sub(X3, X1)) < 0 {
		k = -k
	}
	return
}
