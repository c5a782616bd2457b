package geometry2D

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// InterpolateFromCurve evaluates the not-a-knot cubic spline through (x, y)
// at each of x0. x must be strictly increasing and hold at least 4 points.
func InterpolateFromCurve(x, y []float64, x0 ...float64) (y0 []float64, err error) {
	var (
		nn     = len(x)
		spline interp.NotAKnotCubic
	)
	if len(y) != nn {
		err = fmt.Errorf("%w: interpolation of %d x values and %d y values",
			ErrDegenerateGeometry, nn, len(y))
		return
	}
	if nn < 4 {
		err = fmt.Errorf("%w: cubic interpolation needs at least 4 points, have %d",
			ErrDegenerateGeometry, nn)
		return
	}
	for i := 1; i < nn; i++ {
		if x[i] <= x[i-1] {
			err = fmt.Errorf("%w: interpolation abscissa not increasing at %d (%g <= %g)",
				ErrDegenerateGeometry, i, x[i], x[i-1])
			return
		}
	}
	if err = spline.Fit(x, y); err != nil {
		err = fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
		return
	}
	y0 = make([]float64, len(x0))
	for i, xv := range x0 {
		y0[i] = spline.Predict(xv)
	}
	return
}

// InterpolateLinear evaluates the piecewise linear curve through (x, y) at
// each of x0, holding the end values outside the sampled range.
func InterpolateLinear(x, y []float64, x0 ...float64) (y0 []float64, err error) {
	var pl interp.PiecewiseLinear
	if len(x) != len(y) || len(x) < 2 {
		err = fmt.Errorf("%w: linear interpolation of %d x values and %d y values",
			ErrDegenerateGeometry, len(x), len(y))
		return
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			err = fmt.Errorf("%w: interpolation abscissa not increasing at %d",
				ErrDegenerateGeometry, i)
			return
		}
	}
	if err = pl.Fit(x, y); err != nil {
		err = fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
		return
	}
	y0 = make([]float64, len(x0))
	for i, xv := range x0 {
		y0[i] = pl.Predict(xv)
	}
	return
}
