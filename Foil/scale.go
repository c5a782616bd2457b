package Foil

import (
	"fmt"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/types"
	"github.com/notargets/gocst/utils"
	"gonum.org/v1/gonum/floats"
)

// ScaleCST scales the coefficients of an airfoil built without a thickness
// target so that the rebuilt airfoil has maximum thickness t once a tail of
// height tail is added.
func ScaleCST(x, yu, yl, cstU, cstL []float64, t, tail float64) (cstUNew, cstLNew []float64) {
	it, t0 := MaxThickness(yu, yl)
	r := (t - tail*x[it]) / t0
	cstUNew, cstLNew = utils.Copy(cstU), utils.Copy(cstL)
	floats.Scale(r, cstUNew)
	floats.Scale(r, cstLNew)
	return
}

// IncrementCurve adds the incremental curves yuInc and ylInc (nil for none)
// to the airfoil with its tail removed, optionally rescales to thickness t
// and puts the tail back. The base surfaces yu and yl are required.
func IncrementCurve(x, yu, yl, yuInc, ylInc []float64, t types.Optional[float64]) (yuNew, ylNew []float64, err error) {
	var (
		nn = len(x)
	)
	if nn == 0 || yu == nil || yl == nil {
		err = fmt.Errorf("%w: increment needs both base surfaces on at least one point",
			CST.ErrShapeMismatch)
		return
	}
	for _, s := range [][]float64{yu, yl, yuInc, ylInc} {
		if s != nil && len(s) != nn {
			err = fmt.Errorf("%w: increment of %d points with a %d point curve",
				CST.ErrShapeMismatch, nn, len(s))
			return
		}
	}
	yuNew, ylNew = utils.Copy(yu), utils.Copy(yl)
	tail := yuNew[nn-1] - ylNew[nn-1]
	if tail > 0 {
		addTail(x, yuNew, ylNew, -tail)
	}
	if yuInc != nil {
		floats.Add(yuNew, yuInc)
	}
	if ylInc != nil {
		floats.Add(ylNew, ylInc)
	}
	if target, ok := t.Get(); ok {
		it, t0 := MaxThickness(yuNew, ylNew)
		r := (target - tail*x[it]) / t0
		floats.Scale(r, yuNew)
		floats.Scale(r, ylNew)
	}
	if tail > 0 {
		addTail(x, yuNew, ylNew, tail)
	}
	return
}

// Increment is IncrementCurve with the increments given as CST
// coefficients, either of which may be nil.
func Increment(x, yu, yl, cstU, cstL []float64, t types.Optional[float64]) (yuNew, ylNew []float64, err error) {
	var (
		yuInc, ylInc []float64
		c            CST.Curve
	)
	if cstU != nil {
		if c, err = CST.NewCurve(len(x), cstU, x); err != nil {
			return
		}
		yuInc = c.Y
	}
	if cstL != nil {
		if c, err = CST.NewCurve(len(x), cstL, x); err != nil {
			return
		}
		ylInc = c.Y
	}
	return IncrementCurve(x, yu, yl, yuInc, ylInc, t)
}
