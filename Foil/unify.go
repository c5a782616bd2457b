package Foil

import (
	"fmt"
	"math"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/utils"
	"gonum.org/v1/gonum/spatial/r2"
)

// Unified is an airfoil moved to the unit chord by UnifyFoil, along with
// the transform that was taken out.
type Unified struct {
	XU, YU, XL, YL []float64
	Twist          float64 // degrees
	Chord          float64
	Tail           float64 // relative to the chord
}

// UnifyFoil translates the shared leading edge to the origin, removes the
// twist, scales to unit chord and removes the tail. Upper and lower must
// start at the same point.
func UnifyFoil(xu, yu, xl, yl []float64) (uf Unified, err error) {
	if len(xu) != len(yu) || len(xl) != len(yl) || len(xu) < 2 || len(xl) < 2 {
		err = fmt.Errorf("%w: upper %d/%d and lower %d/%d points",
			CST.ErrShapeMismatch, len(xu), len(yu), len(xl), len(yl))
		return
	}
	if math.Abs(xu[0]-xl[0]) > utils.LETOL || math.Abs(yu[0]-yl[0]) > utils.LETOL {
		err = fmt.Errorf("%w: upper (%g,%g) and lower (%g,%g) leading edges differ",
			geometry2D.ErrDegenerateGeometry, xu[0], yu[0], xl[0], yl[0])
		return
	}
	shift := func(v []float64) (s []float64) {
		s = make([]float64, len(v))
		for i := range v {
			s[i] = v[i] - v[0]
		}
		return
	}
	var (
		xu_, yu_ = shift(xu), shift(yu)
		xl_, yl_ = shift(xl), shift(yl)
		nu, nl   = len(xu) - 1, len(xl) - 1
		xTE      = 0.5 * (xu_[nu] + xl_[nl])
		yTE      = 0.5 * (yu_[nu] + yl_[nl])
	)
	if xTE == 0 {
		err = fmt.Errorf("%w: trailing edge above the leading edge", geometry2D.ErrDegenerateGeometry)
		return
	}
	uf.Twist = math.Atan(yTE/xTE) * 180 / math.Pi
	uf.Chord = math.Hypot(xTE, yTE)

	xu_, yu_ = geometry2D.Rotate(xu_, yu_, -uf.Twist, r2.Vec{})
	xl_, yl_ = geometry2D.Rotate(xl_, yl_, -uf.Twist, r2.Vec{})

	scale := func(x, y []float64) {
		L := x[len(x)-1]
		for i := range x {
			x[i] /= L
			y[i] /= L
		}
	}
	scale(xu_, yu_)
	scale(xl_, yl_)

	uf.Tail = math.Abs(yu_[nu]) + math.Abs(yl_[nl])
	removeTail := func(x, y []float64) {
		yEnd := y[len(y)-1]
		for i := range y {
			y[i] -= x[i] * yEnd
		}
	}
	removeTail(xu_, yu_)
	removeTail(xl_, yl_)
	uf.XU, uf.YU, uf.XL, uf.YL = xu_, yu_, xl_, yl_
	return
}

// FitFoil fits nCST coefficients to each surface. The surfaces may have a
// tail and any chord, but must start at y=0.
func FitFoil(xu, yu, xl, yl []float64, nCST int) (cstU, cstL []float64, err error) {
	if cstU, err = CST.FitCurve(xu, yu, nCST); err != nil {
		err = fmt.Errorf("upper surface: %w", err)
		return
	}
	if cstL, err = CST.FitCurve(xl, yl, nCST); err != nil {
		err = fmt.Errorf("lower surface: %w", err)
	}
	return
}
