package CST

import (
	"fmt"
	"math"

	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// FitCurve returns the nCST coefficients that best reproduce (x, y) in the
// least squares sense. x is rescaled to [0,1] and y by the same length, and
// the linear trailing offset x*y[last] is removed before fitting, so the
// curve may end at a non zero value. y[0] must be 0.
func FitCurve(x, y []float64, nCST int) ([]float64, error) {
	return FitCurveClass(x, y, nCST, DefaultClass)
}

func FitCurveClass(x, y []float64, nCST int, cf ClassFunction) (coef []float64, err error) {
	var (
		nn = len(x)
	)
	if err = checkFitShape(x, y, nCST); err != nil {
		return
	}
	L := x[nn-1] - x[0]
	if L == 0 {
		err = fmt.Errorf("%w: curve to fit has zero length", geometry2D.ErrDegenerateGeometry)
		return
	}
	var (
		x_ = make([]float64, nn)
		b  = make([]float64, nn)
		A  = mat.NewDense(nn, nCST, nil)
	)
	yTail := (y[nn-1] - y[0]) / L
	for ip := range x {
		x_[ip] = (x[ip] - x[0]) / L
		b[ip] = (y[ip]-y[0])/L - x_[ip]*yTail
		cf.basisRow(x_[ip], nCST, 0, nCST, A.RawRowView(ip))
	}
	return solve(A, b)
}

// FitCurvePartial fits the coefficients ic0..ic1-1 to the points
// ip0..ip1-1 of a unit curve, the other coefficients staying zero. No
// scaling or tail removal is applied. ip1 <= ip0 selects all points and
// ic1 <= ic0 selects all coefficients. The result always has nCST entries.
func FitCurvePartial(x, y []float64, ip0, ip1, nCST, ic0, ic1 int, cf ClassFunction) (coef []float64, err error) {
	if err = checkFitShape(x, y, nCST); err != nil {
		return
	}
	ip0 = max(0, ip0)
	if ip1 <= ip0 || ip1 > len(x) {
		ip1 = len(x)
	}
	ic0 = max(0, ic0)
	if ic1 <= ic0 || ic1 > nCST {
		ic1 = nCST
	}
	if ip0 >= ip1 || ic0 >= ic1 {
		err = fmt.Errorf("%w: empty partial fit, points [%d,%d) coefficients [%d,%d)",
			ErrShapeMismatch, ip0, ip1, ic0, ic1)
		return
	}
	A := mat.NewDense(ip1-ip0, ic1-ic0, nil)
	for ip := ip0; ip < ip1; ip++ {
		cf.basisRow(x[ip], nCST, ic0, ic1, A.RawRowView(ip-ip0))
	}
	var part []float64
	if part, err = solve(A, y[ip0:ip1]); err != nil {
		return
	}
	coef = make([]float64, nCST)
	copy(coef[ic0:ic1], part)
	return
}

// TwistFit is the result of fitting a curve that is not a unit chord
// section: the chord and twist (degrees about +z) taken out before fitting,
// and the maximum y of the unit curve.
type TwistFit struct {
	Coef  []float64
	Chord float64
	Twist float64
	Thick float64
}

// FitCurveWithTwist takes the chord and twist from the curve end points,
// maps the curve onto the unit chord and fits it.
func FitCurveWithTwist(x, y []float64, nCST int, cf ClassFunction) (tf TwistFit, err error) {
	var (
		nn = len(x)
	)
	if err = checkFitShape(x, y, nCST); err != nil {
		return
	}
	dx, dy := x[nn-1]-x[0], y[nn-1]-y[0]
	tf.Chord = math.Hypot(dx, dy)
	if tf.Chord == 0 || dx == 0 {
		err = fmt.Errorf("%w: curve ends coincide or are vertical", geometry2D.ErrDegenerateGeometry)
		return
	}
	tf.Twist = math.Atan(dy/dx) * 180 / math.Pi
	var (
		xs = make([]float64, nn)
		ys = make([]float64, nn)
	)
	for i := range x {
		xs[i] = (x[i] - x[0]) / tf.Chord
		ys[i] = (y[i] - y[0]) / tf.Chord
	}
	xs, ys = geometry2D.Rotate(xs, ys, -tf.Twist, r2.Vec{})
	tf.Thick = floats.Max(ys)
	tf.Coef, err = FitCurveClass(xs, ys, nCST, cf)
	return
}

func checkFitShape(x, y []float64, nCST int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values and %d y values", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: fitting needs at least 2 points, have %d", ErrShapeMismatch, len(x))
	}
	if nCST < 1 {
		return fmt.Errorf("%w: fitting needs at least 1 coefficient", ErrShapeMismatch)
	}
	if utils.IsNan(x) || utils.IsNan(y) {
		return ErrNonFinite
	}
	return nil
}

func solve(A *mat.Dense, b []float64) (coef []float64, err error) {
	var rank int
	if coef, rank, err = utils.LeastSquares(A, b); err != nil {
		return
	}
	if _, nc := A.Dims(); rank < nc {
		tracer().Debugf("CST fit is rank deficient (%d of %d), using minimum norm solution", rank, nc)
	}
	return
}
