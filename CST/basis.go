package CST

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gocst/utils"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

func tracer() tracing.Trace {
	return tracing.Select("cst")
}

// ErrShapeMismatch is returned when array sizes disagree with the requested
// point or coefficient counts.
var ErrShapeMismatch = errors.New("shape mismatch")

var ErrNonFinite = errors.New("non-finite coordinates")

// ClassFunction is C(x) = x^N1 * (1-x)^N2. The default round nose, sharp
// tail airfoil class is N1 = 0.5, N2 = 1.
type ClassFunction struct {
	N1, N2 float64
}

var DefaultClass = ClassFunction{N1: 0.5, N2: 1}

func (cf ClassFunction) At(x float64) float64 {
	return math.Pow(x, cf.N1) * math.Pow(1-x, cf.N2)
}

// basisRow fills row with the class weighted Bernstein terms ic0..ic1-1 of
// degree nCST-1 at x.
func (cf ClassFunction) basisRow(x float64, nCST, ic0, ic1 int, row []float64) {
	var (
		c   = cf.At(x)
		deg = nCST - 1
	)
	for i := ic0; i < ic1; i++ {
		row[i-ic0] = float64(combin.Binomial(deg, i)) *
			utils.POW(x, i) * utils.POW(1-x, deg-i) * c
	}
}

// Curve is a sampled 2D curve. Curves are values, Copy before mutating a
// shared one.
type Curve struct {
	X, Y []float64
}

func (c Curve) Len() int { return len(c.X) }

func (c Curve) Copy() Curve {
	return Curve{X: utils.Copy(c.X), Y: utils.Copy(c.Y)}
}

func (c Curve) Equal(o Curve) bool {
	return floats.Equal(c.X, o.X) && floats.Equal(c.Y, o.Y)
}

// NewCurve evaluates the CST curve with coefficients coef at nn points. A
// nil x selects the default clustered distribution, otherwise x must hold
// nn values in [0,1]. The end values of y are exactly 0.
func NewCurve(nn int, coef, x []float64) (Curve, error) {
	return NewCurveClass(nn, coef, x, DefaultClass)
}

func NewCurveClass(nn int, coef, x []float64, cf ClassFunction) (c Curve, err error) {
	var (
		nCST = len(coef)
	)
	if nn < 2 {
		err = fmt.Errorf("%w: a curve needs at least 2 points, have %d", ErrShapeMismatch, nn)
		return
	}
	if nCST < 1 {
		err = fmt.Errorf("%w: no CST coefficients", ErrShapeMismatch)
		return
	}
	if x == nil {
		c.X = DistClustCos(nn)
	} else {
		if len(x) != nn {
			err = fmt.Errorf("%w: point distribution has %d values, want %d",
				ErrShapeMismatch, len(x), nn)
			return
		}
		c.X = utils.Copy(x)
	}
	c.Y = make([]float64, nn)
	row := make([]float64, nCST)
	for ip, xv := range c.X {
		cf.basisRow(xv, nCST, 0, nCST, row)
		c.Y[ip] = floats.Dot(row, coef)
	}
	c.Y[0], c.Y[nn-1] = 0, 0
	return
}
