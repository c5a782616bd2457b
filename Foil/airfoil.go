package Foil

import (
	"fmt"
	"math"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/types"
	"github.com/notargets/gocst/utils"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

func tracer() tracing.Trace {
	return tracing.Select("foil")
}

// XRLE is the chordwise station used to estimate the leading edge radius.
const XRLE = 0.005

// Airfoil is a unit chord airfoil sampled on one shared x distribution. It
// owns all of its slices.
type Airfoil struct {
	X, YU, YL []float64
	// T0 is the maximum thickness, the target one when a target was given
	T0      float64
	RLE     float64 // leading edge radius
	TEAngle float64 // degrees between the surfaces at the trailing edge
	TESlope float64 // dy/dx of the camber line at the trailing edge
	Tail    float64
	// Coefficients the airfoil was built from, nil for fitted or
	// perturbed geometry without coefficients
	CSTU, CSTL []float64
}

// BuildAirfoil assembles an airfoil from upper and lower CST coefficients.
// The curves are scaled to the target thickness t when one is given, then a
// linear tail of total height tail is added, and the leading edge radius is
// taken from the circle through the nose and both surfaces at x=XRLE.
// A nil x selects the default clustered distribution.
func BuildAirfoil(nn int, cstU, cstL, x []float64, t types.Optional[float64], tail float64) (af Airfoil, err error) {
	var (
		cu, cl CST.Curve
	)
	if cu, err = CST.NewCurve(nn, cstU, x); err != nil {
		return
	}
	if cl, err = CST.NewCurve(nn, cstL, cu.X); err != nil {
		return
	}
	af = Airfoil{
		X:    cu.X,
		YU:   cu.Y,
		YL:   cl.Y,
		Tail: tail,
		CSTU: utils.Copy(cstU),
		CSTL: utils.Copy(cstL),
	}
	it, t0 := MaxThickness(af.YU, af.YL)
	if target, ok := t.Get(); ok {
		r := (target - tail*af.X[it]) / t0
		floats.Scale(r, af.YU)
		floats.Scale(r, af.YL)
		t0 = target
	}
	addTail(af.X, af.YU, af.YL, tail)
	if !t.IsSet() {
		_, t0 = MaxThickness(af.YU, af.YL)
	}
	af.T0 = t0
	if af.RLE, err = LeadingEdgeRadius(af.X, af.YU, af.YL); err != nil {
		return
	}
	af.TEAngle, af.TESlope = TrailingEdge(af.X, af.YU, af.YL)
	return
}

// Copy returns an airfoil sharing no storage with af.
func (af Airfoil) Copy() Airfoil {
	out := af
	out.X, out.YU, out.YL = utils.Copy(af.X), utils.Copy(af.YU), utils.Copy(af.YL)
	out.CSTU, out.CSTL = utils.Copy(af.CSTU), utils.Copy(af.CSTL)
	return out
}

func (af Airfoil) Thickness() (th []float64) {
	th = make([]float64, len(af.X))
	floats.SubTo(th, af.YU, af.YL)
	return
}

func (af Airfoil) Camber() (cam []float64) {
	cam = make([]float64, len(af.X))
	floats.AddTo(cam, af.YU, af.YL)
	floats.Scale(0.5, cam)
	return
}

// CheckValid applies the plausibility rules to the airfoil.
func (af Airfoil) CheckValid(negThicknessTol float64) (ValidityReport, error) {
	return CheckValid(af.X, af.YU, af.YL, af.RLE, negThicknessTol)
}

// LeadingEdgeRadius is the radius of the circle through the origin and both
// surfaces interpolated at x=XRLE.
func LeadingEdgeRadius(x, yu, yl []float64) (R float64, err error) {
	var (
		yuLE, ylLE []float64
	)
	if yuLE, err = geometry2D.InterpolateFromCurve(x, yu, XRLE); err != nil {
		return
	}
	if ylLE, err = geometry2D.InterpolateFromCurve(x, yl, XRLE); err != nil {
		return
	}
	R, _, err = geometry2D.FindCircle3P(r2.Vec{},
		r2.Vec{X: XRLE, Y: yuLE[0]}, r2.Vec{X: XRLE, Y: ylLE[0]})
	if err != nil {
		err = fmt.Errorf("leading edge radius: %w", err)
	}
	return
}

// TrailingEdge measures the wedge angle (degrees) and the camber slope over
// the last four intervals. Fewer than 5 points give zeros.
func TrailingEdge(x, yu, yl []float64) (angle, slope float64) {
	var (
		n = len(x)
	)
	if n < 5 {
		return
	}
	var (
		dx = x[n-1] - x[n-5]
		a1 = r2.Vec{X: dx, Y: yu[n-1] - yu[n-5]}
		a2 = r2.Vec{X: dx, Y: yl[n-1] - yl[n-5]}
	)
	cos := math.Max(-1, math.Min(1, r2.Cos(a1, a2)))
	angle = math.Acos(cos) * 180 / math.Pi
	slope = 0.5 * ((yu[n-1] + yl[n-1]) - (yu[n-5] + yl[n-5])) / dx
	return
}

// MaxThickness returns the first index of the largest yu-yl and its value.
func MaxThickness(yu, yl []float64) (it int, t0 float64) {
	t0 = math.Inf(-1)
	for i := range yu {
		if th := yu[i] - yl[i]; th > t0 {
			it, t0 = i, th
		}
	}
	return
}

func addTail(x, yu, yl []float64, tail float64) {
	for i := range x {
		yu[i] += 0.5 * tail * x[i]
		yl[i] -= 0.5 * tail * x[i]
	}
}
