package Foil

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/types"
	"github.com/notargets/gocst/utils"
	"gonum.org/v1/gonum/floats"
)

type BumpKind uint8

const (
	// BumpAuto picks Hicks-Henne within 10% of either end, Gaussian elsewhere
	BumpAuto BumpKind = iota
	BumpGaussian
	BumpHicksHenne
)

func (bk BumpKind) String() string {
	switch bk {
	case BumpAuto:
		return "auto"
	case BumpGaussian:
		return "gaussian"
	case BumpHicksHenne:
		return "hicks-henne"
	}
	return fmt.Sprintf("BumpKind(%d)", uint8(bk))
}

func NewBumpKind(label string) (bk BumpKind, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "auto":
		return BumpAuto, nil
	case "g", "gaussian":
		return BumpGaussian, nil
	case "h", "hicks-henne", "hickshenne":
		return BumpHicksHenne, nil
	}
	err = fmt.Errorf("unknown bump kind %q", label)
	return
}

// Resolve maps BumpAuto to the concrete kind used for a centre xc.
func (bk BumpKind) Resolve(xc float64) BumpKind {
	if bk != BumpAuto {
		return bk
	}
	if xc < 0.1 || xc > 0.9 {
		return BumpHicksHenne
	}
	return BumpGaussian
}

const (
	hicksHenneMaxPower = 100
	hicksHenneSamples  = 201
	hicksHenneLevel    = 0.01
)

// BumpSpec is a localized perturbation centred at XC with height H and
// span S on one side of an airfoil.
type BumpSpec struct {
	XC, H, S float64
	Side     types.Side
	Kind     BumpKind
}

// AddBump returns a copy of y with a bump of height h and span s centred
// at xc. A centre outside (0,1) is traced and y is returned unchanged.
func AddBump(x, y []float64, xc, h, s float64, kind BumpKind) (yNew []float64) {
	yNew = utils.Copy(y)
	if xc <= 0 || xc >= 1 {
		tracer().Errorf("bump location not valid (0,1): xc = %.3f", xc)
		return
	}
	switch kind.Resolve(xc) {
	case BumpGaussian:
		for i, xv := range x {
			var sigma float64
			switch {
			case xc-s < 0 && xv < xc:
				sigma = xc / 3.5
			case xc+s > 1 && xv > xc:
				sigma = (1 - xc) / 3.5
			default:
				sigma = s / 6
			}
			yNew[i] += h * math.Exp(-(xv-xc)*(xv-xc)/(2*sigma*sigma))
		}
	case BumpHicksHenne:
		var (
			e   = math.Log(0.5) / math.Log(xc)
			pow = hicksHennePower(xc, s, e)
		)
		for i, xv := range x {
			yNew[i] += h * utils.POW(math.Sin(math.Pi*math.Pow(xv, e)), pow)
		}
	}
	return
}

// hicksHennePower steps the power up from 1 while the bump span at 1% of the
// peak exceeds s. The power is incremented after each span measurement, so
// the result is one above the first power whose span fits, at most
// hicksHenneMaxPower.
func hicksHennePower(xc, s, e float64) (pow int) {
	span := 1.
	for pow = 1; pow < hicksHenneMaxPower && span > s; pow++ {
		span = hicksHenneSpan(xc, e, pow)
	}
	return
}

func hicksHenneSpan(xc, e float64, pow int) float64 {
	var (
		x1, x2 = -1., -1.
		dx     = 1. / float64(hicksHenneSamples-1)
	)
	for i := 0; i < hicksHenneSamples; i++ {
		xx := float64(i) * dx
		yy := utils.POW(math.Sin(math.Pi*math.Pow(xx, e)), pow)
		if yy > hicksHenneLevel && x1 < 0 && xx < xc {
			x1 = xx
		}
		if yy < hicksHenneLevel && x2 < 0 && xx > xc {
			x2 = xx
		}
	}
	if x2 < 0 {
		x2 = 1
	}
	return x2 - x1
}

// ApplyBump returns a new curve with the bump added, using the absolute
// height bs.H.
func ApplyBump(c CST.Curve, bs BumpSpec) CST.Curve {
	return CST.Curve{X: utils.Copy(c.X), Y: AddBump(c.X, c.Y, bs.XC, bs.H, bs.S, bs.Kind)}
}

// BumpedFoil is the result of FoilBumpModify. The coefficients are only set
// when a refit was requested.
type BumpedFoil struct {
	YU, YL     []float64
	CSTU, CSTL []float64
}

// FoilBumpModify adds the bump to one side of the airfoil with its height
// relative to the maximum thickness. With keepTMax the opposite side is
// rescaled so the maximum thickness is unchanged. With nCST > 0 both sides
// are refitted and rebuilt with the original tail.
func FoilBumpModify(x, yu, yl []float64, bs BumpSpec, nCST int, keepTMax bool) (bf BumpedFoil, err error) {
	var (
		nn = len(x)
	)
	if len(yu) != nn || len(yl) != nn || nn < 2 {
		err = fmt.Errorf("%w: bump on %d/%d/%d points", CST.ErrShapeMismatch, nn, len(yu), len(yl))
		return
	}
	bf.YU, bf.YL = utils.Copy(yu), utils.Copy(yl)
	_, t0 := MaxThickness(yu, yl)
	kind := bs.Kind.Resolve(bs.XC)
	if bs.Side == types.Upper {
		bf.YU = AddBump(x, bf.YU, bs.XC, bs.H*t0, bs.S, kind)
	} else {
		bf.YL = AddBump(x, bf.YL, bs.XC, bs.H*t0, bs.S, kind)
	}
	target := types.Some(t0)
	if keepTMax {
		it, _ := MaxThickness(bf.YU, bf.YL)
		tu, tl := math.Abs(bf.YU[it]), math.Abs(bf.YL[it])
		switch {
		case bs.Side == types.Upper && tl > 0:
			floats.Scale((t0-tu)/tl, bf.YL)
		case bs.Side == types.Lower && tu > 0:
			floats.Scale((t0-tl)/tu, bf.YU)
		default:
			tracer().Infof("bump: %s side is zero at max thickness, not rescaled", bs.Side.Opposite())
		}
		target = types.None[float64]()
	}
	if nCST > 0 {
		tail := yu[nn-1] - yl[nn-1]
		if bf.CSTU, bf.CSTL, err = FitFoil(x, bf.YU, x, bf.YL, nCST); err != nil {
			return
		}
		var af Airfoil
		if af, err = BuildAirfoil(nn, bf.CSTU, bf.CSTL, x, target, tail); err != nil {
			return
		}
		bf.YU, bf.YL = af.YU, af.YL
	}
	return
}
