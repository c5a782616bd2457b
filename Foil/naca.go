package Foil

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/interp"
)

// NACA thickness polynomial, closed trailing edge
var nacaThickness = [5]float64{0.2969, -0.1260, -0.3516, 0.2843, -0.1036}

// NACA 5-digit camber line tables: design camber position P, the matching
// m and the k1 constant for a design lift coefficient of 0.3.
var (
	naca5P = []float64{0.05, 0.1, 0.15, 0.2, 0.25}
	naca5M = []float64{0.0580, 0.1260, 0.2025, 0.2900, 0.3910}
	naca5K = []float64{361.4, 51.64, 15.957, 6.643, 3.230}
)

// NACASurfaces are the upper and lower surfaces of a NACA airfoil, both
// running from the leading edge to the trailing edge.
type NACASurfaces struct {
	XU, YU, XL, YL []float64
}

// NACA generates a 4 or 5 digit NACA airfoil with n+1 half cosine spaced
// stations per surface and a closed trailing edge.
func NACA(series string, n int) (ns NACASurfaces, err error) {
	if n < 2 {
		err = fmt.Errorf("NACA %s: need at least 2 intervals, have %d", series, n)
		return
	}
	for _, r := range series {
		if r < '0' || r > '9' {
			err = fmt.Errorf("NACA %q: series must be all digits", series)
			return
		}
	}
	var (
		x = make([]float64, n+1)
	)
	for i := range x {
		x[i] = 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(n)))
	}
	x[n] = 1
	var camber func(x float64) (yc, dyc float64)
	var t float64
	switch len(series) {
	case 4:
		var (
			m = digits(series[0:1]) / 100
			p = digits(series[1:2]) / 10
		)
		t = digits(series[2:4]) / 100
		camber = naca4Camber(m, p)
	case 5:
		var (
			cld = digits(series[0:1]) * 0.15
			p   = 0.5 * digits(series[1:3]) / 100
		)
		t = digits(series[3:5]) / 100
		if camber, err = naca5Camber(cld, p); err != nil {
			err = fmt.Errorf("NACA %s: %w", series, err)
			return
		}
	default:
		err = fmt.Errorf("NACA %q: only 4 and 5 digit series are supported", series)
		return
	}
	ns = NACASurfaces{
		XU: make([]float64, n+1), YU: make([]float64, n+1),
		XL: make([]float64, n+1), YL: make([]float64, n+1),
	}
	for i, xx := range x {
		a := nacaThickness
		yt := 5 * t * (a[0]*math.Sqrt(xx) + a[1]*xx + a[2]*xx*xx + a[3]*xx*xx*xx + a[4]*xx*xx*xx*xx)
		yc, dyc := camber(xx)
		theta := math.Atan(dyc)
		sin, cos := math.Sincos(theta)
		ns.XU[i], ns.YU[i] = xx-yt*sin, yc+yt*cos
		ns.XL[i], ns.YL[i] = xx+yt*sin, yc-yt*cos
	}
	return
}

func digits(s string) float64 {
	v, _ := strconv.Atoi(s)
	return float64(v)
}

func naca4Camber(m, p float64) func(float64) (float64, float64) {
	return func(x float64) (yc, dyc float64) {
		switch {
		case m == 0 || p == 0:
			return 0, 0
		case x <= p:
			return m / (p * p) * x * (2*p - x), m / (p * p) * (2*p - 2*x)
		default:
			q := (1 - p) * (1 - p)
			return m / q * (1 - 2*p + x) * (1 - x), m / q * (2*p - 2*x)
		}
	}
}

func naca5Camber(cld, p float64) (camber func(float64) (float64, float64), err error) {
	if cld == 0 || p == 0 {
		return func(float64) (float64, float64) { return 0, 0 }, nil
	}
	if p < naca5P[0] || p > naca5P[len(naca5P)-1] {
		err = fmt.Errorf("design camber position %g outside [%g,%g]",
			p, naca5P[0], naca5P[len(naca5P)-1])
		return
	}
	var mFit, kFit interp.NaturalCubic
	if err = mFit.Fit(naca5P, naca5M); err != nil {
		return
	}
	if err = kFit.Fit(naca5M, naca5K); err != nil {
		return
	}
	var (
		m  = mFit.Predict(p)
		k1 = kFit.Predict(m)
		f  = cld / 0.3
	)
	camber = func(x float64) (yc, dyc float64) {
		if x <= m {
			yc = k1 / 6 * (x*x*x - 3*m*x*x + m*m*(3-m)*x)
			dyc = k1 / 6 * (3*x*x - 6*m*x + m*m*(3-m))
		} else {
			yc = k1 / 6 * m * m * m * (1 - x)
			dyc = -k1 / 6 * m * m * m
		}
		return f * yc, f * dyc
	}
	return
}

// NacaToCST fits nCST coefficients per surface to a NACA airfoil sampled
// with nn points per surface.
func NacaToCST(series string, nCST, nn int) (cstU, cstL []float64, err error) {
	var ns NACASurfaces
	if ns, err = NACA(series, nn-1); err != nil {
		return
	}
	// The cambered surface offset can fold x back near the nose
	for i := 0; i < nn-2; i++ {
		if ns.XU[i+1] < ns.XU[i] {
			ns.XU[i+1] = math.Max(ns.XU[i], 0.5*(ns.XU[i]+ns.XU[i+2]))
		}
		if ns.XL[i+1] < ns.XL[i] {
			ns.XL[i+1] = math.Max(ns.XL[i], 0.5*(ns.XL[i]+ns.XL[i+2]))
		}
	}
	return FitFoil(ns.XU, ns.YU, ns.XL, ns.YL, nCST)
}
