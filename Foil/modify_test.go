package Foil

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/types"
	"github.com/notargets/gocst/utils"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestScaleCST(t *testing.T) {
	af := baseline(t)
	cu, cl := ScaleCST(af.X, af.YU, af.YL, af.CSTU, af.CSTL, 0.1, 0)
	assert.Equal(t, cstUpper, af.CSTU)
	scaled, err := BuildAirfoil(101, cu, cl, nil, types.None[float64](), 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, scaled.T0, 1.e-14)
}

func TestIncrementCurve(t *testing.T) {
	af, err := BuildAirfoil(101, cstUpper, cstLower, nil, types.None[float64](), 0.01)
	require.NoError(t, err)
	{ // No increment leaves the airfoil alone
		yu, yl, err := IncrementCurve(af.X, af.YU, af.YL, nil, nil, types.None[float64]())
		require.NoError(t, err)
		assert.InDeltaSlice(t, af.YU, yu, 1.e-15)
		assert.InDeltaSlice(t, af.YL, yl, 1.e-15)
	}
	{ // Increment with a thickness target and the tail kept
		inc, err := CST.NewCurve(101, []float64{0.01, 0.02, 0.01}, af.X)
		require.NoError(t, err)
		yu, yl, err := IncrementCurve(af.X, af.YU, af.YL, inc.Y, nil, types.Some(0.11))
		require.NoError(t, err)
		assert.InDelta(t, 0.01, yu[100]-yl[100], 1.e-15)
		// Thickness at the pre-tail maximum equals the target
		var (
			th = make([]float64, 101)
		)
		for i := range th {
			th[i] = (af.YU[i] - 0.005*af.X[i] + inc.Y[i]) - (af.YL[i] + 0.005*af.X[i])
		}
		it := floats.MaxIdx(th)
		assert.InDelta(t, 0.11, yu[it]-yl[it], 1.e-12)
		// The input was not touched
		assert.Equal(t, 0.01, af.YU[100]-af.YL[100])

		yu2, yl2, err := Increment(af.X, af.YU, af.YL, []float64{0.01, 0.02, 0.01}, nil, types.Some(0.11))
		require.NoError(t, err)
		assert.Equal(t, yu, yu2)
		assert.Equal(t, yl, yl2)
	}
	{
		_, _, err := IncrementCurve(af.X, af.YU, af.YL, []float64{1, 2}, nil, types.None[float64]())
		assert.True(t, errors.Is(err, CST.ErrShapeMismatch))
		// Both base surfaces are required, only the increments may be nil
		_, _, err = IncrementCurve(af.X, nil, af.YL, af.YU, nil, types.None[float64]())
		assert.True(t, errors.Is(err, CST.ErrShapeMismatch))
		_, _, err = IncrementCurve(af.X, af.YU, nil, nil, nil, types.Some(0.1))
		assert.True(t, errors.Is(err, CST.ErrShapeMismatch))
		_, _, err = IncrementCurve(nil, nil, nil, nil, nil, types.None[float64]())
		assert.True(t, errors.Is(err, CST.ErrShapeMismatch))
	}
}

func TestUnifyFoil(t *testing.T) {
	af, err := BuildAirfoil(101, cstUpper, cstLower, nil, types.None[float64](), 0.01)
	require.NoError(t, err)
	p := geometry2D.Placement{XLE: 1, YLE: 2, Chord: 2, Twist: -4}
	xu, yu, _ := geometry2D.Place(af.X, af.YU, p)
	xl, yl, _ := geometry2D.Place(af.X, af.YL, p)
	uf, err := UnifyFoil(xu, yu, xl, yl)
	require.NoError(t, err)
	assert.InDelta(t, -4., uf.Twist, 1.e-10)
	assert.InDelta(t, 2., uf.Chord, 1.e-12)
	assert.InDelta(t, 0.01, uf.Tail, 1.e-12)
	for i := range af.X {
		assert.InDeltaf(t, af.X[i], uf.XU[i], 1.e-12, "xu %d", i)
		assert.InDeltaf(t, af.YU[i]-0.005*af.X[i], uf.YU[i], 1.e-12, "yu %d", i)
		assert.InDeltaf(t, af.YL[i]+0.005*af.X[i], uf.YL[i], 1.e-12, "yl %d", i)
	}
	cu, cl, err := FitFoil(uf.XU, uf.YU, uf.XL, uf.YL, 7)
	require.NoError(t, err)
	assert.InDeltaSlice(t, cstUpper, cu, 1.e-6)
	assert.InDeltaSlice(t, cstLower, cl, 1.e-6)

	xl[0] += 0.01
	_, err = UnifyFoil(xu, yu, xl, yl)
	assert.True(t, errors.Is(err, geometry2D.ErrDegenerateGeometry))
}

func TestNACA(t *testing.T) {
	{ // Symmetric
		ns, err := NACA("0012", 50)
		require.NoError(t, err)
		require.Len(t, ns.XU, 51)
		assert.Equal(t, 0., ns.XU[0])
		assert.Equal(t, 0., ns.YU[0])
		assert.Equal(t, 1., ns.XU[50])
		assert.InDelta(t, 0., ns.YU[50], 1.e-12)
		for i := range ns.YU {
			assert.Equal(t, -ns.YU[i], ns.YL[i])
		}
		assert.InDelta(t, 0.06, floats.Max(ns.YU), 1.e-3)
	}
	{ // Cambered 4 and 5 digit
		for _, series := range []string{"2412", "23012"} {
			ns, err := NACA(series, 50)
			require.NoError(t, err, series)
			assert.True(t, ns.YU[25]+ns.YL[25] > 0, series)
			assert.InDelta(t, 1., ns.XU[50], 1.e-12, series)
		}
	}
	{
		for _, series := range []string{"12", "0a12", "123456", "26012"} {
			_, err := NACA(series, 50)
			assert.Error(t, err, series)
		}
	}
	{ // CST coefficients of NACA 0012 are antisymmetric
		cu, cl, err := NacaToCST("0012", 7, 51)
		require.NoError(t, err)
		assert.InDeltaSlice(t, cu, floats.ScaleTo(make([]float64, 7), -1, cl), 1.e-12)
		cu, cl, err = NacaToCST("23012", 9, 81)
		require.NoError(t, err)
		assert.Len(t, cu, 9)
		assert.Len(t, cl, 9)
	}
}

func TestAddBump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "foil")
	defer teardown()
	var (
		x = utils.Linspace(0, 1, 101)
		y = make([]float64, 101)
	)
	{ // Gaussian
		yb := AddBump(x, y, 0.5, 0.01, 0.2, BumpGaussian)
		assert.Equal(t, 0.01, yb[50])
		assert.Equal(t, 50, floats.MaxIdx(yb))
		for k := 1; k <= 50; k++ {
			assert.InDeltaf(t, yb[50-k], yb[50+k], 1.e-15, "offset %d", k)
			assert.True(t, yb[50+k] < yb[50+k-1])
		}
		assert.Equal(t, make([]float64, 101), y)
	}
	{ // Gaussian widened near the leading edge
		yb := AddBump(x, y, 0.05, 0.01, 0.2, BumpGaussian)
		assert.Equal(t, 5, floats.MaxIdx(yb))
		assert.InDelta(t, 0.01*math.Exp(-0.5*3.5*3.5), yb[0], 1.e-15)
	}
	{ // Hicks-Henne peaks at the centre
		yb := AddBump(x, y, 0.3, 0.02, 0.3, BumpHicksHenne)
		assert.InDelta(t, 0.02, yb[30], 1.e-8)
		assert.Equal(t, 0., yb[0])
		assert.InDelta(t, 0., yb[100], 1.e-12)
		e := math.Log(0.5) / math.Log(0.3)
		p := hicksHennePower(0.3, 0.3, e)
		assert.True(t, p >= 2 && p <= hicksHenneMaxPower)
		assert.True(t, hicksHenneSpan(0.3, e, p-1) <= 0.3)
		assert.True(t, hicksHenneSpan(0.3, e, p-2) > 0.3)
		assert.True(t, hicksHennePower(0.3, 0.6, e) <= p)
	}
	{ // Power is one above the first power whose span fits
		for _, tc := range []struct {
			xc, s float64
			pow   int
		}{
			{0.3, 0.3, 45},
			{0.05, 0.1, 74},
			{0.95, 0.1, 9},
			{0.5, 0.5, 15},
		} {
			e := math.Log(0.5) / math.Log(tc.xc)
			assert.Equalf(t, tc.pow, hicksHennePower(tc.xc, tc.s, e), "xc=%g s=%g", tc.xc, tc.s)
		}
		// A span that no power reaches stops at the cap
		e := math.Log(0.5) / math.Log(0.5)
		assert.Equal(t, hicksHenneMaxPower, hicksHennePower(0.5, 1.e-6, e))
	}
	{ // Invalid centre leaves the curve unchanged
		y1 := make([]float64, 101)
		floats.AddConst(0.1, y1)
		assert.Equal(t, y1, AddBump(x, y1, 1.2, 0.01, 0.2, BumpAuto))
		assert.Equal(t, y1, AddBump(x, y1, 0, 0.01, 0.2, BumpGaussian))
	}
	{
		c := CST.Curve{X: x, Y: y}
		cb := ApplyBump(c, BumpSpec{XC: 0.5, H: 0.01, S: 0.2})
		assert.Equal(t, 0.01, cb.Y[50])
		assert.Equal(t, 0., c.Y[50])
	}
	{
		assert.Equal(t, BumpHicksHenne, BumpAuto.Resolve(0.05))
		assert.Equal(t, BumpGaussian, BumpAuto.Resolve(0.5))
		assert.Equal(t, BumpGaussian, BumpGaussian.Resolve(0.95))
		bk, err := NewBumpKind("H")
		assert.NoError(t, err)
		assert.Equal(t, BumpHicksHenne, bk)
		_, err = NewBumpKind("square")
		assert.Error(t, err)
	}
}

func TestFoilBumpModify(t *testing.T) {
	af := baseline(t)
	_, t0 := MaxThickness(af.YU, af.YL)
	{ // Upper bump, lower side rescaled by one factor
		bs := BumpSpec{XC: 0.4, H: 0.1, S: 0.3, Side: types.Upper}
		bf, err := FoilBumpModify(af.X, af.YU, af.YL, bs, 0, true)
		require.NoError(t, err)
		assert.True(t, bf.YU[50] > af.YU[50])
		r := bf.YL[40] / af.YL[40]
		for _, i := range []int{10, 30, 60, 90} {
			assert.InDelta(t, r, bf.YL[i]/af.YL[i], 1.e-12)
		}
		assert.True(t, r < 1)
		assert.InDelta(t, t0, floats.Max(floatsSub(bf.YU, bf.YL)), 1.e-14)
		assert.Nil(t, bf.CSTU)
	}
	{ // Lower bump with refit
		bs := BumpSpec{XC: 0.6, H: 0.05, S: 0.2, Side: types.Lower}
		bf, err := FoilBumpModify(af.X, af.YU, af.YL, bs, 7, true)
		require.NoError(t, err)
		assert.Len(t, bf.CSTU, 7)
		assert.Len(t, bf.CSTL, 7)
		assert.Equal(t, 0., bf.YU[0])
		assert.Equal(t, 0., bf.YL[100])
	}
	{
		_, err := FoilBumpModify(af.X, af.YU[:10], af.YL, BumpSpec{XC: 0.5}, 0, true)
		assert.True(t, errors.Is(err, CST.ErrShapeMismatch))
	}
}

func floatsSub(a, b []float64) []float64 {
	return floats.SubTo(make([]float64, len(a)), a, b)
}
