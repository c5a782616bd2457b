package Foil

import (
	"errors"
	"testing"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestClosedSection(t *testing.T) {
	p := geometry2D.Placement{XLE: 0.5, YLE: 0.1, ZLE: 2, Chord: 0.8, Twist: 3}
	cs := NewClosedSection("root", p, cstUpper, cstLower)
	{ // Geometry matches the assembled airfoil and is placed
		sg, err := cs.Build(101)
		require.NoError(t, err)
		af := baseline(t)
		assert.Equal(t, af, sg.Unit)
		assert.Equal(t, ClosedKind, sg.Kind)
		assert.Equal(t, "root", sg.Name)
		for i := range sg.Upper.Z {
			assert.Equal(t, 2., sg.Upper.Z[i])
			assert.Equal(t, 2., sg.Lower.Z[i])
		}
		assert.InDelta(t, 0.5, sg.Upper.X[0], 1.e-15)
		assert.InDelta(t, 0.1, sg.Lower.Y[0], 1.e-15)
	}
	{ // With methods copy
		cs2 := cs.WithTail(0.01).WithThickness(types.Some(0.1))
		assert.Equal(t, 0., cs.Tail)
		assert.False(t, cs.Thickness.IsSet())
		cs2.CSTU[0] = 5
		assert.Equal(t, cstUpper[0], cs.CSTU[0])
		assert.False(t, cs.Equal(cs2))
		assert.True(t, cs.Equal(cs.Copy()))
		sg, err := cs.WithThickness(types.Some(0.1)).Build(101)
		require.NoError(t, err)
		assert.InDelta(t, 0.1, floats.Max(sg.Unit.Thickness()), 1.e-14)
	}
	{ // Zero refinement changes nothing but drops the coefficients
		sg0, err := cs.Build(101)
		require.NoError(t, err)
		sg, err := cs.WithRefine(make([]float64, 4), nil).Build(101)
		require.NoError(t, err)
		assert.InDeltaSlice(t, sg0.Unit.YU, sg.Unit.YU, 1.e-15)
		assert.Nil(t, sg.Unit.CSTU)
		assert.InDelta(t, sg0.Unit.RLE, sg.Unit.RLE, 1.e-12)
	}
	{ // Bumps
		sg0, err := cs.Build(101)
		require.NoError(t, err)
		sg, err := cs.WithBumps(BumpSpec{XC: 0.5, H: 0.05, S: 0.2, Side: types.Upper}).Build(101)
		require.NoError(t, err)
		assert.True(t, sg.Unit.YU[50] > sg0.Unit.YU[50])
	}
	{
		_, err := NewClosedSection("bad", p, nil, cstLower).Build(101)
		assert.True(t, errors.Is(err, CST.ErrShapeMismatch))
	}
}

func TestOpenSection(t *testing.T) {
	p := geometry2D.DefaultPlacement()
	{
		sec := NewOpenSection("fuselage", p, []float64{0.1, 0.2, 0.1}).WithThickness(types.Some(0.1))
		sg, err := sec.Build(81)
		require.NoError(t, err)
		assert.Equal(t, OpenKind, sg.Kind)
		assert.Nil(t, sg.Unit.YL)
		assert.InDelta(t, 0.1, floats.Max(sg.Unit.YU), 1.e-15)
		assert.Equal(t, 0.1, sg.Unit.T0)
		assert.Nil(t, sg.Lower.X)
	}
	{ // Flipped increment keeps both ends closed
		sec := NewOpenSection("nacelle", p, []float64{0.1, 0.2, 0.1}).
			WithRefine([]float64{0.01, 0.01}, []float64{0.05, 0.02})
		sg, err := sec.Build(81)
		require.NoError(t, err)
		assert.Equal(t, 0., sg.Unit.YU[0])
		assert.Equal(t, 0., sg.Unit.YU[80])
		base, err := NewOpenSection("base", p, []float64{0.1, 0.2, 0.1}).Build(81)
		require.NoError(t, err)
		assert.True(t, sg.Unit.T0 > base.Unit.T0)
	}
	{
		_, err := NewOpenSection("flat", p, []float64{0}).WithThickness(types.Some(0.1)).Build(21)
		assert.True(t, errors.Is(err, geometry2D.ErrDegenerateGeometry))
	}
}

func TestInterpolateSection(t *testing.T) {
	var (
		a = NewClosedSection("a", geometry2D.Placement{Chord: 1}, cstUpper, cstLower)
		b = NewClosedSection("b", geometry2D.Placement{ZLE: 4, Chord: 0.5, Twist: 2}, cstUpper, cstLower).
			WithThickness(types.Some(0.08)).WithTail(0.004)
	)
	{
		cs, err := InterpolateSection(a, b, 0, 101, 7)
		require.NoError(t, err)
		assert.InDeltaSlice(t, cstUpper, cs.CSTU, 1.e-6)
		assert.InDeltaSlice(t, cstLower, cs.CSTL, 1.e-6)
		assert.Equal(t, a.Placement, cs.Placement)
	}
	{
		cs, err := InterpolateSection(a, b, 0.5, 101, 7)
		require.NoError(t, err)
		assert.Equal(t, geometry2D.Placement{ZLE: 2, Chord: 0.75, Twist: 1}, cs.Placement)
		assert.Equal(t, 0.002, cs.Tail)
		sg, err := cs.Build(101)
		require.NoError(t, err)
		assert.InDelta(t, 0.002, sg.Unit.YU[100]-sg.Unit.YL[100], 1.e-15)
		ga, _ := a.Build(101)
		gb, _ := b.Build(101)
		mid := 0.5*ga.Unit.YU[50] + 0.5*gb.Unit.YU[50]
		assert.InDelta(t, mid, sg.Unit.YU[50], 1.e-4)
	}
}

func TestSectionBoundingBox(t *testing.T) {
	p := geometry2D.Placement{XLE: 1, ZLE: 3, Chord: 2}
	sg, err := NewClosedSection("box", p, cstUpper, cstLower).Build(101)
	require.NoError(t, err)
	bb := sg.BoundingBox()
	require.NotNil(t, bb)
	assert.Equal(t, 1., bb.XMin[0])
	assert.InDelta(t, 3., bb.XMax[0], 1.e-15)
	assert.Equal(t, [2]float64{3, 3}, [2]float64{bb.XMin[2], bb.XMax[2]})
	assert.InDelta(t, 2*floats.Max(sg.Unit.YU), bb.XMax[1], 1.e-14)
	assert.InDelta(t, 2*floats.Min(sg.Unit.YL), bb.XMin[1], 1.e-14)
	open, err := NewOpenSection("o", p, []float64{0.1}).Build(11)
	require.NoError(t, err)
	assert.Equal(t, 0., open.BoundingBox().XMin[1])
}
