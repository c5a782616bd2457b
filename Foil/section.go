package Foil

import (
	"fmt"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/types"
	"github.com/notargets/gocst/utils"
	"gonum.org/v1/gonum/floats"
)

type SectionKind uint8

const (
	ClosedKind SectionKind = iota
	OpenKind
)

func (sk SectionKind) String() string {
	switch sk {
	case ClosedKind:
		return "closed"
	case OpenKind:
		return "open"
	}
	return fmt.Sprintf("SectionKind(%d)", uint8(sk))
}

// Section is either a ClosedSection or an OpenSection.
type Section interface {
	SectionName() string
	Kind() SectionKind
	Location() geometry2D.Placement
	// Build samples the unit section at nn points and places it in 3D
	Build(nn int) (SectionGeometry, error)
}

type Curve3D struct {
	X, Y, Z []float64
}

// SectionGeometry is a built section. Unit is the 2D unit chord shape, for
// open sections Unit.YL is nil and Unit.T0 is the maximum of the curve.
type SectionGeometry struct {
	Name  string
	Kind  SectionKind
	Unit  Airfoil
	Upper Curve3D
	Lower Curve3D
}

// BoundingBox is the extent of the placed section.
func (sg SectionGeometry) BoundingBox() *geometry2D.BoundingBox {
	return geometry2D.NewBoundingBox(sg.Upper.X, sg.Upper.Y, sg.Upper.Z).
		Union(geometry2D.NewBoundingBox(sg.Lower.X, sg.Lower.Y, sg.Lower.Z))
}

// ClosedSection is an airfoil section from upper and lower CST coefficients.
// The With methods return modified copies.
type ClosedSection struct {
	Name       string
	Placement  geometry2D.Placement
	CSTU, CSTL []float64
	Tail       float64
	Thickness  types.Optional[float64]
	// Incremental CST curves added after assembly, nil for none
	RefineU, RefineL []float64
	Bumps            []BumpSpec
}

func NewClosedSection(name string, p geometry2D.Placement, cstU, cstL []float64) ClosedSection {
	return ClosedSection{
		Name:      name,
		Placement: p,
		CSTU:      utils.Copy(cstU),
		CSTL:      utils.Copy(cstL),
	}
}

func (cs ClosedSection) Copy() ClosedSection {
	out := cs
	out.CSTU, out.CSTL = utils.Copy(cs.CSTU), utils.Copy(cs.CSTL)
	out.RefineU, out.RefineL = utils.Copy(cs.RefineU), utils.Copy(cs.RefineL)
	if cs.Bumps != nil {
		out.Bumps = append([]BumpSpec(nil), cs.Bumps...)
	}
	return out
}

func (cs ClosedSection) WithTail(tail float64) ClosedSection {
	out := cs.Copy()
	out.Tail = tail
	return out
}

func (cs ClosedSection) WithThickness(t types.Optional[float64]) ClosedSection {
	out := cs.Copy()
	out.Thickness = t
	return out
}

func (cs ClosedSection) WithRefine(refineU, refineL []float64) ClosedSection {
	out := cs.Copy()
	out.RefineU, out.RefineL = utils.Copy(refineU), utils.Copy(refineL)
	return out
}

func (cs ClosedSection) WithBumps(bumps ...BumpSpec) ClosedSection {
	out := cs.Copy()
	out.Bumps = append(out.Bumps, bumps...)
	return out
}

func (cs ClosedSection) Equal(o ClosedSection) bool {
	eq := func(a, b []float64) bool { return len(a) == len(b) && (len(a) == 0 || floats.Equal(a, b)) }
	if cs.Name != o.Name || cs.Placement != o.Placement || cs.Tail != o.Tail ||
		cs.Thickness != o.Thickness || len(cs.Bumps) != len(o.Bumps) {
		return false
	}
	for i := range cs.Bumps {
		if cs.Bumps[i] != o.Bumps[i] {
			return false
		}
	}
	return eq(cs.CSTU, o.CSTU) && eq(cs.CSTL, o.CSTL) &&
		eq(cs.RefineU, o.RefineU) && eq(cs.RefineL, o.RefineL)
}

func (cs ClosedSection) SectionName() string { return cs.Name }
func (cs ClosedSection) Kind() SectionKind { return ClosedKind }
func (cs ClosedSection) Location() geometry2D.Placement { return cs.Placement }

// Build assembles the airfoil, adds the refinement increments, applies the
// bumps keeping the maximum thickness, and places the result.
func (cs ClosedSection) Build(nn int) (sg SectionGeometry, err error) {
	var af Airfoil
	if af, err = BuildAirfoil(nn, cs.CSTU, cs.CSTL, nil, cs.Thickness, cs.Tail); err != nil {
		err = fmt.Errorf("section %s: %w", cs.Name, err)
		return
	}
	modified := false
	if cs.RefineU != nil || cs.RefineL != nil {
		if af.YU, af.YL, err = Increment(af.X, af.YU, af.YL, cs.RefineU, cs.RefineL, cs.Thickness); err != nil {
			err = fmt.Errorf("section %s refine: %w", cs.Name, err)
			return
		}
		modified = true
	}
	for _, b := range cs.Bumps {
		var bf BumpedFoil
		if bf, err = FoilBumpModify(af.X, af.YU, af.YL, b, 0, true); err != nil {
			err = fmt.Errorf("section %s bump: %w", cs.Name, err)
			return
		}
		af.YU, af.YL = bf.YU, bf.YL
		modified = true
	}
	if modified {
		af.CSTU, af.CSTL = nil, nil
		if !cs.Thickness.IsSet() {
			_, af.T0 = MaxThickness(af.YU, af.YL)
		}
		if af.RLE, err = LeadingEdgeRadius(af.X, af.YU, af.YL); err != nil {
			err = fmt.Errorf("section %s: %w", cs.Name, err)
			return
		}
		af.TEAngle, af.TESlope = TrailingEdge(af.X, af.YU, af.YL)
	}
	sg = SectionGeometry{Name: cs.Name, Kind: ClosedKind, Unit: af}
	sg.Upper.X, sg.Upper.Y, sg.Upper.Z = geometry2D.Place(af.X, af.YU, cs.Placement)
	sg.Lower.X, sg.Lower.Y, sg.Lower.Z = geometry2D.Place(af.X, af.YL, cs.Placement)
	return
}

// OpenSection is a single CST curve, e.g. a fuselage or nacelle line.
type OpenSection struct {
	Name      string
	Placement geometry2D.Placement
	CST       []float64
	Thickness types.Optional[float64] // rescales so the maximum y matches
	Refine    []float64
	// CSTFlip is an increment evaluated on 1-x, rounding the tail
	CSTFlip []float64
}

func NewOpenSection(name string, p geometry2D.Placement, cst []float64) OpenSection {
	return OpenSection{Name: name, Placement: p, CST: utils.Copy(cst)}
}

func (sec OpenSection) Copy() OpenSection {
	out := sec
	out.CST, out.Refine, out.CSTFlip = utils.Copy(sec.CST), utils.Copy(sec.Refine), utils.Copy(sec.CSTFlip)
	return out
}

func (sec OpenSection) WithThickness(t types.Optional[float64]) OpenSection {
	out := sec.Copy()
	out.Thickness = t
	return out
}

func (sec OpenSection) WithRefine(refine, cstFlip []float64) OpenSection {
	out := sec.Copy()
	out.Refine, out.CSTFlip = utils.Copy(refine), utils.Copy(cstFlip)
	return out
}

func (sec OpenSection) SectionName() string { return sec.Name }
func (sec OpenSection) Kind() SectionKind { return OpenKind }
func (sec OpenSection) Location() geometry2D.Placement { return sec.Placement }

func (sec OpenSection) Build(nn int) (sg SectionGeometry, err error) {
	var c, inc CST.Curve
	if c, err = CST.NewCurve(nn, sec.CST, nil); err != nil {
		err = fmt.Errorf("section %s: %w", sec.Name, err)
		return
	}
	if sec.Refine != nil {
		if inc, err = CST.NewCurve(nn, sec.Refine, c.X); err != nil {
			err = fmt.Errorf("section %s refine: %w", sec.Name, err)
			return
		}
		floats.Add(c.Y, inc.Y)
	}
	if sec.CSTFlip != nil {
		flipped := make([]float64, nn)
		for i, xv := range c.X {
			flipped[i] = 1 - xv
		}
		if inc, err = CST.NewCurve(nn, sec.CSTFlip, flipped); err != nil {
			err = fmt.Errorf("section %s flip: %w", sec.Name, err)
			return
		}
		floats.Add(c.Y, inc.Y)
	}
	thick := floats.Max(c.Y)
	if target, ok := sec.Thickness.Get(); ok {
		if thick <= 0 {
			err = fmt.Errorf("section %s: %w: cannot scale a curve with maximum %g",
				sec.Name, geometry2D.ErrDegenerateGeometry, thick)
			return
		}
		floats.Scale(target/thick, c.Y)
		thick = target
	}
	sg = SectionGeometry{
		Name: sec.Name,
		Kind: OpenKind,
		Unit: Airfoil{X: c.X, YU: c.Y, T0: thick, CSTU: utils.Copy(sec.CST)},
	}
	sg.Upper.X, sg.Upper.Y, sg.Upper.Z = geometry2D.Place(c.X, c.Y, sec.Placement)
	return
}

// InterpolateSection blends the geometry, tail and placement of two closed
// sections at ratio (0 gives a) and refits nCST coefficients per side.
func InterpolateSection(a, b ClosedSection, ratio float64, nn, nCST int) (cs ClosedSection, err error) {
	var ga, gb SectionGeometry
	if ga, err = a.Build(nn); err != nil {
		return
	}
	if gb, err = b.Build(nn); err != nil {
		return
	}
	var (
		x  = ga.Unit.X
		yu = make([]float64, nn)
		yl = make([]float64, nn)
	)
	for i := range x {
		yu[i] = (1-ratio)*ga.Unit.YU[i] + ratio*gb.Unit.YU[i]
		yl[i] = (1-ratio)*ga.Unit.YL[i] + ratio*gb.Unit.YL[i]
	}
	var cstU, cstL []float64
	if cstU, cstL, err = FitFoil(x, yu, x, yl, nCST); err != nil {
		return
	}
	name := fmt.Sprintf("%s-%s@%.3f", a.Name, b.Name, ratio)
	cs = NewClosedSection(name, a.Placement.Interpolate(b.Placement, ratio), cstU, cstL).
		WithTail((1-ratio)*a.Tail + ratio*b.Tail)
	return
}
