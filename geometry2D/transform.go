package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rotate turns the points (x, y) by angle degrees counter clockwise about
// origin, returning new slices.
func Rotate(x, y []float64, angle float64, origin r2.Vec) (xr, yr []float64) {
	var (
		rot = r2.NewRotation(angle*math.Pi/180., origin)
	)
	xr, yr = make([]float64, len(x)), make([]float64, len(x))
	for i := range x {
		p := rot.Rotate(r2.Vec{X: x[i], Y: y[i]})
		xr[i], yr[i] = p.X, p.Y
	}
	return
}

// Placement locates a unit chord section in 3D. Twist is in degrees about
// +z through the leading edge.
type Placement struct {
	XLE, YLE, ZLE float64
	Chord         float64
	Twist         float64
}

func DefaultPlacement() Placement {
	return Placement{Chord: 1}
}

// Place scales a unit section by the chord, twists it about the leading
// edge and translates it to the leading edge position.
func Place(x, y []float64, p Placement) (X, Y, Z []float64) {
	var (
		nn = len(x)
		xs = make([]float64, nn)
		ys = make([]float64, nn)
	)
	for i := range x {
		xs[i], ys[i] = p.Chord*x[i], p.Chord*y[i]
	}
	X, Y = Rotate(xs, ys, p.Twist, r2.Vec{})
	Z = make([]float64, nn)
	for i := range X {
		X[i] += p.XLE
		Y[i] += p.YLE
		Z[i] = p.ZLE
	}
	return
}

// Interpolate blends two placements linearly, ratio 0 giving p.
func (p Placement) Interpolate(q Placement, ratio float64) Placement {
	lerp := func(a, b float64) float64 { return (1-ratio)*a + ratio*b }
	return Placement{
		XLE:   lerp(p.XLE, q.XLE),
		YLE:   lerp(p.YLE, q.YLE),
		ZLE:   lerp(p.ZLE, q.ZLE),
		Chord: lerp(p.Chord, q.Chord),
		Twist: lerp(p.Twist, q.Twist),
	}
}

type BoundingBox struct {
	XMin [3]float64
	XMax [3]float64
}

func NewBoundingBox(X, Y, Z []float64) (Box *BoundingBox) {
	if len(X) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin = [3]float64{X[0], Y[0], Z[0]}
	Box.XMax = Box.XMin
	for i := range X {
		for n, v := range [3]float64{X[i], Y[i], Z[i]} {
			Box.XMin[n] = math.Min(Box.XMin[n], v)
			Box.XMax[n] = math.Max(Box.XMax[n], v)
		}
	}
	return
}

func (bb *BoundingBox) Centroid() (centroid [3]float64) {
	for i := 0; i < 3; i++ {
		centroid[i] = 0.5 * (bb.XMax[i] + bb.XMin[i])
	}
	return
}

func (bb *BoundingBox) Union(other *BoundingBox) (bbOut *BoundingBox) {
	if other == nil {
		return bb
	}
	if bb == nil {
		return other
	}
	bbOut = new(BoundingBox)
	for i := 0; i < 3; i++ {
		bbOut.XMin[i] = math.Min(bb.XMin[i], other.XMin[i])
		bbOut.XMax[i] = math.Max(bb.XMax[i], other.XMax[i])
	}
	return
}
