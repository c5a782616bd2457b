package Foil

import (
	"github.com/notargets/gocst/geometry2D"
)

// TCCResult holds the thickness, surface curvature and camber distributions
// of an airfoil.
type TCCResult struct {
	Thickness    []float64
	CurvU, CurvL []float64
	Camber       []float64
}

// TCC computes thickness, curvature and camber along the airfoil. Negative
// thickness is traced, never rejected.
func TCC(x, yu, yl []float64) (res TCCResult, err error) {
	if res.CurvU, err = geometry2D.CurveCurvature(x, yu); err != nil {
		return
	}
	if res.CurvL, err = geometry2D.CurveCurvature(x, yl); err != nil {
		return
	}
	var (
		nn = len(x)
	)
	res.Thickness = make([]float64, nn)
	res.Camber = make([]float64, nn)
	negative := 0
	for i := range x {
		res.Thickness[i] = yu[i] - yl[i]
		res.Camber[i] = 0.5 * (yu[i] + yl[i])
		if res.Thickness[i] < 0 {
			negative++
		}
	}
	if negative > 0 {
		tracer().Infof("unreasonable airfoil: negative thickness at %d of %d points", negative, nn)
	}
	return
}
