package Foil

import (
	"fmt"
	"math"
	"strings"
)

// Rule numbers of the validity checker, ValidityReport[rule-1] holds the
// flag for a rule.
const (
	RuleNegativeThickness = iota + 1
	RuleMaxThicknessLocation
	RuleThicknessExtrema
	RuleMaxCurvature
	RuleMaxCamber
	RuleLeadingEdgeRadius
	RuleConvexNose
	NumRules = 10 // 8 to 10 are reserved
)

const (
	maxThicknessXMin  = 0.15
	maxThicknessXMax  = 0.75
	maxExtrema        = 2
	curvatureXMin     = 0.1
	maxCurvature      = 5.
	camberXMin        = 0.2
	camberXMax        = 0.7
	maxCamber         = 0.025
	minRLE            = 0.005
	minRLEToThickness = 0.01
)

var ruleNames = [NumRules]string{
	"negative thickness",
	"max thickness location",
	"thickness extrema",
	"max curvature",
	"max camber",
	"leading edge radius",
	"convex nose",
	"reserved",
	"reserved",
	"reserved",
}

// ValidityReport flags rule violations, 0 is valid and 1 is violated.
type ValidityReport [NumRules]int

func (vr ValidityReport) Valid() bool {
	for _, f := range vr {
		if f != 0 {
			return false
		}
	}
	return true
}

// Violations lists the violated rule numbers.
func (vr ValidityReport) Violations() (rules []int) {
	for i, f := range vr {
		if f != 0 {
			rules = append(rules, i+1)
		}
	}
	return
}

func (vr ValidityReport) String() string {
	if vr.Valid() {
		return "valid"
	}
	var names []string
	for _, r := range vr.Violations() {
		names = append(names, fmt.Sprintf("%d:%s", r, ruleNames[r-1]))
	}
	return "invalid [" + strings.Join(names, ", ") + "]"
}

// CheckValid evaluates every plausibility rule on the airfoil (x, yu, yl).
// A leading edge radius rle <= 0 skips the radius rule. Thickness below
// negThicknessTol counts as negative.
func CheckValid(x, yu, yl []float64, rle, negThicknessTol float64) (vr ValidityReport, err error) {
	var (
		nn  = len(x)
		tcc TCCResult
	)
	if tcc, err = TCC(x, yu, yl); err != nil {
		return
	}
	th := tcc.Thickness

	// Negative thickness
	for _, t := range th {
		if t < negThicknessTol {
			vr[RuleNegativeThickness-1] = 1
			break
		}
	}

	// Maximum thickness location
	iMax, t0 := 0, th[0]
	for i, t := range th {
		if t > t0 {
			iMax, t0 = i, t
		}
	}
	if x[iMax] < maxThicknessXMin || x[iMax] > maxThicknessXMax {
		vr[RuleMaxThicknessLocation-1] = 1
	}

	// Local extrema of the thickness
	nExtreme := 0
	for i := 0; i < nn-2; i++ {
		a1 := th[i+2] - th[i+1]
		a2 := th[i] - th[i+1]
		if a1*a2 >= 0 {
			nExtreme++
		}
	}
	if nExtreme > maxExtrema {
		vr[RuleThicknessExtrema-1] = 1
	}

	// Maximum curvature away from the nose
	var curU, curL float64
	for i := range x {
		if x[i] < curvatureXMin {
			continue
		}
		curU = math.Max(curU, math.Abs(tcc.CurvU[i]))
		curL = math.Max(curL, math.Abs(tcc.CurvL[i]))
	}
	if curU > maxCurvature || curL > maxCurvature {
		vr[RuleMaxCurvature-1] = 1
	}

	// Maximum camber
	var camMax float64
	for i := range x {
		if x[i] < camberXMin || x[i] > camberXMax {
			continue
		}
		camMax = math.Max(camMax, math.Abs(tcc.Camber[i]))
	}
	if camMax > maxCamber {
		vr[RuleMaxCamber-1] = 1
	}

	// Leading edge radius
	if rle > 0 && (rle < minRLE || rle/t0 < minRLEToThickness) {
		vr[RuleLeadingEdgeRadius-1] = 1
	}

	// Convex nose, surface slope near 10% chord against the nominal slope
	ii := int(0.1*float64(nn)) + 1
	if ii < nn && x[ii] > 0 && x[iMax] > 0 {
		a0 := t0 / x[iMax]
		au := yu[ii] / x[ii] / a0
		al := -yl[ii] / x[ii] / a0
		if au < 1 || al < 1 {
			vr[RuleConvexNose-1] = 1
		}
	} else {
		vr[RuleConvexNose-1] = 1
	}
	return
}
