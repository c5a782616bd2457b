package utils

// Numerical stability thresholds shared by the geometry and fitting code.
// They assume float64 arithmetic.
const (
	// TRIANGLETOL is the smallest side-length product a*b*c of a point
	// triple that still defines a finite osculating circle. Below it the
	// triple is treated as collinear or duplicated and the curvature is 0.
	TRIANGLETOL = 1.e-12
	// COLLINEARTOL bounds the determinant of the 3-point circle system.
	// Smaller determinants mean the points lie on one line.
	COLLINEARTOL = 1.e-20
	// LETOL is the tolerance used when comparing leading edge coordinates of
	// two surfaces that should meet at one point.
	LETOL = 1.e-6
)
