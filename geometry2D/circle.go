package geometry2D

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gocst/utils"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerateGeometry is returned when points cannot define the requested
// construction: collinear circle points, too few points for a cubic, or
// curves that do not meet where they must.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// FindCircle3P returns the radius and centre of the circle through three
// points, using the closed form determinant solution.
func FindCircle3P(p1, p2, p3 r2.Vec) (R float64, center r2.Vec, err error) {
	A := p1.X*(p2.Y-p3.Y) - p1.Y*(p2.X-p3.X) + p2.X*p3.Y - p3.X*p2.Y
	if math.Abs(A) <= utils.COLLINEARTOL {
		err = fmt.Errorf("%w: circle points %v, %v, %v are collinear",
			ErrDegenerateGeometry, p1, p2, p3)
		return
	}
	var (
		p1s = r2.Norm2(p1)
		p2s = r2.Norm2(p2)
		p3s = r2.Norm2(p3)
		B   = p1s*(p3.Y-p2.Y) + p2s*(p1.Y-p3.Y) + p3s*(p2.Y-p1.Y)
		C   = p1s*(p2.X-p3.X) + p2s*(p3.X-p1.X) + p3s*(p1.X-p2.X)
		D   = p1s*(p3.X*p2.Y-p2.X*p3.Y) + p2s*(p1.X*p3.Y-p3.X*p1.Y) +
			p3s*(p2.X*p1.Y-p1.X*p2.Y)
	)
	center = r2.Vec{X: -B / (2 * A), Y: -C / (2 * A)}
	R = math.Sqrt(B*B+C*C-4*A*D) / (2 * math.Abs(A))
	return
}
