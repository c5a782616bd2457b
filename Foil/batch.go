package Foil

import (
	"fmt"

	"github.com/notargets/gocst/CST"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/utils"
)

// BuildResult holds one built section. Report is only filled for closed
// sections.
type BuildResult struct {
	Name     string
	Kind     SectionKind
	Geometry SectionGeometry
	Report   ValidityReport
	Checked  bool
	Err      error
}

// BuildBatch builds and checks independent sections on up to parallel
// goroutines. Results are in input order and a failing section does not
// affect the others.
func BuildBatch(sections []Section, nn int, negThicknessTol float64, parallel int) (results []BuildResult) {
	results = make([]BuildResult, len(sections))
	if len(sections) == 0 {
		return
	}
	pm := utils.NewPartitionMap(utils.ParallelDegree(parallel, len(sections)), len(sections))
	pm.Run(func(bucket, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			results[k] = buildOne(sections[k], nn, negThicknessTol)
		}
	})
	return
}

func buildOne(sec Section, nn int, negThicknessTol float64) (res BuildResult) {
	res.Name, res.Kind = sec.SectionName(), sec.Kind()
	if res.Geometry, res.Err = sec.Build(nn); res.Err != nil {
		return
	}
	if sec.Kind() == ClosedKind {
		res.Report, res.Err = res.Geometry.Unit.CheckValid(negThicknessTol)
		res.Checked = res.Err == nil
	}
	return
}

// FitJob is a sampled section to fit. A nil XL marks an open curve that is
// fitted with chord and twist inference.
type FitJob struct {
	Name           string
	XU, YU, XL, YL []float64
	NCST           int
}

// FitResult carries the coefficients and the transform taken out of the
// sampled points. Open curves leave CSTL nil and Tail 0. Thick is only set
// when both surfaces share their sampling.
type FitResult struct {
	Name       string
	CSTU, CSTL []float64
	Twist      float64
	Chord      float64
	Tail       float64
	Thick      float64
	XLE, YLE   float64
	Err        error
}

// Section converts a closed fit into a unit section placed at the fitted
// leading edge.
func (fr FitResult) Section() Section {
	if fr.CSTL == nil {
		return NewOpenSection(fr.Name, fr.placement(), fr.CSTU)
	}
	return NewClosedSection(fr.Name, fr.placement(), fr.CSTU, fr.CSTL).WithTail(fr.Tail)
}

// FitBatch fits independent jobs on up to parallel goroutines, results in
// input order.
func FitBatch(jobs []FitJob, parallel int) (results []FitResult) {
	results = make([]FitResult, len(jobs))
	if len(jobs) == 0 {
		return
	}
	pm := utils.NewPartitionMap(utils.ParallelDegree(parallel, len(jobs)), len(jobs))
	pm.Run(func(bucket, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			results[k] = fitOne(jobs[k])
		}
	})
	return
}

func fitOne(job FitJob) (res FitResult) {
	res.Name = job.Name
	if len(job.XU) == 0 {
		res.Err = fmt.Errorf("fit %s: %w: no points", job.Name, CST.ErrShapeMismatch)
		return
	}
	res.XLE, res.YLE = job.XU[0], job.YU[0]
	if job.XL == nil {
		var tf CST.TwistFit
		if tf, res.Err = CST.FitCurveWithTwist(job.XU, job.YU, job.NCST, CST.DefaultClass); res.Err != nil {
			res.Err = fmt.Errorf("fit %s: %w", job.Name, res.Err)
			return
		}
		res.CSTU, res.Chord, res.Twist, res.Thick = tf.Coef, tf.Chord, tf.Twist, tf.Thick
		return
	}
	var uf Unified
	if uf, res.Err = UnifyFoil(job.XU, job.YU, job.XL, job.YL); res.Err != nil {
		res.Err = fmt.Errorf("fit %s: %w", job.Name, res.Err)
		return
	}
	res.Twist, res.Chord, res.Tail = uf.Twist, uf.Chord, uf.Tail
	if res.CSTU, res.CSTL, res.Err = FitFoil(uf.XU, uf.YU, uf.XL, uf.YL, job.NCST); res.Err != nil {
		res.Err = fmt.Errorf("fit %s: %w", job.Name, res.Err)
		return
	}
	if len(uf.YU) == len(uf.YL) {
		_, res.Thick = MaxThickness(uf.YU, uf.YL)
	}
	return
}

func (fr FitResult) placement() geometry2D.Placement {
	return geometry2D.Placement{XLE: fr.XLE, YLE: fr.YLE, Chord: fr.Chord, Twist: fr.Twist}
}
