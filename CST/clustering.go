package CST

import "math"

// Clustering holds the parameters of the cosine clustering distribution on
// [0,1]. Small A0 concentrates points at x=0, A1 near 1 concentrates them
// at x=1. A0 == A1 is undefined.
type Clustering struct {
	A0, A1, Beta float64
}

var DefaultClustering = Clustering{A0: 0.0079, A1: 0.96, Beta: 1}

// At returns the i-th of nn clustered values.
func (cl Clustering) At(i, nn int) float64 {
	var (
		aa = math.Pow((1-math.Cos(cl.A0*math.Pi))/2, cl.Beta)
		dd = math.Pow((1-math.Cos(cl.A1*math.Pi))/2, cl.Beta) - aa
	)
	return cl.eval(i, nn, aa, dd)
}

func (cl Clustering) eval(i, nn int, aa, dd float64) float64 {
	var (
		t = float64(i) / float64(nn-1)
		a = math.Pi * (cl.A0*(1-t) + cl.A1*t)
	)
	return (math.Pow((1-math.Cos(a))/2, cl.Beta) - aa) / dd
}

// Distribution returns nn clustered values, 0 first and 1 last.
func (cl Clustering) Distribution(nn int) (x []float64) {
	var (
		aa = math.Pow((1-math.Cos(cl.A0*math.Pi))/2, cl.Beta)
		dd = math.Pow((1-math.Cos(cl.A1*math.Pi))/2, cl.Beta) - aa
	)
	x = make([]float64, nn)
	for i := range x {
		x[i] = cl.eval(i, nn, aa, dd)
	}
	return
}

// ClustCos is the i-th of nn values of the distribution with parameters
// a0, a1 and beta.
func ClustCos(i, nn int, a0, a1, beta float64) float64 {
	return Clustering{A0: a0, A1: a1, Beta: beta}.At(i, nn)
}

// DistClustCos returns the default clustered distribution of nn points.
func DistClustCos(nn int) []float64 {
	return DefaultClustering.Distribution(nn)
}
