package niching

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// asfWeight is the off-diagonal weight of the achievement scalarizing
	// function, large enough to force alignment with one objective axis.
	asfWeight = 1e6
	// interceptEpsilon is the lower bound every intercept is clamped to,
	// so normalization never divides by a vanishing denominator.
	interceptEpsilon = 1e-6
)

// IdealPoint returns the component-wise minimum over the given objective
// vectors.
func IdealPoint(fitnesses [][]float64) []float64 {
	ideal := make([]float64, len(fitnesses[0]))
	copy(ideal, fitnesses[0])
	for _, f := range fitnesses[1:] {
		for i, v := range f {
			if v < ideal[i] {
				ideal[i] = v
			}
		}
	}
	return ideal
}

// WorstPoint returns the component-wise maximum over the given objective
// vectors.
func WorstPoint(fitnesses [][]float64) []float64 {
	worst := make([]float64, len(fitnesses[0]))
	copy(worst, fitnesses[0])
	for _, f := range fitnesses[1:] {
		for i, v := range f {
			if v > worst[i] {
				worst[i] = v
			}
		}
	}
	return worst
}

// FindExtremePoints locates, for each objective axis, the candidate
// minimizing the achievement scalarizing function of the translated
// objectives, weighted to force axis alignment. Extreme points from the
// previous generation may be passed in prev; they join the candidate set,
// which guards the normalization hyperplane against regressing between
// generations.
func FindExtremePoints(fitnesses [][]float64, ideal []float64, prev [][]float64) [][]float64 {
	candidates := make([][]float64, 0, len(fitnesses)+len(prev))
	candidates = append(candidates, fitnesses...)
	candidates = append(candidates, prev...)

	m := len(ideal)
	extremes := make([][]float64, m)
	for axis := 0; axis < m; axis++ {
		bestASF := math.Inf(1)
		var best []float64
		for _, f := range candidates {
			asf := math.Inf(-1)
			for k := 0; k < m; k++ {
				w := asfWeight
				if k == axis {
					w = 1
				}
				if v := (f[k] - ideal[k]) * w; v > asf {
					asf = v
				}
			}
			if asf < bestASF {
				bestASF = asf
				best = f
			}
		}
		extremes[axis] = make([]float64, m)
		copy(extremes[axis], best)
	}
	return extremes
}

// FindIntercepts computes where the hyperplane through the extreme points
// (with the ideal point as origin) crosses each objective axis, by solving
// (extremes - ideal) * x = 1. Degenerate systems never surface as errors:
// a singular system falls back to currentWorst, and a solution with a zero
// component, a failed reconstruction residual, a non-positive intercept or
// an intercept beyond the known worst value falls back to frontWorst. The
// returned intercepts are always at least interceptEpsilon.
func FindIntercepts(extremes [][]float64, ideal, currentWorst, frontWorst []float64) []float64 {
	m := len(ideal)
	data := make([]float64, m*m)
	for i, e := range extremes {
		for j := 0; j < m; j++ {
			data[i*m+j] = e[j] - ideal[j]
		}
	}
	a := mat.NewDense(m, m, data)

	ones := make([]float64, m)
	for i := range ones {
		ones[i] = 1
	}
	b := mat.NewVecDense(m, ones)

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return clampIntercepts(clone(currentWorst))
	}

	intercepts := make([]float64, m)
	for i := range intercepts {
		xi := x.AtVec(i)
		if xi == 0 {
			return clampIntercepts(clone(frontWorst))
		}
		intercepts[i] = 1 / xi
	}

	var residual mat.VecDense
	residual.MulVec(a, &x)
	if !floats.EqualApprox(residual.RawVector().Data, ones, 1e-8) {
		return clampIntercepts(clone(frontWorst))
	}
	for i, ic := range intercepts {
		if ic <= interceptEpsilon || ic+ideal[i] > currentWorst[i] {
			return clampIntercepts(clone(frontWorst))
		}
	}
	return intercepts
}

func clampIntercepts(intercepts []float64) []float64 {
	for i, ic := range intercepts {
		if ic < interceptEpsilon {
			intercepts[i] = interceptEpsilon
		}
	}
	return intercepts
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
