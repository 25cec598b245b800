package benchmarks

import (
	"math"

	"github.com/paretoworks/moea/pkg/framework"
)

// DTLZ2 has a spherical Pareto front and scales to any number of objectives.
// It's easier than DTLZ1 as it has no local fronts.
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ2
	return &DTLZ2{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ2) Name() string {
	return "DTLZ2"
}

func (p *DTLZ2) NumObjectives() int {
	return p.numObjectives
}

func (p *DTLZ2) Bounds() []framework.Bounds {
	b := make([]framework.Bounds, p.numVars)
	for i := range b {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) Evaluate(x []float64) []float64 {
	g := p.g(x)
	objs := make([]float64, p.numObjectives)
	for objIdx := 0; objIdx < p.numObjectives; objIdx++ {
		f := 1 + g

		// Product of cos terms
		for i := 0; i < p.numObjectives-objIdx-1; i++ {
			f *= math.Cos(x[i] * math.Pi / 2)
		}

		// Last term is sin for all objectives except the first
		if objIdx > 0 {
			f *= math.Sin(x[p.numObjectives-objIdx-1] * math.Pi / 2)
		}
		objs[objIdx] = f
	}
	return objs
}

// TrueParetoFront samples the unit sphere octant that forms the DTLZ2 front.
// Only implemented for the 2-objective case; plotting is 2D anyway.
func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if p.numObjectives != 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		theta := float64(i) / float64(numPoints-1) * math.Pi / 2
		points[i] = framework.ObjectiveSpacePoint{math.Cos(theta), math.Sin(theta)}
	}
	return points
}
