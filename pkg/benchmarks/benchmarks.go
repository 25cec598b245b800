// Package benchmarks provides synthetic multi-objective test problems with
// known Pareto fronts, used to exercise the selection engine.
package benchmarks

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/paretoworks/moea/pkg/framework"
)

// Problem evaluates a decision vector into an objective vector. The true
// front generator is optional in general but every problem here provides one.
type Problem interface {
	Name() string
	NumObjectives() int
	Bounds() []framework.Bounds
	Evaluate(vars []float64) []float64
	TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint
}

// RandomPopulation draws size individuals uniformly within the problem
// bounds and evaluates them.
func RandomPopulation(p Problem, size int, rng *rand.Rand) []framework.Individual {
	bounds := p.Bounds()
	pop := make([]framework.Individual, size)
	for i := 0; i < size; i++ {
		vars := make([]float64, len(bounds))
		for j, b := range bounds {
			vars[j] = b.L + rng.Float64()*(b.H-b.L)
		}
		pop[i] = framework.Individual{
			Key:       fmt.Sprintf("%s-%04d", p.Name(), i),
			Variables: vars,
			Fitness:   framework.Fitness{Objectives: p.Evaluate(vars)},
		}
	}
	return pop
}
