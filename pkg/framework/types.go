package framework

import "fmt"

// Individual represents a solution in the population. The engine only reads
// Variables and Strategy; they are owned by the caller and never mutated here.
type Individual struct {
	// Key is a stable identifier, unique within one population.
	Key       string
	Variables []float64
	// Strategy carries self-adaptation parameters. Opaque to this engine.
	Strategy []float64
	Fitness  Fitness
}

// Fitness holds the objective values of an individual (all minimized, any
// weighting is applied upstream) and optional constraint-violation values.
type Fitness struct {
	Objectives  []float64
	Constraints []float64
}

// TotalViolation is the sum of the constraint-violation vector. Zero means
// the individual is feasible.
func (f Fitness) TotalViolation() float64 {
	total := 0.0
	for _, c := range f.Constraints {
		total += c
	}
	return total
}

func (f Fitness) Feasible() bool {
	return f.TotalViolation() == 0
}

// Front is one non-domination level. Front 0 is globally non-dominated.
type Front []Individual

// Keys returns the individual keys in front order.
func (f Front) Keys() []string {
	keys := make([]string, len(f))
	for i, ind := range f {
		keys[i] = ind.Key
	}
	return keys
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

type Bounds struct {
	L float64
	H float64
}

// ValidateObjectives checks the caller contract: every individual carries the
// same number of objectives. Returns that number, 0 for an empty population.
func ValidateObjectives(pop []Individual) (int, error) {
	if len(pop) == 0 {
		return 0, nil
	}
	m := len(pop[0].Fitness.Objectives)
	for _, ind := range pop[1:] {
		if len(ind.Fitness.Objectives) != m {
			return 0, fmt.Errorf("individual %q has %d objectives, want %d",
				ind.Key, len(ind.Fitness.Objectives), m)
		}
	}
	return m, nil
}
