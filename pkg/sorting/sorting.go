// Package sorting ranks populations into Pareto fronts, either by the
// O(M*N^2) dominance-counting sort or by a divide-and-conquer sort with
// better scaling in the population size. Both produce the identical
// partition into fronts on any input.
package sorting

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/paretoworks/moea/pkg/framework"
)

// Algorithm selects the front-ranking implementation.
type Algorithm int

const (
	// Naive is the O(M*N^2) dominance-counting sort (Deb 2002).
	Naive Algorithm = iota
	// Fast is the divide-and-conquer sort (Fortin 2013).
	Fast
)

func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Fast:
		return "fast"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

type Options struct {
	Algorithm Algorithm
	// ConstraintAware separates feasible from infeasible individuals and
	// applies the constrained dominance rule.
	ConstraintAware bool
}

type Result struct {
	Fronts []framework.Front
	// AllInfeasible reports the degenerate constrained case where no
	// feasible individual exists and the fronts are the two-tier
	// violation ranking instead of a dominance ranking.
	AllInfeasible bool
}

// SortFronts ranks the population by Pareto dominance and returns the ordered
// fronts needed to cover at least k individuals (all fronts if the population
// holds fewer than k). An empty population or k == 0 yields an empty result.
// Mismatched objective dimensionality is a caller contract error.
func SortFronts(pop []framework.Individual, k int, opts Options) (Result, error) {
	if k < 0 {
		return Result{}, fmt.Errorf("k must be non-negative, got %d", k)
	}
	if _, err := framework.ValidateObjectives(pop); err != nil {
		return Result{}, err
	}
	klog.V(4).InfoS("sorting fronts", "individuals", len(pop), "k", k,
		"algorithm", opts.Algorithm, "constraintAware", opts.ConstraintAware)

	var (
		fronts        []framework.Front
		allInfeasible bool
	)
	switch {
	case opts.ConstraintAware && opts.Algorithm == Fast:
		fronts, allInfeasible = fastSortConstrained(pop, k)
	case opts.ConstraintAware:
		fronts, allInfeasible = naiveSortConstrained(pop, k)
	case opts.Algorithm == Fast:
		fronts = fastSort(pop, k)
	default:
		fronts = naiveSort(pop, k)
	}

	if !allInfeasible {
		fronts = truncateFronts(fronts, k)
	}
	return Result{Fronts: fronts, AllInfeasible: allInfeasible}, nil
}

// truncateFronts keeps the leading fronts needed to cover k individuals.
func truncateFronts(fronts []framework.Front, k int) []framework.Front {
	count := 0
	for i, f := range fronts {
		count += len(f)
		if count >= k {
			return fronts[:i+1]
		}
	}
	return fronts
}
