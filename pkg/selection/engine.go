// Package selection implements generational survivor selection for
// multi-objective evolutionary loops: populations are ranked into Pareto
// fronts and a split front is resolved either by crowding distance (NSGA-II)
// or by reference-point niching (NSGA-III). Representation, variation and
// fitness evaluation stay with the caller.
package selection

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/paretoworks/moea/pkg/crowding"
	"github.com/paretoworks/moea/pkg/framework"
	"github.com/paretoworks/moea/pkg/niching"
	"github.com/paretoworks/moea/pkg/sorting"
)

// Strategy picks how a split front is resolved.
type Strategy int

const (
	// Auto uses crowding distance for bi-objective populations and
	// reference-point niching otherwise.
	Auto Strategy = iota
	Crowding
	Niching
)

type Config struct {
	Strategy        Strategy
	Algorithm       sorting.Algorithm
	ConstraintAware bool

	// ReferenceDivisions is the lattice division count p for the niching
	// path; 0 means 4.
	ReferenceDivisions int
	// ReferenceScaling shrinks reference points toward the centroid when
	// in (0, 1).
	ReferenceScaling float64

	Seed uint64
}

// Engine carries the selection state that survives across generations: the
// reference-point lattice, the niche-count table, the ideal-point memory and
// the previous generation's extreme points.
type Engine struct {
	cfg Config
	rng *rand.Rand

	refs        []niching.ReferencePoint
	nicheCounts []int
	ideal       []float64
	extremes    [][]float64
}

func New(cfg Config) *Engine {
	if cfg.ReferenceDivisions == 0 {
		cfg.ReferenceDivisions = 4
	}
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Reset drops all state carried across generations.
func (e *Engine) Reset() {
	e.refs = nil
	e.nicheCounts = nil
	e.ideal = nil
	e.extremes = nil
}

// NicheCounts exposes the niche-count table of the last niching selection.
func (e *Engine) NicheCounts() []int {
	return e.nicheCounts
}

// Select returns exactly k survivors from the population (everyone when the
// population holds at most k). Whole fronts are taken in rank order; the
// first front that does not fit entirely is split by the configured strategy.
func (e *Engine) Select(pop []framework.Individual, k int) ([]framework.Individual, error) {
	if k <= 0 || len(pop) == 0 {
		return nil, nil
	}
	if _, err := framework.ValidateObjectives(pop); err != nil {
		return nil, err
	}
	if len(pop) <= k {
		out := make([]framework.Individual, len(pop))
		copy(out, pop)
		return out, nil
	}

	res, err := sorting.SortFronts(pop, k, sorting.Options{
		Algorithm:       e.cfg.Algorithm,
		ConstraintAware: e.cfg.ConstraintAware,
	})
	if err != nil {
		return nil, err
	}

	chosen := make([]framework.Individual, 0, k)
	frontIndex := 0
	for frontIndex < len(res.Fronts) && len(chosen)+len(res.Fronts[frontIndex]) <= k {
		chosen = append(chosen, res.Fronts[frontIndex]...)
		frontIndex++
	}
	if len(chosen) == k || frontIndex >= len(res.Fronts) {
		return chosen, nil
	}

	last := res.Fronts[frontIndex]
	need := k - len(chosen)
	m := len(pop[0].Fitness.Objectives)

	strategy := e.cfg.Strategy
	if strategy == Auto {
		if m <= 2 {
			strategy = Crowding
		} else {
			strategy = Niching
		}
	}
	klog.V(4).InfoS("splitting front", "front", frontIndex, "size", len(last),
		"need", need, "strategy", strategy)

	var picked []framework.Individual
	if strategy == Crowding {
		picked = pickByCrowding(last, need)
	} else {
		picked, err = e.pickByNiching(pop, res.Fronts[0], chosen, last, need, m)
		if err != nil {
			return nil, err
		}
	}
	return append(chosen, picked...), nil
}

// pickByCrowding keeps the need most spread-out members of the front,
// preferring descending crowding distance.
func pickByCrowding(front []framework.Individual, need int) []framework.Individual {
	distances := crowding.AssignCrowdingDistance(front)
	sorted := make([]framework.Individual, len(front))
	copy(sorted, front)
	sort.SliceStable(sorted, func(i, j int) bool {
		return distances[sorted[i].Key] > distances[sorted[j].Key]
	})
	return sorted[:need]
}

// pickByNiching normalizes the candidate fronts, associates the already
// chosen individuals to seed the niche counts and fills the remaining slots
// from the least-used niches of the split front.
func (e *Engine) pickByNiching(pop, front0, chosen, last []framework.Individual, need, m int) ([]framework.Individual, error) {
	if e.refs == nil {
		e.refs = niching.UniformReferencePoints(m, e.cfg.ReferenceDivisions, e.cfg.ReferenceScaling)
	}
	if len(e.refs[0]) != m {
		return nil, fmt.Errorf("reference points have %d dimensions, population has %d objectives", len(e.refs[0]), m)
	}

	front0Fits := objectiveVectors(front0)

	ideal := niching.IdealPoint(front0Fits)
	if e.ideal != nil {
		ideal = niching.IdealPoint([][]float64{ideal, e.ideal})
	}
	e.ideal = ideal

	extremes := niching.FindExtremePoints(front0Fits, ideal, e.extremes)
	e.extremes = extremes

	currentWorst := niching.WorstPoint(objectiveVectors(pop))
	candidates := append(append([]framework.Individual{}, chosen...), last...)
	frontWorst := niching.WorstPoint(objectiveVectors(candidates))

	intercepts := niching.FindIntercepts(extremes, ideal, currentWorst, frontWorst)

	// Seed the niche counts with the fully-included fronts, then let the
	// selector update them for the split front.
	niches, distances := niching.AssociateToNiche(candidates, e.refs, ideal, intercepts)
	counts := make([]int, len(e.refs))
	for _, niche := range niches[:len(chosen)] {
		counts[niche]++
	}
	e.nicheCounts = counts

	return niching.Niche(last, need, niches[len(chosen):], distances[len(chosen):], counts, e.rng)
}

func objectiveVectors(inds []framework.Individual) [][]float64 {
	out := make([][]float64, len(inds))
	for i, ind := range inds {
		out[i] = ind.Fitness.Objectives
	}
	return out
}
