package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/paretoworks/moea/pkg/benchmarks"
	"github.com/paretoworks/moea/pkg/framework"
	"github.com/paretoworks/moea/pkg/util"
)

func keys(inds []framework.Individual) []string {
	out := make([]string, len(inds))
	for i, ind := range inds {
		out[i] = ind.Key
	}
	return out
}

// nonDominatedKeys computes the first front by brute force.
func nonDominatedKeys(pop []framework.Individual) map[string]bool {
	out := map[string]bool{}
	for i, a := range pop {
		dominated := false
		for j, b := range pop {
			if i != j && framework.Dominates(b.Fitness.Objectives, a.Fitness.Objectives) {
				dominated = true
				break
			}
		}
		if !dominated {
			out[a.Key] = true
		}
	}
	return out
}

func TestSelectCrowdingOnZDT1(t *testing.T) {
	problem := benchmarks.NewZDT1(30)
	pop := benchmarks.RandomPopulation(problem, 100, rand.New(rand.NewSource(11)))

	engine := New(Config{Seed: 11})
	selected, err := engine.Select(pop, 40)
	require.NoError(t, err)
	require.Len(t, selected, 40)

	seen := map[string]bool{}
	for _, ind := range selected {
		assert.False(t, seen[ind.Key], "individual %s selected twice", ind.Key)
		seen[ind.Key] = true
	}

	// With 100 random ZDT1 samples the first front is far smaller than 40,
	// so every non-dominated individual must survive.
	front0 := nonDominatedKeys(pop)
	require.Less(t, len(front0), 40)
	for key := range front0 {
		assert.True(t, seen[key], "non-dominated %s was dropped", key)
	}
}

func TestSelectNichingOnDTLZ2(t *testing.T) {
	problem := benchmarks.NewDTLZ2(12, 3)
	pop := benchmarks.RandomPopulation(problem, 120, rand.New(rand.NewSource(5)))

	engine := New(Config{Strategy: Niching, Seed: 5})
	selected, err := engine.Select(pop, 50)
	require.NoError(t, err)
	require.Len(t, selected, 50)

	seen := map[string]bool{}
	for _, ind := range selected {
		assert.False(t, seen[ind.Key], "individual %s selected twice", ind.Key)
		seen[ind.Key] = true
	}

	// p=4 divisions over 3 objectives give a C(6,2)=15 point lattice.
	counts := engine.NicheCounts()
	require.Len(t, counts, 15)
	total := 0
	for _, c := range counts {
		assert.GreaterOrEqual(t, c, 0)
		total += c
	}
	assert.Greater(t, total, 0)
}

func TestSelectDeterministicForEqualSeeds(t *testing.T) {
	problem := benchmarks.NewDTLZ2(12, 3)
	pop := benchmarks.RandomPopulation(problem, 80, rand.New(rand.NewSource(9)))

	cfg := Config{Strategy: Niching, Seed: 123}
	a, err := New(cfg).Select(pop, 30)
	require.NoError(t, err)
	b, err := New(cfg).Select(pop, 30)
	require.NoError(t, err)

	assert.Equal(t, keys(a), keys(b))
}

func TestSelectConstraintAware(t *testing.T) {
	pop := []framework.Individual{
		{Key: "feasible", Fitness: framework.Fitness{Objectives: []float64{2, 2}, Constraints: []float64{0}}},
		{Key: "feasible-worse", Fitness: framework.Fitness{Objectives: []float64{3, 3}, Constraints: []float64{0}}},
		{Key: "violator", Fitness: framework.Fitness{Objectives: []float64{1, 1}, Constraints: []float64{1}}},
		{Key: "violator-worse", Fitness: framework.Fitness{Objectives: []float64{0.5, 0.5}, Constraints: []float64{2}}},
	}

	engine := New(Config{ConstraintAware: true, Seed: 1})
	selected, err := engine.Select(pop, 1)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	// The violators have better objectives but feasibility wins.
	assert.Equal(t, "feasible", selected[0].Key)
}

func TestSelectEdgeCases(t *testing.T) {
	problem := benchmarks.NewZDT1(5)
	pop := benchmarks.RandomPopulation(problem, 10, rand.New(rand.NewSource(2)))
	engine := New(Config{})

	selected, err := engine.Select(pop, 0)
	require.NoError(t, err)
	assert.Empty(t, selected)

	selected, err = engine.Select(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, selected)

	selected, err = engine.Select(pop, 10)
	require.NoError(t, err)
	assert.Equal(t, keys(pop), keys(selected), "population at capacity survives unchanged")

	selected, err = engine.Select(pop, 50)
	require.NoError(t, err)
	assert.Len(t, selected, 10)
}

func TestSelectRejectsMismatchedObjectives(t *testing.T) {
	pop := []framework.Individual{
		{Key: "a", Fitness: framework.Fitness{Objectives: []float64{1, 2}}},
		{Key: "b", Fitness: framework.Fitness{Objectives: []float64{1, 2, 3}}},
	}
	engine := New(Config{})

	// The contract check applies whether the population must be split or
	// fits entirely.
	_, err := engine.Select(pop, 1)
	assert.Error(t, err)
	_, err = engine.Select(pop, 10)
	assert.Error(t, err)
}

func TestSelectAndPlotZDT1(t *testing.T) {
	problem := benchmarks.NewZDT1(30)
	pop := benchmarks.RandomPopulation(problem, 200, rand.New(rand.NewSource(17)))

	engine := New(Config{Seed: 17})
	selected, err := engine.Select(pop, 60)
	require.NoError(t, err)

	results := make([]framework.ObjectiveSpacePoint, len(selected))
	for i, ind := range selected {
		results[i] = framework.ObjectiveSpacePoint(ind.Fitness.Objectives)
	}
	require.NoError(t, util.PlotResults(results, problem, "Selection"))
}
