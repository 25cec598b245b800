package crowding

import (
	"fmt"
	"math"
	"testing"

	"github.com/paretoworks/moea/pkg/framework"
)

func front(vectors ...[]float64) []framework.Individual {
	inds := make([]framework.Individual, len(vectors))
	for i, v := range vectors {
		inds[i] = framework.Individual{
			Key:     fmt.Sprintf("ind-%d", i),
			Fitness: framework.Fitness{Objectives: v},
		}
	}
	return inds
}

func TestTradeoffLineDistances(t *testing.T) {
	members := front([]float64{1, 5}, []float64{2, 4}, []float64{3, 3}, []float64{4, 2}, []float64{5, 1})
	distances := AssignCrowdingDistance(members)

	if !math.IsInf(distances["ind-0"], 1) || !math.IsInf(distances["ind-4"], 1) {
		t.Errorf("boundary individuals should have infinite distance, got %v and %v",
			distances["ind-0"], distances["ind-4"])
	}
	for _, key := range []string{"ind-1", "ind-2", "ind-3"} {
		d := distances[key]
		if math.IsInf(d, 1) || d <= 0 {
			t.Errorf("interior %s: distance %v, want finite and positive", key, d)
		}
	}
	// Evenly spaced points share the same interior distance: each axis
	// contributes 2/(2*4).
	for _, key := range []string{"ind-1", "ind-2", "ind-3"} {
		if got, want := distances[key], 0.5; math.Abs(got-want) > 1e-12 {
			t.Errorf("interior %s: distance %v, want %v", key, got, want)
		}
	}
}

func TestEqualAxisContributesNothing(t *testing.T) {
	members := front([]float64{1, 7}, []float64{2, 7}, []float64{3, 7})
	distances := AssignCrowdingDistance(members)

	// Second axis ties everywhere, so only the first axis contributes:
	// ind-1 accumulates (3-1)/(2*(3-1)) = 0.5.
	if got := distances["ind-1"]; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("interior distance %v, want 0.5", got)
	}
	if !math.IsInf(distances["ind-0"], 1) || !math.IsInf(distances["ind-2"], 1) {
		t.Error("boundary individuals should have infinite distance")
	}
}

func TestAllEqualFront(t *testing.T) {
	members := front([]float64{1, 1}, []float64{1, 1}, []float64{1, 1})
	distances := AssignCrowdingDistance(members)
	// The stable sort keeps input order, so the first and last members are
	// the boundaries on both axes; the degenerate axes contribute zero to
	// the interior one.
	if !math.IsInf(distances["ind-0"], 1) || !math.IsInf(distances["ind-2"], 1) {
		t.Error("boundary individuals should have infinite distance")
	}
	if got := distances["ind-1"]; got != 0 {
		t.Errorf("interior distance %v, want 0", got)
	}
}

func TestSmallFronts(t *testing.T) {
	if got := AssignCrowdingDistance(nil); len(got) != 0 {
		t.Errorf("empty front: got %v", got)
	}

	members := front([]float64{1, 2}, []float64{2, 1})
	distances := AssignCrowdingDistance(members)
	for key, d := range distances {
		if !math.IsInf(d, 1) {
			t.Errorf("%s: distance %v, want +Inf for two-member front", key, d)
		}
	}
}
