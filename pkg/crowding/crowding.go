// Package crowding implements the NSGA-II crowding distance, the spacing
// metric used to break ties within a partial front (Deb 2002).
package crowding

import (
	"math"
	"sort"

	"github.com/paretoworks/moea/pkg/framework"
)

// AssignCrowdingDistance computes the crowding distance of every member of a
// front, keyed by individual. For each objective axis the two boundary
// individuals get an infinite distance and interior ones accumulate the
// normalized gap between their neighbors; an axis on which all members tie
// contributes nothing.
func AssignCrowdingDistance(front []framework.Individual) map[string]float64 {
	distances := make(map[string]float64, len(front))
	if len(front) == 0 {
		return distances
	}

	dist := make([]float64, len(front))
	order := make([]int, len(front))
	for i := range order {
		order[i] = i
	}

	m := len(front[0].Fitness.Objectives)
	for obj := 0; obj < m; obj++ {
		sort.SliceStable(order, func(a, b int) bool {
			return front[order[a]].Fitness.Objectives[obj] < front[order[b]].Fitness.Objectives[obj]
		})

		first, last := order[0], order[len(order)-1]
		dist[first] = math.Inf(1)
		dist[last] = math.Inf(1)

		lo := front[first].Fitness.Objectives[obj]
		hi := front[last].Fitness.Objectives[obj]
		if hi == lo {
			continue
		}

		norm := float64(m) * (hi - lo)
		for i := 1; i < len(order)-1; i++ {
			prev := front[order[i-1]].Fitness.Objectives[obj]
			next := front[order[i+1]].Fitness.Objectives[obj]
			dist[order[i]] += (next - prev) / norm
		}
	}

	for i, ind := range front {
		distances[ind.Key] = dist[i]
	}
	return distances
}
