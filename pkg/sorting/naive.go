package sorting

import (
	"sort"

	"github.com/paretoworks/moea/pkg/framework"
)

// naiveSort performs O(M*N^2) dominance-counting front ranking. Individuals
// sharing a fitness vector are grouped and compared once. Peeling stops once
// at least k individuals are ranked; used as the reference implementation.
func naiveSort(pop []framework.Individual, k int) []framework.Front {
	if k <= 0 || len(pop) == 0 {
		return nil
	}

	groups := groupByFitness(pop)

	domCount := make([]int, len(groups))
	dominated := make([][]int, len(groups))
	for i := range groups {
		for j := i + 1; j < len(groups); j++ {
			switch {
			case framework.Dominates(groups[i].fit, groups[j].fit):
				domCount[j]++
				dominated[i] = append(dominated[i], j)
			case framework.Dominates(groups[j].fit, groups[i].fit):
				domCount[i]++
				dominated[j] = append(dominated[j], i)
			}
		}
	}

	var current []int
	for i := range groups {
		if domCount[i] == 0 {
			current = append(current, i)
		}
	}

	fronts := []framework.Front{expandGroups(pop, groups, current)}
	ranked := len(fronts[0])
	target := min(len(pop), k)

	for ranked < target {
		var next []int
		for _, gi := range current {
			for _, gj := range dominated[gi] {
				domCount[gj]--
				if domCount[gj] == 0 {
					next = append(next, gj)
				}
			}
		}
		front := expandGroups(pop, groups, next)
		fronts = append(fronts, front)
		ranked += len(front)
		current = next
	}

	return fronts
}

// naiveSortConstrained separates feasible from infeasible individuals before
// ranking. With no feasible individual at all the result degrades to two
// pseudo-fronts: the single least-violating individual, then everyone else by
// increasing violation; the second return value reports this case. Otherwise
// feasible individuals are ranked fully and the infeasible ones are deposited
// into the last front sorted by increasing violation.
func naiveSortConstrained(pop []framework.Individual, k int) ([]framework.Front, bool) {
	if k <= 0 || len(pop) == 0 {
		return nil, false
	}

	feasible, infeasible := partitionFeasible(pop)
	if len(feasible) == 0 {
		return violationTwoTier(pop), true
	}

	fronts := naiveSort(feasible, len(feasible))
	return appendInfeasible(fronts, infeasible), false
}

func partitionFeasible(pop []framework.Individual) (feasible, infeasible []framework.Individual) {
	for _, ind := range pop {
		if ind.Fitness.Feasible() {
			feasible = append(feasible, ind)
		} else {
			infeasible = append(infeasible, ind)
		}
	}
	return feasible, infeasible
}

// violationTwoTier builds the all-infeasible degenerate ranking.
func violationTwoTier(pop []framework.Individual) []framework.Front {
	sorted := make([]framework.Individual, len(pop))
	copy(sorted, pop)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness.TotalViolation() < sorted[j].Fitness.TotalViolation()
	})
	return []framework.Front{
		{sorted[0]},
		framework.Front(sorted[1:]),
	}
}

// appendInfeasible deposits infeasible individuals into the last front, sorted
// by increasing total violation.
func appendInfeasible(fronts []framework.Front, infeasible []framework.Individual) []framework.Front {
	if len(infeasible) == 0 {
		return fronts
	}
	sorted := make([]framework.Individual, len(infeasible))
	copy(sorted, infeasible)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness.TotalViolation() < sorted[j].Fitness.TotalViolation()
	})
	last := len(fronts) - 1
	fronts[last] = append(fronts[last], sorted...)
	return fronts
}

func expandGroups(pop []framework.Individual, groups []*fitGroup, selected []int) framework.Front {
	var front framework.Front
	for _, gi := range selected {
		for _, m := range groups[gi].members {
			front = append(front, pop[m])
		}
	}
	return front
}
