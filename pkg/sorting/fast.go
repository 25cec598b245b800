package sorting

import (
	"sort"

	"github.com/paretoworks/moea/pkg/framework"
)

// fitGroup is one unique fitness vector together with the indices of the
// individuals carrying it. Ranks are assigned to groups, never to raw float
// vectors, so no floating-point hashing is involved anywhere.
type fitGroup struct {
	fit     []float64
	members []int
	rank    int
}

// groupByFitness sorts the population lexicographically ascending on the
// objective vector, best first under minimization, and collapses identical
// vectors into one group. The resulting order is the processing order
// required by the sweep procedures: no later group can dominate an earlier
// one.
func groupByFitness(pop []framework.Individual) []*fitGroup {
	idx := make([]int, len(pop))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return lexLess(pop[idx[a]].Fitness.Objectives, pop[idx[b]].Fitness.Objectives)
	})

	var groups []*fitGroup
	for _, i := range idx {
		fit := pop[i].Fitness.Objectives
		if len(groups) > 0 && equalVectors(groups[len(groups)-1].fit, fit) {
			g := groups[len(groups)-1]
			g.members = append(g.members, i)
			continue
		}
		groups = append(groups, &fitGroup{fit: fit, members: []int{i}})
	}
	return groups
}

func lexLess(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func equalVectors(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func prefixEqual(a, b []float64, n int) bool {
	return equalVectors(a[:n], b[:n])
}

// fastSort is the divide-and-conquer front ranking of Fortin et al. (2013),
// generalized from the bi-objective Jensen sort. It operates on unique fitness
// vectors only; duplicates share a rank. Produces the same partition into
// fronts as naiveSort.
func fastSort(pop []framework.Individual, k int) []framework.Front {
	if k <= 0 || len(pop) == 0 {
		return nil
	}

	groups := groupByFitness(pop)
	helperA(groups, len(groups[0].fit)-1)

	maxRank := 0
	for _, g := range groups {
		if g.rank > maxRank {
			maxRank = g.rank
		}
	}
	fronts := make([]framework.Front, maxRank+1)
	for _, g := range groups {
		for _, m := range g.members {
			fronts[g.rank] = append(fronts[g.rank], pop[m])
		}
	}
	return fronts
}

// fastSortConstrained mirrors naiveSortConstrained: feasible individuals go
// through the recursive ranking, infeasible ones end up in the last front
// sorted by increasing violation, and an all-infeasible population degrades
// to the two-tier pseudo-ranking.
func fastSortConstrained(pop []framework.Individual, k int) ([]framework.Front, bool) {
	if k <= 0 || len(pop) == 0 {
		return nil, false
	}

	feasible, infeasible := partitionFeasible(pop)
	if len(feasible) == 0 {
		return violationTwoTier(pop), true
	}

	fronts := fastSort(feasible, len(feasible))
	return appendInfeasible(fronts, infeasible), false
}

// helperA ranks the groups among themselves considering objectives 0..obj.
// The input is lexicographically ascending, which every split preserves.
func helperA(groups []*fitGroup, obj int) {
	switch {
	case len(groups) < 2:
		return
	case len(groups) == 2:
		s1, s2 := groups[0], groups[1]
		if framework.Dominates(s1.fit[:obj+1], s2.fit[:obj+1]) {
			if s1.rank+1 > s2.rank {
				s2.rank = s1.rank + 1
			}
		}
	case obj == 1:
		sweepA(groups)
	case allEqualOn(groups, obj):
		// Objective obj carries no information here.
		helperA(groups, obj-1)
	default:
		best, worst := splitA(groups, obj)
		helperA(best, obj)
		helperB(best, worst, obj-1)
		helperA(worst, obj)
	}
}

// helperB propagates ranks from best (already correct and fixed) into worst,
// considering objectives 0..obj. Groups within worst are not compared with
// each other.
func helperB(best, worst []*fitGroup, obj int) {
	switch {
	case len(best) == 0 || len(worst) == 0:
		return
	case len(best) == 1 || len(worst) == 1:
		for _, hi := range worst {
			for _, li := range best {
				if framework.Dominates(li.fit[:obj+1], hi.fit[:obj+1]) || prefixEqual(li.fit, hi.fit, obj+1) {
					if li.rank+1 > hi.rank {
						hi.rank = li.rank + 1
					}
				}
			}
		}
	case obj == 1:
		sweepB(best, worst)
	case maxOn(best, obj) <= minOn(worst, obj):
		// Every group in best precedes every group in worst on this
		// objective (or all tie): skip to the next one.
		helperB(best, worst, obj-1)
	case minOn(best, obj) <= maxOn(worst, obj):
		best1, best2, worst1, worst2 := splitB(best, worst, obj)
		helperB(best1, worst1, obj)
		helperB(best1, worst2, obj-1)
		helperB(best2, worst2, obj)
	}
}

func allEqualOn(groups []*fitGroup, obj int) bool {
	for _, g := range groups[1:] {
		if g.fit[obj] != groups[0].fit[obj] {
			return false
		}
	}
	return true
}

func minOn(groups []*fitGroup, obj int) float64 {
	m := groups[0].fit[obj]
	for _, g := range groups[1:] {
		if g.fit[obj] < m {
			m = g.fit[obj]
		}
	}
	return m
}

func maxOn(groups []*fitGroup, obj int) float64 {
	m := groups[0].fit[obj]
	for _, g := range groups[1:] {
		if g.fit[obj] > m {
			m = g.fit[obj]
		}
	}
	return m
}

// medianOn returns the numeric value separating the higher half of the groups
// from the lower half on objective obj (mean of the two middle values for an
// even count).
func medianOn(groups []*fitGroup, obj int) float64 {
	vals := make([]float64, len(groups))
	for i, g := range groups {
		vals[i] = g.fit[obj]
	}
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[(n-1)/2]
	}
	return (vals[(n-1)/2] + vals[n/2]) / 2.0
}

// splitA partitions groups by the median of objective obj. Values equal to
// the median go to whichever side keeps the two halves more balanced, which
// bounds the recursion depth.
func splitA(groups []*fitGroup, obj int) (best, worst []*fitGroup) {
	median := medianOn(groups, obj)
	var bestA, worstA, bestB, worstB []*fitGroup
	for _, g := range groups {
		switch {
		case g.fit[obj] < median:
			bestA = append(bestA, g)
			bestB = append(bestB, g)
		case g.fit[obj] > median:
			worstA = append(worstA, g)
			worstB = append(worstB, g)
		default:
			bestA = append(bestA, g)
			worstB = append(worstB, g)
		}
	}
	if abs(len(bestA)-len(worstA)) <= abs(len(bestB)-len(worstB)) {
		return bestA, worstA
	}
	return bestB, worstB
}

// splitB splits both sides by the median of objective obj computed on the
// larger side, again assigning median ties to balance the four pieces.
func splitB(best, worst []*fitGroup, obj int) (best1, best2, worst1, worst2 []*fitGroup) {
	larger := best
	if len(worst) > len(best) {
		larger = worst
	}
	median := medianOn(larger, obj)

	var best1A, best2A, best1B, best2B []*fitGroup
	for _, g := range best {
		switch {
		case g.fit[obj] < median:
			best1A = append(best1A, g)
			best1B = append(best1B, g)
		case g.fit[obj] > median:
			best2A = append(best2A, g)
			best2B = append(best2B, g)
		default:
			best1A = append(best1A, g)
			best2B = append(best2B, g)
		}
	}

	var worst1A, worst2A, worst1B, worst2B []*fitGroup
	for _, g := range worst {
		switch {
		case g.fit[obj] < median:
			worst1A = append(worst1A, g)
			worst1B = append(worst1B, g)
		case g.fit[obj] > median:
			worst2A = append(worst2A, g)
			worst2B = append(worst2B, g)
		default:
			worst1A = append(worst1A, g)
			worst2B = append(worst2B, g)
		}
	}

	balanceA := abs(len(best1A) - len(best2A) + len(worst1A) - len(worst2A))
	balanceB := abs(len(best1B) - len(best2B) + len(worst1B) - len(worst2B))
	if balanceA <= balanceB {
		return best1A, best2A, worst1A, worst2A
	}
	return best1B, best2B, worst1B, worst2B
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
