package sorting

import "sort"

// The bi-objective case has a closed-form O(N log N) solution: with groups
// sorted lexicographically ascending (best first under minimization), a
// monotone "staircase" of (second objective, rank) pairs is enough to find
// the tightest dominating entry for each new group by binary search. The
// stairs slice stays ascending on the second objective for bisection.

// sweepA assigns ranks within groups using their first two objectives.
func sweepA(groups []*fitGroup) {
	stairs := []float64{groups[0].fit[1]}
	fstairs := []*fitGroup{groups[0]}

	for _, g := range groups[1:] {
		idx := bisectRight(stairs, g.fit[1])
		if idx > 0 {
			// Every stair before idx is no worse than g on both
			// objectives; the highest-ranked one decides g's rank.
			fstair := bestRanked(fstairs[:idx])
			if fstair.rank+1 > g.rank {
				g.rank = fstair.rank + 1
			}
		}
		// Prune the stair that g supersedes at its own rank, if any.
		for i := idx; i < len(fstairs); i++ {
			if fstairs[i].rank == g.rank {
				stairs = append(stairs[:i], stairs[i+1:]...)
				fstairs = append(fstairs[:i], fstairs[i+1:]...)
				break
			}
		}
		stairs = insertFloat(stairs, idx, g.fit[1])
		fstairs = insertGroup(fstairs, idx, g)
	}
}

// sweepB adjusts the ranks of the worst groups against the best groups,
// whose ranks are already correct and act as reference stairs.
func sweepB(best, worst []*fitGroup) {
	var stairs []float64
	var fstairs []*fitGroup

	ib := 0
	for _, h := range worst {
		// Feed every best group that precedes h lexicographically into
		// the staircase before judging h.
		for ib < len(best) && lexLE2(best[ib].fit, h.fit) {
			nb := best[ib]
			insert := true
			for i, fstair := range fstairs {
				if fstair.rank == nb.rank {
					if fstair.fit[1] < nb.fit[1] {
						insert = false
					} else {
						stairs = append(stairs[:i], stairs[i+1:]...)
						fstairs = append(fstairs[:i], fstairs[i+1:]...)
					}
					break
				}
			}
			if insert {
				idx := bisectRight(stairs, nb.fit[1])
				stairs = insertFloat(stairs, idx, nb.fit[1])
				fstairs = insertGroup(fstairs, idx, nb)
			}
			ib++
		}

		idx := bisectRight(stairs, h.fit[1])
		if idx > 0 {
			fstair := bestRanked(fstairs[:idx])
			if fstair.rank+1 > h.rank {
				h.rank = fstair.rank + 1
			}
		}
	}
}

// bisectRight returns the insertion point for x in ascending slice a, after
// any existing entries equal to x.
func bisectRight(a []float64, x float64) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > x })
}

func bestRanked(groups []*fitGroup) *fitGroup {
	best := groups[0]
	for _, g := range groups[1:] {
		if g.rank > best.rank {
			best = g
		}
	}
	return best
}

// lexLE2 compares the first two objectives lexicographically.
func lexLE2(a, b []float64) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] <= b[1]
}

func insertFloat(a []float64, i int, x float64) []float64 {
	a = append(a, 0)
	copy(a[i+1:], a[i:])
	a[i] = x
	return a
}

func insertGroup(a []*fitGroup, i int, g *fitGroup) []*fitGroup {
	a = append(a, nil)
	copy(a[i+1:], a[i:])
	a[i] = g
	return a
}
