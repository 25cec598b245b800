package niching

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/paretoworks/moea/pkg/framework"
)

// SelectByNiching fills k slots from the last partially-included front using
// the niche-preserving operator: members are associated to the given
// reference points and picked from the least-used niches first. nicheCounts
// is indexed by reference point and mutated in place, so the caller can carry
// it across generations. The random source drives every tie-break; a fixed
// seed gives reproducible selections.
func SelectByNiching(front []framework.Individual, k int, refs []ReferencePoint, ideal, intercepts []float64, nicheCounts []int, rng *rand.Rand) ([]framework.Individual, error) {
	if len(nicheCounts) != len(refs) {
		return nil, fmt.Errorf("niche count table has %d entries for %d reference points", len(nicheCounts), len(refs))
	}
	niches, distances := AssociateToNiche(front, refs, ideal, intercepts)
	return Niche(front, k, niches, distances, nicheCounts, rng)
}

// Niche runs the niche-preserving operator on a front whose association is
// already known. Each round finds the minimum count among niches that still
// have an available member, picks up to the remaining number of such niches
// at random, and selects one member per picked niche: the closest to the
// reference direction when the niche is empty, a random one otherwise. No
// individual is ever selected twice and each round selects at least one, so
// at most k rounds run.
func Niche(front []framework.Individual, k int, niches []int, distances []float64, nicheCounts []int, rng *rand.Rand) ([]framework.Individual, error) {
	if len(niches) != len(front) || len(distances) != len(front) {
		return nil, fmt.Errorf("association of %d niches / %d distances does not cover front of %d", len(niches), len(distances), len(front))
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if k > len(front) {
		k = len(front)
	}
	if k <= 0 {
		return nil, nil
	}

	selected := make([]framework.Individual, 0, k)
	available := make([]bool, len(front))
	for i := range available {
		available[i] = true
	}

	for len(selected) < k {
		n := k - len(selected)

		// Find the niches that still have an available member and the
		// minimum count among them.
		availableNiches := make([]bool, len(nicheCounts))
		for i, av := range available {
			if av {
				availableNiches[niches[i]] = true
			}
		}
		minCount := math.MaxInt
		for j, av := range availableNiches {
			if av && nicheCounts[j] < minCount {
				minCount = nicheCounts[j]
			}
		}

		var candidates []int
		for j, av := range availableNiches {
			if av && nicheCounts[j] == minCount {
				candidates = append(candidates, j)
			}
		}
		rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		if len(candidates) > n {
			candidates = candidates[:n]
		}

		for _, niche := range candidates {
			var members []int
			for i, av := range available {
				if av && niches[i] == niche {
					members = append(members, i)
				}
			}
			rng.Shuffle(len(members), func(a, b int) {
				members[a], members[b] = members[b], members[a]
			})

			sel := members[0]
			if nicheCounts[niche] == 0 {
				// First association of this niche: prefer the member
				// closest to the reference direction.
				for _, i := range members[1:] {
					if distances[i] < distances[sel] {
						sel = i
					}
				}
			}

			available[sel] = false
			nicheCounts[niche]++
			selected = append(selected, front[sel])
		}
	}
	return selected, nil
}
