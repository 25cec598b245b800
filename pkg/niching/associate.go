package niching

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/paretoworks/moea/pkg/framework"
)

// Normalize maps an objective vector into the unit hyperbox spanned by the
// ideal point and the intercepts.
func Normalize(objectives, ideal, intercepts []float64) []float64 {
	fn := make([]float64, len(objectives))
	for i, v := range objectives {
		denom := intercepts[i] - ideal[i]
		if denom < interceptEpsilon {
			denom = interceptEpsilon
		}
		fn[i] = (v - ideal[i]) / denom
	}
	return fn
}

// PerpendicularDistance is the Euclidean distance from the normalized point
// fn to the line through the origin along the reference direction.
func PerpendicularDistance(fn []float64, ref ReferencePoint) float64 {
	norm := floats.Norm(ref, 2)
	proj := floats.Dot(fn, ref) / norm

	dist := 0.0
	for i, v := range fn {
		d := v - proj*ref[i]/norm
		dist += d * d
	}
	return math.Sqrt(dist)
}

// AssociateToNiche assigns every member of the front to the reference point
// at minimal perpendicular distance, returning per-member niche indices and
// the recorded distances. Corresponds to Algorithm 3 of Deb & Jain (2014).
func AssociateToNiche(front []framework.Individual, refs []ReferencePoint, ideal, intercepts []float64) (niches []int, distances []float64) {
	niches = make([]int, len(front))
	distances = make([]float64, len(front))

	for i, ind := range front {
		fn := Normalize(ind.Fitness.Objectives, ideal, intercepts)
		bestNiche := 0
		bestDist := math.Inf(1)
		for j, ref := range refs {
			if d := PerpendicularDistance(fn, ref); d < bestDist {
				bestDist = d
				bestNiche = j
			}
		}
		niches[i] = bestNiche
		distances[i] = bestDist
	}
	return niches, distances
}
