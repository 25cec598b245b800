// Package niching implements the reference-point machinery of NSGA-III
// (Deb & Jain 2014): lattice generation, hyperplane normalization,
// perpendicular-distance association and least-used-niche selection.
package niching

// ReferencePoint is a direction vector on the unit simplex used to partition
// the normalized objective space into niches.
type ReferencePoint []float64

// UniformReferencePoints generates the points of the simplex lattice obtained
// by dividing each of the m objectives into p parts; the result has
// C(p+m-1, m-1) points, each summing to 1. A scaling factor in (0, 1) shrinks
// the points toward the centroid, which is how multiple concentric layers are
// combined for many-objective problems (deprecated path, kept for
// compatibility).
func UniformReferencePoints(m, p int, scaling float64) []ReferencePoint {
	var points []ReferencePoint
	genRefsRecursive(make(ReferencePoint, m), m, p, p, 0, &points)

	if scaling > 0 && scaling < 1 {
		for _, point := range points {
			for i := range point {
				point[i] = point[i]*scaling + (1-scaling)/float64(m)
			}
		}
	}
	return points
}

func genRefsRecursive(ref ReferencePoint, m, left, total, depth int, out *[]ReferencePoint) {
	if depth == m-1 {
		ref[depth] = float64(left) / float64(total)
		point := make(ReferencePoint, m)
		copy(point, ref)
		*out = append(*out, point)
		return
	}
	for i := 0; i <= left; i++ {
		ref[depth] = float64(i) / float64(total)
		genRefsRecursive(ref, m, left-i, total, depth+1, out)
	}
}
