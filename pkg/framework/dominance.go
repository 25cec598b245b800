package framework

// Dominates checks if objective vector a dominates objective vector b: a must
// be no worse in every objective and strictly better in at least one. The
// relation is irreflexive and asymmetric; ties on every objective dominate
// in neither direction.
func Dominates(a, b []float64) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// DominatesConstrained checks dominance with the constraint handling of
// Jain & Deb (2013): feasible individuals dominate infeasible ones, among
// infeasible ones the lower total violation dominates (tie: neither), and
// among feasible ones plain objective dominance applies.
func DominatesConstrained(a, b Fitness) bool {
	av, bv := a.TotalViolation(), b.TotalViolation()
	switch {
	case av == 0 && bv != 0:
		return true
	case av != 0 && bv == 0:
		return false
	case av != 0 && bv != 0:
		return av < bv
	default:
		return Dominates(a.Objectives, b.Objectives)
	}
}
