package framework

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"strictly better everywhere", []float64{1, 1}, []float64{2, 2}, true},
		{"better in one, equal in other", []float64{1, 2}, []float64{2, 2}, true},
		{"identical", []float64{1, 2}, []float64{1, 2}, false},
		{"worse in one", []float64{1, 3}, []float64{2, 2}, false},
		{"single objective", []float64{1}, []float64{2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dominates(tt.a, tt.b); got != tt.want {
				t.Errorf("Dominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDominatesAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 1000; trial++ {
		m := 2 + rng.Intn(5)
		a := make([]float64, m)
		b := make([]float64, m)
		for i := 0; i < m; i++ {
			// Coarse values so ties actually happen.
			a[i] = float64(rng.Intn(4))
			b[i] = float64(rng.Intn(4))
		}
		if Dominates(a, b) && Dominates(b, a) {
			t.Fatalf("both %v and %v dominate each other", a, b)
		}
		if Dominates(a, a) {
			t.Fatalf("%v dominates itself", a)
		}
	}
}

func TestDominatesConstrained(t *testing.T) {
	feasible := func(objs ...float64) Fitness {
		return Fitness{Objectives: objs, Constraints: []float64{0, 0}}
	}
	infeasible := func(violation float64, objs ...float64) Fitness {
		return Fitness{Objectives: objs, Constraints: []float64{violation}}
	}

	tests := []struct {
		name string
		a, b Fitness
		want bool
	}{
		{"feasible dominates infeasible with better objectives", feasible(2, 2), infeasible(1, 1, 1), true},
		{"infeasible never dominates feasible", infeasible(1, 1, 1), feasible(2, 2), false},
		{"lower violation dominates", infeasible(1, 5, 5), infeasible(3, 1, 1), true},
		{"higher violation does not", infeasible(3, 1, 1), infeasible(1, 5, 5), false},
		{"violation tie dominates neither way", infeasible(2, 1, 1), infeasible(2, 5, 5), false},
		{"both feasible falls back to objectives", feasible(1, 1), feasible(2, 2), true},
		{"both feasible, incomparable", feasible(1, 3), feasible(3, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominatesConstrained(tt.a, tt.b); got != tt.want {
				t.Errorf("DominatesConstrained() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateObjectives(t *testing.T) {
	pop := []Individual{
		{Key: "a", Fitness: Fitness{Objectives: []float64{1, 2}}},
		{Key: "b", Fitness: Fitness{Objectives: []float64{3, 4}}},
	}
	m, err := ValidateObjectives(pop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 2 {
		t.Errorf("got %d objectives, want 2", m)
	}

	pop = append(pop, Individual{Key: "c", Fitness: Fitness{Objectives: []float64{1, 2, 3}}})
	if _, err := ValidateObjectives(pop); err == nil {
		t.Error("expected error for mismatched dimensionality")
	}

	if m, err := ValidateObjectives(nil); err != nil || m != 0 {
		t.Errorf("empty population: got (%d, %v), want (0, nil)", m, err)
	}
}
