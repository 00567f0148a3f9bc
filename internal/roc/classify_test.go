package roc

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/roclab/internal/system"
)

func laplaceModel(causality system.Causality, declared system.Stability, reals ...float64) system.Model {
	m := system.New(system.Laplace).WithCausality(causality).WithDeclaredStability(declared)
	for _, r := range reals {
		m, _ = m.AddPole(system.ComplexPoint{Re: r})
	}
	return m
}

func zModel(causality system.Causality, declared system.Stability, moduli ...float64) system.Model {
	m := system.New(system.ZTransform).WithCausality(causality).WithDeclaredStability(declared)
	for _, r := range moduli {
		m, _ = m.AddPole(system.ComplexPoint{Re: r})
	}
	return m
}

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name         string
		model        system.Model
		wantStable   bool
		wantValid    bool
		wantBoundary float64
	}{
		{"laplace causal stable", laplaceModel(system.Causal, system.Stable, -2, -5), true, true, -2},
		{"laplace causal unstable", laplaceModel(system.Causal, system.Unstable, -2, 3), false, true, 3},
		{"laplace anticausal stable", laplaceModel(system.AntiCausal, system.Stable, 1, 4), true, true, 1},
		{"laplace anticausal unstable", laplaceModel(system.AntiCausal, system.Unstable, -1, 4), false, true, -1},
		{"z causal stable", zModel(system.Causal, system.Stable, 0.3, 0.7), true, true, 0.7},
		{"z causal unstable", zModel(system.Causal, system.Unstable, 0.3, 1.4), false, true, 1.4},
		{"z anticausal stable", zModel(system.AntiCausal, system.Stable, 1.5, 2.0), true, true, 1.5},
		{"z anticausal unstable", zModel(system.AntiCausal, system.Unstable, 0.3, 0.7), false, true, 0.3},
		{"pole on imaginary axis is unstable", laplaceModel(system.Causal, system.Unstable, 0), false, true, 0},
		{"pole on unit circle is unstable", zModel(system.Causal, system.Unstable, 1.0), false, true, 1},
		{"tied extremal poles", laplaceModel(system.Causal, system.Stable, -2, -2), true, true, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Classify(tt.model)
			if err != nil {
				t.Fatalf("classify failed: %v", err)
			}
			if v.Stable != tt.wantStable {
				t.Errorf("stable = %v, want %v", v.Stable, tt.wantStable)
			}
			if v.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", v.Valid, tt.wantValid)
			}
			if v.Boundary != tt.wantBoundary {
				t.Errorf("boundary = %v, want %v", v.Boundary, tt.wantBoundary)
			}
		})
	}
}

func TestClassifyZUsesModulus(t *testing.T) {
	// Pole at 0.6+0.8j has modulus exactly 1, so strict inequality says unstable.
	m := system.New(system.ZTransform).WithDeclaredStability(system.Unstable)
	m, _ = m.AddPole(system.ComplexPoint{Re: 0.6, Im: 0.8})

	v, err := Classify(m)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if v.Stable {
		t.Error("pole on the unit circle must be unstable")
	}
	if math.Abs(v.Boundary-1.0) > 1e-12 {
		t.Errorf("boundary = %v, want 1.0", v.Boundary)
	}
}

func TestClassifyNoPoles(t *testing.T) {
	for _, declared := range []system.Stability{system.Stable, system.Unstable} {
		m := system.New(system.Laplace).WithDeclaredStability(declared)
		v, err := Classify(m)
		if err != nil {
			t.Fatalf("classify failed: %v", err)
		}
		if !v.Stable || !v.Valid {
			t.Errorf("declared %v: empty model must be stable and valid, got %+v", declared, v)
		}
		if v.HasBoundary() {
			t.Errorf("declared %v: empty model must have no boundary, got %v", declared, v.Boundary)
		}
	}
}

func TestClassifyUnknownDomain(t *testing.T) {
	_, err := Classify(system.Model{})
	if err == nil {
		t.Fatal("expected error for model without domain")
	}
}

func TestMismatchExplanationNamesBoundary(t *testing.T) {
	m := laplaceModel(system.Causal, system.Stable, 1)
	v, err := Classify(m)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if v.Valid {
		t.Fatal("expected invalid configuration")
	}
	if !strings.Contains(v.Explanation, "1.00") {
		t.Errorf("explanation should name boundary 1.00: %q", v.Explanation)
	}
	if !strings.Contains(v.Explanation, "rightmost pole") {
		t.Errorf("explanation should name the rightmost pole: %q", v.Explanation)
	}
}

func TestExplanationCitesCriticalAxis(t *testing.T) {
	v, _ := Classify(laplaceModel(system.Causal, system.Stable, -2))
	if !strings.Contains(v.Explanation, "imaginary axis") {
		t.Errorf("laplace explanation should cite the imaginary axis: %q", v.Explanation)
	}

	v, _ = Classify(zModel(system.Causal, system.Stable, 0.5))
	if !strings.Contains(v.Explanation, "unit circle") {
		t.Errorf("z explanation should cite the unit circle: %q", v.Explanation)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	m := zModel(system.AntiCausal, system.Stable, 1.5, 2.0)
	v1, err := Classify(m)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	v2, err := Classify(m)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if v1 != v2 {
		t.Errorf("verdicts differ across calls: %+v vs %+v", v1, v2)
	}
}

func TestClassifyDoesNotMutateModel(t *testing.T) {
	m := laplaceModel(system.Causal, system.Stable, -1, -2)
	before := m.Poles[0]
	if _, err := Classify(m); err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if m.Poles[0] != before || len(m.Poles) != 2 {
		t.Error("classify mutated the model")
	}
}
