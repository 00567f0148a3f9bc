package system

import (
	"math"
	"testing"
)

func TestAddRemovePole(t *testing.T) {
	m := New(Laplace)

	m, err := m.AddPole(ComplexPoint{Re: -1, Im: 2})
	if err != nil {
		t.Fatalf("add pole failed: %v", err)
	}
	m, err = m.AddPole(ComplexPoint{Re: -3})
	if err != nil {
		t.Fatalf("add pole failed: %v", err)
	}

	if len(m.Poles) != 2 {
		t.Fatalf("expected 2 poles, got %d", len(m.Poles))
	}

	m, err = m.RemovePole(0)
	if err != nil {
		t.Fatalf("remove pole failed: %v", err)
	}
	if len(m.Poles) != 1 {
		t.Fatalf("expected 1 pole, got %d", len(m.Poles))
	}
	if m.Poles[0].Re != -3 {
		t.Errorf("expected remaining pole at -3, got %v", m.Poles[0])
	}
}

func TestRemovePoleOutOfRange(t *testing.T) {
	m := New(Laplace)
	if _, err := m.RemovePole(0); err == nil {
		t.Error("expected error removing from empty model")
	}

	m, _ = m.AddPole(ComplexPoint{Re: 1})
	if _, err := m.RemovePole(-1); err == nil {
		t.Error("expected error for negative index")
	}
	if _, err := m.RemovePole(1); err == nil {
		t.Error("expected error for index past end")
	}
}

func TestAddInvalidPoint(t *testing.T) {
	m := New(ZTransform)
	if _, err := m.AddPole(ComplexPoint{Re: math.NaN()}); err == nil {
		t.Error("expected error for NaN pole")
	}
	if _, err := m.AddZero(ComplexPoint{Im: math.Inf(1)}); err == nil {
		t.Error("expected error for Inf zero")
	}
}

func TestEditsDoNotMutateOriginal(t *testing.T) {
	m, _ := New(Laplace).AddPole(ComplexPoint{Re: -1})

	m2, _ := m.AddPole(ComplexPoint{Re: -2})
	if len(m.Poles) != 1 {
		t.Errorf("original model mutated: %d poles", len(m.Poles))
	}

	m2.Poles[0].Re = 99
	if m.Poles[0].Re != -1 {
		t.Error("edit aliased the original pole slice")
	}
}

func TestWithDomainResetsPoles(t *testing.T) {
	m, _ := New(Laplace).AddPole(ComplexPoint{Re: -1})
	m, _ = m.AddZero(ComplexPoint{Re: 1})
	m = m.WithCausality(AntiCausal)

	z := m.WithDomain(ZTransform)
	if len(z.Poles) != 0 || len(z.Zeros) != 0 {
		t.Error("domain switch should drop poles and zeros")
	}
	if z.Causality != AntiCausal {
		t.Error("domain switch should preserve causality")
	}

	same := m.WithDomain(Laplace)
	if len(same.Poles) != 1 {
		t.Error("same-domain switch should keep poles")
	}
}

func TestValidate(t *testing.T) {
	if err := (Model{}).Validate(); err == nil {
		t.Error("expected error for missing domain")
	}
	if err := New(Laplace).Validate(); err != nil {
		t.Errorf("empty laplace model should be valid: %v", err)
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		in      string
		want    Domain
		wantErr bool
	}{
		{"laplace", Laplace, false},
		{"s", Laplace, false},
		{"continuous", Laplace, false},
		{"z", ZTransform, false},
		{"discrete", ZTransform, false},
		{"fourier", DomainUnknown, true},
		{"", DomainUnknown, true},
	}

	for _, tt := range tests {
		got, err := ParseDomain(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDomain(%q): unexpected error state %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDomain(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComplexPointAbs(t *testing.T) {
	p := ComplexPoint{Re: 3, Im: 4}
	if math.Abs(p.Abs()-5) > 1e-12 {
		t.Errorf("expected |3+4j| = 5, got %f", p.Abs())
	}
}
