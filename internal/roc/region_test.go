package roc

import (
	"context"
	"testing"

	"github.com/san-kum/roclab/internal/system"
)

func TestDeriveRegionMapping(t *testing.T) {
	tests := []struct {
		name      string
		model     system.Model
		wantKind  RegionKind
		wantCurve CurveKind
	}{
		{"laplace causal", laplaceModel(system.Causal, system.Stable, -2), HalfPlaneRight, VerticalLine},
		{"laplace anticausal", laplaceModel(system.AntiCausal, system.Stable, 2), HalfPlaneLeft, VerticalLine},
		{"z causal", zModel(system.Causal, system.Stable, 0.5), DiskExterior, Circle},
		{"z anticausal", zModel(system.AntiCausal, system.Stable, 1.5), DiskInterior, Circle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Classify(tt.model)
			if err != nil {
				t.Fatalf("classify failed: %v", err)
			}
			region, curves, err := DeriveRegion(tt.model, v)
			if err != nil {
				t.Fatalf("derive region failed: %v", err)
			}
			if region.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", region.Kind, tt.wantKind)
			}
			if len(curves) == 0 || !curves[0].Primary {
				t.Fatal("expected a primary boundary curve first")
			}
			if curves[0].Kind != tt.wantCurve {
				t.Errorf("curve kind = %v, want %v", curves[0].Kind, tt.wantCurve)
			}
		})
	}
}

func TestDeriveRegionBoundaryValues(t *testing.T) {
	m := laplaceModel(system.Causal, system.Stable, -2)
	v, _ := Classify(m)
	region, _, _ := DeriveRegion(m, v)
	if region.Boundary != -2 {
		t.Errorf("boundary = %v, want -2", region.Boundary)
	}

	m = zModel(system.Causal, system.Stable, 0.5)
	v, _ = Classify(m)
	region, _, _ = DeriveRegion(m, v)
	if region.Radius != 0.5 {
		t.Errorf("radius = %v, want 0.5", region.Radius)
	}
	if region.Center != (system.ComplexPoint{}) {
		t.Errorf("disk should be origin-centered, got %v", region.Center)
	}
}

func TestDeriveRegionNoPoles(t *testing.T) {
	m := system.New(system.ZTransform)
	v, _ := Classify(m)
	region, curves, err := DeriveRegion(m, v)
	if err != nil {
		t.Fatalf("derive region failed: %v", err)
	}
	if region.Kind != WholePlane {
		t.Errorf("kind = %v, want whole plane", region.Kind)
	}
	if len(curves) != 0 {
		t.Errorf("expected no curves, got %d", len(curves))
	}
}

func TestSecondaryCurvesAreDistinct(t *testing.T) {
	// Three poles, two distinct real parts. One is the active boundary, so a
	// single dashed reference curve remains.
	m := laplaceModel(system.Causal, system.Stable, -1, -3, -3)
	v, _ := Classify(m)
	_, curves, _ := DeriveRegion(m, v)

	if len(curves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(curves))
	}
	if curves[1].Primary {
		t.Error("secondary curve should not be primary")
	}
	if curves[1].Position != -3 {
		t.Errorf("secondary at %v, want -3", curves[1].Position)
	}
}

func TestDeriveRegionIdempotent(t *testing.T) {
	m := zModel(system.AntiCausal, system.Unstable, 0.3, 0.7)
	v, _ := Classify(m)

	r1, c1, _ := DeriveRegion(m, v)
	r2, c2, _ := DeriveRegion(m, v)
	if r1 != r2 {
		t.Errorf("regions differ: %+v vs %+v", r1, r2)
	}
	if len(c1) != len(c2) {
		t.Fatalf("curve counts differ: %d vs %d", len(c1), len(c2))
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Errorf("curve %d differs: %+v vs %+v", i, c1[i], c2[i])
		}
	}
}

func TestAnalyzeAll(t *testing.T) {
	models := []system.Model{
		laplaceModel(system.Causal, system.Stable, -1),
		zModel(system.Causal, system.Stable, 0.5),
		system.New(system.Laplace),
	}

	outcomes, err := AnalyzeAll(context.Background(), models)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Region.Kind != HalfPlaneRight {
		t.Errorf("outcome 0: kind = %v", outcomes[0].Region.Kind)
	}
	if outcomes[1].Region.Kind != DiskExterior {
		t.Errorf("outcome 1: kind = %v", outcomes[1].Region.Kind)
	}
	if outcomes[2].Region.Kind != WholePlane {
		t.Errorf("outcome 2: kind = %v", outcomes[2].Region.Kind)
	}
}

func TestAnalyzeAllCausalityVariants(t *testing.T) {
	// The sweep the region command runs: same pole layout classified under
	// both causality assumptions in one batch.
	base := laplaceModel(system.Causal, system.Stable, -2, 1)
	variants := []system.Model{
		base.WithCausality(system.Causal),
		base.WithCausality(system.AntiCausal),
	}

	outcomes, err := AnalyzeAll(context.Background(), variants)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	if outcomes[0].Region.Kind != HalfPlaneRight {
		t.Errorf("causal kind = %v, want half-plane right", outcomes[0].Region.Kind)
	}
	if outcomes[0].Verdict.Boundary != 1 {
		t.Errorf("causal boundary = %v, want 1 (rightmost pole)", outcomes[0].Verdict.Boundary)
	}
	if outcomes[1].Region.Kind != HalfPlaneLeft {
		t.Errorf("anticausal kind = %v, want half-plane left", outcomes[1].Region.Kind)
	}
	if outcomes[1].Verdict.Boundary != -2 {
		t.Errorf("anticausal boundary = %v, want -2 (leftmost pole)", outcomes[1].Verdict.Boundary)
	}
}

func TestAnalyzeAllPropagatesError(t *testing.T) {
	models := []system.Model{
		laplaceModel(system.Causal, system.Stable, -1),
		{}, // no domain
	}
	if _, err := AnalyzeAll(context.Background(), models); err == nil {
		t.Error("expected error for model without domain")
	}
}
