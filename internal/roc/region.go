package roc

import (
	"math"
	"sort"

	"github.com/san-kum/roclab/internal/system"
)

// RegionKind tags the shape of a region of convergence.
type RegionKind int

const (
	WholePlane RegionKind = iota
	HalfPlaneRight
	HalfPlaneLeft
	DiskExterior
	DiskInterior
)

func (k RegionKind) String() string {
	switch k {
	case HalfPlaneRight:
		return "half-plane right"
	case HalfPlaneLeft:
		return "half-plane left"
	case DiskExterior:
		return "disk exterior"
	case DiskInterior:
		return "disk interior"
	default:
		return "whole plane"
	}
}

// Region is a coordinate-free description of the ROC. Half-plane kinds use
// Boundary (a real part), disk kinds use Center and Radius. Mapping the
// region to pixels is entirely the renderer's concern.
type Region struct {
	Kind     RegionKind
	Boundary float64
	Center   system.ComplexPoint
	Radius   float64
}

// CurveKind tags a drawable boundary curve.
type CurveKind int

const (
	VerticalLine CurveKind = iota
	Circle
)

// Curve is a boundary to draw: a vertical line at Position (Laplace) or a
// circle of radius Position centered at Center (Z). The primary curve is the
// active ROC boundary; the rest are dashed per-pole reference curves.
type Curve struct {
	Kind     CurveKind
	Position float64
	Center   system.ComplexPoint
	Primary  bool
}

// boundaryResolution groups pole boundaries that only differ past the fourth
// decimal into one reference curve.
const boundaryResolution = 1e4

// DeriveRegion maps a model and its verdict to the drawable ROC shape plus
// boundary curves. The result is always a well-defined region; with no poles
// it is the whole plane and there are no curves.
func DeriveRegion(m system.Model, v Verdict) (Region, []Curve, error) {
	if err := m.Validate(); err != nil {
		return Region{}, nil, err
	}

	if len(m.Poles) == 0 {
		return Region{Kind: WholePlane}, nil, nil
	}

	var region Region
	curveKind := VerticalLine
	switch {
	case m.Domain == system.Laplace && m.Causality == system.Causal:
		region = Region{Kind: HalfPlaneRight, Boundary: v.Boundary}
	case m.Domain == system.Laplace && m.Causality == system.AntiCausal:
		region = Region{Kind: HalfPlaneLeft, Boundary: v.Boundary}
	case m.Domain == system.ZTransform && m.Causality == system.Causal:
		region = Region{Kind: DiskExterior, Radius: v.Boundary}
		curveKind = Circle
	default:
		region = Region{Kind: DiskInterior, Radius: v.Boundary}
		curveKind = Circle
	}

	curves := []Curve{{Kind: curveKind, Position: v.Boundary, Primary: true}}
	for _, b := range distinctBoundaries(m) {
		if math.Round(b*boundaryResolution) == math.Round(v.Boundary*boundaryResolution) {
			continue
		}
		curves = append(curves, Curve{Kind: curveKind, Position: b})
	}

	return region, curves, nil
}

// distinctBoundaries returns every unique pole real part (Laplace) or
// modulus (Z), sorted ascending. These are informative reference curves,
// not classification results.
func distinctBoundaries(m system.Model) []float64 {
	seen := make(map[float64]bool, len(m.Poles))
	out := make([]float64, 0, len(m.Poles))
	for _, p := range m.Poles {
		v := p.Re
		if m.Domain == system.ZTransform {
			v = p.Abs()
		}
		key := math.Round(v*boundaryResolution) / boundaryResolution
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
