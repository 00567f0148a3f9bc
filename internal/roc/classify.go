package roc

import (
	"fmt"
	"math"

	"github.com/san-kum/roclab/internal/system"
)

// Verdict is the classifier output for one model. Boundary is the critical
// real part (Laplace) or critical modulus (Z); it is NaN when the model has
// no poles and the ROC is the whole plane.
type Verdict struct {
	Stable      bool
	Valid       bool
	Boundary    float64
	Explanation string
}

// HasBoundary reports whether Boundary carries a value.
func (v Verdict) HasBoundary() bool {
	return !math.IsNaN(v.Boundary)
}

// Classify computes the true ROC for a model and checks it against the
// declared stability assumption. It is a pure projection: the model is never
// mutated and identical inputs always produce identical verdicts.
//
// A declared/computed mismatch is not an error, it is a first-class outcome
// with Valid=false. The only error is a model without a domain.
func Classify(m system.Model) (Verdict, error) {
	if err := m.Validate(); err != nil {
		return Verdict{}, err
	}

	// No poles: the defining integral/sum converges everywhere, so the ROC
	// is the entire plane and the system is trivially BIBO stable. The
	// declared assumption is intentionally not checked on this branch.
	if len(m.Poles) == 0 {
		return Verdict{
			Stable:      true,
			Valid:       true,
			Boundary:    math.NaN(),
			Explanation: wholePlaneExplanation(m.Domain),
		}, nil
	}

	lo, hi := poleExtrema(m)

	var v Verdict
	switch {
	case m.Domain == system.Laplace && m.Causality == system.Causal:
		v = Verdict{Stable: hi < 0, Boundary: hi}
	case m.Domain == system.Laplace && m.Causality == system.AntiCausal:
		v = Verdict{Stable: lo > 0, Boundary: lo}
	case m.Domain == system.ZTransform && m.Causality == system.Causal:
		v = Verdict{Stable: hi < 1, Boundary: hi}
	default: // ZTransform, AntiCausal
		v = Verdict{Stable: lo > 1, Boundary: lo}
	}

	declared := m.DeclaredStability == system.Stable
	v.Valid = declared == v.Stable
	if v.Valid {
		v.Explanation = consistentExplanation(m, v)
	} else {
		v.Explanation = mismatchExplanation(m, v)
	}
	return v, nil
}

// poleExtrema returns the min and max of the domain's critical scalar over
// all poles: real parts for Laplace, moduli for Z.
func poleExtrema(m system.Model) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range m.Poles {
		v := p.Re
		if m.Domain == system.ZTransform {
			v = p.Abs()
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func wholePlaneExplanation(d system.Domain) string {
	if d == system.Laplace {
		return "no poles: the ROC is the entire s-plane and the system is BIBO stable"
	}
	return "no poles: the ROC is the entire z-plane and the system is BIBO stable"
}

func rocDescription(m system.Model, v Verdict) string {
	switch {
	case m.Domain == system.Laplace && m.Causality == system.Causal:
		return fmt.Sprintf("Re(s) > %.2f", v.Boundary)
	case m.Domain == system.Laplace && m.Causality == system.AntiCausal:
		return fmt.Sprintf("Re(s) < %.2f", v.Boundary)
	case m.Domain == system.ZTransform && m.Causality == system.Causal:
		return fmt.Sprintf("|z| > %.2f", v.Boundary)
	default:
		return fmt.Sprintf("|z| < %.2f", v.Boundary)
	}
}

func criticalAxis(d system.Domain) string {
	if d == system.Laplace {
		return "the imaginary axis"
	}
	return "the unit circle"
}

// extremePoleName names the pole that pins the boundary, matching the
// causality that selected it.
func extremePoleName(m system.Model) string {
	switch {
	case m.Domain == system.Laplace && m.Causality == system.Causal:
		return "rightmost pole"
	case m.Domain == system.Laplace && m.Causality == system.AntiCausal:
		return "leftmost pole"
	case m.Domain == system.ZTransform && m.Causality == system.Causal:
		return "outermost pole"
	default:
		return "innermost pole"
	}
}

func consistentExplanation(m system.Model, v Verdict) string {
	stability := "unstable"
	relation := "excludes"
	if v.Stable {
		stability = "BIBO stable"
		relation = "includes"
	}
	return fmt.Sprintf("ROC %s %s %s; the %s system is %s",
		rocDescription(m, v), relation, criticalAxis(m.Domain), m.Causality, stability)
}

func mismatchExplanation(m system.Model, v Verdict) string {
	if m.DeclaredStability == system.Stable {
		return fmt.Sprintf("declared stable, but the %s forces ROC %s, which excludes %s (boundary %.2f)",
			extremePoleName(m), rocDescription(m, v), criticalAxis(m.Domain), v.Boundary)
	}
	return fmt.Sprintf("declared unstable, but the %s forces ROC %s, which includes %s (boundary %.2f)",
		extremePoleName(m), rocDescription(m, v), criticalAxis(m.Domain), v.Boundary)
}
