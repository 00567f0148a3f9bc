package system

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ComplexPoint is a pole or zero location in the s-plane or z-plane.
type ComplexPoint struct {
	Re float64 `json:"re" yaml:"re"`
	Im float64 `json:"im" yaml:"im"`
}

func (p ComplexPoint) Abs() float64 {
	return cmplx.Abs(complex(p.Re, p.Im))
}

func (p ComplexPoint) IsValid() bool {
	return !math.IsNaN(p.Re) && !math.IsInf(p.Re, 0) &&
		!math.IsNaN(p.Im) && !math.IsInf(p.Im, 0)
}

func (p ComplexPoint) String() string {
	if p.Im < 0 {
		return fmt.Sprintf("%.4g-%.4gj", p.Re, -p.Im)
	}
	return fmt.Sprintf("%.4g+%.4gj", p.Re, p.Im)
}

// Domain selects which transform the pole/zero layout lives in. The zero
// value is deliberately invalid: a Model must always carry a domain.
type Domain int

const (
	DomainUnknown Domain = iota
	Laplace
	ZTransform
)

func (d Domain) String() string {
	switch d {
	case Laplace:
		return "laplace"
	case ZTransform:
		return "z"
	default:
		return "unknown"
	}
}

// ParseDomain maps the names used on the wire and in config files.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "laplace", "s", "continuous":
		return Laplace, nil
	case "z", "ztransform", "discrete":
		return ZTransform, nil
	default:
		return DomainUnknown, fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
}

type Causality int

const (
	Causal Causality = iota
	AntiCausal
)

func (c Causality) String() string {
	if c == AntiCausal {
		return "anticausal"
	}
	return "causal"
}

func ParseCausality(s string) (Causality, error) {
	switch s {
	case "causal":
		return Causal, nil
	case "anticausal", "anti-causal":
		return AntiCausal, nil
	default:
		return Causal, fmt.Errorf("%w: %q", ErrBadCausality, s)
	}
}

// Stability is the user's declared assumption, not a computed result.
type Stability int

const (
	Stable Stability = iota
	Unstable
)

func (s Stability) String() string {
	if s == Unstable {
		return "unstable"
	}
	return "stable"
}

func ParseStability(s string) (Stability, error) {
	switch s {
	case "stable":
		return Stable, nil
	case "unstable":
		return Unstable, nil
	default:
		return Stable, fmt.Errorf("%w: %q", ErrBadStability, s)
	}
}

// Model is an immutable pole/zero configuration plus the user's declared
// assumptions. All edits go through the With*/Add*/Remove* operations, which
// return a new Model and never alias the receiver's slices.
type Model struct {
	Domain            Domain
	Poles             []ComplexPoint
	Zeros             []ComplexPoint
	Causality         Causality
	DeclaredStability Stability
}

// New returns an empty model in the given domain.
func New(d Domain) Model {
	return Model{Domain: d}
}

func clonePoints(pts []ComplexPoint) []ComplexPoint {
	if len(pts) == 0 {
		return nil
	}
	c := make([]ComplexPoint, len(pts))
	copy(c, pts)
	return c
}

func (m Model) clone() Model {
	m.Poles = clonePoints(m.Poles)
	m.Zeros = clonePoints(m.Zeros)
	return m
}

func (m Model) AddPole(p ComplexPoint) (Model, error) {
	if !p.IsValid() {
		return m, fmt.Errorf("%w: pole %v", ErrInvalidPoint, p)
	}
	c := m.clone()
	c.Poles = append(c.Poles, p)
	return c, nil
}

func (m Model) AddZero(p ComplexPoint) (Model, error) {
	if !p.IsValid() {
		return m, fmt.Errorf("%w: zero %v", ErrInvalidPoint, p)
	}
	c := m.clone()
	c.Zeros = append(c.Zeros, p)
	return c, nil
}

func (m Model) RemovePole(i int) (Model, error) {
	if i < 0 || i >= len(m.Poles) {
		return m, fmt.Errorf("%w: pole index %d of %d", ErrIndexRange, i, len(m.Poles))
	}
	c := m.clone()
	c.Poles = append(c.Poles[:i], c.Poles[i+1:]...)
	return c, nil
}

func (m Model) RemoveZero(i int) (Model, error) {
	if i < 0 || i >= len(m.Zeros) {
		return m, fmt.Errorf("%w: zero index %d of %d", ErrIndexRange, i, len(m.Zeros))
	}
	c := m.clone()
	c.Zeros = append(c.Zeros[:i], c.Zeros[i+1:]...)
	return c, nil
}

// WithDomain switches the transform domain. Real-part boundaries and modulus
// boundaries are not comparable, so moving to a different domain drops all
// poles and zeros.
func (m Model) WithDomain(d Domain) Model {
	if d == m.Domain {
		return m.clone()
	}
	return Model{
		Domain:            d,
		Causality:         m.Causality,
		DeclaredStability: m.DeclaredStability,
	}
}

func (m Model) WithCausality(c Causality) Model {
	n := m.clone()
	n.Causality = c
	return n
}

func (m Model) WithDeclaredStability(s Stability) Model {
	n := m.clone()
	n.DeclaredStability = s
	return n
}

// WithPoles replaces the full pole/zero layout, e.g. with a parser result.
func (m Model) WithPoles(poles, zeros []ComplexPoint) Model {
	n := m
	n.Poles = clonePoints(poles)
	n.Zeros = clonePoints(zeros)
	return n
}

func (m Model) Validate() error {
	if m.Domain != Laplace && m.Domain != ZTransform {
		return ErrUnknownDomain
	}
	for _, p := range m.Poles {
		if !p.IsValid() {
			return fmt.Errorf("%w: pole %v", ErrInvalidPoint, p)
		}
	}
	for _, z := range m.Zeros {
		if !z.IsValid() {
			return fmt.Errorf("%w: zero %v", ErrInvalidPoint, z)
		}
	}
	return nil
}
