// Package system defines the pole/zero model for LTI transform analysis.
//
// The package provides the core data entity shared by the classifier, the
// region geometry, and the CLI:
//
//   - [ComplexPoint]: a pole or zero location
//   - [Model]: pole/zero layout plus declared causality and stability
//   - [Domain]: Laplace (s-plane) or ZTransform (z-plane)
//
// Models are value types. Every edit operation returns a fresh Model with
// cloned slices, so a Model handed to the classifier can never change
// underneath it:
//
//	m := system.New(system.Laplace)
//	m, _ = m.AddPole(system.ComplexPoint{Re: -1})
//	verdict, _ := roc.Classify(m)
//
// Switching domains drops all poles and zeros: a real-part boundary in the
// s-plane has no meaning as a modulus boundary in the z-plane.
package system
