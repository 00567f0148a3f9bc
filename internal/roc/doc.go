// Package roc classifies regions of convergence for pole/zero models.
//
// The package exposes two pure functions over [system.Model]:
//
//   - [Classify]: computes the true ROC boundary, checks whether the declared
//     stability assumption is mathematically consistent, and produces a
//     human-readable explanation
//   - [DeriveRegion]: maps a model and its verdict to a coordinate-free
//     region descriptor plus boundary curves for a renderer
//
// # Boundary policy
//
// Stability uses strict inequalities: a causal Laplace system with its
// rightmost pole exactly on the imaginary axis (or a causal Z system with
// its outermost pole exactly on the unit circle) is classified unstable.
// This is a deliberate policy, not a rounding artifact.
//
// # Consistency
//
// A declared assumption that contradicts the computed ROC is not an error;
// it comes back as a verdict with Valid=false so callers can surface it.
// Models without poles are always consistent: an ROC covering the whole
// plane trivially implies BIBO stability, and the declared assumption is
// not checked on that branch.
package roc
