package system

import "errors"

// Domain errors for model configuration.
var (
	// ErrUnknownDomain indicates a model without a transform domain.
	ErrUnknownDomain = errors.New("roclab: unknown transform domain")

	// ErrBadCausality indicates an unrecognized causality name.
	ErrBadCausality = errors.New("roclab: unrecognized causality")

	// ErrBadStability indicates an unrecognized stability name.
	ErrBadStability = errors.New("roclab: unrecognized stability")

	// ErrInvalidPoint indicates a pole or zero with NaN/Inf coordinates.
	ErrInvalidPoint = errors.New("roclab: invalid pole/zero coordinates")

	// ErrIndexRange indicates a pole/zero index outside the model.
	ErrIndexRange = errors.New("roclab: index out of range")
)
