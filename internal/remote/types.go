package remote

// Frame is one step of a convolution animation: the flipped-and-shifted
// impulse response at time t plus the accumulated output value.
type Frame struct {
	T        float64   `json:"t"`
	HShifted []float64 `json:"h_shifted"`
	CurrentY float64   `json:"current_y"`
}

// ConvolutionResult is the sampled convolution of two signal expressions.
// Tau/XTau hold the fixed input trace, T/Y the output trace, and Frames the
// per-step animation data. For discrete signals tau is the summation index
// and the wire keys stay the same.
type ConvolutionResult struct {
	Tau    []float64 `json:"tau"`
	XTau   []float64 `json:"x_tau"`
	T      []float64 `json:"t"`
	Y      []float64 `json:"y"`
	Frames []Frame   `json:"frames"`
}

// ParseResult is the pole/zero decomposition of a rational transfer
// function. Wire fields use the service's short r/i keys.
type ParseResult struct {
	Poles       []WirePoint `json:"poles"`
	Zeros       []WirePoint `json:"zeros"`
	Numerator   string      `json:"numerator"`
	Denominator string      `json:"denominator"`
	Err         string      `json:"error"`
}

type WirePoint struct {
	R float64 `json:"r"`
	I float64 `json:"i"`
}
