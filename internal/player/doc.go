// Package player provides the playback state machine for convolution
// animation frames.
//
// A [Controller] is deliberately clock-free: it transitions between Idle and
// Playing, and the owning UI drives it by calling Tick from a single
// repeating timer. This keeps playback fully testable without real time and
// makes the one-timer invariant explicit — Play returns true only on the
// transition that requires starting a timer.
package player
