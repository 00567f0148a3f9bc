// Package viz renders ROC regions and convolution playback in the terminal.
//
// The plane renderer maps the coordinate-free region descriptors from the
// roc package onto a character grid; it is the only place where math
// coordinates meet cells. The playback view wraps a player.Controller in a
// bubbletea program and owns the repeating tick timer.
package viz
