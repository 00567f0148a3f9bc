package player

import (
	"fmt"
	"time"

	"github.com/san-kum/roclab/internal/system"
)

// Status is the playback state.
type Status int

const (
	Idle Status = iota
	Playing
)

func (s Status) String() string {
	if s == Playing {
		return "playing"
	}
	return "idle"
}

// Frame periods per domain. Discrete frames tick slower so individual
// sample steps stay legible.
const (
	ContinuousPeriod = 50 * time.Millisecond
	DiscretePeriod   = 250 * time.Millisecond
)

// PeriodFor returns the tick period for a signal domain.
func PeriodFor(d system.Domain) time.Duration {
	if d == system.ZTransform {
		return DiscretePeriod
	}
	return ContinuousPeriod
}

// Controller sequences playback over a fixed-length frame array. It is a
// synchronous state machine with no clock of its own: the owner drives it by
// calling Tick on a repeating timer while Playing. At most one timer should
// exist per controller; Play reports whether the caller must start one.
type Controller struct {
	frames int
	index  int
	status Status
	period time.Duration
}

// New returns an Idle controller positioned at frame 0.
func New(frameCount int, period time.Duration) *Controller {
	if frameCount < 0 {
		frameCount = 0
	}
	return &Controller{frames: frameCount, period: period}
}

func (c *Controller) Status() Status        { return c.status }
func (c *Controller) Index() int            { return c.index }
func (c *Controller) Frames() int           { return c.frames }
func (c *Controller) Period() time.Duration { return c.period }

func (c *Controller) lastIndex() int {
	if c.frames == 0 {
		return 0
	}
	return c.frames - 1
}

// Play enters Playing, restarting from frame 0 when positioned on the
// terminal frame. It returns true when the caller must start the tick
// timer; calling Play while already playing is a no-op and returns false,
// so a second timer can never be created.
func (c *Controller) Play() bool {
	if c.status == Playing || c.frames == 0 {
		return false
	}
	if c.index == c.lastIndex() {
		c.index = 0
	}
	c.status = Playing
	return true
}

// Pause stops playback, keeping the current frame.
func (c *Controller) Pause() {
	c.status = Idle
}

// Seek forces Idle at frame i. Any running playback is paused.
func (c *Controller) Seek(i int) error {
	if i < 0 || i > c.lastIndex() {
		return fmt.Errorf("roclab: seek index %d outside [0, %d]", i, c.lastIndex())
	}
	c.index = i
	c.status = Idle
	return nil
}

// Tick advances one frame while Playing. Reaching the terminal frame drops
// back to Idle with no wraparound; the caller stops its timer when Tick
// returns false.
func (c *Controller) Tick() bool {
	if c.status != Playing {
		return false
	}
	c.index++
	if c.index >= c.lastIndex() {
		c.index = c.lastIndex()
		c.status = Idle
		return false
	}
	return true
}

// SetFrames invalidates the current frame array, e.g. after the source
// signal expressions change, and resets to Idle at frame 0.
func (c *Controller) SetFrames(frameCount int) {
	if frameCount < 0 {
		frameCount = 0
	}
	c.frames = frameCount
	c.index = 0
	c.status = Idle
}

// Reset rewinds to Idle at frame 0 without changing the frame count.
func (c *Controller) Reset() {
	c.index = 0
	c.status = Idle
}
