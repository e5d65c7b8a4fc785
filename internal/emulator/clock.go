package emulator

import "time"

// CyclesPerFrame is the nominal T-cycle budget of one 59.7 Hz DMG frame
// (70224 cycles), matching the teacher's clock.go constant.
const CyclesPerFrame = 70224

const frameDuration = time.Second / 60

// Clock paces real-time playback so StepFrame doesn't run faster than a
// real DMG would. It is deliberately smaller than the teacher's Clock,
// which also tracked FPS/CPS counters and a speed multiplier that nothing
// in SPEC_FULL.md exercises (see DESIGN.md).
type Clock struct {
	FrameCount    uint64
	lastFrameTime time.Time
}

// NewClock creates a clock anchored to the current time.
func NewClock() *Clock {
	return &Clock{lastFrameTime: time.Now()}
}

// EndFrame records a completed frame and, in real-time mode, sleeps off
// whatever budget remains in the 16.67ms frame slot.
func (c *Clock) EndFrame(realTime bool) {
	c.FrameCount++
	if !realTime {
		return
	}
	elapsed := time.Since(c.lastFrameTime)
	if elapsed < frameDuration {
		time.Sleep(frameDuration - elapsed)
	}
	c.lastFrameTime = time.Now()
}
