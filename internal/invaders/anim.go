package invaders

// AnimationTimer converts elapsed frame time into discrete ticks at a fixed
// cadence. The accumulator resets to zero on every tick; any overshoot is
// dropped.
type AnimationTimer struct {
	cadence float64
	elapsed float64
}

// NewAnimationTimer creates a timer firing every cadence seconds.
func NewAnimationTimer(cadence float64) AnimationTimer {
	return AnimationTimer{cadence: cadence}
}

// Tick accumulates dt and reports whether the cadence was reached.
func (t *AnimationTimer) Tick(dt float64) bool {
	if dt <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.cadence {
		return false
	}
	t.elapsed = 0
	return true
}

// Elapsed returns the accumulated time since the last tick.
func (t AnimationTimer) Elapsed() float64 {
	return t.elapsed
}

// nextFrame advances a cursor by one, wrapping at n.
func nextFrame(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return (cursor + 1) % n
}
