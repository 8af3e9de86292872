package rabduction

import "time"

// Interval is a fixed-period schedule driven by accumulated frame time.
// It replaces a background timer: the owner advances it once per tick.
type Interval struct {
	period  time.Duration
	elapsed time.Duration
}

// NewInterval creates an Interval firing every period.
// A non-positive period never fires.
func NewInterval(period time.Duration) Interval {
	return Interval{period: period}
}

// Advance adds dt and returns how many periods completed.
// A long frame can complete several periods at once.
func (iv *Interval) Advance(dt time.Duration) int {
	if iv.period <= 0 || dt <= 0 {
		return 0
	}
	iv.elapsed += dt
	fired := int(iv.elapsed / iv.period)
	iv.elapsed -= time.Duration(fired) * iv.period
	return fired
}

// Reset clears accumulated time.
func (iv *Interval) Reset() {
	iv.elapsed = 0
}

// Period returns the configured period.
func (iv Interval) Period() time.Duration {
	return iv.period
}
