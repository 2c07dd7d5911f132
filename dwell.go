package screentrack

import "time"

// DwellTracker owns the entry timestamp of one screen visit and derives
// elapsed/exit readings from it on demand. The entry timestamp is captured
// once at construction and never recomputed.
type DwellTracker struct {
	enteredAt time.Time
	clock     func() time.Time
}

// NewDwellTracker creates a tracker whose entry timestamp is the clock
// reading at the moment of the call.
func NewDwellTracker(clock func() time.Time) *DwellTracker {
	if clock == nil {
		clock = time.Now
	}
	return &DwellTracker{
		enteredAt: clock(),
		clock:     clock,
	}
}

// EnteredAt returns the fixed entry timestamp.
func (d *DwellTracker) EnteredAt() time.Time {
	return d.enteredAt
}

// ElapsedSinceEntry returns the time spent on the screen so far. Each call
// uses a fresh clock reading, so consecutive calls return non-decreasing
// values under a normal clock.
func (d *DwellTracker) ElapsedSinceEntry() time.Duration {
	return d.clock().Sub(d.enteredAt)
}

// Snapshot returns the dwell window as of now. LeftAt and StayedFor are
// sampled by two independent clock reads, so they may differ by a few
// ticks; that jitter is accepted, not corrected. StayedFor can go negative
// if the system clock is adjusted backward.
func (d *DwellTracker) Snapshot() DwellWindow {
	return DwellWindow{
		EnteredAt: d.enteredAt,
		LeftAt:    d.clock(),
		StayedFor: d.clock().Sub(d.enteredAt),
	}
}
