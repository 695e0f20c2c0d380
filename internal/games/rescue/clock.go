package rescue

import "time"

// Clock turns host timestamps into per-frame deltas.
// It keeps running while the session is paused so that resuming does not
// deliver the whole pause as a single frame.
type Clock struct {
	last    time.Duration
	started bool
}

// Tick records now and returns the time elapsed since the previous call.
// The first call returns 0, as does a timestamp older than the previous one.
func (c *Clock) Tick(now time.Duration) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	if now <= c.last {
		return 0
	}
	elapsed := now - c.last
	c.last = now
	return elapsed
}
