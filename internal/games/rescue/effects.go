package rescue

import "time"

// EffectEngine tracks the single timed speed modifier granted by powerups.
// A newer powerup replaces the running one, including its deadline; when
// that deadline passes the speed returns to base regardless of earlier effects.
type EffectEngine struct {
	active bool
	kind   PowerupKind
	until  time.Duration

	duration        time.Duration
	teacupFactor    float64
	lightningFactor float64
}

// NewEffectEngine creates an engine with the given effect length and speed factors.
func NewEffectEngine(duration time.Duration, teacupFactor, lightningFactor float64) *EffectEngine {
	return &EffectEngine{
		duration:        duration,
		teacupFactor:    teacupFactor,
		lightningFactor: lightningFactor,
	}
}

// Apply starts the effect for kind at time now and returns the resulting speed.
func (e *EffectEngine) Apply(kind PowerupKind, now time.Duration, baseSpeed float64) float64 {
	e.active = true
	e.kind = kind
	e.until = now + e.duration
	return baseSpeed * e.factor(kind)
}

// Expire ends the effect if its deadline has been reached.
// Returns true when an effect ended on this call.
func (e *EffectEngine) Expire(now time.Duration) bool {
	if !e.active || now < e.until {
		return false
	}
	e.Cancel()
	return true
}

// Cancel drops the running effect. Cancelling with nothing active is a no-op.
func (e *EffectEngine) Cancel() {
	e.active = false
	e.until = 0
}

// Active reports whether an effect is running and which one.
func (e *EffectEngine) Active() (PowerupKind, bool) {
	return e.kind, e.active
}

// Remaining returns the time left on the running effect, or 0.
func (e *EffectEngine) Remaining(now time.Duration) time.Duration {
	if !e.active || now >= e.until {
		return 0
	}
	return e.until - now
}

func (e *EffectEngine) factor(kind PowerupKind) float64 {
	if kind == PowerupLightning {
		return e.lightningFactor
	}
	return e.teacupFactor
}
