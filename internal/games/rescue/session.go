package rescue

import (
	"time"

	"github.com/vovakirdan/rescue-run/internal/config"
	"github.com/vovakirdan/rescue-run/internal/core"
)

// Session owns one run of the game: the player, every spawned entity and all
// timers. It is driven by a single goroutine calling Frame once per host tick.
//
// Simulation time (now) only advances while the session is running, so
// spawn timers, invincibility and powerup effects all freeze during pause.
type Session struct {
	cfg   config.RescueConfig
	rng   RandomSource
	clock Clock
	now   time.Duration

	player   Player
	officers []Officer
	powerups []Powerup
	truck    *RescueTruck

	paused   bool
	gameOver bool

	timers          spawnTimers
	effects         *EffectEngine
	invincibleUntil time.Duration

	events []core.Event
}

// NewSession creates a session ready to run with the given config and randomness.
func NewSession(cfg config.RescueConfig, rng RandomSource) *Session {
	s := &Session{
		cfg: cfg,
		rng: rng,
		effects: NewEffectEngine(
			cfg.PowerupEffect(),
			cfg.Powerups.TeacupFactor,
			cfg.Powerups.LightningFactor,
		),
	}
	s.Reset()
	return s
}

// Reset restores the initial player, clears the field and cancels every timed effect.
// The host clock is left alone so the next frame does not see a jump.
func (s *Session) Reset() {
	s.player = Player{
		X:         s.cfg.Arena.Width / 2,
		Y:         s.cfg.Arena.Height / 2,
		BaseSpeed: s.cfg.Player.BaseSpeed,
		Speed:     s.cfg.Player.BaseSpeed,
		Dir:       DirRight,
		Lives:     s.cfg.Player.StartingLives,
		Level:     1,
	}
	s.officers = nil
	s.powerups = nil
	s.truck = nil
	s.paused = false
	s.gameOver = false
	s.now = 0
	s.timers = spawnTimers{}
	s.effects.Cancel()
	s.invincibleUntil = 0
	s.events = nil
}

// Frame advances the simulation to the host timestamp ts and returns the
// events raised during the frame.
func (s *Session) Frame(ts time.Duration) []core.Event {
	elapsed := s.clock.Tick(ts)
	if s.paused || s.gameOver {
		return s.drain()
	}

	s.now += elapsed

	// Deadlines first so an expired effect does not apply to this frame's
	// movement and fresh spawns are not aged by the frame that created them
	s.expireInvincibility()
	s.expireEffects()
	s.ageEntities(elapsed)

	s.spawn()
	s.movePlayer(elapsed)
	s.moveOfficers(elapsed)
	s.checkCollisions()

	return s.drain()
}

// Idle consumes host time without simulating, so the next Frame after a stall
// sees only its own delta.
func (s *Session) Idle(ts time.Duration) {
	s.clock.Tick(ts)
}

// SetDirection changes the player's heading. Ignored while paused or after game over.
func (s *Session) SetDirection(d Direction) {
	if s.paused || s.gameOver || !d.valid() {
		return
	}
	s.player.Dir = d
}

// TogglePause switches between running and paused. It has no effect after game over.
func (s *Session) TogglePause() {
	if s.gameOver {
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.emit(EventPaused, 0)
	} else {
		s.emit(EventResumed, 0)
	}
}

// Paused reports whether the simulation is halted.
func (s *Session) Paused() bool { return s.paused }

// GameOver reports whether the player has run out of lives.
func (s *Session) GameOver() bool { return s.gameOver }

// Now returns the elapsed simulation time.
func (s *Session) Now() time.Duration { return s.now }

func (s *Session) emit(name string, value int) {
	s.events = append(s.events, core.Event{Name: name, Value: value})
}

func (s *Session) drain() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
