package rescue

import (
	"fmt"
	"time"
)

// Snapshot is a read-only copy of the session for renderers and determinism tests.
// Slices are copied, so holding a Snapshot never aliases live state.
type Snapshot struct {
	Now      time.Duration
	Player   Player
	Officers []Officer
	Powerups []Powerup
	Truck    *RescueTruck
	Paused   bool
	GameOver bool

	Effect          PowerupKind
	EffectActive    bool
	EffectRemaining time.Duration
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	p.Animals = append([]Animal(nil), s.player.Animals...)

	var truck *RescueTruck
	if s.truck != nil {
		t := *s.truck
		truck = &t
	}

	snap := Snapshot{
		Now:      s.now,
		Player:   p,
		Officers: append([]Officer(nil), s.officers...),
		Powerups: append([]Powerup(nil), s.powerups...),
		Truck:    truck,
		Paused:   s.paused,
		GameOver: s.gameOver,
	}
	if kind, active := s.effects.Active(); active {
		snap.Effect = kind
		snap.EffectActive = true
		snap.EffectRemaining = s.effects.Remaining(s.now)
	}
	return snap
}

// DebugState returns a one-line summary for logs and test failures.
func (s *Session) DebugState() string {
	return fmt.Sprintf("t=%v pos=(%.1f,%.1f) dir=%s speed=%.2f lives=%d score=%d level=%d trail=%d officers=%d powerups=%d truck=%t paused=%t over=%t",
		s.now, s.player.X, s.player.Y, s.player.Dir, s.player.Speed,
		s.player.Lives, s.player.Score, s.player.Level, len(s.player.Animals),
		len(s.officers), len(s.powerups), s.truck != nil, s.paused, s.gameOver)
}
