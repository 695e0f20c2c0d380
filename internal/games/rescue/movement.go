package rescue

import (
	"math"
	"time"

	"github.com/vovakirdan/rescue-run/internal/core"
)

// frameScale converts an elapsed time into multiples of the reference frame,
// so speeds stay the same regardless of the host frame rate.
func (s *Session) frameScale(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(s.cfg.ReferenceFrame())
}

// movePlayer advances the player along its facing direction and clamps it to the arena.
func (s *Session) movePlayer(elapsed time.Duration) {
	step := s.player.Speed * s.frameScale(elapsed)
	if step == 0 {
		return
	}

	switch s.player.Dir {
	case DirUp:
		s.player.Y -= step
	case DirDown:
		s.player.Y += step
	case DirLeft:
		s.player.X -= step
	case DirRight:
		s.player.X += step
	}

	maxX, maxY := s.maxPosition()
	s.player.X = core.ClampF(s.player.X, 0, maxX)
	s.player.Y = core.ClampF(s.player.Y, 0, maxY)
}

// moveOfficers steers every officer straight at the player's current position.
// Officers ignore each other and may overlap.
func (s *Session) moveOfficers(elapsed time.Duration) {
	scale := s.frameScale(elapsed)
	if scale == 0 {
		return
	}

	for i := range s.officers {
		o := &s.officers[i]
		angle := math.Atan2(s.player.Y-o.Y, s.player.X-o.X)
		step := o.Speed * scale
		o.X += math.Cos(angle) * step
		o.Y += math.Sin(angle) * step
	}
}

// ageEntities counts down the visible time of powerups and the truck,
// removing those that ran out.
func (s *Session) ageEntities(elapsed time.Duration) {
	if elapsed == 0 {
		return
	}

	kept := s.powerups[:0]
	for _, p := range s.powerups {
		p.Remaining -= elapsed
		if p.Remaining > 0 {
			kept = append(kept, p)
		}
	}
	s.powerups = kept

	if s.truck != nil {
		s.truck.Remaining -= elapsed
		if s.truck.Remaining <= 0 {
			s.truck = nil
			s.emit(EventTruckLeft, 0)
		}
	}
}

// maxPosition returns the largest top-left coordinate that keeps a square entity inside.
func (s *Session) maxPosition() (float64, float64) {
	size := s.cfg.Arena.EntitySize
	return s.cfg.Arena.Width - size, s.cfg.Arena.Height - size
}
