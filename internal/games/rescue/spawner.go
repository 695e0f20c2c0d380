package rescue

import (
	"time"

	"github.com/vovakirdan/rescue-run/internal/core"
)

// RandomSource supplies uniform values in [0, 1).
// *rand.Rand satisfies it; tests inject fixed sequences.
type RandomSource interface {
	Float64() float64
}

// spawnTimers holds the simulation time of the last spawn per entity class.
type spawnTimers struct {
	animal  time.Duration
	officer time.Duration
	powerup time.Duration
	truck   time.Duration
}

// due reports whether interval has passed since *last and re-arms the timer if so.
func due(last *time.Duration, now, interval time.Duration) bool {
	if now-*last < interval {
		return false
	}
	*last = now
	return true
}

// spawn runs the four independent spawn timers.
func (s *Session) spawn() {
	if due(&s.timers.animal, s.now, s.cfg.AnimalInterval()) {
		s.spawnAnimal()
	}
	if due(&s.timers.officer, s.now, s.cfg.OfficerInterval()) {
		s.spawnOfficer()
	}
	if due(&s.timers.powerup, s.now, s.cfg.PowerupInterval()) {
		s.spawnPowerup()
	}
	if due(&s.timers.truck, s.now, s.cfg.TruckInterval()) {
		s.spawnTruck()
	}
}

// spawnAnimal rolls a position and, unless it is too close to the player,
// hands the animal straight to the player's trail. Returns false on a rejected roll.
func (s *Session) spawnAnimal() bool {
	size := s.cfg.Arena.EntitySize
	x, y := s.randomPosition(size)

	if core.Distance(x, y, s.player.X, s.player.Y) <= s.cfg.Spawn.AnimalMinDistance*size {
		return false
	}

	kind := AnimalPuppy
	if s.rng.Float64() >= 0.5 {
		kind = AnimalKitten
	}
	s.player.Animals = append(s.player.Animals, Animal{X: x, Y: y, Kind: kind})
	s.emit(EventAnimalRescued, len(s.player.Animals))
	return true
}

// spawnOfficer adds a pursuer once the player has reached the officer level.
func (s *Session) spawnOfficer() bool {
	if s.player.Level < s.cfg.Officers.MinLevel {
		return false
	}
	if s.cfg.Officers.Max > 0 && len(s.officers) >= s.cfg.Officers.Max {
		return false
	}

	x, y := s.randomPosition(s.cfg.Arena.EntitySize)
	s.officers = append(s.officers, Officer{
		X:     x,
		Y:     y,
		Speed: s.cfg.Officers.SpeedFactor * s.player.BaseSpeed,
	})
	s.emit(EventOfficerSpawned, len(s.officers))
	return true
}

func (s *Session) spawnPowerup() {
	x, y := s.randomPosition(s.cfg.Arena.EntitySize)

	kind := PowerupTeacup
	if s.rng.Float64() >= 0.5 {
		kind = PowerupLightning
	}
	s.powerups = append(s.powerups, Powerup{
		X:         x,
		Y:         y,
		Kind:      kind,
		Remaining: s.cfg.PowerupVisible(),
	})
}

// spawnTruck places a fresh truck, replacing any truck still on the field.
func (s *Session) spawnTruck() {
	size := s.cfg.Arena.EntitySize
	x := s.rng.Float64() * (s.cfg.Arena.Width - 2*size)
	y := s.rng.Float64() * (s.cfg.Arena.Height - size)

	s.truck = &RescueTruck{X: x, Y: y, Remaining: s.cfg.TruckVisible()}
	s.emit(EventTruckArrived, 0)
}

// randomPosition returns a top-left corner that keeps a square entity inside the arena.
func (s *Session) randomPosition(size float64) (float64, float64) {
	x := s.rng.Float64() * (s.cfg.Arena.Width - size)
	y := s.rng.Float64() * (s.cfg.Arena.Height - size)
	return x, y
}
