package rescue

import (
	"time"

	"github.com/vovakirdan/rescue-run/internal/core"
)

// Direction represents the player's facing and movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) valid() bool {
	return d >= DirRight && d <= DirUp
}

// AnimalKind identifies the species of a collected animal.
type AnimalKind int

const (
	AnimalPuppy AnimalKind = iota
	AnimalKitten
)

func (k AnimalKind) String() string {
	if k == AnimalKitten {
		return "kitten"
	}
	return "puppy"
}

// PowerupKind identifies a powerup and the speed effect it grants.
type PowerupKind int

const (
	PowerupTeacup    PowerupKind = iota // Slows the player down
	PowerupLightning                    // Speeds the player up
)

func (k PowerupKind) String() string {
	if k == PowerupLightning {
		return "lightning"
	}
	return "teacup"
}

// Player is the user-controlled sprite.
type Player struct {
	X, Y       float64
	BaseSpeed  float64
	Speed      float64 // Current speed, modified by powerups
	Dir        Direction
	Invincible bool
	Lives      int
	Score      int
	Level      int
	Animals    []Animal // Collection order; rendered as a trailing chain
}

// Box returns the player's collision box.
func (p Player) Box(size float64) core.Rect {
	return core.NewRect(p.X, p.Y, size, size)
}

// Animal is a rescued puppy or kitten following the player.
type Animal struct {
	X, Y float64
	Kind AnimalKind
}

// Officer pursues the player across the arena.
type Officer struct {
	X, Y  float64
	Speed float64
}

// Box returns the officer's collision box.
func (o Officer) Box(size float64) core.Rect {
	return core.NewRect(o.X, o.Y, size, size)
}

// Powerup is a collectible lying in the arena for a limited time.
type Powerup struct {
	X, Y      float64
	Kind      PowerupKind
	Remaining time.Duration
}

// Box returns the powerup's collision box.
func (p Powerup) Box(size float64) core.Rect {
	return core.NewRect(p.X, p.Y, size, size)
}

// RescueTruck accepts delivered animals. It is twice as wide as other entities.
type RescueTruck struct {
	X, Y      float64
	Remaining time.Duration
}

// Box returns the truck's collision box.
func (t RescueTruck) Box(size float64) core.Rect {
	return core.NewRect(t.X, t.Y, 2*size, size)
}
