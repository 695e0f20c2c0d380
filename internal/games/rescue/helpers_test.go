package rescue

import (
	"time"

	"github.com/vovakirdan/rescue-run/internal/config"
	"github.com/vovakirdan/rescue-run/internal/core"
)

// fixedRandom replays a fixed sequence of values, cycling when exhausted.
type fixedRandom struct {
	values []float64
	i      int
}

func newFixedRandom(values ...float64) *fixedRandom {
	return &fixedRandom{values: values}
}

func (r *fixedRandom) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func newTestSession(rng RandomSource) *Session {
	return NewSession(config.DefaultRescueConfig(), rng)
}

// newWideSession uses an arena large enough that the player never reaches an edge
// and spawned entities land far from the centre.
func newWideSession() *Session {
	cfg := config.DefaultRescueConfig()
	cfg.Arena.Width = 100000
	cfg.Arena.Height = 100000
	return NewSession(cfg, newFixedRandom(0.9))
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func countEvents(events []core.Event, name string) int {
	n := 0
	for _, e := range events {
		if e.Name == name {
			n++
		}
	}
	return n
}
