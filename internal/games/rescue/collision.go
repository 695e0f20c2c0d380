package rescue

// checkCollisions tests the player against every entity class and the arena edge.
// Every hit in a frame is processed, so a life can be lost in the same frame a
// powerup is collected.
func (s *Session) checkCollisions() {
	size := s.cfg.Arena.EntitySize
	box := s.player.Box(size)

	for _, o := range s.officers {
		if box.Intersects(o.Box(size)) {
			s.loseLife()
		}
	}

	// Compact in place so removing one powerup never skips its neighbour
	kept := s.powerups[:0]
	for _, p := range s.powerups {
		if box.Intersects(p.Box(size)) {
			s.applyPowerup(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	s.powerups = kept

	if s.truck != nil && box.Intersects(s.truck.Box(size)) {
		s.deliverAnimals()
	}

	if s.touchesBoundary() {
		s.loseLife()
	}
}

// touchesBoundary reports whether the player sits at or beyond the clamp edge.
func (s *Session) touchesBoundary() bool {
	maxX, maxY := s.maxPosition()
	return s.player.X <= 0 || s.player.Y <= 0 || s.player.X >= maxX || s.player.Y >= maxY
}
