package rescue

// loseLife costs the player a life unless they are protected.
// The last life ends the game; any other life starts an invincibility window.
func (s *Session) loseLife() {
	if s.gameOver || s.player.Invincible {
		return
	}

	s.player.Lives--
	s.emit(EventLifeLost, s.player.Lives)

	if s.player.Lives <= 0 {
		s.player.Lives = 0
		s.gameOver = true
		s.paused = true
		s.emit(EventGameOver, s.player.Score)
		return
	}

	s.player.Invincible = true
	s.invincibleUntil = s.now + s.cfg.Invincibility()
}

// expireInvincibility ends the protection window once its deadline passes.
func (s *Session) expireInvincibility() {
	if s.player.Invincible && s.now >= s.invincibleUntil {
		s.player.Invincible = false
		s.invincibleUntil = 0
		s.emit(EventInvincibilityEnded, 0)
	}
}

// deliverAnimals trades the whole trail for score and sends the truck away.
// Levels advance at most one step per delivery.
func (s *Session) deliverAnimals() {
	if s.gameOver || len(s.player.Animals) == 0 {
		return
	}

	count := len(s.player.Animals)
	s.player.Score += count * s.cfg.Scoring.PointsPerAnimal
	s.emit(EventDelivered, count)

	if s.player.Score >= s.player.Level*s.cfg.Scoring.LevelStep {
		s.player.Level++
		s.emit(EventLevelUp, s.player.Level)
	}

	s.player.Animals = nil
	s.truck = nil
}

// applyPowerup switches the player's speed to the powerup's effect.
func (s *Session) applyPowerup(kind PowerupKind) {
	if s.gameOver {
		return
	}
	s.player.Speed = s.effects.Apply(kind, s.now, s.player.BaseSpeed)
	s.emit(EventPowerup, int(kind))
}

// expireEffects restores base speed when the running powerup effect ends.
func (s *Session) expireEffects() {
	if s.effects.Expire(s.now) {
		s.player.Speed = s.player.BaseSpeed
		s.emit(EventPowerupExpired, 0)
	}
}
