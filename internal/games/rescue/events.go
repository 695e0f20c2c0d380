package rescue

// Event names reported in core.StepResult.
const (
	EventAnimalRescued      = "animal_rescued"  // Value: trail length
	EventOfficerSpawned     = "officer_spawned" // Value: officers on field
	EventTruckArrived       = "truck_arrived"
	EventTruckLeft          = "truck_left"
	EventDelivered          = "delivered" // Value: animals delivered
	EventLevelUp            = "level_up"  // Value: new level
	EventLifeLost           = "life_lost" // Value: lives remaining
	EventGameOver           = "game_over" // Value: final score
	EventPowerup            = "powerup"   // Value: PowerupKind
	EventPowerupExpired     = "powerup_expired"
	EventInvincibilityEnded = "invincibility_ended"
	EventPaused             = "paused"
	EventResumed            = "resumed"
)
