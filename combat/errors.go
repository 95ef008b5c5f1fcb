package combat

import "errors"

var (
	// ErrInvalidEntityConfig is returned when an entity is built with
	// out-of-range stats.
	ErrInvalidEntityConfig = errors.New("invalid entity config")
	// ErrInvalidTarget is returned when an attack has no defender.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrNoValidTarget is returned when a turn has no living monster to pick.
	ErrNoValidTarget = errors.New("no valid target")
	// ErrInvalidMatch is returned when a match is set up without a hero or monsters.
	ErrInvalidMatch = errors.New("invalid match")
)
