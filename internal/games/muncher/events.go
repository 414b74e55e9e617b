package muncher

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventEnemyEaten EventKind = iota
	EventTokenEaten
	EventEnemySpawned
	EventCapReached
	EventSpriteSwap
	EventEvilStart
	EventEvilEnd
	EventRestart
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnemyEaten:
		return "enemy_eaten"
	case EventTokenEaten:
		return "token_eaten"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventCapReached:
		return "cap_reached"
	case EventSpriteSwap:
		return "sprite_swap"
	case EventEvilStart:
		return "evil_start"
	case EventEvilEnd:
		return "evil_end"
	case EventRestart:
		return "restart"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by World.Step. Player is the controller id of the player
// involved, or zero when no player is.
type Event struct {
	Kind   EventKind
	Player int
}
