package core

// RuntimeConfig contains configuration passed to games at initialization.
// Game-specific tuning lives in internal/config; this only carries the knobs
// shared by every game and frontend.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Primary score (flappy score, pong left/first player)
	Scores   []int // Per-player scores, indexed by PlayerID-1 (pong only)
	Health   int   // Player health (dodger only)
	GameOver bool  // Terminal state reached (dodger death)
	Idle     bool  // Waiting for the first input of a round (flappy)
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventRoundOver   EventKind = iota // A round ended; Score holds the final score
	EventPlayerHit                    // The player lost health; Score holds remaining health
	EventPlayerDied                   // The player died
	EventPointScored                  // Player gained a point; Score holds the new total
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRoundOver:
		return "round_over"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDied:
		return "player_died"
	case EventPointScored:
		return "point_scored"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step for the platform to report.
type Event struct {
	Kind   EventKind
	Player PlayerID
	Score  int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
