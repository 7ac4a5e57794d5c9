package battle

// Mode is the round state of the battle.
type Mode int

const (
	ModeMenu     Mode = iota // Title screen, waiting for confirm
	ModeGame                 // Round in progress
	ModeGameOver             // Round finished, outcome is valid
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeGame:
		return "game"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventRoundStart EventKind = iota // Menu -> Game
	EventAttackHit                   // Player attack landed; play the attack sound
	EventVictory                     // Monster defeated
	EventDefeat                      // Player defeated
	EventReset                       // GameOver -> Menu, entities restored
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRoundStart:
		return "round_start"
	case EventAttackHit:
		return "attack_hit"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the platform to react to (sounds, logs,
// result recording). Events never feed back into the simulation.
type Event struct {
	Kind EventKind
}

// State is a read-only snapshot of the battle after a step.
type State struct {
	Mode          Mode
	Victory       bool // Outcome of the last round; meaningful only in ModeGameOver
	PlayerHealth  int
	MonsterHealth int
	MonsterAlive  bool
	Cooldown      float64
	RoundTime     float64 // Seconds spent in ModeGame this round
	Hits          int     // Successful attacks this round
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State  State
	Events []Event
}

// Has reports whether an event of the given kind occurred in this step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
