package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultTickRate paces the simulation at 50ms per tick.
const DefaultTickRate = 20

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current level for the campaign, marks collected for the duel
	GameOver bool // The game has ended and waits for a restart
	Paused   bool // The game is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventLevelStart EventKind = iota
	EventLevelComplete
	EventLevelReload
	EventGameOver
	EventCampaignReset
	EventBossResult
)

// String returns the event name used in logs and storage.
func (k EventKind) String() string {
	switch k {
	case EventLevelStart:
		return "level_start"
	case EventLevelComplete:
		return "complete"
	case EventLevelReload:
		return "reload"
	case EventGameOver:
		return "game_over"
	case EventCampaignReset:
		return "reset"
	case EventBossResult:
		return "boss_result"
	default:
		return "unknown"
	}
}

// Event is emitted by games for the platform to log or persist.
type Event struct {
	Kind  EventKind
	Level int // Level number the event refers to
	Lives int // Lives left when the event fired

	// Boss encounter details, set for EventBossResult.
	PlayerMarks int
	BossMarks   int
	Won         bool
	Reason      string
	ElapsedMS   int64
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}
