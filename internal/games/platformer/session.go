package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// SessionState is the non-terminal state of a level session.
type SessionState int

const (
	StateRunning SessionState = iota
	StatePaused
	StateCleared // Goal reached, waiting for any key
)

func (s SessionState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateCleared:
		return "cleared"
	default:
		return "running"
	}
}

// Outcome is how a session ended. OutcomeNone means it is still going.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeReload
	OutcomeReset
	OutcomeGameOver
	OutcomeComplete
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReload:
		return "reload"
	case OutcomeReset:
		return "reset"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeComplete:
		return "complete"
	default:
		return "none"
	}
}

// Banners shown by the session.
const (
	PauseBanner   = "[PAUSED]   Ctrl+Z to continue"
	ClearedBanner = "You delivered the drinks! Press any key..."
	ControlHint   = "Ctrl+S = Pause   Ctrl+Z = Continue"
)

// Session plays one attempt at one level.
type Session struct {
	level   *Level
	gs      *GameState
	physics Physics
	rng     *rand.Rand
	state   SessionState
	ticks   int
}

// NewSession starts a running session. gs is shared with the campaign.
func NewSession(level *Level, gs *GameState, ph Physics, rng *rand.Rand) *Session {
	return &Session{
		level:   level,
		gs:      gs,
		physics: ph,
		rng:     rng,
		state:   StateRunning,
	}
}

// Level returns the level being played.
func (s *Session) Level() *Level {
	return s.level
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// Ticks returns how many physics ticks have run.
func (s *Session) Ticks() int {
	return s.ticks
}

func (s *Session) speed() float64 {
	return s.physics.MoveSpeed + float64(s.gs.SpeedBonus)
}

// Step consumes one frame of input and, unless paused, runs one physics tick.
// All input is applied in order before physics. Reload and reset end the
// session at once, without running physics.
func (s *Session) Step(in core.InputFrame) Outcome {
	if s.state == StateCleared {
		if in.Any() {
			return OutcomeComplete
		}
		return OutcomeNone
	}

	p := &s.level.Player
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			p.VX = -s.speed()
		case core.ActionRight:
			p.VX = s.speed()
		case core.ActionJump, core.ActionUp:
			if !p.Jumping {
				p.VY = s.physics.JumpImpulse
				p.Jumping = true
			}
		case core.ActionReload:
			return OutcomeReload
		case core.ActionReset:
			return OutcomeReset
		case core.ActionPause:
			s.state = StatePaused
		case core.ActionResume:
			s.state = StateRunning
		}
	}

	if s.state == StatePaused {
		return OutcomeNone
	}

	s.ticks++
	switch Advance(s.level, s.gs, s.physics, s.rng) {
	case SignalDefeat:
		return OutcomeGameOver
	case SignalComplete:
		s.state = StateCleared
	}
	return OutcomeNone
}

// Render draws the session onto dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Apply(s.DrawList(dst.Width(), dst.Height()))
}
