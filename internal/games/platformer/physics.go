package platformer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Signal is the per-tick result of Advance.
type Signal int

const (
	SignalNone     Signal = iota
	SignalDefeat          // Lives ran out; nothing else ran this tick
	SignalComplete        // The player reached the goal
)

func (s Signal) String() string {
	switch s {
	case SignalDefeat:
		return "defeat"
	case SignalComplete:
		return "complete"
	default:
		return "none"
	}
}

// Physics holds the per-tick constants used by Advance.
type Physics struct {
	Gravity        float64
	JumpImpulse    float64
	MoveSpeed      float64
	StompBounce    float64
	StompTolerance float64
	HeartChance    float64
	HeartDrift     float64
}

// PhysicsFrom extracts the engine constants from a config.
func PhysicsFrom(cfg config.PlatformerConfig) Physics {
	return Physics{
		Gravity:        cfg.Physics.Gravity,
		JumpImpulse:    cfg.Physics.JumpImpulse,
		MoveSpeed:      cfg.Physics.MoveSpeed,
		StompBounce:    cfg.Physics.StompBounce,
		StompTolerance: cfg.Physics.StompTolerance,
		HeartChance:    cfg.Hearts.DropChance,
		HeartDrift:     cfg.Hearts.Drift,
	}
}

// DefaultPhysics returns the constants of the default config.
func DefaultPhysics() Physics {
	return PhysicsFrom(config.DefaultPlatformerConfig())
}

// Advance runs one tick of the simulation on lvl. The steps run in a fixed
// order: gravity and motion, platforms, falling off the surface, enemies,
// planes, lava, hearts, goal, and finally the horizontal impulse is cleared.
// A defeat returns immediately and skips every later step.
func Advance(lvl *Level, gs *GameState, ph Physics, rng *rand.Rand) Signal {
	p := &lvl.Player
	prevBottom := p.Bottom()

	p.VY += ph.Gravity
	p.X += p.VX
	p.Y += p.VY

	landOnPlatforms(lvl, prevBottom)

	if p.Y > float64(lvl.Height) {
		if loseLife(lvl, gs) {
			return SignalDefeat
		}
	}

	if moveEnemies(lvl, gs, ph, rng, prevBottom) {
		return SignalDefeat
	}

	for _, hazards := range [][]Hazard{lvl.Planes, lvl.Lava} {
		for _, h := range hazards {
			if p.Rect().Intersects(h.Rect()) {
				if loseLife(lvl, gs) {
					return SignalDefeat
				}
			}
		}
	}

	moveHearts(lvl, gs)

	if p.Rect().Intersects(lvl.Goal.Rect()) {
		return SignalComplete
	}

	p.VX = 0
	return SignalNone
}

// landOnPlatforms snaps a falling player onto any platform whose top edge
// the feet crossed this tick.
func landOnPlatforms(lvl *Level, prevBottom float64) {
	p := &lvl.Player
	for _, pl := range lvl.Platforms {
		top := float64(pl.Y)
		if p.X+float64(p.Width) <= float64(pl.X) || p.X >= float64(pl.X+pl.W) {
			continue
		}
		if p.VY >= 0 && p.Bottom() >= top && prevBottom <= top {
			p.Y = top - float64(p.Height)
			p.VY = 0
			p.Jumping = false
		}
	}
}

// moveEnemies advances every enemy once and resolves contact with the player.
// Stomped enemies are dropped after the scan. Reports whether lives ran out.
func moveEnemies(lvl *Level, gs *GameState, ph Physics, rng *rand.Rand, prevBottom float64) bool {
	p := &lvl.Player
	stomped := make([]bool, len(lvl.Enemies))
	defer func() { lvl.Enemies = without(lvl.Enemies, stomped) }()

	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]

		e.X += e.VX
		if e.X < e.MinX {
			e.VX = math.Abs(e.VX)
		} else if e.X+float64(e.Width) > e.MaxX {
			e.VX = -math.Abs(e.VX)
		}

		if !p.Rect().Intersects(e.Rect()) {
			continue
		}

		if p.VY > 0 && prevBottom <= e.Y+ph.StompTolerance {
			stomped[i] = true
			p.VY = ph.StompBounce
			if rng.Float64() < ph.HeartChance {
				lvl.Hearts = append(lvl.Hearts, Heart{X: e.X, Y: e.Y, VX: ph.HeartDrift, Symbol: HeartSymbol})
			}
			continue
		}

		if loseLife(lvl, gs) {
			return true
		}
	}
	return false
}

// moveHearts drifts the bonus hearts, discarding those that leave the
// surface and collecting those the player touches.
func moveHearts(lvl *Level, gs *GameState) {
	p := &lvl.Player
	gone := make([]bool, len(lvl.Hearts))

	for i := range lvl.Hearts {
		h := &lvl.Hearts[i]
		h.X += h.VX
		if h.X < 0 || h.X > float64(lvl.Width) {
			gone[i] = true
			continue
		}
		if p.Rect().Intersects(h.Rect()) {
			gone[i] = true
			if gs.Lives < MaxLives {
				gs.Lives++
			}
		}
	}

	lvl.Hearts = without(lvl.Hearts, gone)
}

// loseLife takes one life and respawns the player. Reports whether the
// campaign is out of lives.
func loseLife(lvl *Level, gs *GameState) bool {
	gs.Lives--
	if gs.Lives <= 0 {
		gs.Lives = 0
		return true
	}
	lvl.Player.Respawn(lvl.Spawn)
	return false
}

// without returns items minus those flagged in drop, reusing the backing array.
func without[T any](items []T, drop []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !drop[i] {
			kept = append(kept, item)
		}
	}
	return kept
}
