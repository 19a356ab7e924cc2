package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// MaxLives is the lives cap and the count every campaign starts with.
const MaxLives = 3

// Smallest surface the layouts are designed for.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Player is the controllable box. Position and velocity are fractional.
type Player struct {
	X, Y    float64
	VX, VY  float64
	Width   int
	Height  int
	Jumping bool
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: float64(p.Width), H: float64(p.Height)}
}

// Bottom returns the y-coordinate of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Y + float64(p.Height)
}

// Respawn puts the player back at the spawn point, at rest.
func (p *Player) Respawn(spawn Spawn) {
	p.X = spawn.X
	p.Y = spawn.Y
	p.VX = 0
	p.VY = 0
	p.Jumping = false
}

// Spawn is the pose the player starts from and returns to after losing a life.
type Spawn struct {
	X, Y float64
}

// Platform is a static one-way floor, solid only from above.
type Platform struct {
	X, Y int
	W, H int
}

// Rect returns the platform's box.
func (p Platform) Rect() core.RectF {
	return core.NewRect(p.X, p.Y, p.W, p.H).F()
}

// EnemyType only selects the glyph; all enemies move and hurt the same way.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemySlime
	EnemyFlying
)

var enemyTypes = []EnemyType{EnemyBasic, EnemySlime, EnemyFlying}

// Glyph returns the one-character code drawn for the enemy.
func (t EnemyType) Glyph() rune {
	switch t {
	case EnemySlime:
		return 'S'
	case EnemyFlying:
		return 'F'
	default:
		return 'E'
	}
}

func (t EnemyType) String() string {
	switch t {
	case EnemySlime:
		return "slime"
	case EnemyFlying:
		return "flying"
	default:
		return "basic"
	}
}

// MarshalText lets previews print the type by name.
func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Enemy patrols horizontally between MinX and MaxX.
type Enemy struct {
	X, Y   float64
	VX     float64
	Width  int
	Height int
	MinX   float64
	MaxX   float64
	Type   EnemyType
}

// Rect returns the enemy's collision box.
func (e *Enemy) Rect() core.RectF {
	return core.RectF{X: e.X, Y: e.Y, W: float64(e.Width), H: float64(e.Height)}
}

// Hazard is a static box that costs a life on any contact. Planes and lava
// share this type and behave the same.
type Hazard struct {
	X, Y int
	W, H int
}

// Rect returns the hazard's box.
func (h Hazard) Rect() core.RectF {
	return core.NewRect(h.X, h.Y, h.W, h.H).F()
}

// HeartSymbol is the glyph of a bonus heart.
const HeartSymbol = '♡'

// Heart is a bonus life drifting left after a stomp.
type Heart struct {
	X, Y   float64
	VX     float64
	Symbol rune
}

// Rect returns the heart's 1x1 pickup box.
func (h *Heart) Rect() core.RectF {
	return core.RectF{X: h.X, Y: h.Y, W: 1, H: 1}
}

// Goal ends the level when touched.
type Goal struct {
	X, Y   int
	Width  int
	Height int
}

// Rect returns the goal's box.
func (g Goal) Rect() core.RectF {
	return core.NewRect(g.X, g.Y, g.Width, g.Height).F()
}

// Level is one playable layout plus its live entities.
// A fresh Level is built for every attempt and thrown away afterwards.
type Level struct {
	Number int
	Width  int // Surface width the layout was built for
	Height int // Surface height the layout was built for

	Spawn     Spawn
	Player    Player
	Goal      Goal
	Platforms []Platform
	Enemies   []Enemy
	Planes    []Hazard
	Lava      []Hazard
	Hearts    []Heart
}

// GameState is the campaign-wide state shared by the session and the physics.
type GameState struct {
	Lives      int
	SpeedBonus int // 1 for the level right after a won boss duel, else 0
}

// NewGameState returns the state a campaign starts with.
func NewGameState() GameState {
	return GameState{Lives: MaxLives}
}
