package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// CatalogSize is the number of hand-authored levels; later levels are generated.
const CatalogSize = 10

// Factory builds levels for a given surface size.
type Factory struct {
	Player config.PlayerConfig
	// RNG picks the enemy type of catalog levels 5-10. Generated levels
	// use their own seeded source and never touch it.
	RNG *rand.Rand
}

// NewFactory returns a factory using the given player settings and RNG.
func NewFactory(player config.PlayerConfig, rng *rand.Rand) Factory {
	return Factory{Player: player, RNG: rng}
}

// BuildLevel builds a level with the default player settings.
func BuildLevel(number, sh, sw int, rng *rand.Rand) *Level {
	return NewFactory(config.DefaultPlatformerConfig().Player, rng).Build(number, sh, sw)
}

// Build returns level number for a surface of sh rows and sw columns.
// Numbers below 1 build level 1. Surfaces under MinScreenW x MinScreenH are
// laid out at the minimum size; geometry that falls off-screen is simply
// not drawn.
func (f Factory) Build(number, sh, sw int) *Level {
	if number < 1 {
		number = 1
	}
	sh, sw = max(sh, MinScreenH), max(sw, MinScreenW)

	var lvl *Level
	if number <= CatalogSize {
		lvl = catalogLevel(number, sh, sw, f.rng())
	} else {
		lvl = GenerateLevel(number, sh, sw)
	}

	lvl.Number = number
	lvl.Width = sw
	lvl.Height = sh
	lvl.Spawn = Spawn{X: f.Player.SpawnX, Y: float64(sh - f.Player.SpawnFromBottom)}
	lvl.Player = Player{Width: f.Player.Width, Height: f.Player.Height}
	lvl.Player.Respawn(lvl.Spawn)
	return lvl
}

func (f Factory) rng() *rand.Rand {
	if f.RNG != nil {
		return f.RNG
	}
	return rand.New(rand.NewSource(1)) //#nosec G404 -- gameplay randomness
}

func ground(sh, sw int) Platform {
	return Platform{X: 0, Y: sh - 2, W: sw, H: 1}
}

func plat(x, y, w int) Platform {
	return Platform{X: x, Y: y, W: w, H: 1}
}

func strip(x, y, w int) Hazard {
	return Hazard{X: x, Y: y, W: w, H: 1}
}

func patrol(x, y, vx float64, minX, maxX float64, t EnemyType) Enemy {
	return Enemy{X: x, Y: y, VX: vx, Width: 3, Height: 1, MinX: minX, MaxX: maxX, Type: t}
}

func goalAt(x, y, w, h int) Goal {
	return Goal{X: max(x, 0), Y: y, Width: w, Height: h}
}

// catalogLevel returns the hand-authored layouts. Levels 1-4 are fixed; 5-10
// share a formula scaled by the level number with a random enemy type.
func catalogLevel(n, sh, sw int, rng *rand.Rand) *Level {
	fh := float64(sh)

	switch n {
	case 1:
		return &Level{
			Platforms: []Platform{ground(sh, sw), plat(10, sh-6, 15)},
			Enemies:   []Enemy{patrol(12, fh-7, 0.5, 10, 25, EnemyBasic)},
			Goal:      goalAt(sw-10, sh-4, 5, 2),
		}
	case 2:
		return &Level{
			Platforms: []Platform{ground(sh, sw), plat(20, sh-5, 20), plat(45, sh-8, 15)},
			Enemies:   []Enemy{patrol(22, fh-6, 0.7, 20, 40, EnemyBasic)},
			Goal:      goalAt(sw-15, sh-4, 5, 2),
		}
	case 3:
		return &Level{
			Platforms: []Platform{ground(sh, sw), plat(15, sh-6, 20), plat(40, sh-9, 15)},
			Enemies:   []Enemy{patrol(18, fh-7, 0.5, 15, 35, EnemySlime)},
			Goal:      goalAt(sw-10, sh-4, 5, 2),
			Lava:      []Hazard{strip(sw/2-10, sh-2, 20)},
		}
	case 4:
		return &Level{
			Platforms: []Platform{ground(sh, sw), plat(10, sh-7, 15), plat(35, sh-10, 20), plat(60, sh-8, 15)},
			Enemies: []Enemy{
				patrol(12, fh-7, 0.5, 10, 25, EnemyBasic),
				patrol(38, fh-11, 0.6, 35, 55, EnemyFlying),
			},
			Goal:   goalAt(sw-12, sh-4, 6, 2),
			Planes: []Hazard{strip(sw/3, sh-12, 10)},
			Lava:   []Hazard{strip(sw/2-5, sh-2, 10)},
		}
	}

	fn := float64(n)
	return &Level{
		Platforms: []Platform{
			ground(sh, sw),
			plat(10+n*2, sh-(6+n), 15),
			plat(30+n*3, sh-(8+n*2), 20),
			plat(sw/2, sh-(10+n), 10),
		},
		Enemies: []Enemy{
			patrol(12+fn, fh-(7+fn), 0.5, 10+fn, 25+fn, enemyTypes[rng.Intn(len(enemyTypes))]),
		},
		Goal:   goalAt(sw-(10+n), sh-4, 5, 2),
		Planes: []Hazard{strip(sw/3, sh-(12+n), 10)},
	}
}
