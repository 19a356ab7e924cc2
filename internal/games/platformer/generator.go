package platformer

import (
	"math"
	"math/rand"
)

// Chances of the optional hazards in a generated level.
const (
	lavaChance  = 0.5
	planeChance = 0.4
)

// GenerateSeed returns the RNG seed for a generated level. The same number
// always yields the same seed, so a level can be rebuilt identically.
func GenerateSeed(number int) int64 {
	return int64(float64(number) * math.Pi * 1000)
}

// GenerateLevel lays out a procedural level. Player and spawn are filled in
// by Factory.Build.
func GenerateLevel(number, sh, sw int) *Level {
	rng := rand.New(rand.NewSource(GenerateSeed(number))) //#nosec G404 -- deterministic layout, not security

	lvl := &Level{
		Platforms: []Platform{ground(sh, sw)},
		Goal:      goalAt(sw-10, sh-4, 5, 2),
	}

	for range randInt(rng, 2, 5) {
		x := randInt(rng, 5, sw-20)
		y := randInt(rng, 5, sh-5)
		w := randInt(rng, 10, 20)
		lvl.Platforms = append(lvl.Platforms, plat(x, y, w))
	}

	for range randInt(rng, 1, 3) {
		x := randInt(rng, 10, sw-10)
		kind := enemyTypes[rng.Intn(len(enemyTypes))]
		vx := 0.5
		if rng.Intn(2) == 1 {
			vx = -0.5
		}
		minX := float64(max(0, x-5))
		maxX := float64(min(sw-3, x+5))
		lvl.Enemies = append(lvl.Enemies, patrol(float64(x), float64(sh-3), vx, minX, maxX, kind))
	}

	if rng.Float64() < lavaChance {
		x := randInt(rng, 10, sw-20)
		y := randInt(rng, sh-10, sh-2)
		w := randInt(rng, 5, 15)
		lvl.Lava = append(lvl.Lava, strip(x, y, w))
	}

	if rng.Float64() < planeChance {
		x := randInt(rng, 5, sw-15)
		y := randInt(rng, 3, sh-15)
		w := randInt(rng, 8, 15)
		lvl.Planes = append(lvl.Planes, strip(x, y, w))
	}

	return lvl
}

// randInt returns a value in [lo, hi]. An empty range on a small surface
// collapses to lo.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
