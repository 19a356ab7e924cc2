package platformer

import (
	"testing"
)

// flatLevel is an 80x24 surface with only the ground and an unreachable goal.
// The player rests on the ground at the spawn column.
func flatLevel() (*Level, *GameState) {
	lvl := &Level{
		Number:    1,
		Width:     80,
		Height:    24,
		Spawn:     Spawn{X: 5, Y: 19},
		Player:    Player{Width: 3, Height: 2},
		Goal:      Goal{X: 200, Y: 200, Width: 1, Height: 1},
		Platforms: []Platform{ground(24, 80)},
	}
	lvl.Player.Respawn(lvl.Spawn)
	gs := NewGameState()
	return lvl, &gs
}

func quietPhysics() Physics {
	ph := DefaultPhysics()
	ph.HeartChance = 0
	return ph
}

func TestLandingOnGround(t *testing.T) {
	lvl, gs := flatLevel()
	ph := quietPhysics()

	for range 5 {
		if sig := Advance(lvl, gs, ph, testRNG()); sig != SignalNone {
			t.Fatalf("signal = %v, want none", sig)
		}
	}

	p := lvl.Player
	if p.Y != 20 || p.VY != 0 || p.Jumping {
		t.Errorf("player = %+v, want resting at y=20", p)
	}
}

func TestPlatformsAreOneWay(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Platforms = append(lvl.Platforms, Platform{X: 0, Y: 15, W: 20, H: 1})
	lvl.Player.Y = 17
	lvl.Player.VY = -3.5

	Advance(lvl, gs, quietPhysics(), testRNG())
	if lvl.Player.Y != 14 {
		t.Errorf("rising player y = %v, want 14 (passed through)", lvl.Player.Y)
	}
}

func TestStompRemovesEnemyAndBounces(t *testing.T) {
	tests := []struct {
		name   string
		startY float64
	}{
		{"bottom exactly on top", 8},
		{"bottom within tolerance", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, gs := flatLevel()
			lvl.Enemies = []Enemy{patrol(10, 10, 0, 0, 80, EnemyBasic)}
			lvl.Player.X = 10
			lvl.Player.Y = tt.startY
			lvl.Player.VY = 0.5

			Advance(lvl, gs, quietPhysics(), testRNG())

			if len(lvl.Enemies) != 0 {
				t.Errorf("enemy not removed: %+v", lvl.Enemies)
			}
			if lvl.Player.VY != -3 {
				t.Errorf("vy = %v, want stomp bounce -3", lvl.Player.VY)
			}
			if gs.Lives != MaxLives {
				t.Errorf("lives = %d, want %d", gs.Lives, MaxLives)
			}
		})
	}
}

func TestFastStompOnTallEnemy(t *testing.T) {
	lvl, gs := flatLevel()
	tall := patrol(10, 10, 0, 0, 80, EnemyBasic)
	tall.Height = 3
	lvl.Enemies = []Enemy{tall}
	lvl.Player.X = 10
	lvl.Player.Y = 8
	lvl.Player.VY = 2.5 // 3 after gravity

	Advance(lvl, gs, quietPhysics(), testRNG())

	if len(lvl.Enemies) != 0 {
		t.Errorf("enemy not removed: %+v", lvl.Enemies)
	}
	if lvl.Player.VY != -3 {
		t.Errorf("vy = %v, want stomp bounce -3", lvl.Player.VY)
	}
	if gs.Lives != MaxLives {
		t.Errorf("lives = %d, want %d", gs.Lives, MaxLives)
	}
}

// Contact is sampled once per tick, so a fall faster than a short enemy's
// height can skip over it entirely.
func TestFastFallPassesThroughShortEnemy(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Enemies = []Enemy{patrol(10, 10, 0, 0, 80, EnemyBasic)}
	lvl.Player.X = 10
	lvl.Player.Y = 8
	lvl.Player.VY = 2.5

	if sig := Advance(lvl, gs, quietPhysics(), testRNG()); sig != SignalNone {
		t.Fatalf("signal = %v, want none", sig)
	}

	if len(lvl.Enemies) != 1 {
		t.Errorf("enemies = %d, want 1", len(lvl.Enemies))
	}
	if lvl.Player.VY != 3 || lvl.Player.Y != 11 {
		t.Errorf("player y=%v vy=%v, want y=11 vy=3", lvl.Player.Y, lvl.Player.VY)
	}
	if gs.Lives != MaxLives {
		t.Errorf("lives = %d, want %d", gs.Lives, MaxLives)
	}
}

func TestSideContactCostsLife(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Enemies = []Enemy{patrol(10, 10, 0, 0, 80, EnemyBasic)}
	lvl.Player.X = 9
	lvl.Player.Y = 9
	lvl.Player.VY = -0.5

	if sig := Advance(lvl, gs, quietPhysics(), testRNG()); sig != SignalNone {
		t.Fatalf("signal = %v", sig)
	}
	if gs.Lives != 2 {
		t.Errorf("lives = %d, want 2", gs.Lives)
	}
	if len(lvl.Enemies) != 1 {
		t.Error("enemy should survive a side hit")
	}
	if lvl.Player.X != 5 || lvl.Player.Y != 19 {
		t.Errorf("player at (%v,%v), want respawn (5,19)", lvl.Player.X, lvl.Player.Y)
	}
}

func TestLavaHurtsWhileRising(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Lava = []Hazard{strip(20, 13, 5)}
	lvl.Player.X = 20
	lvl.Player.Y = 15
	lvl.Player.VY = -3
	lvl.Player.Jumping = true

	Advance(lvl, gs, quietPhysics(), testRNG())
	if gs.Lives != 2 {
		t.Errorf("lives = %d, want 2", gs.Lives)
	}
	if lvl.Player.Jumping || lvl.Player.VY != 0 {
		t.Errorf("player not reset on respawn: %+v", lvl.Player)
	}
}

func TestPlaneCostsLife(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Planes = []Hazard{strip(0, 20, 10)}

	Advance(lvl, gs, quietPhysics(), testRNG())
	if gs.Lives != 2 {
		t.Errorf("lives = %d, want 2", gs.Lives)
	}
}

func TestFallOffSurface(t *testing.T) {
	t.Run("respawn", func(t *testing.T) {
		lvl, gs := flatLevel()
		lvl.Player.Y = 24

		if sig := Advance(lvl, gs, quietPhysics(), testRNG()); sig != SignalNone {
			t.Fatalf("signal = %v", sig)
		}
		if gs.Lives != 2 || lvl.Player.Y != 19 {
			t.Errorf("lives=%d y=%v, want 2 and respawned", gs.Lives, lvl.Player.Y)
		}
	})

	t.Run("last life", func(t *testing.T) {
		lvl, gs := flatLevel()
		gs.Lives = 1
		lvl.Player.Y = 24
		lvl.Hearts = []Heart{{X: 40, Y: 5, VX: -0.2, Symbol: HeartSymbol}}

		if sig := Advance(lvl, gs, quietPhysics(), testRNG()); sig != SignalDefeat {
			t.Fatalf("signal = %v, want defeat", sig)
		}
		if gs.Lives != 0 {
			t.Errorf("lives = %d, want 0", gs.Lives)
		}
		if lvl.Hearts[0].X != 40 {
			t.Error("hearts moved after defeat")
		}
	})
}

func TestHeartsAreCollectedUpToCap(t *testing.T) {
	tests := []struct {
		lives int
		want  int
	}{
		{1, 2},
		{2, 3},
		{3, 3},
	}

	for _, tt := range tests {
		lvl, gs := flatLevel()
		gs.Lives = tt.lives
		lvl.Player.Y = 20
		lvl.Hearts = []Heart{{X: 6.2, Y: 20.5, VX: -0.2, Symbol: HeartSymbol}}

		Advance(lvl, gs, quietPhysics(), testRNG())
		if gs.Lives != tt.want {
			t.Errorf("lives %d -> %d, want %d", tt.lives, gs.Lives, tt.want)
		}
		if len(lvl.Hearts) != 0 {
			t.Errorf("heart not consumed: %+v", lvl.Hearts)
		}
	}
}

func TestHeartsDriftAndLeave(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Hearts = []Heart{
		{X: 40, Y: 5, VX: -0.2, Symbol: HeartSymbol},
		{X: 0.1, Y: 5, VX: -0.2, Symbol: HeartSymbol},
	}

	Advance(lvl, gs, quietPhysics(), testRNG())
	if len(lvl.Hearts) != 1 {
		t.Fatalf("got %d hearts, want 1", len(lvl.Hearts))
	}
	if x := lvl.Hearts[0].X; x < 39.79 || x > 39.81 {
		t.Errorf("heart x = %v, want 39.8", x)
	}
}

func TestStompMayDropHeart(t *testing.T) {
	lvl, gs := flatLevel()
	gs.Lives = 2
	lvl.Enemies = []Enemy{patrol(10, 10, 0, 0, 80, EnemyBasic)}
	lvl.Player.X = 10
	lvl.Player.Y = 8
	lvl.Player.VY = 0.5

	ph := quietPhysics()
	ph.HeartChance = 1

	Advance(lvl, gs, ph, testRNG())
	// The heart spawns under the player and is picked up in the same tick.
	if gs.Lives != 3 {
		t.Errorf("lives = %d, want 3", gs.Lives)
	}
}

func TestEnemyPatrolStaysInBounds(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Enemies = []Enemy{patrol(20, 5, 0.5, 10, 25, EnemySlime)}

	for range 300 {
		Advance(lvl, gs, quietPhysics(), testRNG())
		e := lvl.Enemies[0]
		if e.X < e.MinX-0.5 || e.X+float64(e.Width) > e.MaxX+0.5 {
			t.Fatalf("enemy escaped patrol: x=%v", e.X)
		}
	}
}

func TestEnemyReversesAtBounds(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Enemies = []Enemy{patrol(21.5, 5, 0.5, 10, 25, EnemyBasic)}

	Advance(lvl, gs, quietPhysics(), testRNG())
	if lvl.Enemies[0].VX != 0.5 {
		t.Fatalf("vx = %v, want 0.5 inside bounds", lvl.Enemies[0].VX)
	}
	Advance(lvl, gs, quietPhysics(), testRNG())
	Advance(lvl, gs, quietPhysics(), testRNG())
	if lvl.Enemies[0].VX != -0.5 {
		t.Errorf("vx = %v, want -0.5 after passing max", lvl.Enemies[0].VX)
	}
}

func TestGoalCompletes(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Goal = Goal{X: 6, Y: 20, Width: 5, Height: 2}

	if sig := Advance(lvl, gs, quietPhysics(), testRNG()); sig != SignalComplete {
		t.Errorf("signal = %v, want complete", sig)
	}
}

func TestHorizontalImpulseIsCleared(t *testing.T) {
	lvl, gs := flatLevel()
	lvl.Player.VX = 1.5

	Advance(lvl, gs, quietPhysics(), testRNG())
	if lvl.Player.X != 6.5 || lvl.Player.VX != 0 {
		t.Errorf("player x=%v vx=%v, want 6.5 and 0", lvl.Player.X, lvl.Player.VX)
	}
}
