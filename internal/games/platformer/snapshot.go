package platformer

// Snapshot is a flat copy of the campaign state for determinism checks.
// Positions are scaled by 1000 and truncated so the data stays integral.
type Snapshot struct {
	Tick       uint64
	Phase      int
	Level      int
	Lives      int
	SpeedBonus int

	PlayerX int
	PlayerY int
	Jumping bool

	// Each enemy is 3 ints: X, Y, VX
	EnemyData []int
	// Each heart is 2 ints: X, Y
	HeartData []int
}

func milli(v float64) int {
	return int(v * 1000)
}

// Snapshot returns the current state.
func (c *Campaign) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       c.tick,
		Phase:      int(c.phase),
		Level:      c.levelNum,
		Lives:      c.gs.Lives,
		SpeedBonus: c.gs.SpeedBonus,
	}
	if c.level == nil {
		return s
	}

	p := &c.level.Player
	s.PlayerX, s.PlayerY, s.Jumping = milli(p.X), milli(p.Y), p.Jumping

	s.EnemyData = make([]int, 0, len(c.level.Enemies)*3)
	for _, e := range c.level.Enemies {
		s.EnemyData = append(s.EnemyData, milli(e.X), milli(e.Y), milli(e.VX))
	}
	s.HeartData = make([]int, 0, len(c.level.Hearts)*2)
	for _, h := range c.level.Hearts {
		s.HeartData = append(s.HeartData, milli(h.X), milli(h.Y))
	}
	return s
}

// Hash returns a simple hash of the snapshot for comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	h = h*31 + s.Tick
	h = h*31 + uint64(s.Phase)      //#nosec G115 -- hash, wraparound ok
	h = h*31 + uint64(s.Level)      //#nosec G115 -- hash, wraparound ok
	h = h*31 + uint64(s.Lives)      //#nosec G115 -- hash, wraparound ok
	h = h*31 + uint64(s.SpeedBonus) //#nosec G115 -- hash, wraparound ok
	h = h*31 + uint64(s.PlayerX)    //#nosec G115 -- hash, wraparound ok
	h = h*31 + uint64(s.PlayerY)    //#nosec G115 -- hash, wraparound ok
	if s.Jumping {
		h = h*31 + 1
	}
	for _, v := range s.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash, wraparound ok
	}
	for _, v := range s.HeartData {
		h = h*31 + uint64(v) //#nosec G115 -- hash, wraparound ok
	}
	return h
}
