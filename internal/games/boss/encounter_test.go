package boss

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const dt = 50 * time.Millisecond

func testConfig() Config {
	return Config{
		RegenInterval: 5 * time.Second,
		TimeCap:       20 * time.Second,
		WinScore:      3,
		PlayerChance:  0.4,
		BossChance:    0.3,
	}
}

// setBoard replaces the board and cursor for a scripted scenario.
func setBoard(e *Encounter, rows [BoardSize]string) {
	for r, line := range rows {
		for c, ch := range line {
			e.board[r][c] = Cell(ch)
		}
	}
	e.row, e.col = 0, 0
}

func newTestEncounter(cfg Config) *Encounter {
	return NewEncounter(cfg, rand.New(rand.NewSource(7)))
}

func TestPlayerWinsByCollecting(t *testing.T) {
	e := newTestEncounter(testConfig())
	setBoard(e, [BoardSize]string{"XXX", "   ", "   "})

	in := core.NewInputFrame(
		core.ActionConfirm,
		core.ActionRight, core.ActionConfirm,
		core.ActionRight, core.ActionConfirm,
	)
	res, over := e.Step(in, dt)
	if !over {
		t.Fatal("duel should be over after three collections")
	}
	if !res.Won || res.Reason != ReasonPlayerScore || res.PlayerMarks != 3 {
		t.Errorf("result = %+v, want player win with 3 marks", res)
	}
	if res.Message() != "You win the boss fight! Bonus speed awarded!" {
		t.Errorf("message = %q", res.Message())
	}
}

func TestBossWinsBySweeping(t *testing.T) {
	e := newTestEncounter(testConfig())
	setBoard(e, [BoardSize]string{"OOO", "   ", "   "})

	res, over := e.Step(core.NewInputFrame(), dt)
	if !over {
		t.Fatal("boss should reach 3 in one sweep")
	}
	if res.Won || res.Reason != ReasonBossScore || res.BossMarks != 3 {
		t.Errorf("result = %+v, want boss win", res)
	}
	if res.Message() != "Boss wins the mini-game! No bonus speed." {
		t.Errorf("message = %q", res.Message())
	}
}

func TestSimultaneousTargetFavoursPlayer(t *testing.T) {
	e := newTestEncounter(testConfig())
	setBoard(e, [BoardSize]string{"XOO", "O  ", "   "})
	e.player = 2

	res, over := e.Step(core.NewInputFrame(core.ActionConfirm), dt)
	if !over {
		t.Fatal("duel should be over")
	}
	if !res.Won || res.PlayerMarks != 3 || res.BossMarks != 3 {
		t.Errorf("result = %+v, want player win at 3-3", res)
	}
}

func TestTimeUpTieGoesToBoss(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerChance, cfg.BossChance = 0, 0
	e := newTestEncounter(cfg)
	e.player, e.boss = 1, 1

	var (
		res  Result
		over bool
	)
	ticks := 0
	for !over {
		res, over = e.Step(core.NewInputFrame(), dt)
		ticks++
		if ticks > 1000 {
			t.Fatal("duel never timed out")
		}
	}

	if res.Won || res.Reason != ReasonTimeUp {
		t.Errorf("result = %+v, want time-up loss", res)
	}
	if ticks != int(cfg.TimeCap/dt) {
		t.Errorf("timed out after %d ticks, want %d", ticks, cfg.TimeCap/dt)
	}
	if res.Message() != "Time's up! Boss wins! No bonus speed." {
		t.Errorf("message = %q", res.Message())
	}
}

func TestTimeUpLeadWins(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerChance, cfg.BossChance = 0, 0
	cfg.TimeCap = time.Second
	e := newTestEncounter(cfg)
	e.player = 2

	var res Result
	for over := false; !over; {
		res, over = e.Step(core.NewInputFrame(), dt)
	}
	if !res.Won || res.Message() != "Time's up! You win! Bonus speed awarded!" {
		t.Errorf("result = %+v (%q), want time-up win", res, res.Message())
	}
}

func TestBoardRegeneratesOnInterval(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerChance, cfg.BossChance = 1, 0
	e := newTestEncounter(cfg)
	setBoard(e, [BoardSize]string{"   ", "   ", "   "})

	for range int(cfg.RegenInterval/dt) - 1 {
		e.Step(core.NewInputFrame(), dt)
	}
	if e.Cell(1, 1) != CellEmpty {
		t.Fatal("board redrawn before the interval elapsed")
	}

	e.Step(core.NewInputFrame(), dt)
	for r := range BoardSize {
		for c := range BoardSize {
			if e.Cell(r, c) != CellPlayer {
				t.Fatalf("cell (%d,%d) = %q after redraw, want X", r, c, e.Cell(r, c))
			}
		}
	}
}

func TestForfeitDecidesByCount(t *testing.T) {
	e := newTestEncounter(testConfig())
	setBoard(e, [BoardSize]string{"   ", "   ", "   "})
	e.player, e.boss = 0, 2

	res, over := e.Step(core.NewInputFrame(core.ActionQuit), dt)
	if !over || res.Won || res.Reason != ReasonForfeit {
		t.Errorf("result = %+v over=%v, want forfeit loss", res, over)
	}

	// Finished duels ignore further input.
	again, _ := e.Step(core.NewInputFrame(core.ActionConfirm), dt)
	if again != res {
		t.Errorf("result changed after finish: %+v -> %+v", res, again)
	}
}

func TestCursorClampsToBoard(t *testing.T) {
	e := newTestEncounter(testConfig())
	setBoard(e, [BoardSize]string{"   ", "   ", "   "})

	e.Step(core.NewInputFrame(core.ActionUp, core.ActionLeft), dt)
	if r, c := e.Cursor(); r != 0 || c != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", r, c)
	}

	e.Step(core.NewInputFrame(
		core.ActionDown, core.ActionDown, core.ActionDown,
		core.ActionRight, core.ActionRight, core.ActionRight,
	), dt)
	if r, c := e.Cursor(); r != 2 || c != 2 {
		t.Errorf("cursor = (%d,%d), want (2,2)", r, c)
	}
}

func TestConfirmOnBossMarkDoesNothing(t *testing.T) {
	e := newTestEncounter(testConfig())
	setBoard(e, [BoardSize]string{"O  ", "   ", "   "})

	e.Step(core.NewInputFrame(core.ActionConfirm), dt)
	if p, b := e.Counts(); p != 0 || b != 1 {
		t.Errorf("counts = %d/%d, want 0/1", p, b)
	}
}

func TestDrawListMarksCursor(t *testing.T) {
	e := newTestEncounter(testConfig())
	setBoard(e, [BoardSize]string{"X  ", "   ", "   "})

	d := e.DrawList()
	for col, want := range "[X]" {
		g, ok := d.At(rowBoard, col)
		if !ok || g.Rune != want {
			t.Errorf("board row col %d = %q, want %q", col, g.Rune, want)
		}
	}
	if g, _ := d.At(rowBoard, 3); g.Rune != ' ' {
		t.Errorf("non-cursor cell bracket = %q, want space", g.Rune)
	}
}

func TestEncounterDeterminism(t *testing.T) {
	run := func() (Result, bool) {
		e := NewEncounter(DefaultConfig(), rand.New(rand.NewSource(99)))
		var (
			res  Result
			over bool
		)
		for i := 0; i < 500 && !over; i++ {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionRight)
			}
			if i%4 == 0 {
				in.Set(core.ActionConfirm)
			}
			res, over = e.Step(in, dt)
		}
		return res, over
	}

	a, aOver := run()
	b, bOver := run()
	if a != b || aOver != bOver {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}
