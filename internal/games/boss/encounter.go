// Package boss implements the symbol-collection duel fought before every
// tenth level: a 3x3 board that redraws itself on a timer while the player
// picks up X marks and the boss sweeps up O marks.
package boss

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// BoardSize is the side of the square board.
const BoardSize = 3

// Cell is the content of one board square.
type Cell rune

const (
	CellEmpty  Cell = ' '
	CellPlayer Cell = 'X'
	CellBoss   Cell = 'O'
)

// Reason tells how a duel ended.
type Reason string

const (
	ReasonPlayerScore Reason = "player_score"
	ReasonBossScore   Reason = "boss_score"
	ReasonTimeUp      Reason = "time_up"
	ReasonForfeit     Reason = "forfeit"
)

// Config holds the duel rules.
type Config struct {
	RegenInterval time.Duration
	TimeCap       time.Duration
	WinScore      int
	PlayerChance  float64
	BossChance    float64
}

// ConfigFrom converts the YAML boss settings.
func ConfigFrom(b config.BossConfig) Config {
	return Config{
		RegenInterval: b.RegenInterval(),
		TimeCap:       b.TimeCap(),
		WinScore:      b.WinScore,
		PlayerChance:  b.PlayerChance,
		BossChance:    b.BossChance,
	}
}

// DefaultConfig returns the rules of the default config.
func DefaultConfig() Config {
	return ConfigFrom(config.DefaultPlatformerConfig().Boss)
}

// Result is the final state of a finished duel.
type Result struct {
	Won         bool
	PlayerMarks int
	BossMarks   int
	Reason      Reason
	Elapsed     time.Duration
}

// Message returns the line shown under the board once the duel is over.
func (r Result) Message() string {
	switch r.Reason {
	case ReasonPlayerScore:
		return "You win the boss fight! Bonus speed awarded!"
	case ReasonBossScore:
		return "Boss wins the mini-game! No bonus speed."
	}
	if r.Won {
		return "Time's up! You win! Bonus speed awarded!"
	}
	return "Time's up! Boss wins! No bonus speed."
}

// Event converts the result for the platform's event log.
func (r Result) Event(level int) core.Event {
	return core.Event{
		Kind:        core.EventBossResult,
		Level:       level,
		PlayerMarks: r.PlayerMarks,
		BossMarks:   r.BossMarks,
		Won:         r.Won,
		Reason:      string(r.Reason),
		ElapsedMS:   r.Elapsed.Milliseconds(),
	}
}

// Encounter is one running duel. It advances on a virtual clock supplied by
// the caller, so it never reads the wall time.
type Encounter struct {
	cfg   Config
	rng   *rand.Rand
	board [BoardSize][BoardSize]Cell

	row, col int
	player   int
	boss     int

	elapsed   time.Duration
	lastRegen time.Duration
	result    *Result
}

// NewEncounter starts a duel with a freshly drawn board and the cursor in the
// top-left corner.
func NewEncounter(cfg Config, rng *rand.Rand) *Encounter {
	e := &Encounter{cfg: cfg, rng: rng}
	e.regenerate()
	return e
}

func (e *Encounter) regenerate() {
	for r := range BoardSize {
		for c := range BoardSize {
			roll := e.rng.Float64()
			switch {
			case roll < e.cfg.PlayerChance:
				e.board[r][c] = CellPlayer
			case roll < e.cfg.PlayerChance+e.cfg.BossChance:
				e.board[r][c] = CellBoss
			default:
				e.board[r][c] = CellEmpty
			}
		}
	}
}

// Step advances the duel by dt and applies the input in order. It returns
// the result once the duel is over; further calls keep returning it.
func (e *Encounter) Step(in core.InputFrame, dt time.Duration) (Result, bool) {
	if e.result != nil {
		return *e.result, true
	}

	e.elapsed += dt
	if e.elapsed >= e.cfg.TimeCap {
		return e.finishByCount(ReasonTimeUp), true
	}
	if e.elapsed-e.lastRegen >= e.cfg.RegenInterval {
		e.regenerate()
		e.lastRegen = e.elapsed
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionUp:
			e.row = core.Clamp(e.row-1, 0, BoardSize-1)
		case core.ActionDown:
			e.row = core.Clamp(e.row+1, 0, BoardSize-1)
		case core.ActionLeft:
			e.col = core.Clamp(e.col-1, 0, BoardSize-1)
		case core.ActionRight:
			e.col = core.Clamp(e.col+1, 0, BoardSize-1)
		case core.ActionConfirm:
			if e.board[e.row][e.col] == CellPlayer {
				e.board[e.row][e.col] = CellEmpty
				e.player++
			}
		case core.ActionQuit:
			return e.finishByCount(ReasonForfeit), true
		}
	}

	// The boss sweeps every O on the board each tick.
	for r := range BoardSize {
		for c := range BoardSize {
			if e.board[r][c] == CellBoss {
				e.board[r][c] = CellEmpty
				e.boss++
			}
		}
	}

	// Player is checked first, so reaching the target together is a win.
	switch {
	case e.player >= e.cfg.WinScore:
		return e.finish(true, ReasonPlayerScore), true
	case e.boss >= e.cfg.WinScore:
		return e.finish(false, ReasonBossScore), true
	}
	return Result{}, false
}

// finishByCount ends the duel in favour of a strictly higher player count.
func (e *Encounter) finishByCount(reason Reason) Result {
	return e.finish(e.player > e.boss, reason)
}

func (e *Encounter) finish(won bool, reason Reason) Result {
	e.result = &Result{
		Won:         won,
		PlayerMarks: e.player,
		BossMarks:   e.boss,
		Reason:      reason,
		Elapsed:     e.elapsed,
	}
	return *e.result
}

// Result returns the outcome, if the duel has ended.
func (e *Encounter) Result() (Result, bool) {
	if e.result == nil {
		return Result{}, false
	}
	return *e.result, true
}

// Cell returns the content of board square (row, col).
func (e *Encounter) Cell(row, col int) Cell {
	return e.board[row][col]
}

// Cursor returns the cursor's row and column.
func (e *Encounter) Cursor() (row, col int) {
	return e.row, e.col
}

// Counts returns the marks collected by the player and the boss.
func (e *Encounter) Counts() (player, boss int) {
	return e.player, e.boss
}

// Elapsed returns the virtual time the duel has run.
func (e *Encounter) Elapsed() time.Duration {
	return e.elapsed
}

// Screen rows used by DrawList.
const (
	rowTitle  = 0
	rowScore  = 1
	rowBoard  = 3
	rowHint   = 7
	rowResult = 9
)

// DrawList returns the duel screen. The result line appears once it is over.
func (e *Encounter) DrawList() core.DrawList {
	var d core.DrawList
	d.Text(rowTitle, 0, "Boss Fight! Collect X's before boss collects O's!", core.ColorBrightYellow)
	d.Text(rowScore, 0, fmt.Sprintf("Your X's: %d   Boss O's: %d", e.player, e.boss), core.ColorDefault)

	for r := range BoardSize {
		for c := range BoardSize {
			cell := e.board[r][c]
			color := core.ColorDefault
			switch cell {
			case CellPlayer:
				color = core.ColorGreen
			case CellBoss:
				color = core.ColorRed
			}

			col := c * 3
			left, right := ' ', ' '
			if r == e.row && c == e.col {
				left, right = '[', ']'
			}
			d.Put(rowBoard+r, col, left, core.ColorCyan)
			d.Put(rowBoard+r, col+1, rune(cell), color)
			d.Put(rowBoard+r, col+2, right, core.ColorCyan)
		}
	}

	d.Text(rowHint, 0, "Use arrow keys to move, Enter to collect. (Press q to quit)", core.ColorGray)
	if e.result != nil {
		color := core.ColorRed
		if e.result.Won {
			color = core.ColorGreen
		}
		d.Text(rowResult, 0, e.result.Message(), color)
	}
	return d
}
