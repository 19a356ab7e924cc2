package platformer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/boss"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry id of the campaign.
const GameID = "platformer"

// GameOverBanner is shown when the last life is lost.
const GameOverBanner = "Game Over! Press any key..."

// Phase is the screen the campaign is currently on.
type Phase int

const (
	PhaseBoss       Phase = iota // Duel before a boss level
	PhaseBossResult              // Duel result banner, input ignored
	PhasePreview                 // Level dump, waiting for run or reset
	PhasePlaying                 // Level session
	PhaseGameOver                // Waiting for any key
)

func (p Phase) String() string {
	switch p {
	case PhaseBoss:
		return "boss"
	case PhaseBossResult:
		return "boss_result"
	case PhasePreview:
		return "preview"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel overrides campaign.start_level when positive
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the level a new campaign begins on. Zero uses the config.
func SetStartLevel(n int) {
	startLevel = n
}

// Campaign sequences levels, boss duels and acknowledgment screens forever.
// It never ends on its own; game over returns to level 1 after a key press.
type Campaign struct {
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	pending *config.PlatformerConfig

	rng      *rand.Rand
	physics  Physics
	gs       GameState
	levelNum int

	phase       Phase
	level       *Level
	session     *Session
	encounter   *boss.Encounter
	resultTicks int

	tick   uint64
	events []core.Event

	screenTooSmall bool
}

// New creates a campaign. Reset must be called before use.
func New() *Campaign {
	return &Campaign{}
}

// ID returns the unique identifier for this game.
func (c *Campaign) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (c *Campaign) Title() string {
	return "Platformer"
}

// Reset loads the config and starts a fresh campaign.
func (c *Campaign) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	c.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh campaign with an explicit config.
func (c *Campaign) ResetWith(runtime core.RuntimeConfig, cfg config.PlatformerConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultTickRate
	}
	c.runtime = runtime
	c.cfg = cfg
	c.pending = nil
	c.physics = PhysicsFrom(cfg)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness

	c.gs = NewGameState()
	c.levelNum = max(cfg.Campaign.StartLevel, 1)
	if startLevel > 0 {
		c.levelNum = startLevel
	}
	c.tick = 0
	c.events = nil
	c.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	c.startLevel()
}

// UpdateConfig queues cfg; it takes effect when the next level is built.
func (c *Campaign) UpdateConfig(cfg config.PlatformerConfig) {
	c.pending = &cfg
}

// Resize records a new surface size. The level in progress keeps its layout;
// the next build uses the new size.
func (c *Campaign) Resize(w, h int) {
	c.runtime.ScreenW = w
	c.runtime.ScreenH = h
	c.screenTooSmall = w < MinScreenW || h < MinScreenH
}

func (c *Campaign) emit(kind core.EventKind) {
	c.events = append(c.events, core.Event{Kind: kind, Level: c.levelNum, Lives: c.gs.Lives})
}

// startLevel builds the current level and enters the duel or the preview.
func (c *Campaign) startLevel() {
	if c.pending != nil {
		c.cfg = *c.pending
		c.physics = PhysicsFrom(c.cfg)
		c.pending = nil
	}

	c.level = NewFactory(c.cfg.Player, c.rng).Build(c.levelNum, c.runtime.ScreenH, c.runtime.ScreenW)
	c.session = nil
	c.emit(core.EventLevelStart)

	every := max(c.cfg.Boss.Every, 1)
	if c.levelNum%every == 0 {
		c.encounter = boss.NewEncounter(boss.ConfigFrom(c.cfg.Boss), c.rng)
		c.phase = PhaseBoss
		return
	}
	c.encounter = nil
	c.gs.SpeedBonus = 0
	c.phase = PhasePreview
}

func (c *Campaign) restart() {
	c.levelNum = 1
	c.gs.Lives = MaxLives
	c.startLevel()
}

func (c *Campaign) tickDuration() time.Duration {
	return time.Second / time.Duration(c.runtime.TickRate)
}

// Step advances whichever screen is active by one tick.
func (c *Campaign) Step(in core.InputFrame) core.StepResult {
	if c.screenTooSmall {
		return c.result()
	}
	c.tick++

	switch c.phase {
	case PhaseBoss:
		res, over := c.encounter.Step(in, c.tickDuration())
		if !over {
			break
		}
		c.gs.SpeedBonus = 0
		if res.Won {
			c.gs.SpeedBonus = 1
		}
		ev := res.Event(c.levelNum)
		ev.Lives = c.gs.Lives
		c.events = append(c.events, ev)
		c.resultTicks = int(c.cfg.Boss.ResultDelay() / c.tickDuration())
		c.phase = PhaseBossResult

	case PhaseBossResult:
		c.resultTicks--
		if c.resultTicks <= 0 {
			c.phase = PhasePreview
		}

	case PhasePreview:
		c.stepPreview(in)

	case PhasePlaying:
		c.stepPlaying(in)

	case PhaseGameOver:
		if in.Any() {
			c.restart()
		}
	}

	return c.result()
}

func (c *Campaign) stepPreview(in core.InputFrame) {
	for _, a := range in.Actions {
		switch a {
		case core.ActionRun:
			c.session = NewSession(c.level, &c.gs, c.physics, c.rng)
			c.phase = PhasePlaying
			return
		case core.ActionReset:
			c.emit(core.EventCampaignReset)
			c.restart()
			return
		}
	}
}

func (c *Campaign) stepPlaying(in core.InputFrame) {
	switch c.session.Step(in) {
	case OutcomeReload:
		c.emit(core.EventLevelReload)
		c.startLevel()
	case OutcomeReset:
		c.emit(core.EventCampaignReset)
		c.restart()
	case OutcomeGameOver:
		c.emit(core.EventGameOver)
		c.phase = PhaseGameOver
	case OutcomeComplete:
		c.emit(core.EventLevelComplete)
		c.levelNum++
		c.startLevel()
	}
}

// result drains the queued events, including any raised by ResetWith or
// Resize since the previous step.
func (c *Campaign) result() core.StepResult {
	var events []core.Event
	if len(c.events) > 0 {
		events = append(events, c.events...)
		c.events = c.events[:0]
	}
	return core.StepResult{State: c.State(), Events: events}
}

// Render draws the active screen.
func (c *Campaign) Render(dst *core.Screen) {
	dst.Clear()

	if c.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	switch c.phase {
	case PhaseBoss, PhaseBossResult:
		dst.Apply(c.encounter.DrawList())
	case PhasePreview:
		dst.Apply(DrawPreview(c.level, dst.Width(), dst.Height()))
	case PhasePlaying:
		c.session.Render(dst)
	case PhaseGameOver:
		dst.Apply(DrawLevel(c.level))
		dst.Apply(DrawHUD(&c.gs, dst.Width()))
		dst.DrawTextCentered(dst.Height()/2, GameOverBanner)
	}
}

// State reports the level number as the score.
func (c *Campaign) State() core.GameState {
	paused := c.phase == PhasePlaying && c.session != nil && c.session.State() == StatePaused
	return core.GameState{
		Score:    c.levelNum,
		GameOver: c.phase == PhaseGameOver,
		Paused:   paused,
	}
}

// Phase returns the active screen.
func (c *Campaign) Phase() Phase {
	return c.phase
}

// LevelNumber returns the level being played or previewed.
func (c *Campaign) LevelNumber() int {
	return c.levelNum
}

// GameState returns the shared lives and speed bonus.
func (c *Campaign) GameState() GameState {
	return c.gs
}

// Level returns the current level.
func (c *Campaign) Level() *Level {
	return c.level
}

// Encounter returns the running duel, or nil outside boss levels.
func (c *Campaign) Encounter() *boss.Encounter {
	return c.encounter
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
