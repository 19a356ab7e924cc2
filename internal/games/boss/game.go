package boss

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry id of the standalone duel.
const GameID = "bossfight"

// Minimum surface for the duel screen.
const (
	MinScreenW = 60
	MinScreenH = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game wraps a single Encounter as a registry game, for practising the duel
// outside the campaign. Run restarts it once it is over.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       Config
	rng       *rand.Rand
	encounter *Encounter
	reported  bool

	screenTooSmall bool
}

// New creates a standalone duel.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Boss Fight"
}

// Reset loads the config and starts a new duel.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = ConfigFrom(cfg.Boss)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	g.encounter = NewEncounter(g.cfg, g.rng)
	g.reported = false
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

func (g *Game) tick() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Step advances the duel by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if _, over := g.encounter.Result(); over {
		if in.Has(core.ActionRun) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	res, over := g.encounter.Step(in, g.tick())
	out := core.StepResult{State: g.State()}
	if over && !g.reported {
		g.reported = true
		out.Events = append(out.Events, res.Event(0))
	}
	return out
}

// Render draws the duel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	dst.Apply(g.encounter.DrawList())
	if _, over := g.encounter.Result(); over {
		dst.DrawTextCentered(dst.Height()-1, "Press R to fight again")
	}
}

// State reports the player's marks as the score.
func (g *Game) State() core.GameState {
	if g.encounter == nil {
		return core.GameState{}
	}
	player, _ := g.encounter.Counts()
	_, over := g.encounter.Result()
	return core.GameState{Score: player, GameOver: over}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
