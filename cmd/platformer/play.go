package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the campaign",
	Long: `Start the campaign, or another registered game by ID.

Controls:
  Ctrl+A/Ctrl+D  - Move left/right (also a/d and arrows)
  Ctrl+W/Space   - Jump
  Ctrl+S         - Pause
  Ctrl+Z         - Continue
  Ctrl+P         - Reload level
  Ctrl+B         - Reset game
  Ctrl+R         - Run the previewed level
  Arrows/Enter   - Move and collect on the boss grid, q forfeits
  Esc/Ctrl+C     - Quit

Difficulty options:
  easy    - Longer boss duels, more hearts from stomps
  normal  - Defaults
  hard    - Shorter boss duels, fewer hearts

Examples:
  platformer play
  platformer play --level 10
  platformer play --difficulty hard --seed 42
  platformer play --config ./my.yaml --watch --log-file play.log
  platformer play bossfight`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := platformer.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available games.")
		os.Exit(1)
	}

	if err := configureGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts, cleanup, err := modelOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), opts...)

	if store != nil {
		store.Close()
	}
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
