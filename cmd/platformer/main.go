// platformer is a terminal platformer: run, jump, stomp and deliver the
// drinks, with a boss duel every tenth level.
//
// Usage:
//
//	platformer list              - List available games
//	platformer play [game]       - Play the campaign (or the standalone boss duel)
//	platformer menu              - Start menu to pick games interactively
//	platformer serve             - Start SSH server for remote play
//	platformer scores            - Show finished runs and the boss record
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 20)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - a side-scroller in your terminal",
	Long: `Platformer is a real-time terminal platformer. Cross each level,
stomp the patrols, avoid lava and planes, and reach the goal. Every tenth
level is a boss duel on a 3x3 grid; win it to run faster for the next levels.

Available commands:
  list     - Show all available games
  play     - Start the campaign directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View run history and boss record

Examples:
  platformer play
  platformer play --level 10 --difficulty hard
  platformer play bossfight
  platformer serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to history database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
