// cplxtris is a falling-block puzzle whose pieces live on the complex plane.
//
// Usage:
//
//	cplxtris list               - List game modes
//	cplxtris play <mode>        - Play a mode (tetris or tetris_complex)
//	cplxtris menu               - Pick a mode interactively
//	cplxtris scores <mode>      - Show high scores for a mode
//	cplxtris visualize [func]   - Plot a complex function
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--db <path>           - Set SQLite path (default: ~/.cplxtris/scores.db)
//	--scores <backend>    - Score backend: sqlite or redis
//	--redis-addr <addr>   - Redis address for --scores redis
//	--config <path>       - Custom YAML configuration
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/cplxtris/internal/games/cplxtris" // register modes
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScores     string
	flagRedisAddr  string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cplxtris",
	Short: "Tetris on the complex plane",
	Long: `cplxtris is a falling-block puzzle for the terminal. Every piece is four
complex numbers; rotating a piece multiplies them by i, and the complex mode
lets you apply z², eᶻ or 1/z instead.

Available commands:
  list       - Show the game modes
  play       - Play a mode directly
  menu       - Interactive mode picker
  scores     - View high scores
  visualize  - Plot a complex function

Examples:
  cplxtris play tetris
  cplxtris play tetris_complex --difficulty hard
  cplxtris menu --scores redis --redis-addr localhost:6379
  cplxtris visualize exp`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogger(flagLogLevel)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.cplxtris/scores.db", "Path to the SQLite scores database")
	pf.StringVar(&flagScores, "scores", backendSQLite, "Score backend: sqlite or redis")
	pf.StringVar(&flagRedisAddr, "redis-addr", "localhost:6379", "Redis address used with --scores redis")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom tetris.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(visualizeCmd)
}
