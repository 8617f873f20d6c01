// zombiedash is a terminal rendition of a tick-driven zombie survival game.
//
// Usage:
//
//	zombiedash play          - Play with the menu (or straight away with --skip-menu)
//	zombiedash sim           - Run the simulation headless
//	zombiedash levels        - List and validate level files
//	zombiedash scores        - Show high scores and recent runs
//	zombiedash serve         - Start SSH server for remote play
//	zombiedash trace <file>  - Summarize a recorded event trace
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 20)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.zombiedash/scores.db)
//	--config <path>      - Custom rules YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>       - Directory of level files (default: built-in levels)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-dash/internal/config"
	"github.com/vovakirdan/zombie-dash/internal/level"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombiedash",
	Short: "Zombie Dash - rescue citizens from the undead in your terminal",
	Long: `Zombie Dash is a terminal game: lead every citizen to the exit before
the zombies get them, then leave yourself.

Available commands:
  play     - Play the game
  sim      - Run the simulation without a terminal UI
  levels   - List and validate level files
  scores   - View high scores and run history
  serve    - Start SSH server for remote play
  trace    - Summarize a recorded event trace

Examples:
  zombiedash play
  zombiedash play --difficulty hard --skip-menu
  zombiedash sim --ticks 2000 --seed 42 --trace run.jsonl.zst
  zombiedash levels --levels ./levels
  zombiedash serve --ssh :2222
  zombiedash scores --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.zombiedash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (empty = built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(traceCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "zombiedash",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, closer
}

// loadRules loads the rule set named by --config. Errors are fatal.
func loadRules() config.Config {
	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return rules
}

// loadPreset parses --difficulty. Unknown names fall back to normal.
func loadPreset() config.DifficultyPreset {
	preset := config.ParsePreset(flagDifficulty)
	if string(preset) != flagDifficulty {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using %s\n", flagDifficulty, preset)
	}
	return preset
}

func newLevelLoader(logger *log.Logger) *level.Loader {
	return level.NewDirLoader(flagLevels, logger)
}
