package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-dash/internal/core"
	"github.com/vovakirdan/zombie-dash/internal/platform/audio"
	"github.com/vovakirdan/zombie-dash/internal/platform/tui"
	"github.com/vovakirdan/zombie-dash/internal/storage"
)

var (
	flagSkipMenu bool
	flagVolume   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in this terminal.

Controls:
  WASD/Arrows  - Move
  Space/F      - Throw flames
  Tab/M        - Drop a landmine
  Enter/V      - Use a vaccine
  P/Esc        - Pause
  B            - Back to menu (paused or after game over)
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five lives, slow infection, quick landmine arming
  normal - Rules as configured
  hard   - Two lives, fast infection, more smart zombies
  fixed  - Rules exactly as configured, separate scoreboard

Examples:
  zombiedash play
  zombiedash play --difficulty hard --skip-menu
  zombiedash play --levels ./my-levels --volume 0
  zombiedash play --config ./my-rules.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start playing immediately")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 (muted) to 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	rules := loadRules()
	preset := loadPreset()

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sink, closeAudio := audio.Open(audio.Options{Volume: flagVolume, Logger: logger})
	defer closeAudio()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	setup := tui.Setup{
		Rules:  rules,
		Levels: newLevelLoader(logger),
		Audio:  sink,
		Store:  store,
		Logger: logger,
	}

	runErr := tui.Run(setup, cfg, preset, flagSkipMenu)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
