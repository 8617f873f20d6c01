// Package game drives the simulation one tick at a time for the platform
// layer. It keeps score and lives, reloads the level when the player dies,
// advances when a level is finished and renders the world into a core.Screen.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-dash/internal/config"
	"github.com/vovakirdan/zombie-dash/internal/core"
	"github.com/vovakirdan/zombie-dash/internal/level"
	"github.com/vovakirdan/zombie-dash/internal/sim"
)

// ID is the identifier used for score storage.
const ID = "zombiedash"

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomePlaying    Outcome = "playing"
	OutcomeGameOver   Outcome = "game_over"
	OutcomeWon        Outcome = "won"
	OutcomeLevelError Outcome = "level_error"
)

// Options configures a Game. Nil collaborators get defaults: the built-in
// levels, no sound and a discard logger.
type Options struct {
	Rules    config.Config
	Levels   sim.LevelSource
	Audio    sim.AudioSink
	Observer sim.Observer
	Logger   *log.Logger
}

// Game owns one run: a world, its ledger and the key queue feeding the player.
type Game struct {
	rules    config.Config
	levels   sim.LevelSource
	audio    sim.AudioSink
	observer sim.Observer
	log      *log.Logger

	cfg   core.RuntimeConfig
	world *sim.World
	tally *sim.Tally
	keys  keyQueue

	tick    uint64
	outcome Outcome
	paused  bool
	deaths  int
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	g := &Game{
		rules:    opts.Rules,
		levels:   opts.Levels,
		audio:    opts.Audio,
		observer: opts.Observer,
		log:      opts.Logger,
	}
	if g.levels == nil {
		g.levels = level.NewLoader(level.Builtin(), g.log)
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Zombie Dash" }

// Reset starts a new run from the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.tick = 0
	g.paused = false
	g.deaths = 0
	g.outcome = OutcomePlaying
	g.keys.reset()

	g.tally = sim.NewTally(g.rules.Game.Lives)
	g.world = sim.NewWorld(sim.Options{
		Rules:    g.rules,
		Levels:   g.levels,
		Input:    &g.keys,
		Audio:    g.audio,
		Ledger:   g.tally,
		Observer: g.observer,
		Logger:   g.log,
		Seed:     cfg.Seed,
	})
	g.log.Info("run started", "seed", cfg.Seed, "level", g.world.Level(), "lives", g.tally.Lives())
	g.load()
}

// load initializes the world's current level and records the result.
func (g *Game) load() {
	g.keys.reset()
	switch st := g.world.Init(); st {
	case sim.StatusContinue:
	case sim.StatusPlayerWon:
		g.finish(OutcomeWon)
	default:
		g.finish(OutcomeLevelError)
	}
}

func (g *Game) finish(o Outcome) {
	g.outcome = o
	g.log.Info("run ended", "outcome", o, "score", g.tally.Score(), "level", g.world.Level(), "ticks", g.tick)
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.Over() {
		g.Reset(g.cfg)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.Over() {
		return core.StepResult{State: g.State()}
	}

	g.keys.pushFrame(in)
	g.tick++

	switch st := g.world.Tick(); st {
	case sim.StatusContinue:
	case sim.StatusPlayerDied:
		g.deaths++
		if g.tally.Lives() > 0 {
			g.load()
		} else {
			g.finish(OutcomeGameOver)
		}
	case sim.StatusFinishedLevel:
		g.load()
	case sim.StatusPlayerWon:
		g.finish(OutcomeWon)
	default:
		g.finish(OutcomeLevelError)
	}

	return core.StepResult{State: g.State()}
}

// Over reports whether the run has ended.
func (g *Game) Over() bool {
	return g.outcome != OutcomePlaying
}

// Outcome returns how the run ended, or OutcomePlaying.
func (g *Game) Outcome() Outcome { return g.outcome }

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.tally.Score(),
		Level:    g.world.Level(),
		Lives:    g.tally.Lives(),
		GameOver: g.Over(),
		Won:      g.outcome == OutcomeWon,
		Paused:   g.paused,
	}
}

// World exposes the simulation for read-only inspection.
func (g *Game) World() *sim.World { return g.world }

// Ticks returns the number of ticks simulated in this run.
func (g *Game) Ticks() uint64 { return g.tick }

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.cfg.Seed }

// Deaths returns how many times the player died in this run.
func (g *Game) Deaths() int { return g.deaths }
