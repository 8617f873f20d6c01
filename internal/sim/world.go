package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-dash/internal/config"
	"github.com/vovakirdan/zombie-dash/internal/core"
)

// Status is the outcome of Init or Tick.
type Status int

const (
	StatusContinue Status = iota
	StatusPlayerDied
	StatusFinishedLevel
	StatusLevelError
	StatusPlayerWon
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusPlayerDied:
		return "player_died"
	case StatusFinishedLevel:
		return "finished_level"
	case StatusLevelError:
		return "level_error"
	case StatusPlayerWon:
		return "player_won"
	default:
		return "unknown"
	}
}

// Options configures a World. Nil collaborators get quiet defaults.
type Options struct {
	Rules    config.Config
	Levels   LevelSource
	Input    KeySource
	Audio    AudioSink
	Ledger   Ledger
	Observer Observer
	Logger   *log.Logger
	Seed     int64
	Level    int // first level to load; defaults to Rules.Game.StartLevel
}

// World owns the actor population of one level at a time and drives ticks.
type World struct {
	rules    config.Config
	levels   LevelSource
	input    KeySource
	audio    AudioSink
	ledger   Ledger
	observer Observer
	log      *log.Logger
	rng      *rand.Rand

	actors []Actor
	player *Player
	lastID ID

	level    int
	tick     uint64
	citizens int
	finished bool
	status   string
}

// NewWorld creates a world. Call Init to load the first level.
func NewWorld(opts Options) *World {
	w := &World{
		rules:    opts.Rules,
		levels:   opts.Levels,
		input:    opts.Input,
		audio:    opts.Audio,
		ledger:   opts.Ledger,
		observer: opts.Observer,
		log:      opts.Logger,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		level:    opts.Level,
	}
	if w.input == nil {
		w.input = noInput{}
	}
	if w.audio == nil {
		w.audio = silence{}
	}
	if w.ledger == nil {
		w.ledger = NewTally(w.rules.Game.Lives)
	}
	if w.log == nil {
		w.log = log.New(io.Discard)
	}
	if w.level <= 0 {
		w.level = w.rules.Game.StartLevel
	}
	return w
}

// Init loads the current level. A missing level means every level has been
// cleared; a malformed one is reported as a level error.
func (w *World) Init() Status {
	w.CleanUp()
	w.citizens = 0
	w.finished = false

	if w.level >= w.rules.Game.FinalLevel {
		return w.outcome(StatusPlayerWon)
	}
	if w.levels == nil {
		w.log.Error("no level source configured")
		return w.outcome(StatusLevelError)
	}

	placements, err := w.levels.Level(w.level)
	switch {
	case errors.Is(err, ErrLevelNotFound):
		w.log.Info("no more levels", "level", w.level)
		return w.outcome(StatusPlayerWon)
	case err != nil:
		w.log.Error("level load failed", "level", w.level, "err", err)
		return w.outcome(StatusLevelError)
	}
	if err := w.populate(placements); err != nil {
		w.CleanUp()
		w.log.Error("level rejected", "level", w.level, "err", err)
		return w.outcome(StatusLevelError)
	}

	w.status = w.statusLine()
	w.log.Info("level loaded", "level", w.level, "actors", len(w.actors), "citizens", w.citizens)
	w.emit(Event{Type: EventLevelStart})
	return StatusContinue
}

func (w *World) populate(placements []Placement) error {
	for _, p := range placements {
		pos := core.CellVec(p.Col, p.Row)
		switch {
		case p.Kind == KindPlayer:
			if w.player != nil {
				return fmt.Errorf("sim: second player at (%d,%d): %w", p.Col, p.Row, ErrLevelMalformed)
			}
			w.player = newPlayer(w, pos)
			w.actors = append([]Actor{w.player}, w.actors...)
			w.emit(Event{Type: EventSpawn, Actor: w.player.id, Kind: KindPlayer, Pos: pos})
		case p.Kind == KindCitizen:
			w.citizens++
			w.add(newCitizen(w, pos))
		case p.Kind.IsZombie():
			w.add(newZombie(w, p.Kind, pos))
		case p.Kind.IsGoodie():
			w.add(newGoodie(w, p.Kind, pos))
		case p.Kind == KindLandmine:
			w.add(newLandmine(w, pos))
		case p.Kind == KindPit, p.Kind == KindExit, p.Kind == KindWall:
			w.add(newFixture(w, p.Kind, pos))
		default:
			return fmt.Errorf("sim: %s cannot be placed: %w", p.Kind, ErrLevelMalformed)
		}
	}
	if w.player == nil {
		return fmt.Errorf("sim: no player: %w", ErrLevelMalformed)
	}
	return nil
}

// Tick gives every live actor one turn. Actors spawned during the tick are
// appended and get their turn later in the same tick. The tick stops early
// as soon as the player dies or the level is finished.
func (w *World) Tick() Status {
	if w.player == nil {
		return StatusLevelError
	}
	w.tick++

	for i := 0; i < len(w.actors); i++ {
		a := w.actors[i]
		if !a.Alive() {
			continue
		}
		a.Act()

		if !w.player.Alive() {
			w.log.Info("player died", "level", w.level, "tick", w.tick)
			return w.outcome(StatusPlayerDied)
		}
		if w.finished {
			w.finished = false
			w.log.Info("level finished", "level", w.level, "tick", w.tick)
			w.level++
			w.playSound(SoundLevelFinished)
			return w.outcome(StatusFinishedLevel)
		}
	}

	w.sweep()
	w.status = w.statusLine()
	return StatusContinue
}

// CleanUp frees the population.
func (w *World) CleanUp() {
	clear(w.actors)
	w.actors = w.actors[:0]
	w.player = nil
}

func (w *World) outcome(s Status) Status {
	w.emit(Event{Type: EventOutcome, Status: s})
	return s
}

func (w *World) nextID() ID {
	w.lastID++
	return w.lastID
}

func (w *World) add(a Actor) {
	w.actors = append(w.actors, a)
	w.emit(Event{Type: EventSpawn, Actor: a.ID(), Kind: a.Kind(), Pos: a.Pos()})
}

// sweep drops dead actors, keeping the survivors in order.
func (w *World) sweep() {
	live := w.actors[:0]
	for _, a := range w.actors {
		if a.Alive() {
			live = append(live, a)
		}
	}
	clear(w.actors[len(live):])
	w.actors = live
}

func (w *World) recordCitizenGone() {
	w.citizens--
}

func (w *World) recordLevelFinishedIfAllCitizensGone() {
	if w.citizens <= 0 {
		w.finished = true
	}
}

// randInt returns a uniform integer in [min, max].
func (w *World) randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + w.rng.Intn(max-min+1)
}

func (w *World) randDirection() core.Direction {
	return core.Directions[w.randInt(0, len(core.Directions)-1)]
}

// Level returns the current level number.
func (w *World) Level() int { return w.level }

// SetLevel chooses the level the next Init loads.
func (w *World) SetLevel(n int) { w.level = n }

// Ticks returns the number of ticks run so far.
func (w *World) Ticks() uint64 { return w.tick }

// Player returns the player of the loaded level, or nil.
func (w *World) Player() *Player { return w.player }

// CitizensLeft returns how many citizens are still on the level.
func (w *World) CitizensLeft() int { return w.citizens }

// Ledger returns the score and lives keeper.
func (w *World) Ledger() Ledger { return w.ledger }

// StatusText returns the status line computed at the end of the last tick.
func (w *World) StatusText() string { return w.status }

// Views returns a projection of every live actor.
func (w *World) Views() []View {
	out := make([]View, 0, len(w.actors))
	for _, a := range w.actors {
		if a.Alive() {
			out = append(out, viewOf(a))
		}
	}
	return out
}

func (w *World) statusLine() string {
	score := w.ledger.Score()
	scoreText := fmt.Sprintf("%06d", score)
	if score < 0 {
		scoreText = fmt.Sprintf("-%05d", -score)
	}

	var vaccines, flames, mines, infection int
	if w.player != nil {
		vaccines, flames, mines = w.player.vaccines, w.player.flames, w.player.mines
		infection = w.player.infection
	}
	return fmt.Sprintf("Score: %s  Level: %d  Lives: %d  Vacc: %d  Flames: %d  Mines: %d  Infected: %d",
		scoreText, w.level, w.ledger.Lives(), vaccines, flames, mines, infection)
}
