package sim

import (
	"errors"

	"github.com/vovakirdan/zombie-dash/internal/core"
)

// Errors a LevelSource reports. Wrap them to add context.
var (
	ErrLevelNotFound  = errors.New("sim: level not found")
	ErrLevelMalformed = errors.New("sim: level malformed")
)

// Placement puts one actor on a cell at level start.
type Placement struct {
	Kind     Kind
	Col, Row int
}

// LevelSource supplies the initial placements of a level.
type LevelSource interface {
	Level(n int) ([]Placement, error)
}

// Command is a logical player command.
type Command int

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandFire
	CommandMine
	CommandVaccine
)

// Direction returns the facing a movement command asks for.
func (c Command) Direction() core.Direction {
	switch c {
	case CommandUp:
		return core.DirUp
	case CommandDown:
		return core.DirDown
	case CommandLeft:
		return core.DirLeft
	default:
		return core.DirRight
	}
}

// KeySource hands the player at most one command per tick.
type KeySource interface {
	NextCommand() (Command, bool)
}

// Sound names a sound effect request.
type Sound int

const (
	SoundPlayerFire Sound = iota
	SoundPlayerDie
	SoundCitizenInfected
	SoundCitizenDie
	SoundCitizenSaved
	SoundZombieDie
	SoundZombieVomit
	SoundZombieBorn
	SoundGotGoodie
	SoundLandmineExplode
	SoundLevelFinished
)

var soundNames = [...]string{
	SoundPlayerFire:      "player_fire",
	SoundPlayerDie:       "player_die",
	SoundCitizenInfected: "citizen_infected",
	SoundCitizenDie:      "citizen_die",
	SoundCitizenSaved:    "citizen_saved",
	SoundZombieDie:       "zombie_die",
	SoundZombieVomit:     "zombie_vomit",
	SoundZombieBorn:      "zombie_born",
	SoundGotGoodie:       "got_goodie",
	SoundLandmineExplode: "landmine_explode",
	SoundLevelFinished:   "level_finished",
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// Sounds lists every sound request the simulation can make.
func Sounds() []Sound {
	out := make([]Sound, len(soundNames))
	for i := range out {
		out[i] = Sound(i)
	}
	return out
}

// AudioSink plays sound effects. Requests are fire-and-forget.
type AudioSink interface {
	PlaySound(Sound)
}

// Ledger keeps score and lives.
type Ledger interface {
	IncreaseScore(delta int)
	DecLives()
	Score() int
	Lives() int
}

// Tally is the in-memory Ledger.
type Tally struct {
	score int
	lives int
}

// NewTally creates a ledger with the given number of lives.
func NewTally(lives int) *Tally {
	return &Tally{lives: lives}
}

func (t *Tally) IncreaseScore(delta int) { t.score += delta }
func (t *Tally) DecLives()               { t.lives-- }
func (t *Tally) Score() int              { return t.score }
func (t *Tally) Lives() int              { return t.lives }

type noInput struct{}

func (noInput) NextCommand() (Command, bool) { return 0, false }

type silence struct{}

func (silence) PlaySound(Sound) {}
