package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// EventType classifies a simulation event.
type EventType string

const (
	EventLevelStart EventType = "level_start"
	EventSpawn      EventType = "spawn"
	EventDeath      EventType = "death"
	EventSound      EventType = "sound"
	EventOutcome    EventType = "outcome"
)

// Event is a notable change in the world, reported to the Observer.
type Event struct {
	Tick   uint64
	Type   EventType
	Actor  ID
	Kind   Kind
	Pos    core.Vec
	Sound  Sound
	Status Status
	Level  int
}

// Observer receives every event as it happens.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

func (w *World) emit(e Event) {
	if w.observer == nil {
		return
	}
	e.Tick = w.tick
	if e.Level == 0 {
		e.Level = w.level
	}
	w.observer.Observe(e)
}

func (w *World) playSound(s Sound) {
	w.audio.PlaySound(s)
	w.emit(Event{Type: EventSound, Sound: s})
}
