package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// ID identifies an actor for the lifetime of a level.
type ID uint64

// Actor is any entity occupying the arena.
type Actor interface {
	ID() ID
	Kind() Kind
	Caps() Caps
	Pos() core.Vec
	Dir() core.Direction
	Depth() int
	Alive() bool
	SetDead()
	// Act runs the actor's behaviour for one tick. Only called while alive.
	Act()
}

// base carries the state every actor shares. Concrete kinds embed it.
type base struct {
	id    ID
	kind  Kind
	caps  Caps
	pos   core.Vec
	dir   core.Direction
	dead  bool
	world *World
}

func newBase(w *World, k Kind, pos core.Vec, dir core.Direction) base {
	return base{
		id:    w.nextID(),
		kind:  k,
		caps:  CapsOf(k),
		pos:   pos,
		dir:   dir,
		world: w,
	}
}

func (b *base) ID() ID              { return b.id }
func (b *base) Kind() Kind          { return b.kind }
func (b *base) Caps() Caps          { return b.caps }
func (b *base) Pos() core.Vec       { return b.pos }
func (b *base) Dir() core.Direction { return b.dir }
func (b *base) Depth() int          { return kindDepth[b.kind] }
func (b *base) Alive() bool         { return !b.dead }

// SetDead marks the actor dead. Calling it again has no effect.
func (b *base) SetDead() {
	if b.dead {
		return
	}
	b.dead = true
	b.world.emit(Event{Type: EventDeath, Actor: b.id, Kind: b.kind, Pos: b.pos})
}

// View is a read-only projection of an actor for presentation.
type View struct {
	ID    ID
	Kind  Kind
	Pos   core.Vec
	Dir   core.Direction
	Depth int
}

func viewOf(a Actor) View {
	return View{ID: a.ID(), Kind: a.Kind(), Pos: a.Pos(), Dir: a.Dir(), Depth: a.Depth()}
}
