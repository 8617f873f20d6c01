package game

import (
	"github.com/vovakirdan/zombie-dash/internal/core"
	"github.com/vovakirdan/zombie-dash/internal/sim"
)

// maxQueued bounds the key queue so held keys do not lag behind the player.
const maxQueued = 4

// actionCommands lists the actions the player responds to, in the order
// they are queued when several arrive in one frame.
var actionCommands = []struct {
	action  core.Action
	command sim.Command
}{
	{core.ActionUp, sim.CommandUp},
	{core.ActionDown, sim.CommandDown},
	{core.ActionLeft, sim.CommandLeft},
	{core.ActionRight, sim.CommandRight},
	{core.ActionFire, sim.CommandFire},
	{core.ActionMine, sim.CommandMine},
	{core.ActionVaccine, sim.CommandVaccine},
}

// keyQueue implements sim.KeySource over platform input frames.
type keyQueue struct {
	cmds []sim.Command
}

func (q *keyQueue) pushFrame(in core.InputFrame) {
	for _, ac := range actionCommands {
		if in.Has(ac.action) {
			q.push(ac.command)
		}
	}
}

func (q *keyQueue) push(c sim.Command) {
	if len(q.cmds) >= maxQueued {
		return
	}
	q.cmds = append(q.cmds, c)
}

func (q *keyQueue) reset() {
	q.cmds = q.cmds[:0]
}

// NextCommand implements sim.KeySource.
func (q *keyQueue) NextCommand() (sim.Command, bool) {
	if len(q.cmds) == 0 {
		return 0, false
	}
	c := q.cmds[0]
	q.cmds = q.cmds[1:]
	return c, true
}
