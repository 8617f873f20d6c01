// Package level turns level files into the initial placements the
// simulation starts from. It depends on sim but sim does not depend on it.
package level

import (
	"fmt"

	"github.com/vovakirdan/zombie-dash/internal/core"
	"github.com/vovakirdan/zombie-dash/internal/level/formats"
	"github.com/vovakirdan/zombie-dash/internal/sim"
)

// Glyphs maps level file characters to the actor placed on that cell.
var Glyphs = map[rune]sim.Kind{
	'#': sim.KindWall,
	'@': sim.KindPlayer,
	'D': sim.KindDumbZombie,
	'S': sim.KindSmartZombie,
	'C': sim.KindCitizen,
	'X': sim.KindExit,
	'O': sim.KindPit,
	'V': sim.KindVaccineGoodie,
	'G': sim.KindGasCanGoodie,
	'L': sim.KindLandmineGoodie,
}

func isEmpty(r rune) bool { return r == '.' || r == ' ' }

// Level is a validated level.
type Level struct {
	Number   int
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// Counts tallies the actors of each kind placed by the level.
func (l Level) Counts() map[sim.Kind]int {
	out := make(map[sim.Kind]int)
	for _, p := range l.Placements() {
		out[p.Kind]++
	}
	return out
}

// Placements converts the grid into placements. The first file row is the
// top of the arena.
func (l Level) Placements() []sim.Placement {
	var out []sim.Placement
	for r, row := range l.Rows {
		arenaRow := len(l.Rows) - 1 - r
		for col, ch := range []rune(row) {
			if kind, ok := Glyphs[ch]; ok {
				out = append(out, sim.Placement{Kind: kind, Col: col, Row: arenaRow})
			}
		}
	}
	return out
}

// fromDocument validates a parsed document: a full arena grid, known glyphs,
// exactly one player and an unbroken wall around the edge.
func fromDocument(doc formats.Level) (Level, error) {
	if len(doc.Rows) != core.ArenaRows {
		return Level{}, fmt.Errorf("expected %d rows, got %d", core.ArenaRows, len(doc.Rows))
	}

	players := 0
	for r, row := range doc.Rows {
		cells := []rune(row)
		if len(cells) != core.ArenaCols {
			return Level{}, fmt.Errorf("row %d: expected %d columns, got %d", r+1, core.ArenaCols, len(cells))
		}
		for c, ch := range cells {
			kind, known := Glyphs[ch]
			if !known && !isEmpty(ch) {
				return Level{}, fmt.Errorf("row %d col %d: unknown glyph %q", r+1, c+1, ch)
			}
			edge := r == 0 || c == 0 || r == core.ArenaRows-1 || c == core.ArenaCols-1
			if edge && kind != sim.KindWall {
				return Level{}, fmt.Errorf("row %d col %d: border must be wall", r+1, c+1)
			}
			if known && kind == sim.KindPlayer {
				players++
			}
		}
	}
	if players != 1 {
		return Level{}, fmt.Errorf("expected exactly one player, got %d", players)
	}

	return Level{ID: doc.ID, Name: doc.Name, Rows: doc.Rows, Metadata: doc.Metadata}, nil
}
