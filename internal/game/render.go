package game

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/zombie-dash/internal/core"
	"github.com/vovakirdan/zombie-dash/internal/sim"
)

// Each arena cell is drawn two characters wide so the arena looks square.
const cellChars = 2

// ArenaWidth and ArenaHeight are the screen size of the framed arena.
const (
	ArenaWidth  = core.ArenaCols*cellChars + 2
	ArenaHeight = core.ArenaRows + 2
)

type glyph struct {
	text  string
	color core.Color
}

var glyphs = map[sim.Kind]glyph{
	sim.KindPlayer:         {"@@", core.ColorBrightWhite},
	sim.KindCitizen:        {"cc", core.ColorBrightCyan},
	sim.KindDumbZombie:     {"zz", core.ColorGreen},
	sim.KindSmartZombie:    {"ZZ", core.ColorBrightGreen},
	sim.KindVaccineGoodie:  {"+v", core.ColorBrightBlue},
	sim.KindGasCanGoodie:   {"+g", core.ColorOrange},
	sim.KindLandmineGoodie: {"+l", core.ColorYellow},
	sim.KindFlame:          {"^^", core.ColorBrightRed},
	sim.KindVomit:          {"~~", core.ColorMagenta},
	sim.KindLandmine:       {"**", core.ColorRed},
	sim.KindPit:            {"()", core.ColorGray},
	sim.KindExit:           {"[]", core.ColorBrightYellow},
	sim.KindWall:           {"██", core.ColorWhite},
}

// Render draws the status line, the arena and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	dst.DrawText(0, 0, g.world.StatusText())

	ox := (dst.Width() - ArenaWidth) / 2
	if ox < 0 {
		ox = 0
	}
	oy := 1
	dst.DrawBox(core.NewRect(ox, oy, ArenaWidth, ArenaHeight), core.ColorGray)
	g.renderActors(dst, ox+1, oy+1)

	switch g.outcome {
	case OutcomeWon:
		renderOverlay(dst, "You survived!", fmt.Sprintf("Final Score: %d", g.tally.Score()))
	case OutcomeGameOver:
		renderOverlay(dst, "Game Over", "Press R to restart")
	case OutcomeLevelError:
		renderOverlay(dst, fmt.Sprintf("Level %d is broken", g.world.Level()), "Press R to restart")
	default:
		if g.paused {
			renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

// renderActors draws deeper actors first so shallower ones end up on top.
// Arena rows grow upwards while screen rows grow downwards.
func (g *Game) renderActors(dst *core.Screen, ox, oy int) {
	views := g.world.Views()
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Depth > views[j].Depth
	})

	for _, v := range views {
		gl, ok := glyphs[v.Kind]
		if !ok {
			continue
		}
		col, row := v.Pos.Cell()
		if col < 0 || col >= core.ArenaCols || row < 0 || row >= core.ArenaRows {
			continue
		}
		x := ox + col*cellChars
		y := oy + core.ArenaRows - 1 - row
		dst.DrawTextColor(x, y, gl.text, gl.color)
	}
}

func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	height := 5
	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2

	for yy := y + 1; yy < y+height-1; yy++ {
		for xx := x + 1; xx < x+width-1; xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(core.NewRect(x, y, width, height), core.ColorBrightWhite)
	dst.DrawTextCentered(y+1, line1)
	dst.DrawTextCentered(y+3, line2)
}
