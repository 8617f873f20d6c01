// Package core provides fundamental types and utilities shared by the
// simulation, the level loader and the terminal front end.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Arena geometry. Every sprite occupies one cell.
const (
	CellWidth   = 16
	CellHeight  = 16
	ArenaCols   = 16
	ArenaRows   = 16
	ArenaWidth  = CellWidth * ArenaCols
	ArenaHeight = CellHeight * ArenaRows
)

// Vec is a position in continuous arena coordinates.
// The origin is the bottom-left corner; Y grows upward.
type Vec struct {
	X, Y float64
}

// CellVec returns the arena position of the bottom-left corner of a cell.
func CellVec(col, row int) Vec {
	return Vec{X: float64(col * CellWidth), Y: float64(row * CellHeight)}
}

// Add returns v translated by d.
func (v Vec) Add(d Vec) Vec {
	return Vec{X: v.X + d.X, Y: v.Y + d.Y}
}

// Center returns the sprite centre for a sprite anchored at v.
func (v Vec) Center() Vec {
	return Vec{X: v.X + CellWidth/2, Y: v.Y + CellHeight/2}
}

// Cell returns the column and row of the cell nearest to v.
func (v Vec) Cell() (int, int) {
	c := v.Center()
	return int(math.Floor(c.X / CellWidth)), int(math.Floor(c.Y / CellHeight))
}

// Overlaps reports whether two sprites anchored at a and b overlap.
// Exact edge adjacency is not an overlap.
func Overlaps(a, b Vec) bool {
	return math.Abs(a.X-b.X) < CellWidth && math.Abs(a.Y-b.Y) < CellHeight
}

// CenterDistance returns the Euclidean distance between sprite centres.
// Both sprites share the same size, so this equals the anchor distance.
func CenterDistance(a, b Vec) float64 {
	ca, cb := a.Center(), b.Center()
	return math.Hypot(ca.X-cb.X, ca.Y-cb.Y)
}

// Touching reports whether two sprites are close enough to interact.
func Touching(a, b Vec, radius float64) bool {
	return CenterDistance(a, b) < radius
}

// Direction is a facing direction.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Directions lists every direction in probe order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Delta maps a direction to an axis-aligned displacement of the given magnitude.
func (d Direction) Delta(magnitude float64) Vec {
	switch d {
	case DirRight:
		return Vec{X: magnitude}
	case DirLeft:
		return Vec{X: -magnitude}
	case DirUp:
		return Vec{Y: magnitude}
	case DirDown:
		return Vec{Y: -magnitude}
	default:
		return Vec{}
	}
}

// Rect represents an axis-aligned rectangle on the character screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
