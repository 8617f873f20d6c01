package core

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected bool
	}{
		{"same cell", Vec{32, 32}, Vec{32, 32}, true},
		{"one cell apart horizontally", Vec{32, 32}, Vec{48, 32}, false},
		{"one cell apart vertically", Vec{32, 32}, Vec{32, 48}, false},
		{"just under a cell on both axes", Vec{32, 32}, Vec{47.5, 47.5}, true},
		{"diagonal neighbour", Vec{32, 32}, Vec{48, 48}, false},
		{"half cell offset", Vec{32, 32}, Vec{40, 24}, true},
		{"far apart", Vec{0, 0}, Vec{200, 200}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenterDistance(t *testing.T) {
	tests := []struct {
		a, b     Vec
		expected float64
	}{
		{Vec{0, 0}, Vec{0, 0}, 0},
		{Vec{0, 0}, Vec{16, 0}, 16},
		{Vec{0, 0}, Vec{30, 40}, 50},
		{Vec{10, 10}, Vec{10, 2}, 8},
	}

	for _, tc := range tests {
		got := CenterDistance(tc.a, tc.b)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("CenterDistance(%v, %v) = %f, expected %f", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestTouching(t *testing.T) {
	if !Touching(Vec{0, 0}, Vec{9.9, 0}, 10) {
		t.Error("sprites 9.9 apart should touch with radius 10")
	}
	if Touching(Vec{0, 0}, Vec{10, 0}, 10) {
		t.Error("sprites exactly 10 apart should not touch with radius 10")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Vec
	}{
		{DirUp, Vec{0, 4}},
		{DirDown, Vec{0, -4}},
		{DirLeft, Vec{-4, 0}},
		{DirRight, Vec{4, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(4); got != tc.expected {
				t.Errorf("Delta(4) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecCell(t *testing.T) {
	tests := []struct {
		v        Vec
		col, row int
	}{
		{CellVec(3, 5), 3, 5},
		{Vec{52, 80}, 3, 5},
		{Vec{56, 80}, 4, 5},
		{Vec{0, 0}, 0, 0},
	}

	for _, tc := range tests {
		col, row := tc.v.Cell()
		if col != tc.col || row != tc.row {
			t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tc.v, col, row, tc.col, tc.row)
		}
	}
}
