package level

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/zombie-dash/internal/sim"
)

func arena(inner ...string) string {
	rows := []string{strings.Repeat("#", 16)}
	for _, r := range inner {
		rows = append(rows, "#"+r+"#")
	}
	for len(rows) < 15 {
		rows = append(rows, "#"+strings.Repeat(".", 14)+"#")
	}
	rows = append(rows, strings.Repeat("#", 16))
	return strings.Join(rows, "\n")
}

func TestLoadClassifiesErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"level01.txt": {Data: []byte(arena("@.............", "..C.......X..."))},
		"level02.txt": {Data: []byte(arena("..............", "..C.......X..."))},
		"level03.txt": {Data: []byte(arena("@....?........"))},
		"level04.txt": {Data: []byte("####\n#@.#\n####\n")},
		"level05.txt": {Data: []byte(strings.Replace(arena("@............."), "#", ".", 1))},
		"level06.txt": {Data: []byte(arena("@......@......"))},
	}
	loader := NewLoader(fsys, nil)

	tests := []struct {
		n        int
		expected error
	}{
		{1, nil},
		{2, sim.ErrLevelMalformed}, // no player
		{3, sim.ErrLevelMalformed}, // unknown glyph
		{4, sim.ErrLevelMalformed}, // wrong size
		{5, sim.ErrLevelMalformed}, // hole in the border
		{6, sim.ErrLevelMalformed}, // two players
		{7, sim.ErrLevelNotFound},
	}

	for _, tc := range tests {
		_, err := loader.Level(tc.n)
		switch {
		case tc.expected == nil && err != nil:
			t.Errorf("Level(%d) error = %v, expected none", tc.n, err)
		case tc.expected != nil && !errors.Is(err, tc.expected):
			t.Errorf("Level(%d) error = %v, expected %v", tc.n, err, tc.expected)
		}
	}
}

func TestPlacementsFlipRows(t *testing.T) {
	fsys := fstest.MapFS{
		"level01.txt": {Data: []byte(arena("@.............", "..C.......X..."))},
	}
	lvl, err := NewLoader(fsys, nil).Load(1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	find := func(k sim.Kind) sim.Placement {
		for _, p := range lvl.Placements() {
			if p.Kind == k {
				return p
			}
		}
		t.Fatalf("no %s placed", k)
		return sim.Placement{}
	}

	// File row 2 is the second row from the top of a 16-row arena.
	if p := find(sim.KindPlayer); p.Col != 1 || p.Row != 14 {
		t.Errorf("player at (%d,%d), expected (1,14)", p.Col, p.Row)
	}
	if p := find(sim.KindExit); p.Col != 11 || p.Row != 13 {
		t.Errorf("exit at (%d,%d), expected (11,13)", p.Col, p.Row)
	}
	counts := lvl.Counts()
	if counts[sim.KindWall] != 60 {
		t.Errorf("walls = %d, expected 60", counts[sim.KindWall])
	}
	if counts[sim.KindCitizen] != 1 {
		t.Errorf("citizens = %d, expected 1", counts[sim.KindCitizen])
	}
}

func TestYAMLPreferredOverText(t *testing.T) {
	rows := strings.Split(arena("@.............", "......S......."), "\n")
	var doc strings.Builder
	doc.WriteString("id: hunt\nname: The Hunt\nrows:\n")
	for _, r := range rows {
		doc.WriteString("  - \"" + r + "\"\n")
	}
	fsys := fstest.MapFS{
		"level01.yaml": {Data: []byte(doc.String())},
		"level01.txt":     {Data: []byte(arena("@............."))},
	}

	lvl, err := NewLoader(fsys, nil).Load(1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lvl.Name != "The Hunt" {
		t.Errorf("Name = %q, expected the YAML level", lvl.Name)
	}
	if lvl.Counts()[sim.KindSmartZombie] != 1 {
		t.Error("expected the smart zombie from the YAML level")
	}
}

func TestScan(t *testing.T) {
	fsys := fstest.MapFS{
		"level02.txt":     {Data: []byte(arena("@............."))},
		"level01.txt":     {Data: []byte(arena("@............."))},
		"level03.txt":     {Data: []byte("broken")},
		"notes.txt":       {Data: []byte("ignored")},
		"sub/level09.txt": {Data: []byte(arena("@............."))},
	}

	entries, err := NewLoader(fsys, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Scan() found %d entries, expected 3", len(entries))
	}
	for i, want := range []int{1, 2, 3} {
		if entries[i].Number != want {
			t.Errorf("entries[%d].Number = %d, expected %d", i, entries[i].Number, want)
		}
	}
	if entries[2].Err == nil {
		t.Error("broken level should carry an error")
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	entries, err := NewLoader(Builtin(), nil).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no built-in levels")
	}
	for i, e := range entries {
		if e.Err != nil {
			t.Errorf("%s: %v", e.File, e.Err)
		}
		if e.Number != i+1 {
			t.Errorf("built-in levels should be numbered without gaps, got %d at %d", e.Number, i)
		}
	}
}

func TestNewDirLoaderDefaultsToBuiltin(t *testing.T) {
	if _, err := NewDirLoader("", nil).Level(1); err != nil {
		t.Errorf("built-in level 1: %v", err)
	}
	if _, err := NewDirLoader(t.TempDir(), nil).Level(1); !errors.Is(err, sim.ErrLevelNotFound) {
		t.Errorf("empty directory error = %v, expected not found", err)
	}
}
