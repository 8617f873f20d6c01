package level

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-dash/internal/level/formats"
	"github.com/vovakirdan/zombie-dash/internal/sim"
)

//go:embed builtin/*.txt builtin/*.yaml
var builtin embed.FS

// Builtin returns the levels shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "builtin")
	if err != nil {
		panic(err)
	}
	return sub
}

var fileName = regexp.MustCompile(`^level(\d{2,})\.(txt|ya?ml)$`)

// Loader reads numbered level files (level01.txt, level02.yaml, ...) from a
// file system. It implements sim.LevelSource.
type Loader struct {
	fsys fs.FS
	log  *log.Logger
}

// NewLoader creates a loader over fsys. A nil logger discards output.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{fsys: fsys, log: logger}
}

// NewDirLoader loads levels from a directory, falling back to the built-in
// levels when root is empty.
func NewDirLoader(root string, logger *log.Logger) *Loader {
	if root == "" {
		return NewLoader(Builtin(), logger)
	}
	return NewLoader(os.DirFS(root), logger)
}

// Level implements sim.LevelSource.
func (l *Loader) Level(n int) ([]sim.Placement, error) {
	lvl, err := l.Load(n)
	if err != nil {
		return nil, err
	}
	return lvl.Placements(), nil
}

// Load finds and validates level n. Missing files wrap sim.ErrLevelNotFound;
// unreadable or invalid content wraps sim.ErrLevelMalformed.
func (l *Loader) Load(n int) (Level, error) {
	for _, ext := range formats.FormatExtensions() {
		name := fmt.Sprintf("level%02d%s", n, ext)
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Level{}, fmt.Errorf("level: reading %s: %w: %w", name, sim.ErrLevelMalformed, err)
		}
		lvl, err := l.parse(name, data)
		if err != nil {
			l.log.Warn("invalid level", "file", name, "err", err)
			return Level{}, err
		}
		lvl.Number = n
		l.log.Debug("level read", "file", name, "id", lvl.ID)
		return lvl, nil
	}
	return Level{}, fmt.Errorf("level: level%02d: %w", n, sim.ErrLevelNotFound)
}

func (l *Loader) parse(name string, data []byte) (Level, error) {
	doc, err := formats.Parse(name, data)
	if err != nil {
		return Level{}, fmt.Errorf("level: parsing %s: %w: %w", name, sim.ErrLevelMalformed, err)
	}
	lvl, err := fromDocument(doc)
	if err != nil {
		return Level{}, fmt.Errorf("level: %s: %w: %w", name, sim.ErrLevelMalformed, err)
	}
	lvl.FilePath = name
	return lvl, nil
}

// Entry is one numbered level file found by Scan.
type Entry struct {
	Number int
	File   string
	Level  Level
	Err    error
}

// Scan lists every numbered level file in order, loading each one. Invalid
// files are reported through Entry.Err rather than aborting the scan.
func (l *Loader) Scan() ([]Entry, error) {
	var entries []Entry
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." {
				return fs.SkipDir
			}
			return nil
		}
		m := fileName.FindStringSubmatch(d.Name())
		if m == nil {
			return nil
		}
		n, _ := strconv.Atoi(m[1])
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			entries = append(entries, Entry{Number: n, File: p, Err: err})
			return nil
		}
		lvl, err := l.parse(path.Base(p), data)
		lvl.Number = n
		entries = append(entries, Entry{Number: n, File: p, Level: lvl, Err: err})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: scanning: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Number != entries[j].Number {
			return entries[i].Number < entries[j].Number
		}
		return entries[i].File < entries[j].File
	})
	return entries, nil
}
