package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/zombie-dash/internal/sim"
)

// Read calls fn for every record in the trace file at path, in order.
func Read(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return fmt.Errorf("trace: zstd reader: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		var r Record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			return fmt.Errorf("trace: %s line %d: %w", filepath.Base(path), line, err)
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("trace: %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Summary aggregates a trace.
type Summary struct {
	Records  int
	LastTick uint64
	Levels   []int
	Spawns   map[string]int
	Deaths   map[string]int
	Sounds   map[string]int
	Outcomes []string
}

// Summarize reads a trace and aggregates it.
func Summarize(path string) (Summary, error) {
	s := Summary{
		Spawns: make(map[string]int),
		Deaths: make(map[string]int),
		Sounds: make(map[string]int),
	}
	levels := make(map[int]bool)

	err := Read(path, func(r Record) error {
		s.Records++
		if r.Tick > s.LastTick {
			s.LastTick = r.Tick
		}
		switch r.Type {
		case string(sim.EventLevelStart):
			levels[r.Level] = true
		case string(sim.EventSpawn):
			s.Spawns[r.Kind]++
		case string(sim.EventDeath):
			s.Deaths[r.Kind]++
		case string(sim.EventSound):
			s.Sounds[r.Sound]++
		case string(sim.EventOutcome):
			s.Outcomes = append(s.Outcomes, r.Status)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	for l := range levels {
		s.Levels = append(s.Levels, l)
	}
	sort.Ints(s.Levels)
	return s, nil
}
