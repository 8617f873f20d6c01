// Package trace records simulation events as zstd-compressed JSON lines and
// reads them back for inspection.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/zombie-dash/internal/sim"
)

// Ext is the conventional trace file extension.
const Ext = ".jsonl.zst"

// Record is one line of a trace file.
type Record struct {
	Tick   uint64  `json:"tick"`
	Level  int     `json:"level"`
	Type   string  `json:"type"`
	Actor  uint64  `json:"actor,omitempty"`
	Kind   string  `json:"kind,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Sound  string  `json:"sound,omitempty"`
	Status string  `json:"status,omitempty"`
}

// FromEvent converts a simulation event to a trace record.
func FromEvent(e sim.Event) Record {
	r := Record{
		Tick:  e.Tick,
		Level: e.Level,
		Type:  string(e.Type),
	}
	switch e.Type {
	case sim.EventSpawn, sim.EventDeath:
		r.Actor = uint64(e.Actor)
		r.Kind = e.Kind.String()
		r.X, r.Y = e.Pos.X, e.Pos.Y
	case sim.EventSound:
		r.Sound = e.Sound.String()
	case sim.EventOutcome:
		r.Status = e.Status.String()
	}
	return r
}

// Writer appends records to a compressed trace file. It implements
// sim.Observer; since Observe cannot fail, the first write error is kept
// and returned by Err and Close.
type Writer struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	n   int
	err error
}

// Create opens a new trace file at path, replacing any existing one.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("trace: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace: cannot create %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("trace: zstd writer: %w", err)
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 128*1024)}, nil
}

// Observe implements sim.Observer.
func (w *Writer) Observe(e sim.Event) {
	_ = w.Write(FromEvent(e))
}

// Write appends one record.
func (w *Writer) Write(r Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}
	if w.w == nil {
		return fmt.Errorf("trace: write after close")
	}
	b, err := json.Marshal(r)
	if err != nil {
		w.err = fmt.Errorf("trace: marshal: %w", err)
		return w.err
	}
	if _, err := w.w.Write(b); err != nil {
		w.err = fmt.Errorf("trace: write: %w", err)
		return w.err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		w.err = fmt.Errorf("trace: write: %w", err)
		return w.err
	}
	w.n++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return w.err
	}
	err := w.w.Flush()
	if cerr := w.enc.Close(); err == nil {
		err = cerr
	}
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	w.w, w.enc, w.f = nil, nil, nil

	if w.err != nil {
		return w.err
	}
	if err != nil {
		return fmt.Errorf("trace: close: %w", err)
	}
	return nil
}
