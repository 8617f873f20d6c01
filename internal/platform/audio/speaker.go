package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/zombie-dash/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// minGap keeps a burst of identical requests in one tick (a row of flames,
// a chain of landmines) from stacking into noise.
const minGap = 60 * time.Millisecond

// Options configures a Speaker.
type Options struct {
	Volume float64 // 0..1
	Logger *log.Logger
}

// Speaker plays effects through the system audio device. It implements
// sim.AudioSink.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	last   map[sim.Sound]time.Time
	now    func() time.Time
	log    *log.Logger
	closed bool
}

// Silent discards every sound request.
type Silent struct{}

// PlaySound implements sim.AudioSink.
func (Silent) PlaySound(sim.Sound) {}

// Open initializes the speaker. When no audio device is available it logs a
// warning and returns a Silent sink, so callers never need to care.
func Open(opts Options) (sim.AudioSink, func()) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Volume <= 0 {
		return Silent{}, func() {}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Silent{}, func() {}
	}

	s := newSpeaker(opts.Volume, logger)
	speaker.Play(s.mixer)
	logger.Debug("audio initialized", "rate", int(sampleRate), "volume", opts.Volume)
	return s, s.Close
}

func newSpeaker(volume float64, logger *log.Logger) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: min(volume, 1),
		last:   make(map[sim.Sound]time.Time),
		now:    time.Now,
		log:    logger,
	}
}

// PlaySound implements sim.AudioSink.
func (s *Speaker) PlaySound(snd sim.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.admit(snd) {
		return
	}
	effect := Effect(snd, sampleRate, s.volume)
	if effect == nil {
		s.log.Debug("no effect for sound", "sound", snd)
		return
	}

	speaker.Lock()
	s.mixer.Add(effect)
	speaker.Unlock()
}

// admit reports whether snd may start now. Callers hold mu.
func (s *Speaker) admit(snd sim.Sound) bool {
	now := s.now()
	if last, ok := s.last[snd]; ok && now.Sub(last) < minGap {
		return false
	}
	s.last[snd] = now
	return true
}

// Close stops all sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
}
