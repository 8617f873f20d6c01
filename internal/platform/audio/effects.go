package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/zombie-dash/internal/sim"
)

// note is one tone of an effect.
type note struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	gain     float64
}

// recipes lists the notes of each effect, played in sequence.
var recipes = map[sim.Sound][]note{
	sim.SoundPlayerFire: {
		{freq: 0, wave: WaveNoise, duration: 180 * time.Millisecond, attack: 5 * time.Millisecond, release: 120 * time.Millisecond, gain: 0.5},
	},
	sim.SoundPlayerDie: {
		{freq: 392, wave: WaveSquare, duration: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.4},
		{freq: 311, wave: WaveSquare, duration: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.4},
		{freq: 196, wave: WaveSquare, duration: 400 * time.Millisecond, attack: 5 * time.Millisecond, release: 300 * time.Millisecond, gain: 0.4},
	},
	sim.SoundCitizenInfected: {
		{freq: 660, wave: WaveSine, duration: 120 * time.Millisecond, attack: 10 * time.Millisecond, release: 60 * time.Millisecond, gain: 0.5},
		{freq: 520, wave: WaveSine, duration: 160 * time.Millisecond, attack: 10 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.5},
	},
	sim.SoundCitizenDie: {
		{freq: 220, wave: WaveSaw, duration: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 250 * time.Millisecond, gain: 0.4},
	},
	sim.SoundCitizenSaved: {
		{freq: 523.25, wave: WaveSine, duration: 100 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.5},
		{freq: 659.25, wave: WaveSine, duration: 100 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.5},
		{freq: 783.99, wave: WaveSine, duration: 200 * time.Millisecond, attack: 5 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.5},
	},
	sim.SoundZombieDie: {
		{freq: 110, wave: WaveSaw, duration: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.5},
	},
	sim.SoundZombieVomit: {
		{freq: 0, wave: WaveNoise, duration: 120 * time.Millisecond, attack: 30 * time.Millisecond, release: 60 * time.Millisecond, gain: 0.3},
		{freq: 90, wave: WaveSaw, duration: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.4},
	},
	sim.SoundZombieBorn: {
		{freq: 80, wave: WaveSaw, duration: 200 * time.Millisecond, attack: 50 * time.Millisecond, release: 50 * time.Millisecond, gain: 0.5},
		{freq: 140, wave: WaveSaw, duration: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.5},
	},
	sim.SoundGotGoodie: {
		{freq: 987.77, wave: WaveSquare, duration: 80 * time.Millisecond, attack: 2 * time.Millisecond, release: 30 * time.Millisecond, gain: 0.3},
		{freq: 1318.51, wave: WaveSquare, duration: 200 * time.Millisecond, attack: 2 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.3},
	},
	sim.SoundLandmineExplode: {
		{freq: 0, wave: WaveNoise, duration: 500 * time.Millisecond, attack: 2 * time.Millisecond, release: 450 * time.Millisecond, gain: 0.8},
	},
	sim.SoundLevelFinished: {
		{freq: 523.25, wave: WaveSquare, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.3},
		{freq: 659.25, wave: WaveSquare, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.3},
		{freq: 783.99, wave: WaveSquare, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.3},
		{freq: 1046.5, wave: WaveSquare, duration: 400 * time.Millisecond, attack: 5 * time.Millisecond, release: 300 * time.Millisecond, gain: 0.3},
	},
}

// Effect builds the streamer for a sound at the given master volume.
// Returns nil for sounds without a recipe.
func Effect(s sim.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := recipes[s]
	if !ok || len(notes) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		shaped := NewEnvelope(osc, n.duration, n.attack, n.release, rate)
		parts = append(parts, newVolume(shaped, n.gain))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// Duration returns how long the effect for s lasts.
func Duration(s sim.Sound) time.Duration {
	var d time.Duration
	for _, n := range recipes[s] {
		d += n.duration
	}
	return d
}
