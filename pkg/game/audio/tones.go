package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"torchmaze/pkg/game/state"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// Note is one fixed-pitch segment of a cue
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
}

// Cues maps each gameplay cue to the notes it plays
var Cues = map[state.Cue][]Note{
	state.CueDamage: {
		{Freq: 180, Duration: 60 * time.Millisecond, Wave: WaveSquare},
		{Freq: 120, Duration: 120 * time.Millisecond, Wave: WaveSquare},
	},
	state.CuePickup: {
		{Freq: 660, Duration: 60 * time.Millisecond, Wave: WaveSine},
		{Freq: 880, Duration: 90 * time.Millisecond, Wave: WaveSine},
	},
	state.CueGateOpen: {
		{Freq: 220, Duration: 150 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 330, Duration: 150 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 440, Duration: 250 * time.Millisecond, Wave: WaveTriangle},
	},
	state.CueWon: {
		{Freq: 523, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 659, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 784, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 1047, Duration: 240 * time.Millisecond, Wave: WaveSine},
	},
	state.CueLost: {
		{Freq: 392, Duration: 200 * time.Millisecond, Wave: WaveSaw},
		{Freq: 330, Duration: 200 * time.Millisecond, Wave: WaveSaw},
		{Freq: 262, Duration: 400 * time.Millisecond, Wave: WaveSaw},
	},
}

// cueVolume is the gain applied to every cue, as a power of two
const cueVolume = -2.0

// CueStreamer returns the finite stream for a cue, or nil for a cue with
// no notes.
func CueStreamer(c state.Cue, rate beep.SampleRate) beep.Streamer {
	notes := Cues[c]
	if len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewOscillator(n.Freq, n.Duration, n.Wave, rate))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: cueVolume}
}

// oscillator generates one note with a short fade at both ends
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	fade     int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer playing freq for duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &oscillator{
		freq:     freq,
		duration: total,
		fade:     min(rate.N(5*time.Millisecond), total/2),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}
		val *= o.envelope()

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

// envelope ramps the first and last few milliseconds to avoid clicks
func (o *oscillator) envelope() float64 {
	if o.fade <= 0 {
		return 1
	}
	if o.position < o.fade {
		return float64(o.position) / float64(o.fade)
	}
	if left := o.duration - o.position; left < o.fade {
		return float64(left) / float64(o.fade)
	}
	return 1
}

func (o *oscillator) Err() error { return nil }
