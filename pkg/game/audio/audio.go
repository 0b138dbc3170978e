// Package audio plays short synthesized tones for gameplay cues. A failed
// speaker init leaves the player silent; the game runs without sound.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/engine/logging"
	"torchmaze/pkg/game/state"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cue tones into the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *logrus.Entry
}

// New creates a silent player; call Init to open the speaker
func New() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		log:   logging.Component("audio"),
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.WithField("rate", int(sampleRate)).Info("speaker ready")
	return nil
}

// Enabled reports whether cues are audible
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues the tones for cues. It does nothing before Init.
func (p *Player) Play(cues []state.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(cues) == 0 {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		if s := CueStreamer(c, sampleRate); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close stops all sounds and closes the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
