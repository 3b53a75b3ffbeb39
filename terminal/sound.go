package terminal

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Beeper plays the hit tone. A Beeper whose speaker failed to open stays
// silent.
type Beeper struct {
	mu     sync.Mutex
	freq   float64
	length time.Duration
	ready  bool
}

func NewBeeper(freq float64, length time.Duration) *Beeper {
	return &Beeper{freq: freq, length: length}
}

// Init opens the speaker.
func (b *Beeper) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	b.ready = true
	return nil
}

// PlayHit plays one short tone without blocking.
func (b *Beeper) PlayHit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ready {
		return
	}
	if tone, err := hitTone(b.freq, b.length); err == nil {
		speaker.Play(tone)
	}
}

func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready {
		speaker.Close()
		b.ready = false
	}
}

func hitTone(freq float64, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(length), sine), nil
}
