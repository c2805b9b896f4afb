package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/sun-rise-set/constants"
)

// Chime plays a short cue when fast-forward reaches its target
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewChime creates a chime that stays silent until Initialize succeeds
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(constants.ChimeSampleRate),
	}
}

// Initialize opens the speaker, a missing audio device is reported and can be ignored
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(c.rate, c.rate.N(constants.ChimeBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one chime, it is a no-op without an audio device
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Add(NewChimeSound(c.rate))
	speaker.Unlock()
}

// OnArrive adapts Play to the player's arrival callback
func (c *Chime) OnArrive(int) {
	c.Play()
}

// Cleanup stops pending sounds
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
