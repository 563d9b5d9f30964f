package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/clicklive/clickpack"
)

// Sentinel errors
var (
	ErrAlreadyInitialized = errors.New("speaker already owned by another player")
)

// speakerOwned guards the process-global speaker
var (
	speakerMu    sync.Mutex
	speakerOwned bool
)

// SpeakerPlayer mixes click shots and ambient noise into the system speaker
// Play is fire-and-forget: it only enqueues a streamer into the mixer
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	noise       *beep.Ctrl
	sampleRate  beep.SampleRate
	bufferSize  time.Duration
	initialized bool
}

// NewSpeakerPlayer creates a player that will output at sampleRate
func NewSpeakerPlayer(sampleRate int, buffer time.Duration) *SpeakerPlayer {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	if buffer <= 0 {
		buffer = 30 * time.Millisecond
	}
	return &SpeakerPlayer{
		mixer:      &beep.Mixer{},
		sampleRate: beep.SampleRate(sampleRate),
		bufferSize: buffer,
	}
}

// Initialize opens the speaker and attaches the mixer
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// beep's speaker is process-global; only one player may own it
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerOwned {
		return ErrAlreadyInitialized
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(p.bufferSize)); err != nil {
		return err
	}

	// Mixer stays attached for the lifetime of the speaker, shots are added to it
	speaker.Play(p.mixer)
	speakerOwned = true
	p.initialized = true
	return nil
}

// Cleanup stops every sound and releases the speaker
func (p *SpeakerPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	// Drop pending shots and the noise loop before closing the device
	speaker.Lock()
	p.mixer.Clear()
	p.noise = nil
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()

	speakerMu.Lock()
	speakerOwned = false
	speakerMu.Unlock()
	p.initialized = false
}

// IsInitialized reports whether the speaker is open
func (p *SpeakerPlayer) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SampleRate returns the output rate
func (p *SpeakerPlayer) SampleRate() beep.SampleRate {
	return p.sampleRate
}

// Play starts a one-shot playback of sample
// Silently ignored when the speaker is not open
func (p *SpeakerPlayer) Play(sample *clickpack.Sample, volume, pitch float64) {
	if sample == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	// Build the stream outside the speaker lock, only the Add must hold it
	shot := Shot(sample, p.sampleRate, volume, pitch)
	speaker.Lock()
	p.mixer.Add(shot)
	speaker.Unlock()
}

// PlayNoise replaces the ambient loop with sample at volume
func (p *SpeakerPlayer) PlayNoise(sample *clickpack.Sample, volume float64) {
	if sample == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	// Ctrl lets StopNoise end the loop without touching the mixer
	ctrl := &beep.Ctrl{Streamer: NoiseLoop(sample, p.sampleRate, volume)}
	speaker.Lock()
	if p.noise != nil {
		// an exhausted streamer is dropped by the mixer
		p.noise.Streamer = beep.Silence(0)
	}
	p.noise = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopNoise ends the ambient loop if one is playing
func (p *SpeakerPlayer) StopNoise() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.noise == nil {
		return
	}

	speaker.Lock()
	p.noise.Streamer = beep.Silence(0)
	speaker.Unlock()
	p.noise = nil
}

// NoisePlaying reports whether an ambient loop is active
func (p *SpeakerPlayer) NoisePlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.noise != nil
}

// Active returns the number of streams currently in the mixer
func (p *SpeakerPlayer) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}
