package audio

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/clicklive/config"
)

// AudioService wraps SpeakerPlayer as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	settings config.AudioSettings
	player   *SpeakerPlayer
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{settings: config.Default().Audio}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// Accepts *config.Config or config.AudioSettings among args; the first match wins
func (s *AudioService) Init(args ...any) error {
	if settings, ok := settingsFromArgs(args); ok {
		s.settings = settings
	}

	if !s.settings.Enabled {
		s.disabled.Store(true)
		return nil
	}

	s.player = NewSpeakerPlayer(s.settings.SampleRate, time.Duration(s.settings.BufferMs)*time.Millisecond)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.player == nil {
		return nil
	}

	if err := s.player.Initialize(); err != nil {
		log.Printf("audio: speaker unavailable, playback disabled: %v", err)
		s.disabled.Store(true)
		s.player = nil
		return nil
	}
	log.Printf("audio: speaker open at %d Hz", s.settings.SampleRate)
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the speaker backend, nil if disabled
func (s *AudioService) Player() *SpeakerPlayer {
	if s.disabled.Load() {
		return nil
	}
	return s.player
}

func settingsFromArgs(args []any) (config.AudioSettings, bool) {
	for _, arg := range args {
		switch v := arg.(type) {
		case *config.Config:
			if v != nil {
				return v.Audio, true
			}
		case config.AudioSettings:
			return v, true
		}
	}
	return config.AudioSettings{}, false
}
