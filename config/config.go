package config

import (
	"log"

	"github.com/lixenwraith/clicklive/clickpack"
)

// Pitch is the inclusive range a per-shot playback rate is drawn from
type Pitch struct {
	From float64 `toml:"from"`
	To   float64 `toml:"to"`
}

// DefaultPitch returns a +-2% spread around unity
func DefaultPitch() Pitch {
	return Pitch{From: 0.98, To: 1.02}
}

// VolumeSettings controls per-shot gain
type VolumeSettings struct {
	Enabled                bool    `toml:"enabled"`
	SpamTime               float64 `toml:"spam_time"`
	SpamVolOffsetFactor    float64 `toml:"spam_vol_offset_factor"`
	MaxSpamVolOffset       float64 `toml:"max_spam_vol_offset"`
	ChangeReleasesVolume   bool    `toml:"change_releases_volume"`
	GlobalVolume           float64 `toml:"global_volume"`
	VolumeVar              float64 `toml:"volume_var"`
	PlatformerVolumeFactor float64 `toml:"platformer_volume_factor"`
}

// DefaultVolumeSettings returns the stock spam modulation
func DefaultVolumeSettings() VolumeSettings {
	return VolumeSettings{
		Enabled:                true,
		SpamTime:               0.3,
		SpamVolOffsetFactor:    1.3,
		MaxSpamVolOffset:       0.6,
		ChangeReleasesVolume:   false,
		GlobalVolume:           1.0,
		VolumeVar:              0.2,
		PlatformerVolumeFactor: 1.0,
	}
}

// AudioSettings configures the output device
type AudioSettings struct {
	Enabled    bool `toml:"enabled"`
	SampleRate int  `toml:"sample_rate"`
	BufferMs   int  `toml:"buffer_ms"`
}

// Config is the persisted user configuration
type Config struct {
	ClickpackPath      string            `toml:"clickpack_path"`
	LoadFor            clickpack.LoadFor `toml:"load_for"`
	UseAlternateHook   bool              `toml:"use_alternate_hook"`
	ForcePlayer2Sounds bool              `toml:"force_player2_sounds"`
	ShowConsole        bool              `toml:"show_console"`
	OnlyInLevel        bool              `toml:"only_in_level"`
	PlayNoise          bool              `toml:"play_noise"`
	NoiseVolume        float64           `toml:"noise_volume"`
	Seed               int64             `toml:"seed"` // 0 seeds from the clock

	Timings clickpack.Timings `toml:"timings"`
	Pitch   Pitch             `toml:"pitch"`
	Volume  VolumeSettings    `toml:"volume"`
	Audio   AudioSettings     `toml:"audio"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LoadFor:     clickpack.LoadForAll,
		OnlyInLevel: true,
		NoiseVolume: 1.0,
		Timings:     clickpack.DefaultTimings(),
		Pitch:       DefaultPitch(),
		Volume:      DefaultVolumeSettings(),
		Audio: AudioSettings{
			Enabled:    true,
			SampleRate: 44100,
			BufferMs:   30,
		},
	}
}

// Validate repairs out-of-range values in place instead of rejecting the file
// so a hand-edited config never prevents startup
func (c *Config) Validate() {
	if !c.Timings.Valid() {
		log.Printf("config: invalid timings %+v, using defaults", c.Timings)
		c.Timings = clickpack.DefaultTimings()
	}

	if c.Pitch.From <= 0 || c.Pitch.To <= 0 {
		log.Printf("config: non-positive pitch %+v, using defaults", c.Pitch)
		c.Pitch = DefaultPitch()
	}
	if c.Pitch.From > c.Pitch.To {
		c.Pitch.From, c.Pitch.To = c.Pitch.To, c.Pitch.From
	}

	if _, ok := c.LoadFor.Bank(); !ok && c.LoadFor != clickpack.LoadForAll {
		c.LoadFor = clickpack.LoadForAll
	}

	v := &c.Volume
	v.SpamTime = nonNegative(v.SpamTime)
	v.MaxSpamVolOffset = nonNegative(v.MaxSpamVolOffset)
	v.GlobalVolume = nonNegative(v.GlobalVolume)
	v.VolumeVar = nonNegative(v.VolumeVar)
	v.PlatformerVolumeFactor = nonNegative(v.PlatformerVolumeFactor)
	c.NoiseVolume = nonNegative(c.NoiseVolume)

	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.BufferMs <= 0 {
		c.Audio.BufferMs = 30
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
