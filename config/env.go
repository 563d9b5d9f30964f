package config

import (
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvClickpack    = "CLICKLIVE_CLICKPACK"
	EnvVolume       = "CLICKLIVE_VOLUME"
	EnvSampleRate   = "CLICKLIVE_SAMPLE_RATE"
	EnvForcePlayer2 = "CLICKLIVE_FORCE_PLAYER2"
	EnvNoise        = "CLICKLIVE_NOISE"
	EnvAudioEnabled = "CLICKLIVE_AUDIO_ENABLED"
)

// ApplyEnv overlays environment overrides onto cfg
// Unparseable values are ignored
func ApplyEnv(cfg *Config) {
	if path := os.Getenv(EnvClickpack); path != "" {
		cfg.ClickpackPath = path
	}

	// Global volume as a percentage (0-200)
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			v := float64(val) / 100.0
			if v < 0 {
				v = 0
			}
			if v > 2 {
				v = 2
			}
			cfg.Volume.GlobalVolume = v
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.Audio.SampleRate = val
		}
	}

	if force := os.Getenv(EnvForcePlayer2); force != "" {
		if val, err := strconv.ParseBool(force); err == nil {
			cfg.ForcePlayer2Sounds = val
		}
	}

	if noise := os.Getenv(EnvNoise); noise != "" {
		if val, err := strconv.ParseBool(noise); err == nil {
			cfg.PlayNoise = val
		}
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}
}
