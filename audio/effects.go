package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/clicklive/clickpack"
)

const resampleQuality = 3

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol == 1 {
		return s
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// retime converts from the sample's native rate to the output rate and
// applies a playback-rate multiplier in the same resampler
func retime(s beep.Streamer, from, to beep.SampleRate, pitch float64) beep.Streamer {
	if pitch <= 0 {
		pitch = 1
	}
	ratio := pitch * float64(from) / float64(to)
	if ratio == 1 {
		return s
	}
	return beep.ResampleRatio(resampleQuality, ratio, s)
}

// Shot builds the one-shot stream for a sample at the given gain and pitch
func Shot(sample *clickpack.Sample, out beep.SampleRate, volume, pitch float64) beep.Streamer {
	s := retime(sample.Streamer(), sample.SampleRate(), out, pitch)
	return newVolume(s, volume)
}

// NoiseLoop builds an endless stream of the noise sample at the given gain
func NoiseLoop(sample *clickpack.Sample, out beep.SampleRate, volume float64) beep.Streamer {
	s := retime(beep.Loop(-1, sample.Streamer()), sample.SampleRate(), out, 1)
	return newVolume(s, volume)
}
