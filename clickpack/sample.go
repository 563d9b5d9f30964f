package clickpack

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cwav "github.com/cwbudde/wav"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Sample is a decoded, immutable audio asset
type Sample struct {
	path   string
	buffer *beep.Buffer
}

// NewSample wraps an already decoded buffer
func NewSample(path string, buffer *beep.Buffer) *Sample {
	return &Sample{path: path, buffer: buffer}
}

// Path returns the file the sample was loaded from
func (s *Sample) Path() string { return s.path }

// Format returns sample rate, channel count and precision of the decoded data
func (s *Sample) Format() beep.Format { return s.buffer.Format() }

// SampleRate returns the native sample rate
func (s *Sample) SampleRate() beep.SampleRate { return s.buffer.Format().SampleRate }

// Channels returns the native channel count
func (s *Sample) Channels() int { return s.buffer.Format().NumChannels }

// Len returns the number of frames
func (s *Sample) Len() int { return s.buffer.Len() }

// Duration returns the playback length at the native rate
func (s *Sample) Duration() time.Duration {
	return s.SampleRate().D(s.buffer.Len())
}

// Streamer returns a fresh reader over the whole sample
// Each call is independent; the underlying data is never written
func (s *Sample) Streamer() beep.StreamSeeker {
	return s.buffer.Streamer(0, s.buffer.Len())
}

type decodeFunc func(data []byte) (beep.StreamSeekCloser, beep.Format, error)

func decodeWAV(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	return wav.Decode(bytes.NewReader(data))
}

func decodeMP3(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	return mp3.Decode(io.NopCloser(bytes.NewReader(data)))
}

func decodeVorbis(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	return vorbis.Decode(io.NopCloser(bytes.NewReader(data)))
}

func decodeFLAC(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	return flac.Decode(bytes.NewReader(data))
}

var decodersByExt = map[string]decodeFunc{
	".wav":  decodeWAV,
	".wave": decodeWAV,
	".mp3":  decodeMP3,
	".ogg":  decodeVorbis,
	".oga":  decodeVorbis,
	".flac": decodeFLAC,
}

// sniffOrder is tried for files whose extension names no known format
var sniffOrder = []decodeFunc{decodeWAV, decodeFLAC, decodeVorbis, decodeMP3}

// LoadSample reads and fully decodes an audio file
// Failures are *LoadError with kind LoadErrorIO or LoadErrorDecode
func LoadSample(path string) (*Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: LoadErrorIO, Path: path, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	candidates := sniffOrder
	if dec, ok := decodersByExt[ext]; ok {
		candidates = []decodeFunc{dec}
	}

	var lastErr error = errUnknownFormat
	for _, dec := range candidates {
		buf, err := decodeToBuffer(dec, data)
		if err == nil {
			return NewSample(path, buf), nil
		}
		lastErr = err
	}

	// beep/wav only understands plain PCM headers; retry odd WAV variants
	if ext == ".wav" || ext == ".wave" {
		if buf, err := decodeWAVFallback(data); err == nil {
			return NewSample(path, buf), nil
		}
	}

	return nil, &LoadError{Kind: LoadErrorDecode, Path: path, Err: lastErr}
}

// decodeToBuffer drains a decoder into memory, converting decoder panics into errors
func decodeToBuffer(dec decodeFunc, data []byte) (buf *beep.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("decoder panic: %v", r)
		}
	}()

	streamer, format, err := dec(data)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buf = beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, errEmptySample
	}
	return buf, nil
}

// decodeWAVFallback decodes through go-audio's reader, which accepts
// extensible headers and 24/32-bit integer PCM
func decodeWAVFallback(data []byte) (buf *beep.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("wav decoder panic: %v", r)
		}
	}()

	dec := cwav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file")
	}
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if pcm == nil || pcm.Format == nil || pcm.Format.NumChannels < 1 || pcm.SourceBitDepth < 8 {
		return nil, fmt.Errorf("invalid wav buffer")
	}

	ch := pcm.Format.NumChannels
	frames := len(pcm.Data) / ch
	if frames == 0 {
		return nil, errEmptySample
	}
	scale := float64(int64(1) << (pcm.SourceBitDepth - 1))

	frameData := make([][2]float64, frames)
	for i := 0; i < frames; i++ {
		left := float64(pcm.Data[i*ch]) / scale
		right := left
		if ch > 1 {
			right = float64(pcm.Data[i*ch+1]) / scale
		}
		frameData[i] = [2]float64{left, right}
	}

	precision := pcm.SourceBitDepth / 8
	if precision > 3 {
		precision = 3
	}
	numChannels := ch
	if numChannels > 2 {
		numChannels = 2
	}
	buf = beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(pcm.Format.SampleRate),
		NumChannels: numChannels,
		Precision:   precision,
	})

	pos := 0
	buf.Append(beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(frameData) {
			return 0, false
		}
		n := copy(out, frameData[pos:])
		pos += n
		return n, true
	}))
	return buf, nil
}
