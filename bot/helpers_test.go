package bot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/clicklive/clickpack"
	"github.com/lixenwraith/clicklive/config"
)

type playCall struct {
	path  string
	gain  float64
	pitch float64
}

// recorder is a Player and NoisePlayer that remembers every request
type recorder struct {
	calls  []playCall
	noise  string
	starts int
	stops  int
	panics bool
}

func (r *recorder) Play(s *clickpack.Sample, volume, pitch float64) {
	if r.panics {
		panic("backend exploded")
	}
	r.calls = append(r.calls, playCall{path: s.Path(), gain: volume, pitch: pitch})
}

func (r *recorder) PlayNoise(s *clickpack.Sample, volume float64) {
	r.starts++
	r.noise = s.Path()
}

func (r *recorder) StopNoise() {
	r.stops++
	r.noise = ""
}

func (r *recorder) last(t *testing.T) playCall {
	t.Helper()
	if len(r.calls) == 0 {
		t.Fatal("nothing played")
	}
	return r.calls[len(r.calls)-1]
}

// memSample makes an empty in-memory sample identified by name
func memSample(name string) *clickpack.Sample {
	return clickpack.NewSample(name, beep.NewBuffer(beep.Format{SampleRate: 44100, NumChannels: 1, Precision: 2}))
}

// memPack builds a clickpack with n samples in every listed bank/bucket
// Sample names are "<bank>/<bucket>/<i>"
func memPack(n int, contents map[clickpack.Bank][]clickpack.ClickType) *clickpack.Clickpack {
	cp := clickpack.New()
	for bank, types := range contents {
		for _, ct := range types {
			samples := make([]*clickpack.Sample, n)
			for i := range samples {
				samples[i] = memSample(fmt.Sprintf("%s/%s/%d", bank, ct, i))
			}
			cp.Bank(bank).SetBucket(ct, samples)
		}
	}
	return cp
}

// testConfig disables randomness in gain and pitch
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	cfg.Pitch = config.Pitch{From: 1, To: 1}
	cfg.Volume = config.VolumeSettings{
		Enabled:                true,
		SpamTime:               0.3,
		SpamVolOffsetFactor:    1.3,
		MaxSpamVolOffset:       0.6,
		GlobalVolume:           1.0,
		VolumeVar:              0,
		PlatformerVolumeFactor: 1.0,
	}
	return cfg
}

func newTestBot(t *testing.T, cfg *config.Config, pack *clickpack.Clickpack) (*Bot, *recorder) {
	t.Helper()
	rec := &recorder{}
	b := New(cfg, rec)
	if pack != nil {
		b.SetClickpack(pack)
	}
	return b, rec
}

func writeTestWAV(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	data := make([]float32, 256)
	for i := range data {
		data[i] = float32(0.5 * math.Sin(float64(i)/4))
	}
	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	buf := &audio.Float32Buffer{
		Format:         &audio.Format{SampleRate: 44100, NumChannels: 1},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("wav write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("wav close: %v", err)
	}
}

// diskPack writes a clickpack tree with one WAV per relative path
func diskPack(t *testing.T, files ...string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "pack")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, rel := range files {
		writeTestWAV(t, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return root
}
