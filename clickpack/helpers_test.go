package clickpack

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

const testSampleRate = 44100

// writeTestWAV writes a short 16-bit mono tone to path, creating parent directories
func writeTestWAV(t *testing.T, path string, frames int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	data := make([]float32, frames)
	for i := range data {
		data[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/testSampleRate))
	}

	enc := wav.NewEncoder(f, testSampleRate, 16, 1, 1)
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  testSampleRate,
			NumChannels: 1,
		},
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

// buildPack creates a clickpack tree under a temp dir; files maps relative paths to frame counts
func buildPack(t *testing.T, files map[string]int) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "pack")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for rel, frames := range files {
		writeTestWAV(t, filepath.Join(root, filepath.FromSlash(rel)), frames)
	}
	return root
}

// sampleDir returns "<parent>/<category>" for a loaded sample, e.g. "player1/clicks"
func sampleDir(s *Sample) string {
	if s == nil {
		return ""
	}
	dir := filepath.Dir(s.Path())
	return filepath.Base(filepath.Dir(dir)) + "/" + filepath.Base(dir)
}
