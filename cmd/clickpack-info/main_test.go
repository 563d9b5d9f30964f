package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

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

	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	buf := &audio.Float32Buffer{
		Format:         &audio.Format{SampleRate: 44100, NumChannels: 1},
		Data:           make([]float32, 64),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("wav write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("wav close: %v", err)
	}
}

func TestRunPrintsSummary(t *testing.T) {
	root := filepath.Join(t.TempDir(), "mypack")
	writeTestWAV(t, filepath.Join(root, "player1", "clicks", "1.wav"))
	writeTestWAV(t, filepath.Join(root, "player1", "clicks", "2.wav"))
	writeTestWAV(t, filepath.Join(root, "left1", "Soft Releases", "1.wav"))

	var stdout, stderr bytes.Buffer
	if code := run([]string{root}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"clickpack mypack", "sounds: 3", "platformer: true", "player1", "left1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("loader log leaked without -v: %s", stderr.String())
	}
}

func TestRunNoClicks(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{t.TempDir()}, &stdout, &stderr); code != exitNoClicks {
		t.Errorf("exit %d, want %d", code, exitNoClicks)
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != exitUsage {
		t.Errorf("no args: exit %d, want %d", code, exitUsage)
	}
	if code := run([]string{"-for", "left3", t.TempDir()}, &stdout, &stderr); code != exitUsage {
		t.Errorf("bad target: exit %d, want %d", code, exitUsage)
	}
}
