package status

import (
	"sync"
	"testing"

	"github.com/lixenwraith/clicklive/clickpack"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Load() != 0 {
		t.Fatalf("zero value should read 0, got %f", f.Load())
	}
	f.Store(1.39)
	if f.Load() != 1.39 {
		t.Errorf("expected 1.39, got %f", f.Load())
	}
	f.Store(-0.5)
	if f.Load() != -0.5 {
		t.Errorf("expected -0.5, got %f", f.Load())
	}
}

func TestAtomicString(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Fatalf("zero value should read empty, got %q", s.Load())
	}
	s.Store("a clickpack with a rather long name")
	if s.Load() != "a clickpack with a rather long name" {
		t.Errorf("unexpected value %q", s.Load())
	}
}

func TestStatsRecordPlay(t *testing.T) {
	s := NewStats()
	if s.Snapshot().LastType != clickpack.ClickNone {
		t.Fatal("expected ClickNone before any play")
	}

	s.RecordPlay(clickpack.Click, 0.5, 1.0, 1.01)
	s.RecordPlay(clickpack.MicroRelease, 0.01, 0.8, 0.99)
	s.RecordPlay(clickpack.Click, 0.4, 1.2, 1.0)

	snap := s.Snapshot()
	if snap.Played != 3 {
		t.Errorf("expected 3 played, got %d", snap.Played)
	}
	if snap.ByType[clickpack.Click] != 2 || s.Count(clickpack.MicroRelease) != 1 {
		t.Errorf("unexpected per-type counts %v", snap.ByType)
	}
	if snap.LastType != clickpack.Click || snap.LastGain != 1.2 || snap.LastPitch != 1.0 || snap.LastDelta != 0.4 {
		t.Errorf("unexpected last values %+v", snap)
	}
	if s.Count(clickpack.ClickNone) != 0 {
		t.Error("ClickNone has no counter")
	}
}

func TestStatsConcurrentReaders(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = s.Snapshot()
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		s.RecordPlay(clickpack.SoftClick, 0.1, 1, 1)
	}
	close(stop)
	wg.Wait()

	if got := s.Count(clickpack.SoftClick); got != 1000 {
		t.Errorf("expected 1000, got %d", got)
	}
}
