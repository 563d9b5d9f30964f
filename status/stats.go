package status

import (
	"sync/atomic"

	"github.com/lixenwraith/clicklive/clickpack"
)

// Stats is written by the dispatcher on the host thread and read from anywhere
// All fields are lock-free; readers see each field atomically, not the set
type Stats struct {
	Played  atomic.Uint64 // samples handed to the audio backend
	Skipped atomic.Uint64 // events dropped: no clickpack, not in level, empty pack
	Panics  atomic.Uint64 // recovered backend panics

	byType [len(clickpack.ClickTypes)]atomic.Uint64

	LastType  atomic.Int32
	LastGain  AtomicFloat
	LastPitch AtomicFloat
	LastDelta AtomicFloat

	Clickpack AtomicString
	InLevel   atomic.Bool
}

// NewStats returns stats with LastType set to ClickNone
func NewStats() *Stats {
	s := &Stats{}
	s.LastType.Store(int32(clickpack.ClickNone))
	return s
}

// RecordPlay stores the outcome of one dispatched event
func (s *Stats) RecordPlay(ct clickpack.ClickType, dt, gain, pitch float64) {
	s.Played.Add(1)
	if ct >= 0 && int(ct) < len(s.byType) {
		s.byType[ct].Add(1)
	}
	s.LastType.Store(int32(ct))
	s.LastDelta.Store(dt)
	s.LastGain.Store(gain)
	s.LastPitch.Store(pitch)
}

// Count returns how many events were classified as ct
func (s *Stats) Count(ct clickpack.ClickType) uint64 {
	if ct < 0 || int(ct) >= len(s.byType) {
		return 0
	}
	return s.byType[ct].Load()
}

// Snapshot is a plain copy of Stats for display
type Snapshot struct {
	Played    uint64
	Skipped   uint64
	Panics    uint64
	ByType    [len(clickpack.ClickTypes)]uint64
	LastType  clickpack.ClickType
	LastGain  float64
	LastPitch float64
	LastDelta float64
	Clickpack string
	InLevel   bool
}

// Snapshot copies every field
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Played:    s.Played.Load(),
		Skipped:   s.Skipped.Load(),
		Panics:    s.Panics.Load(),
		LastType:  clickpack.ClickType(s.LastType.Load()),
		LastGain:  s.LastGain.Load(),
		LastPitch: s.LastPitch.Load(),
		LastDelta: s.LastDelta.Load(),
		Clickpack: s.Clickpack.Load(),
		InLevel:   s.InLevel.Load(),
	}
	for i := range s.byType {
		snap.ByType[i] = s.byType[i].Load()
	}
	return snap
}
