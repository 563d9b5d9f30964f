// Package bot turns abstract input events into click playback
//
// The host calls the On* entry points from a single thread; they must not be
// invoked re-entrantly. The active clickpack is swapped atomically, so
// LoadClickpack may run on another goroutine while events are dispatched.
package bot

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/clicklive/clickpack"
	"github.com/lixenwraith/clicklive/config"
	"github.com/lixenwraith/clicklive/status"
)

// Player receives fire-and-forget playback requests
// Implementations must be safe to call from the host thread and must not block
type Player interface {
	Play(sample *clickpack.Sample, volume, pitch float64)
}

// NoisePlayer is implemented by players that can loop an ambient sample
type NoisePlayer interface {
	PlayNoise(sample *clickpack.Sample, volume float64)
	StopNoise()
}

const numPlayers = 2

// unset marks a timestamp with no previous event; the gap to it is infinite
var unset = math.Inf(-1)

// Bot is the event dispatcher
type Bot struct {
	cfg    config.Config
	player Player
	stats  *status.Stats
	rng    *rand.Rand

	pack      atomic.Pointer[clickpack.Clickpack]
	isInLevel atomic.Bool

	// noiseMu orders level transitions against clickpack swaps so the
	// ambient loop only starts while in a level
	noiseMu sync.Mutex

	clock clock

	tPress [numPlayers]float64
	tRel   [numPlayers]float64
	held   [numPlayers][clickpack.ButtonRight + 1]bool

	playlayer any
}

// New creates a dispatcher over a copy of cfg
// player may be nil; events are then classified and counted but not played
func New(cfg *config.Config, player Player) *Bot {
	if cfg == nil {
		cfg = config.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := &Bot{
		cfg:    *cfg,
		player: player,
		stats:  status.NewStats(),
		rng:    rand.New(rand.NewSource(seed)),
		clock:  newClock(time.Now),
	}
	b.cfg.Validate()
	b.resetTimestamps()
	return b
}

// Stats returns the live counters
func (b *Bot) Stats() *status.Stats {
	return b.stats
}

// Config returns a copy of the active configuration
func (b *Bot) Config() config.Config {
	return b.cfg
}

// Clickpack returns the active clickpack, nil if none loaded
func (b *Bot) Clickpack() *clickpack.Clickpack {
	return b.pack.Load()
}

// IsInLevel reports the in-level flag
func (b *Bot) IsInLevel() bool {
	return b.isInLevel.Load()
}

// SetIsInLevel overrides the in-level flag
func (b *Bot) SetIsInLevel(v bool) {
	b.noiseMu.Lock()
	defer b.noiseMu.Unlock()
	b.setInLevel(v)
}

func (b *Bot) setInLevel(v bool) {
	b.isInLevel.Store(v)
	b.stats.InLevel.Store(v)
}

// ForcePlayer2Sounds reports whether every event uses player 2 banks
func (b *Bot) ForcePlayer2Sounds() bool {
	return b.cfg.ForcePlayer2Sounds
}

// UseAlternateHook reports the host hook selection
func (b *Bot) UseAlternateHook() bool {
	return b.cfg.UseAlternateHook
}

// ShowConsole reports whether the host should show its log output
func (b *Bot) ShowConsole() bool {
	return b.cfg.ShowConsole
}

// Playlayer returns the handle passed to the last OnInit
func (b *Bot) Playlayer() any {
	return b.playlayer
}

// IsHeld reports whether button is currently pressed for the given player
func (b *Bot) IsHeld(button clickpack.Button, player2 bool) bool {
	if !validButton(button) {
		return false
	}
	return b.held[playerIndex(player2)][button]
}

func (b *Bot) resetTimestamps() {
	for p := range numPlayers {
		b.tPress[p] = unset
		b.tRel[p] = unset
	}
}

func playerIndex(player2 bool) int {
	if player2 {
		return 1
	}
	return 0
}

func validButton(button clickpack.Button) bool {
	return button >= clickpack.ButtonJump && button <= clickpack.ButtonRight
}
