package bot

import (
	"log"

	"github.com/lixenwraith/clicklive/clickpack"
)

// OnInit enters a level; playlayer is the opaque host handle and may be nil
func (b *Bot) OnInit(playlayer any) {
	b.playlayer = playlayer
	b.resetTimestamps()
	b.held = [numPlayers][clickpack.ButtonRight + 1]bool{}

	b.noiseMu.Lock()
	defer b.noiseMu.Unlock()
	b.setInLevel(true)
	b.startNoise(b.pack.Load())
}

// OnReset clears the per-player timestamps so the next event is a hard one
func (b *Bot) OnReset() {
	b.resetTimestamps()
}

// OnExit leaves the level
func (b *Bot) OnExit() {
	b.held = [numPlayers][clickpack.ButtonRight + 1]bool{}

	b.noiseMu.Lock()
	defer b.noiseMu.Unlock()
	b.setInLevel(false)
	b.stopNoise()
}

// OnDeath releases every button still held
func (b *Bot) OnDeath() {
	for p := range numPlayers {
		for button := clickpack.ButtonJump; button <= clickpack.ButtonRight; button++ {
			if b.held[p][button] {
				b.OnAction(button, p == 1, false)
			}
		}
	}
}

// OnUpdate advances the internal clock by dt seconds
func (b *Bot) OnUpdate(dt float64) {
	b.clock.tick(dt)
}

// SetPlaylayerTime supplies the game clock in seconds
func (b *Bot) SetPlaylayerTime(t float64) {
	b.clock.set(t)
}

// Now returns the current dispatcher time in seconds
func (b *Bot) Now() float64 {
	return b.clock.seconds()
}

func (b *Bot) noisePlayer() NoisePlayer {
	np, _ := b.player.(NoisePlayer)
	return np
}

// startNoise and stopNoise expect noiseMu held
func (b *Bot) startNoise(pack *clickpack.Clickpack) {
	if !b.cfg.PlayNoise || pack == nil || !pack.HasNoise() {
		return
	}
	np := b.noisePlayer()
	if np == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.stats.Panics.Add(1)
			log.Printf("bot: audio backend panic starting noise: %v", r)
		}
	}()
	np.PlayNoise(pack.Noise(), b.cfg.NoiseVolume)
}

func (b *Bot) stopNoise() {
	np := b.noisePlayer()
	if np == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.stats.Panics.Add(1)
			log.Printf("bot: audio backend panic stopping noise: %v", r)
		}
	}()
	np.StopNoise()
}
