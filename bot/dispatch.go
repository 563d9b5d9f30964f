package bot

import (
	"log"
	"math"

	"github.com/lixenwraith/clicklive/clickpack"
)

// OnAction classifies one press or release and plays a matching sample
func (b *Bot) OnAction(button clickpack.Button, player2, push bool) {
	if !validButton(button) {
		log.Printf("bot: ignoring invalid button %d", button)
		return
	}
	// Held state tracks the physical player, before any forcing
	b.held[playerIndex(player2)][button] = push

	pack := b.pack.Load()
	if pack == nil || (b.cfg.OnlyInLevel && !b.isInLevel.Load()) {
		b.stats.Skipped.Add(1)
		return
	}

	if b.cfg.ForcePlayer2Sounds {
		player2 = true
	}
	p := playerIndex(player2)

	// Press and release gaps are tracked separately per player
	now := b.clock.seconds()
	last := &b.tRel[p]
	if push {
		last = &b.tPress[p]
	}
	dt := gap(now, *last)
	*last = now

	// Classify, then fall back through the pack's type chain
	ct := clickpack.FromTime(push, dt, b.cfg.Timings)
	sample := pack.RandomClick(ct, player2, button, b.rng)
	if sample == nil {
		b.stats.Skipped.Add(1)
		return
	}

	gain := b.gain(dt, push, button)
	pitch := b.pitch()
	b.play(sample, gain, pitch)
	b.stats.RecordPlay(ct, dt, gain, pitch)
}

// gap returns the time since last, infinite when last is unset or in the future
func gap(now, last float64) float64 {
	dt := now - last
	if math.IsNaN(dt) || dt < 0 {
		return math.Inf(1)
	}
	return dt
}

// gain computes the per-shot volume from the spam gap
func (b *Bot) gain(dt float64, push bool, button clickpack.Button) float64 {
	v := &b.cfg.Volume
	g := v.GlobalVolume

	if v.Enabled && (push || v.ChangeReleasesVolume) {
		spam := clamp(dt, 0, v.SpamTime)
		offset := (v.SpamTime - spam) * v.SpamVolOffsetFactor
		g += clamp(offset, -v.MaxSpamVolOffset, v.MaxSpamVolOffset)
		if v.VolumeVar > 0 {
			g += (b.rng.Float64()*2 - 1) * v.VolumeVar
		}
	}

	if button.IsPlatformer() {
		g *= v.PlatformerVolumeFactor
	}
	return math.Max(g, 0)
}

// pitch draws a playback rate uniformly from the configured range
func (b *Bot) pitch() float64 {
	p := b.cfg.Pitch
	return p.From + b.rng.Float64()*(p.To-p.From)
}

// play hands the shot to the backend; a backend panic is logged and dropped
func (b *Bot) play(sample *clickpack.Sample, gain, pitch float64) {
	if b.player == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.stats.Panics.Add(1)
			log.Printf("bot: audio backend panic: %v", r)
		}
	}()
	b.player.Play(sample, gain, pitch)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
