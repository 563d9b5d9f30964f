package bot

import (
	"fmt"
	"log"

	"github.com/lixenwraith/clicklive/clickpack"
)

// LoadClickpack loads root and makes it the active clickpack
// A targeted load starts from a copy of the active pack so untouched banks
// survive. On error the active clickpack is left in place.
func (b *Bot) LoadClickpack(root string, target clickpack.LoadFor) error {
	prev := b.pack.Load()

	var next *clickpack.Clickpack
	if target != clickpack.LoadForAll && prev != nil {
		next = prev.Clone()
	} else {
		next = clickpack.New()
	}

	if err := next.LoadFromPath(root, target); err != nil {
		return fmt.Errorf("load clickpack: %w", err)
	}

	b.SetClickpack(next)
	log.Printf("bot: clickpack %q active (%d sounds, target %s)", next.Name(), next.NumSounds(), target)
	return nil
}

// SetClickpack swaps the active clickpack; nil unloads it
// The ambient loop restarts on the new pack when in a level
func (b *Bot) SetClickpack(pack *clickpack.Clickpack) {
	b.noiseMu.Lock()
	defer b.noiseMu.Unlock()

	prev := b.pack.Swap(pack)
	if pack != nil {
		b.stats.Clickpack.Store(pack.Name())
	} else {
		b.stats.Clickpack.Store("")
	}

	if prev != nil && prev.HasNoise() {
		b.stopNoise()
	}
	if b.isInLevel.Load() {
		b.startNoise(pack)
	}
}
