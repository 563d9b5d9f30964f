package clickpack

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// Bank indexes the six PlayerClicks banks of a clickpack
type Bank int

const (
	BankPlayer1 Bank = iota
	BankPlayer2
	BankLeft1
	BankRight1
	BankLeft2
	BankRight2
	bankCount
)

// Banks lists all banks in index order
var Banks = [bankCount]Bank{BankPlayer1, BankPlayer2, BankLeft1, BankRight1, BankLeft2, BankRight2}

var bankNames = [bankCount]string{"player1", "player2", "left1", "right1", "left2", "right2"}

func (b Bank) String() string {
	if b < 0 || b >= bankCount {
		return fmt.Sprintf("bank(%d)", int(b))
	}
	return bankNames[b]
}

// IsPlatformer reports whether the bank holds left/right sounds
func (b Bank) IsPlatformer() bool {
	return b >= BankLeft1 && b <= BankRight2
}

// subdirOrder is the order player subdirectories are probed in
var subdirOrder = [bankCount]Bank{BankPlayer1, BankPlayer2, BankLeft1, BankLeft2, BankRight1, BankRight2}

// noisePrefixes are matched against lowercased file names
var noisePrefixes = []string{"noise", "whitenoise", "pcnoise", "background"}

// bankOrder is the cross-bank fallback per [button-1][player2]
var bankOrder = [3][2][bankCount]Bank{
	{ // jump
		{BankPlayer1, BankPlayer2, BankLeft1, BankRight1, BankLeft2, BankRight2},
		{BankPlayer2, BankPlayer1, BankLeft2, BankRight2, BankLeft1, BankRight1},
	},
	{ // left
		{BankLeft1, BankRight1, BankPlayer1, BankLeft2, BankRight2, BankPlayer2},
		{BankLeft2, BankRight2, BankPlayer2, BankLeft1, BankRight1, BankPlayer1},
	},
	{ // right
		{BankRight1, BankLeft1, BankPlayer1, BankRight2, BankLeft2, BankPlayer2},
		{BankRight2, BankLeft2, BankPlayer2, BankRight1, BankLeft1, BankPlayer1},
	},
}

// BankOrder returns the bank fallback order for a button/player combination
func BankOrder(button Button, player2 bool) [bankCount]Bank {
	row := 0
	if button >= ButtonJump && button <= ButtonRight {
		row = int(button) - 1
	}
	p := 0
	if player2 {
		p = 1
	}
	return bankOrder[row][p]
}

// Clickpack is six categorised banks plus an optional ambient noise sample
// Read-only once LoadFromPath returns; replace it wholesale instead of mutating
type Clickpack struct {
	banks               [bankCount]PlayerClicks
	noise               *Sample
	numSounds           int
	hasPlatformerSounds bool
	name                string
	path                string
}

// New returns an empty clickpack
func New() *Clickpack {
	return &Clickpack{}
}

// Load builds a new clickpack from root
func Load(root string, target LoadFor) (*Clickpack, error) {
	cp := New()
	if err := cp.LoadFromPath(root, target); err != nil {
		return nil, err
	}
	return cp, nil
}

// Clone returns an independent copy sharing the immutable samples
func (cp *Clickpack) Clone() *Clickpack {
	c := *cp
	return &c
}

// Bank returns the PlayerClicks for b
func (cp *Clickpack) Bank(b Bank) *PlayerClicks {
	return &cp.banks[b]
}

// Noise returns the ambient noise sample or nil
func (cp *Clickpack) Noise() *Sample { return cp.noise }

// HasNoise reports whether an ambient noise sample was found
func (cp *Clickpack) HasNoise() bool { return cp.noise != nil }

// NumSounds returns the sample count recorded at the end of the last load
func (cp *Clickpack) NumSounds() int { return cp.numSounds }

// HasPlatformerSounds reports whether any left/right bank holds samples
func (cp *Clickpack) HasPlatformerSounds() bool { return cp.hasPlatformerSounds }

// Name returns the base name of the clickpack directory
func (cp *Clickpack) Name() string { return cp.name }

// Path returns the clickpack root directory
func (cp *Clickpack) Path() string { return cp.path }

func (cp *Clickpack) countSounds() int {
	n := 0
	for i := range cp.banks {
		n += cp.banks[i].NumSounds()
	}
	return n
}

// LoadFromPath populates the clickpack from a directory tree
//
// With LoadForAll every player subdirectory loads into its own bank and noise
// is searched for. A targeted load clears only that bank, fills it from the
// first player subdirectory that yields samples (or from the root itself) and
// leaves noise and the other banks untouched.
func (cp *Clickpack) LoadFromPath(root string, target LoadFor) error {
	log.Printf("clickpack: loading from %q for %s", root, target)
	cp.path = root
	cp.name = filepath.Base(root)

	targetBank, targeted := target.Bank()
	if targeted {
		cp.banks[targetBank].Clear()
	}

	for i, bank := range subdirOrder {
		dir := filepath.Join(root, bank.String())

		pc := &cp.banks[bank]
		if targeted {
			pc = &cp.banks[targetBank]
			if i > 0 && !pc.IsEmpty() {
				continue
			}
		}

		pc.LoadFromSubdirs(dir)
		if targeted && pc.IsEmpty() {
			log.Printf("clickpack: directory %q was not found or has no clicks, trying %q", dir, root)
			pc.LoadFromSubdirs(root)
		}

		if !targeted && cp.noise == nil {
			cp.loadNoise(dir)
		}
	}

	if cp.countSounds() == 0 {
		log.Printf("clickpack: no player folders found in %q, assuming there is only one player", root)
		cp.banks[BankPlayer1].LoadFromSubdirs(root)
	}

	if !targeted && cp.noise == nil {
		cp.loadNoise(root)
	}

	cp.numSounds = cp.countSounds()
	cp.hasPlatformerSounds = false
	for _, b := range []Bank{BankLeft1, BankRight1, BankLeft2, BankRight2} {
		if !cp.banks[b].IsEmpty() {
			cp.hasPlatformerSounds = true
		}
	}

	cp.logSummary()

	if cp.numSounds == 0 {
		return fmt.Errorf("%s: %w", root, ErrNoClicks)
	}
	return nil
}

func (cp *Clickpack) loadNoise(dir string) {
	path, ok := findNoiseFile(dir)
	if !ok {
		return
	}
	s, err := LoadSample(path)
	if err != nil {
		log.Printf("clickpack: failed to load noise %q: %v", path, err)
		return
	}
	cp.noise = s
}

// findNoiseFile returns the first regular file in dir whose name starts with a noise prefix
func findNoiseFile(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if !hasNoisePrefix(name) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

func hasNoisePrefix(name string) bool {
	for _, p := range noisePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// RandomClick picks a sample for an event using the per-button bank order,
// then the intra-bank preference list of ct
// Returns nil only for an empty clickpack
func (cp *Clickpack) RandomClick(ct ClickType, player2 bool, button Button, rng *rand.Rand) *Sample {
	for _, b := range BankOrder(button, player2) {
		if s := cp.banks[b].RandomClick(ct, rng); s != nil {
			return s
		}
	}
	return nil
}

// BankSummary holds per-bucket counts for one bank
type BankSummary struct {
	Bank    Bank
	Buckets [clickTypeCount]int
	Total   int
}

// Summary reports sample counts for every bank and bucket
func (cp *Clickpack) Summary() []BankSummary {
	out := make([]BankSummary, 0, bankCount)
	for _, b := range Banks {
		s := BankSummary{Bank: b}
		for _, ct := range ClickTypes {
			s.Buckets[ct] = len(cp.banks[b].Bucket(ct))
		}
		s.Total = cp.banks[b].NumSounds()
		out = append(out, s)
	}
	return out
}

func (cp *Clickpack) logSummary() {
	log.Printf("clickpack: %d sounds in %q (noise: %v)", cp.numSounds, cp.path, cp.HasNoise())
	for _, bs := range cp.Summary() {
		log.Printf("    %s: %d sounds", bs.Bank, bs.Total)
		for _, ct := range ClickTypes {
			if n := bs.Buckets[ct]; n != 0 {
				log.Printf("        %s: %d", ct, n)
			}
		}
	}
}
