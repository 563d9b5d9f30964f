package clickpack

import (
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// categoryNames maps a canonical directory tag to its bucket
var categoryNames = map[string]ClickType{
	"hardclick":     HardClick,
	"hardclicks":    HardClick,
	"hardrelease":   HardRelease,
	"hardreleases":  HardRelease,
	"click":         Click,
	"clicks":        Click,
	"release":       Release,
	"releases":      Release,
	"softclick":     SoftClick,
	"softclicks":    SoftClick,
	"softrelease":   SoftRelease,
	"softreleases":  SoftRelease,
	"microclick":    MicroClick,
	"microclicks":   MicroClick,
	"microrelease":  MicroRelease,
	"microreleases": MicroRelease,
}

// dirTag lowercases name and drops every non-letter, so "Soft_Clicks 2" becomes "softclicks"
func dirTag(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// CategoryForDir classifies a directory name into a bucket
func CategoryForDir(name string) (ClickType, bool) {
	ct, ok := categoryNames[dirTag(name)]
	return ct, ok
}

// PlayerClicks is a bank of eight categorised sample buckets
// Buckets are replaced wholesale on load, never appended to, so a shallow
// copy of the array is an independent bank
type PlayerClicks struct {
	buckets [clickTypeCount][]*Sample
}

// Bucket returns the samples stored for ct
func (pc *PlayerClicks) Bucket(ct ClickType) []*Sample {
	if ct < 0 || int(ct) >= clickTypeCount {
		return nil
	}
	return pc.buckets[ct]
}

// SetBucket replaces the samples stored for ct
func (pc *PlayerClicks) SetBucket(ct ClickType, samples []*Sample) {
	if ct < 0 || int(ct) >= clickTypeCount {
		return
	}
	pc.buckets[ct] = samples
}

// NumSounds returns the total across all buckets
func (pc *PlayerClicks) NumSounds() int {
	n := 0
	for _, b := range pc.buckets {
		n += len(b)
	}
	return n
}

// IsEmpty reports whether no bucket holds a sample
func (pc *PlayerClicks) IsEmpty() bool {
	return pc.NumSounds() == 0
}

// Clear drops every bucket
func (pc *PlayerClicks) Clear() {
	for i := range pc.buckets {
		pc.buckets[i] = nil
	}
}

// LoadFromSubdirs runs LoadFromDir on every immediate child of path
func (pc *PlayerClicks) LoadFromSubdirs(path string) {
	entries, err := os.ReadDir(path)
	if err != nil {
		log.Printf("clickpack: failed to read directory %q: %v", path, err)
		return
	}
	for _, entry := range entries {
		pc.LoadFromDir(filepath.Join(path, entry.Name()))
	}
}

// LoadFromDir replaces the bucket whose category matches the directory name
// Files are ignored; unmatched directories are skipped with a warning
func (pc *PlayerClicks) LoadFromDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	ct, ok := CategoryForDir(filepath.Base(path))
	if !ok {
		log.Printf("clickpack: directory %q did not match any pattern", path)
		return
	}

	pc.buckets[ct] = readSamplesInDir(path)
}

// readSamplesInDir loads every regular file in dir, skipping failures
func readSamplesInDir(dir string) []*Sample {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("clickpack: failed to read directory %q: %v", dir, err)
		return nil
	}

	var samples []*Sample
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		s, err := LoadSample(path)
		if err != nil {
			log.Printf("clickpack: failed to load %q: %v", path, err)
			continue
		}
		samples = append(samples, s)
	}
	return samples
}

// RandomClick walks ct's preference list and returns a uniformly random
// sample from the first non-empty bucket, or nil when the bank is empty
// A nil rng uses the package-level source
func (pc *PlayerClicks) RandomClick(ct ClickType, rng *rand.Rand) *Sample {
	for _, typ := range ct.Preferred() {
		if typ == ClickNone {
			continue
		}
		bucket := pc.buckets[typ]
		if len(bucket) == 0 {
			continue
		}
		return bucket[randIntn(rng, len(bucket))]
	}
	return nil
}

func randIntn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
