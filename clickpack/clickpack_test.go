package clickpack

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
)

func assertNumSoundsInvariant(t *testing.T, cp *Clickpack) {
	t.Helper()
	total := 0
	for _, b := range Banks {
		total += cp.Bank(b).NumSounds()
	}
	if cp.NumSounds() <= 0 || cp.NumSounds() != total {
		t.Fatalf("NumSounds() = %d, banks sum to %d", cp.NumSounds(), total)
	}
}

func TestLoadFullLayout(t *testing.T) {
	root := buildPack(t, map[string]int{
		"player1/clicks/1.wav":    64,
		"player1/releases/1.wav":  64,
		"player2/clicks/1.wav":    64,
		"left1/clicks/1.wav":      64,
		"right2/softclicks/1.wav": 64,
		"noise.wav":               256,
	})

	cp, err := Load(root, LoadForAll)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertNumSoundsInvariant(t, cp)

	if cp.NumSounds() != 5 {
		t.Errorf("expected 5 sounds, got %d", cp.NumSounds())
	}
	if cp.Name() != "pack" || cp.Path() != root {
		t.Errorf("unexpected name/path %q %q", cp.Name(), cp.Path())
	}
	if !cp.HasPlatformerSounds() {
		t.Error("expected platformer sounds")
	}
	if !cp.HasNoise() {
		t.Error("expected noise to be found in root")
	}
	if n := len(cp.Bank(BankRight2).Bucket(SoftClick)); n != 1 {
		t.Errorf("expected right2 softclick, got %d", n)
	}
	if !cp.Bank(BankLeft2).IsEmpty() || !cp.Bank(BankRight1).IsEmpty() {
		t.Error("expected left2/right1 to stay empty")
	}
}

func TestNoiseFoundInPlayerSubdir(t *testing.T) {
	root := buildPack(t, map[string]int{
		"player1/clicks/1.wav":        64,
		"player1/whitenoise_loop.wav": 128,
		"player2/clicks/1.wav":        64,
	})
	cp, err := Load(root, LoadForAll)
	if err != nil {
		t.Fatal(err)
	}
	if !cp.HasNoise() {
		t.Fatal("expected noise from player1 directory")
	}
	if filepath.Base(cp.Noise().Path()) != "whitenoise_loop.wav" {
		t.Errorf("unexpected noise file %s", cp.Noise().Path())
	}
}

func TestFallbackLattice(t *testing.T) {
	root := buildPack(t, map[string]int{
		"player1/clicks/1.wav":   64,
		"player1/clicks/2.wav":   64,
		"player1/releases/1.wav": 64,
	})
	cp, err := Load(root, LoadForAll)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		if got := sampleDir(cp.RandomClick(HardClick, false, ButtonJump, rng)); got != "player1/clicks" {
			t.Fatalf("HardClick: got sample from %q", got)
		}
		if got := sampleDir(cp.RandomClick(MicroRelease, false, ButtonJump, rng)); got != "player1/releases" {
			t.Fatalf("MicroRelease: got sample from %q", got)
		}
	}
}

func TestCrossBankFallback(t *testing.T) {
	root := buildPack(t, map[string]int{
		"player2/clicks/1.wav": 64,
	})
	cp, err := Load(root, LoadForAll)
	if err != nil {
		t.Fatal(err)
	}
	if cp.HasPlatformerSounds() {
		t.Fatal("expected no platformer sounds")
	}
	rng := rand.New(rand.NewSource(3))

	if got := sampleDir(cp.RandomClick(Click, false, ButtonJump, rng)); got != "player2/clicks" {
		t.Errorf("Jump/p1: got %q", got)
	}
	if got := sampleDir(cp.RandomClick(Click, false, ButtonLeft, rng)); got != "player2/clicks" {
		t.Errorf("Left/p1: got %q", got)
	}
}

func TestBankOrderTable(t *testing.T) {
	tests := []struct {
		button  Button
		player2 bool
		want    [6]Bank
	}{
		{ButtonJump, false, [6]Bank{BankPlayer1, BankPlayer2, BankLeft1, BankRight1, BankLeft2, BankRight2}},
		{ButtonJump, true, [6]Bank{BankPlayer2, BankPlayer1, BankLeft2, BankRight2, BankLeft1, BankRight1}},
		{ButtonLeft, false, [6]Bank{BankLeft1, BankRight1, BankPlayer1, BankLeft2, BankRight2, BankPlayer2}},
		{ButtonLeft, true, [6]Bank{BankLeft2, BankRight2, BankPlayer2, BankLeft1, BankRight1, BankPlayer1}},
		{ButtonRight, false, [6]Bank{BankRight1, BankLeft1, BankPlayer1, BankRight2, BankLeft2, BankPlayer2}},
		{ButtonRight, true, [6]Bank{BankRight2, BankLeft2, BankPlayer2, BankRight1, BankLeft1, BankPlayer1}},
	}
	for _, tt := range tests {
		if got := BankOrder(tt.button, tt.player2); got != tt.want {
			t.Errorf("BankOrder(%s, %v) = %v, want %v", tt.button, tt.player2, got, tt.want)
		}
	}
}

func TestPlatformerButtonPrefersOwnBank(t *testing.T) {
	root := buildPack(t, map[string]int{
		"player1/clicks/1.wav": 64,
		"right1/clicks/1.wav":  64,
		"left2/clicks/1.wav":   64,
	})
	cp, err := Load(root, LoadForAll)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(5))

	cases := []struct {
		button  Button
		player2 bool
		want    string
	}{
		{ButtonJump, false, "player1/clicks"},
		{ButtonLeft, false, "right1/clicks"},
		{ButtonRight, false, "right1/clicks"},
		{ButtonLeft, true, "left2/clicks"},
		{ButtonRight, true, "left2/clicks"},
		{ButtonJump, true, "player1/clicks"},
	}
	for _, c := range cases {
		if got := sampleDir(cp.RandomClick(Click, c.player2, c.button, rng)); got != c.want {
			t.Errorf("%s p2=%v: got %q, want %q", c.button, c.player2, got, c.want)
		}
	}
}

func TestFlatLayout(t *testing.T) {
	root := buildPack(t, map[string]int{
		"clicks/1.wav":   64,
		"clicks/2.wav":   64,
		"releases/1.wav": 64,
	})
	cp, err := Load(root, LoadForAll)
	if err != nil {
		t.Fatal(err)
	}
	assertNumSoundsInvariant(t, cp)

	if n := cp.Bank(BankPlayer1).NumSounds(); n != 3 {
		t.Errorf("expected player1 to hold 3 sounds, got %d", n)
	}
	for _, b := range Banks[1:] {
		if !cp.Bank(b).IsEmpty() {
			t.Errorf("expected %s to be empty", b)
		}
	}
	if cp.HasPlatformerSounds() {
		t.Error("flat layout must not report platformer sounds")
	}
}

func TestTargetedReloadPreservesOtherBanksAndNoise(t *testing.T) {
	full := buildPack(t, map[string]int{
		"player1/clicks/1.wav": 64,
		"player2/clicks/1.wav": 64,
		"left1/clicks/1.wav":   64,
		"right1/clicks/1.wav":  64,
		"left2/clicks/1.wav":   64,
		"right2/clicks/1.wav":  64,
		"noise.wav":            128,
	})
	cp, err := Load(full, LoadForAll)
	if err != nil {
		t.Fatal(err)
	}
	noise := cp.Noise()
	before := cp.Summary()

	replacement := buildPack(t, map[string]int{
		"clicks/a.wav": 64,
		"clicks/b.wav": 64,
	})
	next := cp.Clone()
	if err := next.LoadFromPath(replacement, LoadForLeft2); err != nil {
		t.Fatalf("targeted load: %v", err)
	}
	assertNumSoundsInvariant(t, next)

	if n := len(next.Bank(BankLeft2).Bucket(Click)); n != 2 {
		t.Errorf("expected left2 to be replaced with 2 clicks, got %d", n)
	}
	if next.Noise() != noise {
		t.Error("targeted load must not touch noise")
	}
	after := next.Summary()
	for _, b := range Banks {
		if b == BankLeft2 {
			continue
		}
		if before[b] != after[b] {
			t.Errorf("%s changed: %+v -> %+v", b, before[b], after[b])
		}
	}

	// the original pack is untouched
	if n := len(cp.Bank(BankLeft2).Bucket(Click)); n != 1 {
		t.Errorf("original pack mutated, left2 has %d clicks", n)
	}
}

func TestTargetedLoadUsesFirstSubdirWithSamples(t *testing.T) {
	root := buildPack(t, map[string]int{
		"right1/softclicks/1.wav": 64,
		"right2/clicks/1.wav":     64,
	})
	cp := New()
	if err := cp.LoadFromPath(root, LoadForPlayer2); err != nil {
		t.Fatal(err)
	}
	pc := cp.Bank(BankPlayer2)
	if pc.NumSounds() != 1 || len(pc.Bucket(SoftClick)) != 1 {
		t.Errorf("expected right1 softclicks in player2, got %d sounds", pc.NumSounds())
	}
	if cp.HasNoise() {
		t.Error("targeted load must not look for noise")
	}
}

// Targeted loads of a flat pack scoop up the root category directories
func TestTargetedLoadOnFlatPackReadsRoot(t *testing.T) {
	root := buildPack(t, map[string]int{
		"clicks/1.wav":     64,
		"hardclicks/1.wav": 64,
	})
	cp := New()
	if err := cp.LoadFromPath(root, LoadForRight1); err != nil {
		t.Fatal(err)
	}
	if n := cp.Bank(BankRight1).NumSounds(); n != 2 {
		t.Errorf("expected right1 to hold 2 sounds from root, got %d", n)
	}
	if !cp.Bank(BankPlayer1).IsEmpty() {
		t.Error("player1 must stay empty on a targeted load")
	}
	if !cp.HasPlatformerSounds() {
		t.Error("expected platformer sounds")
	}
}

func TestLoadNoClicks(t *testing.T) {
	root := buildPack(t, map[string]int{
		"player1/unrelated/1.wav": 64,
		"noise.wav":               64,
	})
	cp, err := Load(root, LoadForAll)
	if !errors.Is(err, ErrNoClicks) {
		t.Fatalf("expected ErrNoClicks, got %v", err)
	}
	if cp != nil {
		t.Error("expected nil clickpack on error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing"), LoadForAll); !errors.Is(err, ErrNoClicks) {
		t.Fatalf("missing dir: expected ErrNoClicks, got %v", err)
	}
}

func TestRandomClickEmptyPack(t *testing.T) {
	if s := New().RandomClick(Click, false, ButtonJump, nil); s != nil {
		t.Error("expected nil from an empty clickpack")
	}
}
