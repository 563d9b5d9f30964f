// Package host exposes the dispatcher as a process-wide instance behind free
// functions, the shape a game hook calls into
//
// Initialize and Uninitialize exclude every other call. Event functions are
// serialised so the bot never runs re-entrantly. LoadClickpack runs beside
// event delivery; the bot swaps clickpacks atomically.
package host

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lixenwraith/clicklive/audio"
	"github.com/lixenwraith/clicklive/bot"
	"github.com/lixenwraith/clicklive/clickpack"
	"github.com/lixenwraith/clicklive/config"
	"github.com/lixenwraith/clicklive/service"
	"github.com/lixenwraith/clicklive/status"
)

// Sentinel errors
var (
	ErrAlreadyInitialized = errors.New("host already initialized")
	ErrNotInitialized     = errors.New("host not initialized")
)

type instance struct {
	configPath string
	saved      *config.Config // file contents plus clickpack choices made at runtime
	persist    bool           // false when the file could not be read or parsed
	cfg        *config.Config // saved plus environment overrides
	hub        *service.Hub
	bot        *bot.Bot
}

var (
	lifecycle sync.RWMutex // write: Initialize/Uninitialize
	events    sync.Mutex   // serialises dispatch
	current   *instance
)

// Initialize loads the config at configPath (DefaultPath when empty), applies
// environment overrides, opens audio and loads the configured clickpack
func Initialize(configPath string) error {
	lifecycle.Lock()
	defer lifecycle.Unlock()

	if current != nil {
		return ErrAlreadyInitialized
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	// saved is what Uninitialize writes back; env overrides only reach the
	// effective copy so a one-off run never rewrites the user's file
	saved, err := config.Load(configPath)
	persist := true
	if err != nil {
		log.Printf("host: %v, using defaults; config will not be saved", err)
		persist = false
	}
	cfg := *saved
	config.ApplyEnv(&cfg)
	cfg.Validate()

	hub := service.NewHub()
	as := audio.NewService()
	for _, svc := range []service.Service{as, NewBotService(as)} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(&cfg); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	// Typed handles come back from the hub after start
	bs := service.MustGet[*BotService](hub, "bot")
	current = &instance{
		configPath: configPath,
		saved:      saved,
		persist:    persist,
		cfg:        &cfg,
		hub:        hub,
		bot:        bs.Bot(),
	}
	log.Printf("host: initialized (config %s, services %v, audio disabled: %v)", configPath, hub.Order(), as.IsDisabled())
	return nil
}

// Uninitialize persists the config and releases audio
func Uninitialize() error {
	lifecycle.Lock()
	defer lifecycle.Unlock()

	if current == nil {
		return ErrNotInitialized
	}
	inst := current
	current = nil

	inst.hub.StopAll()
	if !inst.persist {
		log.Printf("host: leaving %s untouched, it failed to load", inst.configPath)
		return nil
	}
	if err := config.Save(inst.configPath, inst.saved); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	log.Printf("host: uninitialized")
	return nil
}

// IsInitialized reports whether a process-wide instance exists
func IsInitialized() bool {
	lifecycle.RLock()
	defer lifecycle.RUnlock()
	return current != nil
}

// dispatch runs fn against the bot with event ordering held; no-op when uninitialized
func dispatch(fn func(b *bot.Bot)) {
	lifecycle.RLock()
	defer lifecycle.RUnlock()
	if current == nil {
		return
	}
	events.Lock()
	defer events.Unlock()
	fn(current.bot)
}

// OnInit enters a level; playlayer is the opaque host handle and may be nil
func OnInit(playlayer any) {
	dispatch(func(b *bot.Bot) { b.OnInit(playlayer) })
}

// OnReset resets per-player timers
func OnReset() {
	dispatch(func(b *bot.Bot) { b.OnReset() })
}

// OnExit leaves the level
func OnExit() {
	dispatch(func(b *bot.Bot) { b.OnExit() })
}

// OnDeath synthesizes releases for held buttons
func OnDeath() {
	dispatch(func(b *bot.Bot) { b.OnDeath() })
}

// OnUpdate advances the internal clock by dt seconds
func OnUpdate(dt float64) {
	dispatch(func(b *bot.Bot) { b.OnUpdate(dt) })
}

// OnAction classifies and plays one event; button is the host code 1..=3
func OnAction(button uint8, player2, push bool) error {
	btn, err := clickpack.ButtonFromU8(button)
	if err != nil {
		log.Printf("host: %v", err)
		return err
	}
	dispatch(func(b *bot.Bot) { b.OnAction(btn, player2, push) })
	return nil
}

// SetIsInLevel overrides the in-level flag
func SetIsInLevel(v bool) {
	dispatch(func(b *bot.Bot) { b.SetIsInLevel(v) })
}

// SetPlaylayerTime supplies the game clock in seconds
func SetPlaylayerTime(t float64) {
	dispatch(func(b *bot.Bot) { b.SetPlaylayerTime(t) })
}

// DoForcePlayer2Sounds reports the force_player2_sounds toggle
func DoForcePlayer2Sounds() bool {
	var v bool
	dispatch(func(b *bot.Bot) { v = b.ForcePlayer2Sounds() })
	return v
}

// DoUseAlternateHook reports the use_alternate_hook toggle
func DoUseAlternateHook() bool {
	var v bool
	dispatch(func(b *bot.Bot) { v = b.UseAlternateHook() })
	return v
}

// DoShowConsole reports the show_console toggle
func DoShowConsole() bool {
	var v bool
	dispatch(func(b *bot.Bot) { v = b.ShowConsole() })
	return v
}

// LoadClickpack replaces the active clickpack and records the choice in the config
// The previous clickpack stays active on error
func LoadClickpack(path string, target clickpack.LoadFor) error {
	lifecycle.RLock()
	defer lifecycle.RUnlock()
	if current == nil {
		return ErrNotInitialized
	}

	if err := current.bot.LoadClickpack(path, target); err != nil {
		return err
	}

	events.Lock()
	for _, cfg := range []*config.Config{current.cfg, current.saved} {
		cfg.ClickpackPath = path
		cfg.LoadFor = target
	}
	events.Unlock()
	return nil
}

// Stats returns the dispatcher counters, nil when uninitialized
func Stats() *status.Stats {
	lifecycle.RLock()
	defer lifecycle.RUnlock()
	if current == nil {
		return nil
	}
	return current.bot.Stats()
}

// Clickpack returns the active clickpack, nil when none
func Clickpack() *clickpack.Clickpack {
	lifecycle.RLock()
	defer lifecycle.RUnlock()
	if current == nil {
		return nil
	}
	return current.bot.Clickpack()
}
