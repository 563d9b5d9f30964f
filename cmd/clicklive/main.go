// Command clicklive is a terminal host for the click dispatcher
//
// Keys stand in for game buttons; the harness enters a level on start and
// feeds frame ticks to the dispatcher clock.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clicklive/clickpack"
	"github.com/lixenwraith/clicklive/host"
)

const frameInterval = 16 * time.Millisecond

// newScreen is replaced in tests that must not touch the real terminal
var newScreen = tcell.NewScreen

var (
	configFlag    = flag.String("config", "", "Config file (default: user config dir)")
	clickpackFlag = flag.String("clickpack", "", "Clickpack directory to load on start")
	loadForFlag   = flag.String("for", "all", "Bank to load: all, player1, player2, left1, right1, left2, right2")
	holdFlag      = flag.Duration("hold", 120*time.Millisecond, "Release a key after this long without a repeat")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/clicklive.log")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code; every exit path goes through the deferred
// Uninitialize so audio is released and the config saved
func run() (code int) {
	logFile := setupLogging(*debugFlag)
	defer func() {
		if logFile != nil {
			logFile.Close()
		}
	}()

	target, err := clickpack.ParseLoadFor(*loadForFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	if err := host.Initialize(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	defer func() {
		if err := host.Uninitialize(); err != nil {
			log.Printf("uninitialize: %v", err)
		}
	}()

	// show_console in the config turns the log on without -debug
	if logFile == nil && host.DoShowConsole() {
		logFile = setupLogging(true)
	}

	var loadErr error
	if *clickpackFlag != "" {
		loadErr = host.LoadClickpack(*clickpackFlag, target)
	}

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}

	// Panic Recovery: the screen.Fini defer below runs first and restores the
	// terminal, then the crash is printed and shutdown continues
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCLICKLIVE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()
	defer screen.Fini()

	h := newHarness(screen, *holdFlag)
	if loadErr != nil {
		h.message = loadErr.Error()
	}
	h.run()
	return 0
}

// harness owns the screen and is the only caller of the host event functions
type harness struct {
	screen  tcell.Screen
	holds   *holdTracker
	message string
	paused  bool
}

func newHarness(screen tcell.Screen, hold time.Duration) *harness {
	h := &harness{screen: screen}
	h.holds = newHoldTracker(hold, func(b binding, push bool) {
		if err := host.OnAction(b.button, b.player2, push); err != nil {
			h.message = err.Error()
		}
	})
	return h
}

func (h *harness) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	host.OnInit(nil)
	last := time.Now()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleEvent(ev) {
				host.OnExit()
				return
			}

		case now := <-ticker.C:
			h.holds.expire(now)
			if !h.paused {
				host.OnUpdate(now.Sub(last).Seconds())
			}
			last = now
			h.draw()
		}
	}
}

// handleEvent returns false when the harness should quit
func (h *harness) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if b, ok := lookupKey(ev); ok {
			h.holds.key(b, time.Now())
			return true
		}
		if ev.Key() == tcell.KeyRune {
			h.command(ev.Rune())
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// command runs the lifecycle shortcuts
func (h *harness) command(r rune) {
	switch r {
	case 'n':
		h.holds.forget()
		host.OnInit(nil)
		h.message = "entered level"
	case 'x':
		h.holds.forget()
		host.OnExit()
		h.message = "left level"
	case 'r':
		host.OnReset()
		h.message = "reset"
	case 'k':
		host.OnDeath()
		h.holds.forget()
		h.message = "death"
	case 'p':
		h.paused = !h.paused
		h.message = fmt.Sprintf("clock paused: %v", h.paused)
	case 'q':
		h.screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}
}
