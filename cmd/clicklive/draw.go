package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clicklive/clickpack"
	"github.com/lixenwraith/clicklive/host"
)

var (
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWarn  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func (h *harness) draw() {
	h.screen.Clear()
	y := 0
	line := func(style tcell.Style, format string, args ...any) {
		drawText(h.screen, 1, y, style, fmt.Sprintf(format, args...))
		y++
	}

	line(styleTitle, "clicklive")
	line(styleDim, "p1: space/w/up jump  a/left  d/right   p2: i jump  j left  l right")
	line(styleDim, "n enter level  x exit  r reset  k death  p pause clock  q/esc quit")
	y++

	stats := host.Stats()
	if stats == nil {
		line(styleWarn, "not initialized")
		h.screen.Show()
		return
	}
	snap := stats.Snapshot()

	pack := "(none)"
	if cp := host.Clickpack(); cp != nil {
		pack = fmt.Sprintf("%s  %d sounds  noise:%v  platformer:%v", cp.Name(), cp.NumSounds(), cp.HasNoise(), cp.HasPlatformerSounds())
	}
	line(styleText, "clickpack   %s", pack)
	line(styleText, "in level    %v   held %d", snap.InLevel, h.holds.held())
	line(styleText, "played      %d   skipped %d   backend panics %d", snap.Played, snap.Skipped, snap.Panics)
	if snap.LastType != clickpack.ClickNone {
		line(styleText, "last        %-14s dt %.3fs  gain %.2f  pitch %.3f", snap.LastType, snap.LastDelta, snap.LastGain, snap.LastPitch)
	}
	y++

	for _, ct := range clickpack.ClickTypes {
		line(styleDim, "  %-14s %d", ct, snap.ByType[ct])
	}

	if h.message != "" {
		y++
		line(styleWarn, "%s", h.message)
	}
	h.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
