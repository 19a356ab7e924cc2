package platformer

import (
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Glyphs of the level entities.
const (
	glyphPlatform = '█'
	glyphPlane    = 'X'
	glyphLava     = '~'
	glyphGoal     = 'H'
	glyphPlayer   = 'P'
	glyphLife     = '♥'
)

// fillF places a box of r at truncated float coordinates.
func fillF(d *core.DrawList, x, y float64, w, h int, r rune, c core.Color) {
	d.Fill(core.NewRect(int(x), int(y), w, h), r, c)
}

// DrawLevel returns the glyphs of the level, back to front.
func DrawLevel(lvl *Level) core.DrawList {
	var d core.DrawList

	for _, p := range lvl.Platforms {
		d.Fill(core.NewRect(p.X, p.Y, p.W, p.H), glyphPlatform, core.ColorWhite)
	}
	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]
		fillF(&d, e.X, e.Y, e.Width, e.Height, e.Type.Glyph(), core.ColorMagenta)
	}
	for _, h := range lvl.Planes {
		d.Fill(core.NewRect(h.X, h.Y, h.W, h.H), glyphPlane, core.ColorGray)
	}
	for _, h := range lvl.Lava {
		d.Fill(core.NewRect(h.X, h.Y, h.W, h.H), glyphLava, core.ColorRed)
	}
	for i := range lvl.Hearts {
		h := &lvl.Hearts[i]
		d.Put(int(h.Y), int(h.X), h.Symbol, core.ColorBrightRed)
	}
	g := lvl.Goal
	d.Fill(core.NewRect(g.X, g.Y, g.Width, g.Height), glyphGoal, core.ColorGreen)

	p := &lvl.Player
	fillF(&d, p.X, p.Y, p.Width, p.Height, glyphPlayer, core.ColorYellow)
	return d
}

// hudLives renders the lives row: filled hearts for lost lives, hollow for
// those left.
func hudLives(lives int) string {
	var sb strings.Builder
	sb.WriteString("Lives: ")
	for i := range MaxLives {
		if i < lives {
			sb.WriteString(string(HeartSymbol) + " ")
		} else {
			sb.WriteString(string(glyphLife) + " ")
		}
	}
	return sb.String()
}

// DrawHUD returns the lives counter, the capacity marker and the control hint.
func DrawHUD(gs *GameState, w int) core.DrawList {
	var d core.DrawList
	d.Text(0, 0, hudLives(gs.Lives), core.ColorBrightRed)

	marker := " [" + strings.TrimSpace(strings.Repeat(string(glyphLife)+" ", MaxLives)) + "] "
	d.Text(0, w-len([]rune(marker))-1, marker, core.ColorRed)

	d.Text(1, 0, ControlHint, core.ColorGray)
	return d
}

// centered appends s centred on row.
func centered(d *core.DrawList, row, w int, s string, c core.Color) {
	d.Text(row, (w-len([]rune(s)))/2, s, c)
}

// DrawList returns everything the session shows on a w by h surface.
func (s *Session) DrawList(w, h int) core.DrawList {
	d := DrawLevel(s.level)
	d = append(d, DrawHUD(s.gs, w)...)

	switch s.state {
	case StatePaused:
		centered(&d, h/2, w, PauseBanner, core.ColorBrightYellow)
	case StateCleared:
		centered(&d, h/2, w, ClearedBanner, core.ColorGreen)
	}
	return d
}
