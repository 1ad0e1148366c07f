package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) Glyph(a game.Snapshot) string {
	switch {
	case a.Hidden:
		return hiddenSym
	case a.Type == game.Spinner && !a.Resolved:
		// Spinners show where they point right now, not their display
		return syms[game.DirectionFromDegrees(a.Angle)]
	case a.Type == game.Double:
		return doubleSyms[a.Display]
	case a.Type == game.HoldSolid:
		return holdSyms[a.Display]
	case a.Type == game.HoldHollow:
		return hollowSyms[a.Display]
	}
	return syms[a.Display]
}

func (t *DefaultTheme) Color(at game.ArrowType) color.RGBA {
	col, ok := arrowColors[at]
	if !ok {
		return white
	}
	return col
}

func (t *DefaultTheme) RenderArrow(a game.Snapshot) string {
	return paint(t.Color(a.Type), t.Glyph(a))
}

func (t *DefaultTheme) RenderHoldTail(a game.Snapshot) string {
	if a.Held {
		return paint(white, tailSym)
	}
	return paint(t.Color(a.Type), tailSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSyms[lane%len(barSyms)]
}

func (t *DefaultTheme) RenderJudgement(g game.Grade) string {
	return judgementNames[g]
}

func paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	hiddenSym = "•"
	tailSym   = "┃"
)

var (
	syms       = [...]string{"↑", "→", "↓", "←"}
	doubleSyms = [...]string{"⇈", "⇉", "⇊", "⇇"}
	holdSyms   = [...]string{"▲", "▶", "▼", "◀"}
	hollowSyms = [...]string{"△", "▷", "▽", "◁"}
	barSyms    = [...]string{"─────", "─────"}

	white       = color.RGBA{255, 255, 255, 255}
	arrowColors = map[game.ArrowType]color.RGBA{
		game.Ghost:      {173, 236, 236, 255}, // pale blue
		game.Anchor:     {236, 195, 0, 255},   // gold
		game.Wiggler:    {236, 0, 106, 255},   // pink
		game.Spinner:    {106, 0, 236, 255},   // purple
		game.Fade:       {106, 106, 106, 255}, // grey
		game.Double:     {236, 128, 0, 255},   // orange
		game.HoldSolid:  {0, 236, 128, 255},   // green
		game.HoldHollow: {110, 147, 89, 255},  // olive
	}

	judgementNames = map[game.Grade]string{
		game.Perfect: "\033[1;36mPerfect\033[0m",
		game.Great:   "  \033[1;32mGreat\033[0m",
		game.Good:    "   \033[1;33mGood\033[0m",
		game.Miss:    "   \033[1;31mMiss\033[0m",
	}
)
