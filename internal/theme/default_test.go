package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		arrow game.Snapshot
		glyph string
	}{
		{game.Snapshot{Type: game.Anchor, Display: game.Left}, "←"},
		{game.Snapshot{Type: game.Ghost, Display: game.Up, Target: game.Down}, "↑"},
		{game.Snapshot{Type: game.Fade, Display: game.Up, Hidden: true}, "•"},
		{game.Snapshot{Type: game.Spinner, Display: game.Down, Angle: 95}, "→"},
		{game.Snapshot{Type: game.Spinner, Display: game.Down, Angle: 180}, "↓"},
		{game.Snapshot{Type: game.Double, Display: game.Right}, "⇉"},
		{game.Snapshot{Type: game.HoldSolid, Display: game.Down}, "▼"},
		{game.Snapshot{Type: game.HoldHollow, Display: game.Left}, "◁"},
	}

	th := &DefaultTheme{}
	for _, test := range tests {
		if g := th.Glyph(test.arrow); g != test.glyph {
			t.Log("arrow   ", test.arrow)
			t.Log("got     ", g)
			t.Log("expected", test.glyph)
			t.Fail()
		}
	}
}

func TestColors(t *testing.T) {
	th := &DefaultTheme{}
	seen := map[[3]uint8]game.ArrowType{}
	for _, at := range game.ArrowTypes {
		c := th.Color(at)
		key := [3]uint8{c.R, c.G, c.B}
		if other, ok := seen[key]; ok {
			t.Fatalf("%v and %v share a colour", at, other)
		}
		seen[key] = at
	}

	s := th.RenderArrow(game.Snapshot{Type: game.Anchor, Display: game.Up})
	if !strings.HasPrefix(s, "\033[38;2;236;195;0m") || !strings.Contains(s, "↑") {
		t.Fatalf("rendered %q", s)
	}
}
