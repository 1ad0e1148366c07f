package theme

import (
	"image/color"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

type Theme interface {
	// Glyph is the character drawn for an arrow in its current state
	Glyph(a game.Snapshot) string
	Color(t game.ArrowType) color.RGBA
	RenderArrow(a game.Snapshot) string
	RenderHoldTail(a game.Snapshot) string
	RenderHitField(lane int) string
	RenderJudgement(g game.Grade) string
}
