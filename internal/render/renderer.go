package render

import (
	"image/color"
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/game"
	"git.lost.host/meutraa/dreamdirect/internal/theme"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(col, row uint16, content string, frames int)
	RenderLoop(framePeriod time.Duration, render func(now time.Time) bool)
	Fill(row, column uint16, message string)
	FillColor(row, column uint16, color color.RGBA, message string)
	Clear()

	// DrawField draws the hit bar and every arrow for this frame
	DrawField(l Layout, th theme.Theme, arrows []game.Snapshot)
}
