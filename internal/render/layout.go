package render

import (
	"math"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Layout maps travel progress onto terminal cells.
type Layout struct {
	Rows, Cols uint16
	// Rows between the hit bar and the bottom of the screen
	BarRow uint16
	// Columns between the two lanes
	LaneSpacing uint16
	// Beats an arrow travels from spawn to the hit bar
	TravelBeats float64
}

const spawnRow = 2

func (l Layout) HitRow() uint16 {
	return l.Rows - l.BarRow
}

func (l Layout) LaneCol(lane int) uint16 {
	mid := l.Cols / 2
	if lane == 0 {
		return mid - l.LaneSpacing/2
	}
	return mid + l.LaneSpacing/2
}

// RowsPerBeat is how far an arrow falls in one beat.
func (l Layout) RowsPerBeat() float64 {
	return float64(l.HitRow()-spawnRow) / l.TravelBeats
}

// Position of an arrow head. Arrows that come from the sides travel along the
// hit row from the nearest screen edge instead of falling.
func (l Layout) Position(a game.Snapshot) (row, col uint16) {
	p := math.Min(a.Progress, 1)
	target := l.LaneCol(a.Lane)
	if a.FromSide {
		edge := 1.0
		if a.Lane == 1 {
			edge = float64(l.Cols)
		}
		return l.HitRow(), uint16(math.Round(edge + p*(float64(target)-edge)))
	}
	return uint16(math.Round(spawnRow + p*float64(l.HitRow()-spawnRow))), target
}

// TailLength is the number of cells of hold left above the head.
func (l Layout) TailLength(a game.Snapshot) int {
	if !a.Type.IsHold() || a.Duration <= 0 {
		return 0
	}
	return int(math.Round((1 - a.HoldProgress) * a.Duration * l.RowsPerBeat()))
}

// InField reports whether a cell is on screen below the header.
func (l Layout) InField(row, col uint16) bool {
	return row > 0 && row <= l.Rows && col > 0 && col <= l.Cols
}
