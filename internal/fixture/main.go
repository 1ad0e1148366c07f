// Package fixture provides fixtures shared by package tests.
package fixture

import (
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Clock is a manually advanced time source.
type Clock struct {
	Start time.Time
	T     time.Time
}

func NewClock() *Clock {
	t := time.Unix(1700000000, 0)
	return &Clock{Start: t, T: t}
}

func (c *Clock) Now() time.Time {
	return c.T
}

func (c *Clock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// At moves the clock to ms milliseconds after Start.
func (c *Clock) At(ms float64) {
	c.T = c.Start.Add(time.Duration(ms * float64(time.Millisecond)))
}

// Level is a single-lane level with no chords or swing.
func Level(bpm float64, count int, types ...game.ArrowType) game.Level {
	if len(types) == 0 {
		types = []game.ArrowType{game.Anchor}
	}
	return game.Level{
		Level:                  1,
		BPM:                    bpm,
		ArrowTypes:             types,
		ArrowCount:             count,
		TimingWindowMultiplier: 1,
		DifficultyMultiplier:   1,
		HoldBeats:              game.DefaultHoldBeats,
	}
}
