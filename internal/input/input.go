// Package input turns keyboard devices into directional press and release
// events.
package input

import (
	"git.lost.host/meutraa/dreamdirect/internal/game"
)

type Action uint8

const (
	Press Action = iota
	Release
	Pause
	Quit
)

type Event struct {
	Action    Action
	Direction game.Direction
}

type Source interface {
	Open() error
	Close() error
	Events() <-chan Event
}
