package score

import (
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save a finished run
	Save(run Run) error

	// Load every previous run of a level, oldest first
	Load(level int) []History

	// Best is the highest scoring run of a level
	Best(level int) (History, bool)

	// Arrow types the player has already been taught
	Introduced() []game.ArrowType
	Introduce(types ...game.ArrowType) error
}

type Run struct {
	Seed     int64
	PlayedAt time.Time
	Summary  game.Summary
	Inputs   []game.Input

	// Types already introduced when the run started, nil when tutorials
	// were off. Replay needs it to interrupt at the same waves.
	Tutorials []game.ArrowType
}

type History struct {
	ID int64
	Run
}
