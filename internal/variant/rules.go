package variant

import (
	"math"
	"math/rand"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// base implements the no-op parts of Rule.
type base struct{}

func (base) RevealProgress() float64            { return 0 }
func (base) OppositeRule() bool                 { return false }
func (base) Init(a *game.Arrow, rng *rand.Rand) {}
func (base) OnTick(a *game.Arrow, t Tick)       {}

type ghost struct{ base }

func (ghost) Type() game.ArrowType { return game.Ghost }
func (ghost) OppositeRule() bool   { return true }

func (ghost) Draft(display game.Direction, rng *rand.Rand) Draft {
	return opposite(display)
}

type anchor struct{ base }

func (anchor) Type() game.ArrowType { return game.Anchor }

func (anchor) Draft(display game.Direction, rng *rand.Rand) Draft {
	return same(display)
}

// fade keeps its target and only hides the shown direction.
type fade struct{ base }

func (fade) Type() game.ArrowType { return game.Fade }

func (fade) Draft(display game.Direction, rng *rand.Rand) Draft {
	return same(display)
}

func (fade) OnTick(a *game.Arrow, t Tick) {
	if !a.Hidden && t.Beat-a.SpawnBeat >= FadeAfterBeats {
		a.Hidden = true
	}
}

// spinner is fixed at spawn and rotates only visually until it locks.
type spinner struct{ base }

func (spinner) Type() game.ArrowType    { return game.Spinner }
func (spinner) RevealProgress() float64 { return SpinnerLockProgress }

func (spinner) Draft(display game.Direction, rng *rand.Rand) Draft {
	return same(display)
}

func (spinner) Init(a *game.Arrow, rng *rand.Rand) {
	a.Angle = float64(rng.Intn(360))
}

func (spinner) OnTick(a *game.Arrow, t Tick) {
	if a.Locked {
		return
	}
	if t.Progress >= SpinnerLockProgress {
		a.Locked = true
		a.Angle = a.TargetDirection.Degrees()
		return
	}
	a.Angle = math.Mod(a.Angle+SpinDegreesPerBeat*t.Delta, 360)
}

// wiggler shakes with a decoy direction and reveals its final one late. The
// required input is the opposite of the final direction.
type wiggler struct{ base }

func (wiggler) Type() game.ArrowType    { return game.Wiggler }
func (wiggler) RevealProgress() float64 { return WigglerRevealProgress }
func (wiggler) OppositeRule() bool      { return true }

func (wiggler) Draft(display game.Direction, rng *rand.Rand) Draft {
	// One of the three other directions
	final := (display + game.Direction(1+rng.Intn(3))) % 4
	return Draft{Display: display, Final: final, Target: final.Opposite()}
}

func (wiggler) OnTick(a *game.Arrow, t Tick) {
	if !a.Revealed && t.Progress >= WigglerRevealProgress {
		a.Revealed = true
		a.DisplayDirection = a.FinalDirection
	}
}

type double struct{ base }

func (double) Type() game.ArrowType { return game.Double }

func (double) Draft(display game.Direction, rng *rand.Rand) Draft {
	return same(display)
}

func (double) Init(a *game.Arrow, rng *rand.Rand) {
	a.HitsRequired = DoubleHits
}

// hold covers both hold types. A hollow hold inverts its input but is not
// counted towards rule-switch errors.
type hold struct {
	base
	t        game.ArrowType
	opposite bool
}

func (h hold) Type() game.ArrowType { return h.t }

func (h hold) Draft(display game.Direction, rng *rand.Rand) Draft {
	if h.opposite {
		return opposite(display)
	}
	return same(display)
}

func (h hold) Init(a *game.Arrow, rng *rand.Rand) {
	a.HoldState = game.HoldFalling
}
