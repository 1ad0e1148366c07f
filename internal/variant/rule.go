// Package variant holds the per-type behaviour of arrows: which input each
// type requires for what it shows, and how its visual state settles while it
// falls. Rules only touch arrow state; drawing is left to the renderer.
package variant

import (
	"math/rand"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

const (
	// Spinners stop rotating at this travel progress
	SpinnerLockProgress = 0.7
	// Wigglers show their final direction at this travel progress
	WigglerRevealProgress = 0.6
	// Fade arrows hide their direction after this many beats
	FadeAfterBeats = 2
	// Visual rotation speed of a spinner before it locks
	SpinDegreesPerBeat = 270
	DoubleHits         = 2
)

// Draft is a candidate assignment for a new arrow.
type Draft struct {
	Display game.Direction
	Final   game.Direction
	Target  game.Direction
}

// Tick is the per-frame input to OnTick.
type Tick struct {
	Beat     float64 // current beat
	Delta    float64 // beats since the previous tick
	Progress float64 // 0 at spawn, 1 at the target beat
}

type Rule interface {
	Type() game.ArrowType

	// Draft derives the required input for a display direction. Rules with
	// hidden state draw it from rng.
	Draft(display game.Direction, rng *rand.Rand) Draft

	// RevealProgress is the travel progress at which the visual settles.
	// Zero means the arrow is readable from the moment it spawns.
	RevealProgress() float64

	// OppositeRule reports whether the player must invert what they see.
	// Pressing the shown direction on such an arrow is a rule-switch error.
	OppositeRule() bool

	// Init sets variant state on a freshly spawned arrow.
	Init(a *game.Arrow, rng *rand.Rand)

	OnTick(a *game.Arrow, t Tick)
}

var rules = map[game.ArrowType]Rule{
	game.Ghost:      ghost{},
	game.Anchor:     anchor{},
	game.Wiggler:    wiggler{},
	game.Spinner:    spinner{},
	game.Fade:       fade{},
	game.Double:     double{},
	game.HoldSolid:  hold{t: game.HoldSolid},
	game.HoldHollow: hold{t: game.HoldHollow, opposite: true},
}

// For returns the rule for t, or the anchor rule for an unknown type.
func For(t game.ArrowType) Rule {
	if r, ok := rules[t]; ok {
		return r
	}
	return anchor{}
}

// Apply copies a draft onto an arrow.
func Apply(a *game.Arrow, d Draft) {
	a.DisplayDirection = d.Display
	a.FinalDirection = d.Final
	a.TargetDirection = d.Target
}

func same(display game.Direction) Draft {
	return Draft{Display: display, Final: display, Target: display}
}

func opposite(display game.Direction) Draft {
	return Draft{Display: display, Final: display, Target: display.Opposite()}
}
