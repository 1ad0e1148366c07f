package variant

import (
	"math/rand"
	"testing"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Whether the target is the same as the shown direction, per type
var sameTargetTests = map[game.ArrowType]bool{
	game.Ghost:      false,
	game.Anchor:     true,
	game.Fade:       true,
	game.Spinner:    true,
	game.Double:     true,
	game.HoldSolid:  true,
	game.HoldHollow: false,
}

func TestTargetDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for typ, same := range sameTargetTests {
		rule := For(typ)
		if rule.Type() != typ {
			t.Fatalf("rule for %v reports %v", typ, rule.Type())
		}
		for _, d := range game.Directions {
			draft := rule.Draft(d, rng)
			expected := d.Opposite()
			if same {
				expected = d
			}
			if draft.Display != d || draft.Target != expected {
				t.Log("type    ", typ)
				t.Log("display ", d)
				t.Log("target  ", draft.Target)
				t.Log("expected", expected)
				t.Fail()
			}
		}
	}
}

func TestWigglerDraft(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rule := For(game.Wiggler)
	seen := map[game.Direction]bool{}
	for i := 0; i < 400; i++ {
		d := game.Directions[i%4]
		draft := rule.Draft(d, rng)
		if draft.Final == d {
			t.Fatalf("final direction equals initial %v", d)
		}
		if draft.Target != draft.Final.Opposite() {
			t.Fatalf("target %v is not opposite of final %v", draft.Target, draft.Final)
		}
		if d == game.Up {
			seen[draft.Final] = true
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three other finals for up, got %v", seen)
	}
}

func TestOppositeRule(t *testing.T) {
	for _, typ := range game.ArrowTypes {
		expected := typ == game.Ghost || typ == game.Wiggler
		if For(typ).OppositeRule() != expected {
			t.Log("type", typ)
			t.Fail()
		}
	}
}

func spawn(typ game.ArrowType, display game.Direction, rng *rand.Rand) *game.Arrow {
	rule := For(typ)
	a := &game.Arrow{Type: typ, SpawnBeat: 2, TargetBeat: 6}
	Apply(a, rule.Draft(display, rng))
	rule.Init(a, rng)
	return a
}

func TestWigglerReveal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := spawn(game.Wiggler, game.Left, rng)
	target := a.TargetDirection
	rule := For(game.Wiggler)

	rule.OnTick(a, Tick{Beat: 4.3, Delta: 0.1, Progress: 0.59})
	if a.Revealed || a.DisplayDirection != game.Left {
		t.Fatalf("revealed early: %+v", a)
	}
	rule.OnTick(a, Tick{Beat: 4.4, Delta: 0.1, Progress: 0.6})
	if !a.Revealed || a.DisplayDirection != a.FinalDirection {
		t.Fatalf("not revealed at 60%%: %+v", a)
	}
	if a.TargetDirection != target || a.TargetDirection != a.DisplayDirection.Opposite() {
		t.Fatalf("target moved from %v to %v", target, a.TargetDirection)
	}
}

func TestSpinnerLock(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := spawn(game.Spinner, game.Right, rng)
	rule := For(game.Spinner)

	start := a.Angle
	rule.OnTick(a, Tick{Beat: 3, Delta: 0.1, Progress: 0.25})
	if a.Locked || a.Angle == start {
		t.Fatalf("spinner did not rotate: %v -> %v", start, a.Angle)
	}
	if a.TargetDirection != game.Right {
		t.Fatalf("target changed while spinning: %v", a.TargetDirection)
	}
	rule.OnTick(a, Tick{Beat: 4.8, Delta: 0.1, Progress: 0.7})
	if !a.Locked || a.Angle != game.Right.Degrees() {
		t.Fatalf("spinner did not lock to target: %+v", a)
	}
	rule.OnTick(a, Tick{Beat: 5, Delta: 0.2, Progress: 0.75})
	if a.Angle != game.Right.Degrees() {
		t.Fatalf("locked spinner rotated: %v", a.Angle)
	}
}

func TestFadeHides(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := spawn(game.Fade, game.Down, rng)
	rule := For(game.Fade)

	rule.OnTick(a, Tick{Beat: 3.9, Progress: 0.475})
	if a.Hidden {
		t.Fatal("hidden before two beats")
	}
	rule.OnTick(a, Tick{Beat: 4, Progress: 0.5})
	if !a.Hidden || a.TargetDirection != game.Down {
		t.Fatalf("fade state wrong: %+v", a)
	}
}

func TestDoubleInit(t *testing.T) {
	a := spawn(game.Double, game.Up, rand.New(rand.NewSource(1)))
	if a.HitsRequired != 2 {
		t.Fatalf("hits required %v", a.HitsRequired)
	}
}
