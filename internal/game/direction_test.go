package game

import "testing"

var oppositeTests = map[Direction]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

func TestOpposite(t *testing.T) {
	for in, expected := range oppositeTests {
		if out := in.Opposite(); out != expected {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

var degreeTests = map[float64]Direction{
	0:    Up,
	44:   Up,
	46:   Right,
	90:   Right,
	180:  Down,
	270:  Left,
	359:  Up,
	405:  Right,
	-90:  Left,
	-100: Left,
	-180: Down,
}

func TestDirectionFromDegrees(t *testing.T) {
	for in, expected := range degreeTests {
		if out := DirectionFromDegrees(in); out != expected {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestDirectionSet(t *testing.T) {
	var s DirectionSet
	if s.Has(Up) {
		t.Fatal("empty set has up")
	}
	s = s.With(Up).With(Left)
	if !s.Has(Up) || !s.Has(Left) || s.Has(Down) || s.Has(Right) {
		t.Fatalf("unexpected set %04b", s)
	}
	if s.Full() {
		t.Fatal("two directions reported full")
	}
	if !s.With(Down).With(Right).Full() {
		t.Fatal("all directions not full")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		p, err := ParseDirection(d.String())
		if nil != err || p != d {
			t.Fatalf("round trip %v: %v %v", d, p, err)
		}
	}
	if _, err := ParseDirection("north"); nil == err {
		t.Fatal("expected error for unknown direction")
	}
}
