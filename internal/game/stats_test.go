package game

import "testing"

type starTest struct {
	Score, Max int
	Stars      int
	Hint       StarHint
}

var starTests = []starTest{
	{Score: 0, Max: 1000, Stars: 1, Hint: HintAccuracy},
	{Score: 499, Max: 1000, Stars: 1, Hint: HintAccuracy},
	{Score: 500, Max: 1000, Stars: 2, Hint: HintAlmostThree},
	{Score: 849, Max: 1000, Stars: 2, Hint: HintAlmostThree},
	{Score: 850, Max: 1000, Stars: 3, Hint: HintNone},
	{Score: 1000, Max: 1000, Stars: 3, Hint: HintNone},
	{Score: 10, Max: 0, Stars: 1, Hint: HintNone},
}

func TestStars(t *testing.T) {
	for _, test := range starTests {
		if s := Stars(test.Score, test.Max); s != test.Stars {
			t.Log("test ", test)
			t.Log("stars", s)
			t.Fail()
		}
		if h := Hint(test.Score, test.Max); h != test.Hint {
			t.Log("test", test)
			t.Log("hint", h)
			t.Fail()
		}
	}
}

func TestNormalize(t *testing.T) {
	l := Level{BPM: -1, ChordChance: 3}.Normalize()
	if l.BPM != 60 || l.ArrowCount != 12 || l.TimingWindowMultiplier != 1 {
		t.Fatalf("unexpected defaults %+v", l)
	}
	if l.ChordChance != 1 {
		t.Fatalf("chord chance not clamped: %v", l.ChordChance)
	}
	if len(l.ArrowTypes) != 1 || l.ArrowTypes[0] != Anchor {
		t.Fatalf("unexpected type pool %v", l.ArrowTypes)
	}
	if l.HoldBeats != DefaultHoldBeats || l.Track.BPM != l.BPM {
		t.Fatalf("unexpected hold/track %+v", l)
	}
	if l := (Level{BPM: 80}); l.BeatIntervalMs() != 750 {
		t.Fatalf("beat interval %v", l.BeatIntervalMs())
	}
}
