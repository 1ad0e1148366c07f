package judge

import (
	"testing"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

type classifyTest struct {
	Offset     float64
	Multiplier float64
	Grade      game.Grade
	Score      int
}

var classifyTests = []classifyTest{
	{0, 1, game.Perfect, 100},
	{50, 1, game.Perfect, 100},
	{51, 1, game.Great, 70},
	{150, 1, game.Great, 70},
	{151, 1, game.Good, 30},
	{300, 1, game.Good, 30},
	{301, 1, game.Miss, 0},
	{-50, 1, game.Perfect, 100},
	{-301, 1, game.Miss, 0},
	// Stricter levels shrink every band
	{50, 0.5, game.Great, 70},
	{150, 0.5, game.Good, 30},
	{151, 0.5, game.Miss, 0},
	// Looser levels widen them
	{64, 1.3, game.Perfect, 100},
	{389, 1.3, game.Good, 30},
}

func TestClassify(t *testing.T) {
	for _, test := range classifyTests {
		j := Classify(test.Offset, test.Multiplier)
		if j.Grade != test.Grade || j.ScoreDelta != test.Score {
			t.Log("test    ", test)
			t.Log("grade   ", j.Grade)
			t.Log("score   ", j.ScoreDelta)
			t.Fail()
		}
		if j.TimingOffsetMs < 0 {
			t.Log("negative offset kept", test)
			t.Fail()
		}
	}
}

func TestScore(t *testing.T) {
	if Score(game.Perfect) != 100 || Score(game.Great) != 70 || Score(game.Good) != 30 || Score(game.Miss) != 0 {
		t.Fail()
	}
}
