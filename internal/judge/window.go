package judge

import (
	"math"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Band upper edges in milliseconds at a multiplier of 1, inclusive.
const (
	PerfectMs = 50
	GreatMs   = 150
	GoodMs    = 300
)

type band struct {
	grade game.Grade
	ms    float64
	score int
}

var bands = [...]band{
	{game.Perfect, PerfectMs, game.ScorePerfect},
	{game.Great, GreatMs, game.ScoreGreat},
	{game.Good, GoodMs, game.ScoreGood},
}

// Classify grades an absolute timing offset. A negative offset is treated as
// its magnitude.
func Classify(offsetMs, multiplier float64) game.Judgement {
	offsetMs = math.Abs(offsetMs)
	for _, b := range bands {
		if offsetMs <= b.ms*multiplier {
			return game.Judgement{Grade: b.grade, ScoreDelta: b.score, TimingOffsetMs: offsetMs}
		}
	}
	return game.Judgement{Grade: game.Miss, ScoreDelta: game.ScoreMiss, TimingOffsetMs: offsetMs}
}

// WindowMs is the widest offset that is still a hit.
func WindowMs(multiplier float64) float64 {
	return GoodMs * multiplier
}

func Score(g game.Grade) int {
	for _, b := range bands {
		if b.grade == g {
			return b.score
		}
	}
	return game.ScoreMiss
}
