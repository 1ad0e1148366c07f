package engine

import (
	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Offset reported when a level ended without a single tap hit
const NoHitOffsetMs = 300

// Stats tracks score, combo and per-variant accuracy for one session.
type Stats struct {
	Score            int
	Combo            int
	MaxCombo         int
	RuleSwitchErrors int
	PerVariant       map[game.ArrowType]game.VariantStats
	TimingOffsets    []float64
}

func NewStats() Stats {
	return Stats{PerVariant: map[game.ArrowType]game.VariantStats{}}
}

// Hit records a successful resolution.
func (s *Stats) Hit(t game.ArrowType, scoreDelta int, offsetMs float64) {
	s.Score += scoreDelta
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.TimingOffsets = append(s.TimingOffsets, offsetMs)
	v := s.PerVariant[t]
	v.Attempts++
	v.Correct++
	s.PerVariant[t] = v
}

func (s *Stats) Miss(t game.ArrowType) {
	s.Combo = 0
	v := s.PerVariant[t]
	v.Attempts++
	s.PerVariant[t] = v
}

func (s *Stats) AvgTimingOffsetMs() float64 {
	if len(s.TimingOffsets) == 0 {
		return NoHitOffsetMs
	}
	sum := 0.0
	for _, o := range s.TimingOffsets {
		sum += o
	}
	return sum / float64(len(s.TimingOffsets))
}

func (s *Stats) Summary(l game.Level) game.Summary {
	max := l.MaxScore()
	pv := make(map[game.ArrowType]game.VariantStats, len(s.PerVariant))
	for t, v := range s.PerVariant {
		pv[t] = v
	}
	return game.Summary{
		Level:                l.Level,
		Score:                s.Score,
		MaxScore:             max,
		Stars:                game.Stars(s.Score, max),
		Hint:                 game.Hint(s.Score, max),
		PerVariant:           pv,
		MaxCombo:             s.MaxCombo,
		RuleSwitchErrors:     s.RuleSwitchErrors,
		AvgTimingOffsetMs:    s.AvgTimingOffsetMs(),
		DifficultyMultiplier: l.DifficultyMultiplier,
	}
}
