package score

import (
	"math"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

const (
	// Focus points lost per rule-switch error
	RuleSwitchPenalty = 5
	// Average offset that scores zero speed
	SlowestOffsetMs = 300
)

// Cognitive rates a run on four axes from 0 to 100. An axis is nil when the
// run had no arrows measuring it.
type Cognitive struct {
	Visual *int `json:"visual"`
	Memory *int `json:"memory"`
	Focus  *int `json:"focus"`
	Speed  *int `json:"speed"`
}

// Assess derives cognitive ratings from a summary. Visual tracking is measured
// by spinners and fades, memory by fades and doubles, and focus by ghost and
// anchor accuracy less the rule-switch penalty.
func Assess(s game.Summary) Cognitive {
	mult := s.DifficultyMultiplier
	if mult <= 0 {
		mult = 1
	}
	var c Cognitive

	if total, correct := tally(s, game.Spinner, game.Fade); total > 0 {
		c.Visual = clamp(float64(correct) / float64(total) * 100 * mult)
	}
	if total, correct := tally(s, game.Fade, game.Double); total > 0 {
		c.Memory = clamp(float64(correct) / float64(total) * 100 * mult)
	}
	if total, correct := tally(s, game.Ghost, game.Anchor); total > 0 {
		base := float64(correct) / float64(total) * 100
		c.Focus = clamp((base - float64(s.RuleSwitchErrors*RuleSwitchPenalty)) * mult)
	}
	c.Speed = clamp(math.Max(0, 1-s.AvgTimingOffsetMs/SlowestOffsetMs) * 100 * mult)
	return c
}

func tally(s game.Summary, types ...game.ArrowType) (total, correct int) {
	for _, t := range types {
		v := s.PerVariant[t]
		total += v.Attempts
		correct += v.Correct
	}
	return total, correct
}

func clamp(v float64) *int {
	n := int(math.Round(math.Max(0, math.Min(100, v))))
	return &n
}
