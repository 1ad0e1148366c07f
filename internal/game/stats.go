package game

const (
	ScorePerfect = 100
	ScoreGreat   = 70
	ScoreGood    = 30
	ScoreMiss    = 0
)

// Star thresholds as a percentage of the maximum score.
const (
	ThreeStarPercent = 85
	TwoStarPercent   = 50
)

type VariantStats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

func (v VariantStats) Accuracy() float64 {
	if v.Attempts == 0 {
		return 0
	}
	return float64(v.Correct) / float64(v.Attempts)
}

type StarHint uint8

const (
	HintNone StarHint = iota
	// Below two stars: the player needs to hit on time more often
	HintAccuracy
	// Between two and three stars: more perfects needed
	HintAlmostThree
)

func (h StarHint) String() string {
	switch h {
	case HintAccuracy:
		return "accuracy"
	case HintAlmostThree:
		return "almost-three"
	}
	return "none"
}

func (h StarHint) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *StarHint) UnmarshalText(b []byte) error {
	switch string(b) {
	case "accuracy":
		*h = HintAccuracy
	case "almost-three":
		*h = HintAlmostThree
	default:
		*h = HintNone
	}
	return nil
}

type Summary struct {
	Level                int                        `json:"level"`
	Score                int                        `json:"score"`
	MaxScore             int                        `json:"max_score"`
	Stars                int                        `json:"stars"`
	Hint                 StarHint                   `json:"hint"`
	PerVariant           map[ArrowType]VariantStats `json:"per_variant"`
	MaxCombo             int                        `json:"max_combo"`
	RuleSwitchErrors     int                        `json:"rule_switch_errors"`
	AvgTimingOffsetMs    float64                    `json:"avg_timing_offset_ms"`
	DifficultyMultiplier float64                    `json:"difficulty_multiplier"`
}

// Stars maps a score to 1..3 stars.
func Stars(score, maxScore int) int {
	if maxScore <= 0 {
		return 1
	}
	pct := float64(score) / float64(maxScore) * 100
	switch {
	case pct >= ThreeStarPercent:
		return 3
	case pct >= TwoStarPercent:
		return 2
	}
	return 1
}

func Hint(score, maxScore int) StarHint {
	if maxScore <= 0 {
		return HintNone
	}
	pct := float64(score) / float64(maxScore) * 100
	switch {
	case pct < TwoStarPercent:
		return HintAccuracy
	case pct < ThreeStarPercent:
		return HintAlmostThree
	}
	return HintNone
}
