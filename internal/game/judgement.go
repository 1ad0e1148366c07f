package game

type Grade uint8

const (
	Perfect Grade = iota
	Great
	Good
	Miss
)

var gradeNames = [...]string{"perfect", "great", "good", "miss"}

func (g Grade) String() string {
	if int(g) < len(gradeNames) {
		return gradeNames[g]
	}
	return "unknown"
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

type Judgement struct {
	Grade          Grade   `json:"grade"`
	ScoreDelta     int     `json:"score_delta"`
	TimingOffsetMs float64 `json:"timing_offset_ms"`
}
