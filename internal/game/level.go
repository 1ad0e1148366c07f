package game

// Track is a background music file and the tempo it was recorded at.
type Track struct {
	Path string  `yaml:"path" json:"path"`
	BPM  float64 `yaml:"bpm" json:"bpm"`
}

type Level struct {
	Level                  int         `yaml:"level" json:"level"`
	BPM                    float64     `yaml:"bpm" json:"bpm"`
	Track                  Track       `yaml:"track" json:"track"`
	ArrowTypes             []ArrowType `yaml:"arrowTypes" json:"arrowTypes"`
	ArrowCount             int         `yaml:"arrowCount" json:"arrowCount"`
	TimingWindowMultiplier float64     `yaml:"timingWindowMultiplier" json:"timingWindowMultiplier"`
	DifficultyMultiplier   float64     `yaml:"difficultyMultiplier" json:"difficultyMultiplier"`
	ChordChance            float64     `yaml:"chordChance" json:"chordChance"`
	SwingRhythm            bool        `yaml:"swingRhythm" json:"swingRhythm"`
	SpawnFromSides         bool        `yaml:"spawnFromSides" json:"spawnFromSides"`
	HoldBeats              float64     `yaml:"holdBeats" json:"holdBeats"`
}

const DefaultHoldBeats = 2

// DefaultLevel is used when nothing usable was supplied.
func DefaultLevel() Level {
	return Level{
		Level:                  1,
		BPM:                    60,
		Track:                  Track{BPM: 60},
		ArrowTypes:             []ArrowType{Anchor},
		ArrowCount:             12,
		TimingWindowMultiplier: 1.3,
		DifficultyMultiplier:   1,
		HoldBeats:              DefaultHoldBeats,
	}
}

// Normalize repairs values the engine cannot run with.
func (l Level) Normalize() Level {
	def := DefaultLevel()
	if l.BPM <= 0 {
		l.BPM = def.BPM
	}
	if l.ArrowCount <= 0 {
		l.ArrowCount = def.ArrowCount
	}
	if l.TimingWindowMultiplier <= 0 {
		l.TimingWindowMultiplier = 1
	}
	if l.DifficultyMultiplier <= 0 {
		l.DifficultyMultiplier = 1
	}
	if l.ChordChance < 0 {
		l.ChordChance = 0
	} else if l.ChordChance > 1 {
		l.ChordChance = 1
	}
	if len(l.ArrowTypes) == 0 {
		l.ArrowTypes = def.ArrowTypes
	}
	if l.HoldBeats <= 0 {
		l.HoldBeats = DefaultHoldBeats
	}
	if l.Track.BPM <= 0 {
		l.Track.BPM = l.BPM
	}
	return l
}

// BeatIntervalMs is the length of one beat at this level's tempo.
func (l Level) BeatIntervalMs() float64 {
	return 60000 / l.BPM
}

// MaxScore assumes a perfect on every arrow.
func (l Level) MaxScore() int {
	return l.ArrowCount * ScorePerfect
}
