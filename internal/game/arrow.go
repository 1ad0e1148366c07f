package game

import "fmt"

// ArrowType selects the behaviour variant of an arrow.
type ArrowType uint8

const (
	Ghost ArrowType = iota
	Anchor
	Wiggler
	Spinner
	Fade
	Double
	HoldSolid
	HoldHollow
)

var ArrowTypes = [...]ArrowType{Ghost, Anchor, Wiggler, Spinner, Fade, Double, HoldSolid, HoldHollow}

var arrowTypeNames = [...]string{"ghost", "anchor", "wiggler", "spinner", "fade", "double", "hold_solid", "hold_hollow"}

func (t ArrowType) String() string {
	if int(t) < len(arrowTypeNames) {
		return arrowTypeNames[t]
	}
	return fmt.Sprintf("arrowtype(%d)", uint8(t))
}

func (t ArrowType) IsHold() bool {
	return t == HoldSolid || t == HoldHollow
}

func ParseArrowType(s string) (ArrowType, error) {
	for i, n := range arrowTypeNames {
		if n == s {
			return ArrowType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown arrow type %q", s)
}

func (t ArrowType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ArrowType) UnmarshalText(b []byte) error {
	v, err := ParseArrowType(string(b))
	if nil != err {
		return err
	}
	*t = v
	return nil
}

// Lanes is the number of horizontal tracks.
const Lanes = 2

// HoldState is the lifecycle of a hold arrow.
type HoldState uint8

const (
	HoldFalling HoldState = iota
	HoldHeld
	HoldCompleted
	HoldFailed
)

type Arrow struct {
	ID   uint64
	Type ArrowType
	Lane int

	// What is rendered, and what must be pressed
	DisplayDirection Direction
	TargetDirection  Direction

	SpawnBeat  float64
	TargetBeat float64

	Resolved bool

	// Wiggler
	FinalDirection Direction
	Revealed       bool

	// Spinner, visual rotation in degrees
	Angle  float64
	Locked bool

	// Fade
	Hidden bool

	// Double
	HitsRequired int

	// Holds, Duration is in beats
	Duration     float64
	IsBeingHeld  bool
	HoldProgress float64
	HoldState    HoldState

	// Travel progress, 0 at spawn and 1 at TargetBeat
	Progress float64
	FromSide bool
}

// Snapshot is the read-only view handed to renderers and observers.
type Snapshot struct {
	ID           uint64    `json:"id"`
	Type         ArrowType `json:"type"`
	Lane         int       `json:"lane"`
	Display      Direction `json:"display"`
	Target       Direction `json:"target"`
	SpawnBeat    float64   `json:"spawn_beat"`
	TargetBeat   float64   `json:"target_beat"`
	Progress     float64   `json:"progress"`
	HoldProgress float64   `json:"hold_progress,omitempty"`
	Duration     float64   `json:"duration,omitempty"`
	Resolved     bool      `json:"resolved"`
	Held         bool      `json:"held,omitempty"`
	Hidden       bool      `json:"hidden,omitempty"`
	Revealed     bool      `json:"revealed,omitempty"`
	Angle        float64   `json:"angle,omitempty"`
	HitsRequired int       `json:"hits_required,omitempty"`
	FromSide     bool      `json:"from_side,omitempty"`
}

func (a *Arrow) Snapshot() Snapshot {
	return Snapshot{
		ID:           a.ID,
		Type:         a.Type,
		Lane:         a.Lane,
		Display:      a.DisplayDirection,
		Target:       a.TargetDirection,
		SpawnBeat:    a.SpawnBeat,
		TargetBeat:   a.TargetBeat,
		Progress:     a.Progress,
		HoldProgress: a.HoldProgress,
		Duration:     a.Duration,
		Resolved:     a.Resolved,
		Held:         a.IsBeingHeld,
		Hidden:       a.Hidden,
		Revealed:     a.Revealed,
		Angle:        a.Angle,
		HitsRequired: a.HitsRequired,
		FromSide:     a.FromSide,
	}
}
