package engine

import (
	"git.lost.host/meutraa/dreamdirect/internal/game"
)

type Kind uint8

const (
	ArrowSpawned Kind = iota
	ArrowJudged
	ArrowMissed
	// First press of a double
	PartialHit
	HoldStarted
	ComboChanged
	// The engine paused itself to introduce a new arrow type
	TutorialRequested
	LevelComplete
)

var kindNames = [...]string{
	"arrow_spawned",
	"arrow_judged",
	"arrow_missed",
	"partial_hit",
	"hold_started",
	"combo_changed",
	"tutorial_requested",
	"level_complete",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type MissReason uint8

const (
	MissNone MissReason = iota
	// Nothing was pressed before the deadline
	MissTimeout
	MissWrongDirection
	MissEarlyRelease
	// Right direction, outside every band
	MissOffTime
)

var reasonNames = [...]string{"", "timeout", "wrong_direction", "early_release", "off_time"}

func (r MissReason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

func (r MissReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type Event struct {
	Kind      Kind            `json:"kind"`
	Beat      float64         `json:"beat"`
	Arrow     *game.Snapshot  `json:"arrow,omitempty"`
	Judgement *game.Judgement `json:"judgement,omitempty"`
	Reason    MissReason      `json:"reason,omitempty"`

	// Set for rule-switch misses
	RuleSwitch bool            `json:"rule_switch,omitempty"`
	Combo      int             `json:"combo,omitempty"`
	Type       *game.ArrowType `json:"type,omitempty"`
	Summary    *game.Summary   `json:"summary,omitempty"`
}

func arrowEvent(k Kind, beat float64, a *game.Arrow) Event {
	s := a.Snapshot()
	return Event{Kind: k, Beat: beat, Arrow: &s}
}
