package engine

import (
	"math"

	"git.lost.host/meutraa/dreamdirect/internal/game"
	"git.lost.host/meutraa/dreamdirect/internal/judge"
	"git.lost.host/meutraa/dreamdirect/internal/variant"
)

// Press routes a directional press to the live arrow it belongs to.
//
// A candidate is an unresolved arrow, not being held, whose target beat is
// within the good window. A candidate with the pressed target is hit. With no
// such candidate the press is ignored if it repeats the input of a held arrow,
// and otherwise counts as a miss against the nearest candidate.
func (e *Engine) Press(d game.Direction) {
	if !e.started || e.complete || e.clock.Paused() {
		return
	}
	b := e.clock.Beat()
	e.inputs = append(e.inputs, game.Input{Direction: d, Beat: b})

	window := e.clock.MsToBeats(judge.WindowMs(e.level.TimingWindowMultiplier))
	var match, nearest *game.Arrow
	for _, a := range e.arrows {
		if a.Resolved || a.IsBeingHeld {
			continue
		}
		dist := math.Abs(a.TargetBeat - b)
		if dist > window {
			continue
		}
		if nearest == nil || dist < math.Abs(nearest.TargetBeat-b) {
			nearest = a
		}
		if a.TargetDirection == d && (match == nil || dist < math.Abs(match.TargetBeat-b)) {
			match = a
		}
	}

	if match != nil {
		e.hit(match, b)
		return
	}
	for _, a := range e.arrows {
		if !a.Resolved && a.IsBeingHeld && a.TargetDirection == d {
			return
		}
	}
	if nearest == nil {
		return
	}

	ruleSwitch := variant.For(nearest.Type).OppositeRule() && d == nearest.DisplayDirection
	if ruleSwitch {
		e.stats.RuleSwitchErrors++
	}
	e.fail(nearest, b, MissWrongDirection, ruleSwitch)
}

// Release ends the hold on every held arrow requiring d.
func (e *Engine) Release(d game.Direction) {
	if !e.started || e.complete {
		return
	}
	b := e.clock.Beat()
	e.inputs = append(e.inputs, game.Input{Direction: d, Released: true, Beat: b})

	for _, a := range e.arrows {
		if a.Resolved || !a.IsBeingHeld || a.TargetDirection != d {
			continue
		}
		if a.HoldProgress >= HoldCompleteProgress {
			a.HoldState = game.HoldCompleted
			e.succeed(a, b, game.Judgement{Grade: game.Perfect, ScoreDelta: game.ScorePerfect}, 0)
			continue
		}
		a.HoldState = game.HoldFailed
		e.fail(a, b, MissEarlyRelease, false)
	}
}

func (e *Engine) hit(a *game.Arrow, b float64) {
	switch {
	case a.Type == game.Double && a.HitsRequired > 1:
		a.HitsRequired--
		e.emit(arrowEvent(PartialHit, b, a))

	case a.Type.IsHold():
		a.IsBeingHeld = true
		a.HoldState = game.HoldHeld
		e.emit(arrowEvent(HoldStarted, b, a))

	default:
		offset := e.clock.BeatsToMs(math.Abs(b - a.TargetBeat))
		j := judge.Classify(offset, e.level.TimingWindowMultiplier)
		if j.Grade == game.Miss {
			e.fail(a, b, MissOffTime, false)
			return
		}
		// Only single taps contribute their real offset
		recorded := offset
		if a.Type == game.Double {
			recorded = 0
		}
		e.succeed(a, b, j, recorded)
	}
}

func (e *Engine) succeed(a *game.Arrow, b float64, j game.Judgement, offsetMs float64) {
	if a.Resolved {
		return
	}
	a.Resolved = true
	a.IsBeingHeld = false
	e.stats.Hit(a.Type, j.ScoreDelta, offsetMs)

	ev := arrowEvent(ArrowJudged, b, a)
	ev.Judgement = &j
	ev.Combo = e.stats.Combo
	e.emit(ev)
	e.emit(Event{Kind: ComboChanged, Beat: b, Combo: e.stats.Combo})
}

func (e *Engine) fail(a *game.Arrow, b float64, reason MissReason, ruleSwitch bool) {
	if a.Resolved {
		return
	}
	a.Resolved = true
	a.IsBeingHeld = false
	hadCombo := e.stats.Combo > 0
	e.stats.Miss(a.Type)

	ev := arrowEvent(ArrowMissed, b, a)
	ev.Reason = reason
	ev.RuleSwitch = ruleSwitch
	ev.Judgement = &game.Judgement{Grade: game.Miss}
	e.emit(ev)
	if hadCombo {
		e.emit(Event{Kind: ComboChanged, Beat: b})
	}
}
