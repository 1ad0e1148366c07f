package engine

import (
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// updateHolds fills held arrows by elapsed time. Reaching 1 does not complete
// a hold; only a release does.
func (e *Engine) updateHolds(delta time.Duration) {
	for _, a := range e.arrows {
		if a.Resolved || !a.IsBeingHeld || a.Duration <= 0 {
			continue
		}
		a.HoldProgress += ms(delta) / (a.Duration * e.clock.IntervalMs())
		if a.HoldProgress > 1 {
			a.HoldProgress = 1
		}
	}
}

// sweep retires every arrow whose deadline has passed. Held arrows get their
// duration on top of the miss window.
func (e *Engine) sweep(b float64) {
	for _, a := range e.arrows {
		if a.Resolved {
			continue
		}
		deadline := a.TargetBeat + MissWindowBeats
		if a.IsBeingHeld {
			deadline += a.Duration
		}
		if b <= deadline {
			continue
		}
		if a.Type.IsHold() {
			a.HoldState = game.HoldFailed
		}
		e.fail(a, b, MissTimeout, false)
	}
}
