package score

import (
	"log"
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/engine"
	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// DefaultReplayStep matches the host's default frame period.
const DefaultReplayStep = 8 * time.Millisecond

// Replay plays a stored input log back through a fresh engine seeded like the
// recorded run and returns the resulting summary. Ticks happen every step and
// immediately before each input, so a run recorded at the same frame period
// reproduces exactly. Tutorial interrupts are resumed at once; recorded beats
// already exclude the time the player spent paused.
func Replay(level game.Level, h History, step time.Duration) game.Summary {
	if step <= 0 {
		step = DefaultReplayStep
	}
	start := time.Unix(0, 0)
	now := start
	opts := []engine.Option{engine.WithClock(func() time.Time { return now }), engine.WithSeed(h.Seed)}
	if nil != h.Tutorials {
		opts = append(opts, engine.WithTutorials(h.Tutorials))
	}
	e := engine.New(level, opts...)
	e.Start()

	tick := func() {
		e.Tick()
		if e.InTutorial() {
			e.Resume()
		}
	}
	at := func(beat float64) time.Time {
		return start.Add(time.Duration(beat * e.Clock().IntervalMs() * float64(time.Millisecond)))
	}
	end := at(replayLimit(e.Level()))

	inputs := h.Inputs
	for !e.Done() {
		if now.After(end) {
			log.Printf("replay of run %d on level %d stopped at beat %.2f with the level unfinished", h.ID, e.Level().Level, e.Beat())
			break
		}
		next := now.Add(step)
		for len(inputs) > 0 && !at(inputs[0].Beat).After(next) {
			in := inputs[0]
			inputs = inputs[1:]
			if t := at(in.Beat); t.After(now) {
				now = t
				tick()
			}
			if in.Released {
				e.Release(in.Direction)
			} else {
				e.Press(in.Direction)
			}
		}
		now = next
		tick()
	}
	return e.Summary()
}

// replayLimit is a beat no run of the level can still be playing at. Every
// wave may be as long as the widest swing gap, and holds reserving both lanes
// can leave up to holdBeats+1 waves empty for each arrow.
func replayLimit(l game.Level) float64 {
	perArrow := engine.MaxSpawnInterval * (l.HoldBeats + 2)
	return engine.FirstArrowBeat + float64(l.ArrowCount)*perArrow + engine.TravelBeats + l.HoldBeats + 1
}
