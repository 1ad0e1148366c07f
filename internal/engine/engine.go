// Package engine schedules arrows against a beat clock and judges directional
// input against them.
//
// All state is owned by Engine and advanced by Tick from a single host loop.
// Press and Release may be called between ticks; the engine is not safe for
// use from more than one goroutine.
package engine

import (
	"io"
	"log"
	"math/rand"
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/beat"
	"git.lost.host/meutraa/dreamdirect/internal/game"
	"git.lost.host/meutraa/dreamdirect/internal/variant"
)

const (
	FirstArrowBeat = 2
	// Beats from spawn until an arrow reaches the hit zone
	TravelBeats = 4
	// Beats past the target (plus hold duration) before a forced miss
	MissWindowBeats = 0.5
	// Releasing a hold at or beyond this progress completes it
	HoldCompleteProgress      = 0.98
	DefaultAllocationAttempts = 20
)

type Engine struct {
	level    game.Level
	clock    *beat.Clock
	rng      *rand.Rand
	seed     int64
	log      *log.Logger
	attempts int

	arrows   []*game.Arrow
	resolved []*game.Arrow
	lanes    [game.Lanes]float64 // earliest beat each lane may host a new arrow

	nextArrowBeat float64
	spawned       int
	nextID        uint64

	stats  Stats
	events []Event
	inputs []game.Input

	lastTick time.Time
	started  bool
	complete bool

	// nil when tutorials are off
	introduced map[game.ArrowType]bool
	seen       []game.ArrowType
	tutorial   bool
}

type Option func(*Engine)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.clock = beat.NewClock(e.level.BPM, now)
	}
}

func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

func WithAllocationAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.attempts = n
		}
	}
}

// WithTutorials turns on tutorial interrupts for every type not in seen.
// Ghost arrows are always treated as introduced.
func WithTutorials(seen []game.ArrowType) Option {
	return func(e *Engine) {
		e.introduced = map[game.ArrowType]bool{game.Ghost: true}
		e.seen = append([]game.ArrowType{}, seen...)
		for _, t := range seen {
			e.introduced[t] = true
		}
	}
}

// New creates an engine for a level. Invalid level values are repaired with
// game.Level.Normalize rather than rejected.
func New(level game.Level, opts ...Option) *Engine {
	e := &Engine{
		level:    level.Normalize(),
		seed:     time.Now().UnixNano(),
		attempts: DefaultAllocationAttempts,
	}
	e.clock = beat.NewClock(e.level.BPM, time.Now)
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = log.New(io.Discard, "", 0)
	}
	e.Reset()
	return e
}

// Reset clears all session state. The engine must be started again.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.seed))
	e.arrows = nil
	e.resolved = nil
	e.lanes = [game.Lanes]float64{}
	e.nextArrowBeat = FirstArrowBeat
	e.spawned = 0
	e.nextID = 0
	e.stats = NewStats()
	e.events = nil
	e.inputs = nil
	e.started = false
	e.complete = false
	e.tutorial = false
}

// Start sets beat zero to now.
func (e *Engine) Start() {
	e.clock.Start()
	e.lastTick = e.clock.Now()
	e.started = true
	e.log.Printf("level %d started: %v bpm, %d arrows, types %v", e.level.Level, e.level.BPM, e.level.ArrowCount, e.level.ArrowTypes)
}

func (e *Engine) Level() game.Level {
	return e.level
}

func (e *Engine) Seed() int64 {
	return e.seed
}

func (e *Engine) Clock() *beat.Clock {
	return e.clock
}

func (e *Engine) Beat() float64 {
	return e.clock.Beat()
}

func (e *Engine) Done() bool {
	return e.complete
}

func (e *Engine) Paused() bool {
	return e.clock.Paused()
}

// InTutorial reports whether the engine paused itself to introduce a type.
func (e *Engine) InTutorial() bool {
	return e.tutorial
}

// Introduced lists the types that no longer trigger a tutorial.
func (e *Engine) Introduced() []game.ArrowType {
	var out []game.ArrowType
	for _, t := range game.ArrowTypes {
		if e.introduced[t] {
			out = append(out, t)
		}
	}
	return out
}

// Tutorials is the set passed to WithTutorials, nil when tutorials are off.
func (e *Engine) Tutorials() []game.ArrowType {
	return e.seen
}

func (e *Engine) Pause() {
	e.clock.Pause()
}

// Resume restarts the clock, shifting music start and the last tick by the
// paused duration so every in-flight arrow keeps its remaining delay.
func (e *Engine) Resume() {
	d := e.clock.Resume()
	e.lastTick = e.lastTick.Add(d)
	if e.tutorial {
		e.tutorial = false
		e.log.Printf("tutorial finished after %v", d)
	}
}

// Tick advances the session to the current time. The order is fixed: spawn,
// variant progress, holds, then the miss sweep, so a hit from an input event
// is never swept in the same frame.
func (e *Engine) Tick() {
	if !e.started || e.complete || e.clock.Paused() {
		return
	}
	now := e.clock.Now()
	delta := now.Sub(e.lastTick)
	e.lastTick = now
	b := e.clock.BeatAt(now)

	e.schedule(b)
	e.advance(b, e.clock.MsToBeats(ms(delta)))
	e.updateHolds(delta)
	e.sweep(b)
	e.compact()

	if e.spawned >= e.level.ArrowCount && len(e.arrows) == 0 {
		e.complete = true
		s := e.Summary()
		e.emit(Event{Kind: LevelComplete, Beat: b, Summary: &s})
		e.log.Printf("level %d complete: score %d/%d, %d stars", s.Level, s.Score, s.MaxScore, s.Stars)
	}
}

// advance updates travel progress and lets each variant settle its visuals.
func (e *Engine) advance(b, deltaBeats float64) {
	for _, a := range e.arrows {
		if a.Resolved {
			continue
		}
		a.Progress = (b - a.SpawnBeat) / TravelBeats
		if a.Progress < 0 {
			a.Progress = 0
		}
		variant.For(a.Type).OnTick(a, variant.Tick{Beat: b, Delta: deltaBeats, Progress: a.Progress})
	}
}

// compact moves resolved arrows out of the live list.
func (e *Engine) compact() {
	live := e.arrows[:0]
	for _, a := range e.arrows {
		if a.Resolved {
			e.resolved = append(e.resolved, a)
			continue
		}
		live = append(live, a)
	}
	for i := len(live); i < len(e.arrows); i++ {
		e.arrows[i] = nil
	}
	e.arrows = live
}

// Arrows returns snapshots of every live arrow.
func (e *Engine) Arrows() []game.Snapshot {
	out := make([]game.Snapshot, 0, len(e.arrows))
	for _, a := range e.arrows {
		out = append(out, a.Snapshot())
	}
	return out
}

// Resolved returns snapshots of every arrow that has been judged.
func (e *Engine) Resolved() []game.Snapshot {
	out := make([]game.Snapshot, 0, len(e.resolved))
	for _, a := range e.resolved {
		out = append(out, a.Snapshot())
	}
	for _, a := range e.arrows {
		if a.Resolved {
			out = append(out, a.Snapshot())
		}
	}
	return out
}

// Events returns and clears the pending events.
func (e *Engine) Events() []Event {
	ev := e.events
	e.events = nil
	return ev
}

// Inputs is the log of every press and release the engine accepted.
func (e *Engine) Inputs() []game.Input {
	return e.inputs
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) Spawned() int {
	return e.spawned
}

func (e *Engine) Summary() game.Summary {
	return e.stats.Summary(e.level)
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
