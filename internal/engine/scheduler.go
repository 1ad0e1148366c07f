package engine

import (
	"math/rand"

	"git.lost.host/meutraa/dreamdirect/internal/game"
	"git.lost.host/meutraa/dreamdirect/internal/variant"
)

// MaxSpawnInterval is the longest gap in beats between two waves.
const MaxSpawnInterval = 2

var swingIntervals = [...]float64{1, 1.5, MaxSpawnInterval}

// AllocateDirection picks a display direction for rule whose required input is
// not in claimed. Displays are tried in a random order, so non-wiggler rules
// exhaust all four options within four attempts. It reports false when no
// assignment was found within attempts.
func AllocateDirection(rule variant.Rule, claimed game.DirectionSet, rng *rand.Rand, attempts int) (variant.Draft, bool) {
	if claimed.Full() {
		return variant.Draft{}, false
	}
	order := rng.Perm(len(game.Directions))
	for i := 0; i < attempts; i++ {
		d := rule.Draft(game.Directions[order[i%len(order)]], rng)
		if !claimed.Has(d.Target) {
			return d, true
		}
	}
	return variant.Draft{}, false
}

// claimed is the set of inputs demanded by unresolved arrows that are not
// being held.
func (e *Engine) claimed() game.DirectionSet {
	var s game.DirectionSet
	for _, a := range e.arrows {
		if !a.Resolved && !a.IsBeingHeld {
			s = s.With(a.TargetDirection)
		}
	}
	return s
}

func (e *Engine) laneFree(lane int) bool {
	return e.nextArrowBeat >= e.lanes[lane]
}

// waveLanes picks the lanes for this wave. A chord asks for both lanes and
// keeps the free ones; a single arrow takes a random free lane.
func (e *Engine) waveLanes(size int) []int {
	var free []int
	for lane := 0; lane < game.Lanes; lane++ {
		if e.laneFree(lane) {
			free = append(free, lane)
		}
	}
	if size >= len(free) {
		return free
	}
	e.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	return free[:size]
}

func (e *Engine) pickType() game.ArrowType {
	pool := e.level.ArrowTypes
	return pool[e.rng.Intn(len(pool))]
}

func (e *Engine) spawnInterval() float64 {
	if e.level.SwingRhythm {
		return swingIntervals[e.rng.Intn(len(swingIntervals))]
	}
	return 1
}

// schedule spawns at most one wave when the beat has reached nextArrowBeat.
func (e *Engine) schedule(b float64) {
	if e.spawned >= e.level.ArrowCount || b < e.nextArrowBeat {
		return
	}

	size := 1
	if e.rng.Float64() < e.level.ChordChance {
		size = 2
	}
	lanes := e.waveLanes(size)
	types := make([]game.ArrowType, len(lanes))
	for i := range lanes {
		types[i] = e.pickType()
	}

	// A type the player has not met yet stops the wave before anything
	// spawns; the same beat is retried after the tutorial.
	if e.introduced != nil {
		for _, t := range types {
			if !e.introduced[t] {
				e.introduce(t, b)
				return
			}
		}
	}

	claimed := e.claimed()
	for i, lane := range lanes {
		if e.spawned >= e.level.ArrowCount {
			break
		}
		rule := variant.For(types[i])
		draft, ok := AllocateDirection(rule, claimed, e.rng, e.attempts)
		if !ok {
			e.log.Printf("beat %.2f: no free direction for %v in lane %d, slot dropped", e.nextArrowBeat, types[i], lane)
			continue
		}
		claimed = claimed.With(draft.Target)
		e.spawn(rule, draft, lane, b)
	}

	e.nextArrowBeat += e.spawnInterval()
}

func (e *Engine) spawn(rule variant.Rule, draft variant.Draft, lane int, b float64) {
	e.nextID++
	a := &game.Arrow{
		ID:         e.nextID,
		Type:       rule.Type(),
		Lane:       lane,
		SpawnBeat:  e.nextArrowBeat,
		TargetBeat: e.nextArrowBeat + TravelBeats,
		FromSide:   e.level.SpawnFromSides,
	}
	variant.Apply(a, draft)
	rule.Init(a, e.rng)
	if a.Type.IsHold() {
		a.Duration = e.level.HoldBeats
		e.lanes[lane] = e.nextArrowBeat + a.Duration + 1
	}
	e.arrows = append(e.arrows, a)
	e.spawned++
	e.emit(arrowEvent(ArrowSpawned, b, a))
}

func (e *Engine) introduce(t game.ArrowType, b float64) {
	e.introduced[t] = true
	e.tutorial = true
	e.clock.Pause()
	tt := t
	e.emit(Event{Kind: TutorialRequested, Beat: b, Type: &tt})
	e.log.Printf("beat %.2f: introducing %v", b, t)
}
