package main

import (
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/audio"
	"git.lost.host/meutraa/dreamdirect/internal/config"
	"git.lost.host/meutraa/dreamdirect/internal/engine"
	"git.lost.host/meutraa/dreamdirect/internal/game"
	"git.lost.host/meutraa/dreamdirect/internal/input"
	"git.lost.host/meutraa/dreamdirect/internal/observe"
	"git.lost.host/meutraa/dreamdirect/internal/render"
	"git.lost.host/meutraa/dreamdirect/internal/score"
	"git.lost.host/meutraa/dreamdirect/internal/theme"
)

// Frames a judgement stays on screen
const judgementFrames = 60

const pressSpace = "press space to continue"

var tutorials = map[game.ArrowType]string{
	game.Anchor:     "Anchor: press the direction you see.",
	game.Wiggler:    "Wiggler: it shakes, then settles. Press the opposite of where it settles.",
	game.Spinner:    "Spinner: wait for it to lock, then press where it points.",
	game.Fade:       "Fade: remember it. It vanishes before it arrives.",
	game.Double:     "Double: press it twice.",
	game.HoldSolid:  "Solid hold: press and keep holding until the tail is gone.",
	game.HoldHollow: "Hollow hold: hold the opposite direction until the tail is gone.",
}

type Program struct {
	Scorer   score.Scorer
	Theme    theme.Theme
	Renderer render.Renderer
	Input    input.Source
	Observer *observe.Server // nil when spectating is off
	Player   *audio.Player   // nil without music
	Log      *log.Logger

	engine  *engine.Engine
	layout  render.Layout
	startAt time.Time
	sideCol uint16

	tutorial *game.ArrowType
	paused   bool
	summary  *game.Summary
	saved    bool
}

func (p *Program) Init(l game.Level, opts ...engine.Option) {
	p.engine = engine.New(l, opts...)
	p.startAt = time.Now().Add(*config.Delay)
	if nil != p.Observer {
		p.Observer.SetBootstrap(observe.Bootstrap{Level: p.engine.Level(), Seed: p.engine.Seed()})
	}
}

func (p *Program) Resize(rows, cols int) {
	p.layout = render.Layout{
		Rows:        uint16(rows),
		Cols:        uint16(cols),
		BarRow:      *config.BarRow,
		LaneSpacing: *config.LaneSpacing,
		TravelBeats: engine.TravelBeats,
	}
	p.sideCol = 2
}

// Update handles input and advances the engine by one frame. It returns false
// once the player quits or the level is over.
func (p *Program) Update(now time.Time) bool {
	e := p.engine
	started := e.Clock().Started()
	if !started && !now.Before(p.startAt) {
		e.Start()
		if nil != p.Player {
			p.Player.SetPaused(false)
		}
		started = true
	}

	// get the key inputs that occured so far
	for n := len(p.Input.Events()); n > 0; n-- {
		ev := <-p.Input.Events()
		switch ev.Action {
		case input.Quit:
			return false
		case input.Pause:
			if started {
				p.togglePause()
			}
		case input.Press:
			e.Press(ev.Direction)
		case input.Release:
			e.Release(ev.Direction)
		}
	}

	e.Tick()
	for _, ev := range e.Events() {
		p.handle(ev)
	}
	if nil != p.Observer && started {
		p.Observer.PublishFrame(e.Beat(), e.Arrows())
	}
	return nil == p.summary
}

func (p *Program) togglePause() {
	e := p.engine
	if e.Paused() {
		e.Resume()
		p.paused = false
		p.tutorial = nil
	} else {
		e.Pause()
		p.paused = true
	}
	if nil != p.Player {
		p.Player.SetPaused(p.paused)
	}
}

func (p *Program) handle(ev engine.Event) {
	if nil != p.Observer {
		p.Observer.PublishEvent(p.engine.Beat(), ev)
	}

	switch ev.Kind {
	case engine.ArrowJudged, engine.ArrowMissed:
		row, col := p.layout.HitRow()+2, centered(p.layout.Cols, ev.Judgement.Grade.String())
		p.Renderer.AddDecoration(col, row, p.Theme.RenderJudgement(ev.Judgement.Grade), judgementFrames)

	case engine.TutorialRequested:
		p.tutorial = ev.Type
		p.paused = true
		if nil != p.Player {
			p.Player.SetPaused(true)
		}
		if err := p.Scorer.Introduce(*ev.Type); nil != err {
			p.Log.Println("unable to save tutorial", err)
		}

	case engine.LevelComplete:
		p.summary = ev.Summary
		p.save()
	}
}

func (p *Program) save() {
	if p.saved || nil == p.summary {
		return
	}
	p.saved = true
	err := p.Scorer.Save(score.Run{
		Seed:     p.engine.Seed(),
		PlayedAt: time.Now(),
		Summary:  *p.summary,
		Inputs:   p.engine.Inputs(),

		Tutorials: p.engine.Tutorials(),
	})
	if nil != err {
		p.Log.Println("unable to save run", err)
	}
}

func (p *Program) Render() {
	r, e := p.Renderer, p.engine
	r.DrawField(p.layout, p.Theme, e.Arrows())

	s := e.Stats()
	l := e.Level()
	r.Fill(2, p.sideCol, fmt.Sprintf("      Level:  %6v", l.Level))
	r.Fill(3, p.sideCol, fmt.Sprintf("        BPM:  %6v", l.BPM))
	r.Fill(4, p.sideCol, fmt.Sprintf("      Score:  %6v", s.Score))
	r.Fill(5, p.sideCol, fmt.Sprintf("      Combo:  %6v", s.Combo))
	r.Fill(6, p.sideCol, fmt.Sprintf("  Max combo:  %6v", s.MaxCombo))
	r.Fill(7, p.sideCol, fmt.Sprintf("     Arrows:  %3v/%-3v", e.Spawned(), l.ArrowCount))
	r.Fill(8, p.sideCol, fmt.Sprintf("   Switches:  %6v", s.RuleSwitchErrors))
	r.Fill(9, p.sideCol, fmt.Sprintf("       Mean:  %6.1f ms", s.AvgTimingOffsetMs()))

	mid := p.layout.Rows / 2
	switch {
	case nil != p.tutorial:
		text := tutorials[*p.tutorial]
		r.Fill(mid, centered(p.layout.Cols, text), text)
		r.Fill(mid+1, centered(p.layout.Cols, pressSpace), pressSpace)
	case p.paused:
		r.Fill(mid, centered(p.layout.Cols, "paused"), "paused")
	case !e.Clock().Started():
		r.Fill(mid, centered(p.layout.Cols, "get ready"), "get ready")
	}
}

// centered is the column that centres text on a terminal cols wide, or 0
// when the text does not fit.
func centered(cols uint16, text string) uint16 {
	half := uint16(len(text) / 2)
	if half >= cols/2 {
		return 0
	}
	return cols/2 - half
}

func (p *Program) Summary() *game.Summary {
	return p.summary
}

func (p *Program) Deinit() {
	if nil != p.Player {
		p.Player.Close()
	}
}
