package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/term"

	"git.lost.host/meutraa/dreamdirect/internal/audio"
	"git.lost.host/meutraa/dreamdirect/internal/config"
	"git.lost.host/meutraa/dreamdirect/internal/engine"
	"git.lost.host/meutraa/dreamdirect/internal/game"
	"git.lost.host/meutraa/dreamdirect/internal/input"
	"git.lost.host/meutraa/dreamdirect/internal/level"
	"git.lost.host/meutraa/dreamdirect/internal/observe"
	"git.lost.host/meutraa/dreamdirect/internal/render"
	"git.lost.host/meutraa/dreamdirect/internal/score"
	"git.lost.host/meutraa/dreamdirect/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	// The terminal belongs to the renderer while playing
	logFile, err := os.OpenFile("dreamdirect.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return fmt.Errorf("unable to open log: %w", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	// Ensure our Default implementations are used as interfaces
	var psr level.Parser = &level.DefaultParser{}
	var scorer score.Scorer = &score.DefaultScorer{Path: *config.Database, Log: logger}
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}

	catalog, err := psr.Parse(*config.Levels)
	if nil != err {
		return fmt.Errorf("unable to load levels: %w", err)
	}
	if !catalog.Has(*config.Level) {
		logger.Printf("level %d does not exist, playing level 1", *config.Level)
	}
	l := catalog.Get(*config.Level)
	if *config.Music != "" {
		l.Track = game.Track{Path: *config.Music, BPM: *config.NativeBPM}
		l = l.Normalize()
	}

	if err := scorer.Init(); nil != err {
		return fmt.Errorf("unable to open run history: %w", err)
	}
	defer scorer.Deinit()

	seed := *config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	offset := *config.Offset
	opts := []engine.Option{
		engine.WithSeed(seed),
		engine.WithLogger(logger),
		engine.WithClock(func() time.Time { return time.Now().Add(offset) }),
	}
	if *config.Tutorials {
		opts = append(opts, engine.WithTutorials(scorer.Introduced()))
	}

	var src input.Source = &input.Keyboard{ReleaseAfter: *config.ReleaseAfter}
	if *config.Keyboard != "" {
		src = &input.Evdev{Device: *config.Keyboard}
	}
	if err := src.Open(); nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := src.Close(); nil != err {
			logger.Println("unable to close keyboard", err)
		}
	}()

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	p := &Program{
		Scorer:   scorer,
		Theme:    th,
		Renderer: r,
		Input:    src,
		Log:      logger,
	}

	if l.Track.Path != "" {
		player, err := audio.Open(l.Track.Path, audio.Ratio(l))
		if nil != err {
			logger.Println("playing without music:", err)
		} else {
			p.Player = player
		}
	}

	if *config.Observe != "" {
		p.Observer = observe.NewServer(logger)
		srv := &http.Server{Addr: *config.Observe, Handler: p.Observer.Handler()}
		go func() {
			if err := srv.ListenAndServe(); nil != err && !errors.Is(err, http.ErrServerClosed) {
				logger.Println("spectator server stopped", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); nil != err {
				logger.Println("unable to stop spectator server", err)
			}
		}()
	}

	p.Init(l, opts...)
	p.Resize(rows, columns)
	defer p.Deinit()

	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to prepare terminal: %w", err)
	}
	r.RenderLoop(*config.FramePeriod, func(now time.Time) bool {
		cont := p.Update(now)
		p.Render()
		return cont
	})
	// Restore the terminal state
	if err := r.Deinit(); nil != err {
		logger.Println("unable to restore terminal", err)
	}

	s := p.Summary()
	if nil == s {
		fmt.Println("quit")
		return nil
	}
	printSummary(*s, scorer)
	return nil
}

func printSummary(s game.Summary, scorer score.Scorer) {
	fmt.Printf("Level %d: %d/%d  %s\n", s.Level, s.Score, s.MaxScore, stars(s.Stars))
	switch s.Hint {
	case game.HintAccuracy:
		fmt.Println("Hit more arrows on the beat to earn a second star.")
	case game.HintAlmostThree:
		fmt.Println("A few more perfects for the third star.")
	}
	fmt.Printf("Max combo %d, rule switches %d, mean offset %.1f ms\n", s.MaxCombo, s.RuleSwitchErrors, s.AvgTimingOffsetMs)
	for _, t := range game.ArrowTypes {
		v, ok := s.PerVariant[t]
		if !ok {
			continue
		}
		fmt.Printf("%12v  %3d/%-3d\n", t, v.Correct, v.Attempts)
	}

	c := score.Assess(s)
	for _, axis := range []struct {
		name  string
		value *int
	}{{"visual", c.Visual}, {"memory", c.Memory}, {"focus", c.Focus}, {"speed", c.Speed}} {
		if nil != axis.value {
			fmt.Printf("%12v  %3d\n", axis.name, *axis.value)
		}
	}

	if best, ok := scorer.Best(s.Level); ok {
		fmt.Printf("Best %d (%v)\n", best.Summary.Score, best.PlayedAt.Format("2006-01-02"))
	}
}

func stars(n int) string {
	s := ""
	for i := 0; i < 3; i++ {
		if i < n {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}
