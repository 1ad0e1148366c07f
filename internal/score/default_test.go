package score

import (
	"database/sql"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

func newScorer(t *testing.T) *DefaultScorer {
	s := &DefaultScorer{
		Path: filepath.Join(t.TempDir(), "runs.db"),
		Log:  log.New(io.Discard, "", 0),
	}
	if err := s.Init(); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(s.Deinit)
	return s
}

func run(level, score int, playedAt int64) Run {
	return Run{
		Seed:     playedAt,
		PlayedAt: time.UnixMilli(playedAt),
		Summary: game.Summary{
			Level:    level,
			Score:    score,
			MaxScore: 1200,
			Stars:    game.Stars(score, 1200),
			Hint:     game.Hint(score, 1200),
			PerVariant: map[game.ArrowType]game.VariantStats{
				game.Ghost: {Attempts: 12, Correct: score / 100},
			},
			AvgTimingOffsetMs: 42.5,
		},
		Inputs: []game.Input{
			{Direction: game.Left, Beat: 6.01},
			{Direction: game.Left, Released: true, Beat: 6.2},
			{Direction: game.Up, Beat: 7},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	s := newScorer(t)
	for _, r := range []Run{run(3, 900, 2000), run(3, 1100, 1000), run(4, 100, 3000)} {
		if err := s.Save(r); nil != err {
			t.Fatal(err)
		}
	}

	hs := s.Load(3)
	if len(hs) != 2 {
		t.Fatalf("loaded %d runs", len(hs))
	}
	if hs[0].Seed != 1000 || hs[1].Seed != 2000 {
		t.Fatalf("runs out of order: %d %d", hs[0].Seed, hs[1].Seed)
	}
	h := hs[1]
	if h.Summary.Score != 900 || h.Summary.Stars != 3 || h.Summary.Hint != game.HintNone {
		t.Fatalf("summary %+v", h.Summary)
	}
	if h.Summary.PerVariant[game.Ghost] != (game.VariantStats{Attempts: 12, Correct: 9}) {
		t.Fatalf("per variant %v", h.Summary.PerVariant)
	}
	if !h.PlayedAt.Equal(time.UnixMilli(2000)) {
		t.Fatalf("played at %v", h.PlayedAt)
	}
	want := run(3, 900, 2000).Inputs
	if len(h.Inputs) != len(want) {
		t.Fatalf("inputs %v", h.Inputs)
	}
	for i := range want {
		if h.Inputs[i] != want[i] {
			t.Log("input", i)
			t.Log("got     ", h.Inputs[i])
			t.Log("expected", want[i])
			t.Fail()
		}
	}

	if len(s.Load(9)) != 0 {
		t.Fatal("loaded runs of an unplayed level")
	}
}

func TestBest(t *testing.T) {
	s := newScorer(t)
	if _, ok := s.Best(1); ok {
		t.Fatal("best run of an empty history")
	}
	for _, r := range []Run{run(1, 300, 1), run(1, 700, 2), run(1, 500, 3)} {
		if err := s.Save(r); nil != err {
			t.Fatal(err)
		}
	}
	h, ok := s.Best(1)
	if !ok || h.Summary.Score != 700 {
		t.Fatalf("best %+v", h.Summary)
	}
}

func TestIntroduced(t *testing.T) {
	s := newScorer(t)
	if n := len(s.Introduced()); n != 0 {
		t.Fatalf("%d tutorials in a new database", n)
	}
	if err := s.Introduce(game.Spinner, game.Fade); nil != err {
		t.Fatal(err)
	}
	if err := s.Introduce(game.Spinner); nil != err {
		t.Fatal(err)
	}

	seen := map[game.ArrowType]bool{}
	for _, tt := range s.Introduced() {
		seen[tt] = true
	}
	if len(seen) != 2 || !seen[game.Spinner] || !seen[game.Fade] {
		t.Fatalf("introduced %v", seen)
	}
}

func TestSaveTutorials(t *testing.T) {
	s := newScorer(t)
	off := run(2, 100, 1)
	fresh := run(2, 200, 2)
	fresh.Tutorials = []game.ArrowType{}
	taught := run(2, 300, 3)
	taught.Tutorials = []game.ArrowType{game.Anchor, game.Fade}
	for _, r := range []Run{off, fresh, taught} {
		if err := s.Save(r); nil != err {
			t.Fatal(err)
		}
	}

	hs := s.Load(2)
	if len(hs) != 3 {
		t.Fatalf("loaded %d runs", len(hs))
	}
	if nil != hs[0].Tutorials {
		t.Fatalf("tutorials off came back as %v", hs[0].Tutorials)
	}
	if nil == hs[1].Tutorials || len(hs[1].Tutorials) != 0 {
		t.Fatalf("empty tutorial set came back as %#v", hs[1].Tutorials)
	}
	if len(hs[2].Tutorials) != 2 || hs[2].Tutorials[0] != game.Anchor || hs[2].Tutorials[1] != game.Fade {
		t.Fatalf("tutorials %v", hs[2].Tutorials)
	}
}

func TestMigrateRunsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		t.Fatal(err)
	}
	_, err = db.Exec(`create table runs
	  (
		  id integer not null primary key,
		  level integer not null,
		  seed integer,
		  played_at integer,
		  score integer,
		  stars integer,
		  summary text,
		  inputs blob
	  )`)
	db.Close()
	if nil != err {
		t.Fatal(err)
	}

	s := &DefaultScorer{Path: path, Log: log.New(io.Discard, "", 0)}
	if err := s.Init(); nil != err {
		t.Fatal(err)
	}
	defer s.Deinit()
	if err := s.Save(run(1, 500, 1)); nil != err {
		t.Fatal(err)
	}
	if h, ok := s.Best(1); !ok || h.Summary.Score != 500 || nil != h.Tutorials {
		t.Fatalf("best %+v", h)
	}
}
