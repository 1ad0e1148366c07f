package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

func TestBuiltin(t *testing.T) {
	p := &DefaultParser{}
	c, err := p.Parse("")
	if nil != err {
		t.Fatal(err)
	}
	if c.Len() != 36 {
		t.Fatalf("expected 36 levels, got %d", c.Len())
	}
	nums := c.Numbers()
	if nums[0] != 0 || nums[len(nums)-1] != 35 {
		t.Fatalf("levels %v", nums)
	}

	l := c.Get(26)
	if l.BPM != 90 || !l.SwingRhythm || l.ChordChance != 0.2 || l.ArrowCount != 34 {
		t.Fatalf("level 26 %+v", l)
	}
	if l.Track.BPM != 100 || !strings.HasSuffix(l.Track.Path, "BGM_Swing.mp3") {
		t.Fatalf("level 26 track %+v", l.Track)
	}
	want := []game.ArrowType{game.Ghost, game.Anchor, game.HoldHollow}
	if len(l.ArrowTypes) != len(want) {
		t.Fatalf("level 26 types %v", l.ArrowTypes)
	}
	for i := range want {
		if l.ArrowTypes[i] != want[i] {
			t.Fatalf("level 26 types %v", l.ArrowTypes)
		}
	}
	if l.HoldBeats != game.DefaultHoldBeats {
		t.Fatalf("hold beats %v", l.HoldBeats)
	}

	if !c.Get(35).SpawnFromSides || c.Get(35).TimingWindowMultiplier != 0.6 {
		t.Fatalf("level 35 %+v", c.Get(35))
	}
}

func TestFallback(t *testing.T) {
	c, err := (&DefaultParser{}).Parse("")
	if nil != err {
		t.Fatal(err)
	}
	for _, n := range []int{-1, 36, 1000} {
		l := c.Get(n)
		if l.Level != 1 || l.ArrowCount != 12 {
			t.Log("level", n)
			t.Log("got", l)
			t.Fail()
		}
	}

	empty := &Catalog{}
	if l := empty.Get(4); l.Level != game.DefaultLevel().Level || l.BPM != 60 {
		t.Fatalf("empty catalog gave %+v", l)
	}
}

func TestInvalid(t *testing.T) {
	docs := map[string]string{
		"unknown type":  "levels:\n  - {level: 1, bpm: 60, arrowTypes: [comet], arrowCount: 4}\n",
		"zero bpm":      "levels:\n  - {level: 1, bpm: 0, arrowTypes: [anchor], arrowCount: 4}\n",
		"chord chance":  "levels:\n  - {level: 1, bpm: 60, arrowTypes: [anchor], arrowCount: 4, chordChance: 2}\n",
		"missing count": "levels:\n  - {level: 1, bpm: 60, arrowTypes: [anchor]}\n",
		"extra field":   "levels:\n  - {level: 1, bpm: 60, arrowTypes: [anchor], arrowCount: 4, speed: 3}\n",
		"duplicate":     "levels:\n  - {level: 1, bpm: 60, arrowTypes: [anchor], arrowCount: 4}\n  - {level: 1, bpm: 70, arrowTypes: [anchor], arrowCount: 4}\n",
		"not yaml":      "levels: [",
	}

	p := &DefaultParser{}
	for name, doc := range docs {
		if _, err := p.Decode([]byte(doc)); nil == err {
			t.Log(name)
			t.Log("expected an error")
			t.Fail()
		}
	}
}

func TestParseFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "levels.yaml")
	doc := `tracks:
  t: &t {path: song.ogg, bpm: 120}
levels:
  - {level: 7, bpm: 90, track: *t, arrowTypes: [double, hold_solid], arrowCount: 10, holdBeats: 3}
`
	if err := os.WriteFile(file, []byte(doc), 0o644); nil != err {
		t.Fatal(err)
	}

	c, err := (&DefaultParser{}).Parse(file)
	if nil != err {
		t.Fatal(err)
	}
	l := c.Get(7)
	if l.Track.Path != "song.ogg" || l.Track.BPM != 120 || l.HoldBeats != 3 {
		t.Fatalf("level %+v", l)
	}
	// Missing values are filled in
	if l.TimingWindowMultiplier != 1 || l.DifficultyMultiplier != 1 {
		t.Fatalf("level %+v", l)
	}

	if _, err := (&DefaultParser{}).Parse(filepath.Join(t.TempDir(), "missing.yaml")); nil == err {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWeightedPool(t *testing.T) {
	doc := "levels:\n  - {level: 3, bpm: 80, arrowTypes: [anchor, anchor, ghost], arrowCount: 6}\n"
	c, err := (&DefaultParser{}).Decode([]byte(doc))
	if nil != err {
		t.Fatal(err)
	}
	want := []game.ArrowType{game.Anchor, game.Anchor, game.Ghost}
	got := c.Get(3).ArrowTypes
	if len(got) != len(want) {
		t.Fatalf("pool %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pool %v", got)
		}
	}
}
