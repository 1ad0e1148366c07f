package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		r     rune
		key   keyboard.Key
		event Event
		ok    bool
	}{
		{0, keyboard.KeyArrowUp, Event{Action: Press, Direction: game.Up}, true},
		{0, keyboard.KeyArrowLeft, Event{Action: Press, Direction: game.Left}, true},
		{'d', 0, Event{Action: Press, Direction: game.Right}, true},
		{'S', 0, Event{Action: Press, Direction: game.Down}, true},
		{0, keyboard.KeyEsc, Event{Action: Quit}, true},
		{'p', 0, Event{Action: Pause}, true},
		{0, keyboard.KeySpace, Event{Action: Pause}, true},
		{'x', 0, Event{}, false},
	}

	for _, test := range tests {
		ev, ok := KeyEvent(test.r, test.key)
		if ok != test.ok || ev != test.event {
			t.Log("key     ", test.r, test.key)
			t.Log("got     ", ev, ok)
			t.Log("expected", test.event, test.ok)
			t.Fail()
		}
	}
}

func TestRepeatTracker(t *testing.T) {
	start := time.Unix(0, 0)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }
	tr := newRepeatTracker(100 * time.Millisecond)

	tr.Press(game.Left, at(0))
	tr.Press(game.Up, at(50))
	if n := len(tr.Expired(at(100))); n != 0 {
		t.Fatalf("%d released at the delay", n)
	}

	// Key repeat keeps up held
	tr.Press(game.Up, at(120))
	out := tr.Expired(at(150))
	if len(out) != 1 || out[0] != game.Left {
		t.Fatalf("released %v", out)
	}
	if n := len(tr.Expired(at(160))); n != 0 {
		t.Fatal("released twice")
	}
	out = tr.Expired(at(300))
	if len(out) != 1 || out[0] != game.Up {
		t.Fatalf("released %v", out)
	}
}
