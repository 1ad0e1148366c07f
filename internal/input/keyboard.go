package input

import (
	"log"
	"sync"
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Keyboard reads the terminal. Terminals only report presses and key repeat,
// so a release is synthesised once a direction has been silent for
// ReleaseAfter. This should be longer than the terminal's repeat delay.
type Keyboard struct {
	ReleaseAfter time.Duration

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

func (k *Keyboard) Open() error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return err
	}
	if k.ReleaseAfter <= 0 {
		k.ReleaseAfter = 600 * time.Millisecond
	}
	k.events = make(chan Event, 128)
	k.done = make(chan struct{})

	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		k.loop(keys)
	}()
	return nil
}

func (k *Keyboard) loop(keys <-chan keyboard.KeyEvent) {
	held := newRepeatTracker(k.ReleaseAfter)
	ticker := time.NewTicker(k.ReleaseAfter / 8)
	defer ticker.Stop()

	for {
		select {
		case <-k.done:
			return
		case now := <-ticker.C:
			for _, d := range held.Expired(now) {
				k.send(Event{Action: Release, Direction: d})
			}
		case key, ok := <-keys:
			if !ok {
				return
			}
			if nil != key.Err {
				log.Println("unable to read keyboard", key.Err)
				continue
			}
			ev, ok := KeyEvent(key.Rune, key.Key)
			if !ok {
				continue
			}
			if ev.Action == Press {
				held.Press(ev.Direction, time.Now())
			}
			k.send(ev)
		}
	}
}

func (k *Keyboard) send(ev Event) {
	select {
	case k.events <- ev:
	case <-k.done:
	}
}

func (k *Keyboard) Events() <-chan Event {
	return k.events
}

func (k *Keyboard) Close() error {
	if nil == k.done {
		return nil
	}
	close(k.done)
	k.wg.Wait()
	return keyboard.Close()
}

// KeyEvent maps a terminal key to an event. Arrows and WASD give directions.
func KeyEvent(r rune, key keyboard.Key) (Event, bool) {
	switch key {
	case keyboard.KeyArrowUp:
		return Event{Action: Press, Direction: game.Up}, true
	case keyboard.KeyArrowRight:
		return Event{Action: Press, Direction: game.Right}, true
	case keyboard.KeyArrowDown:
		return Event{Action: Press, Direction: game.Down}, true
	case keyboard.KeyArrowLeft:
		return Event{Action: Press, Direction: game.Left}, true
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Action: Quit}, true
	case keyboard.KeySpace:
		return Event{Action: Pause}, true
	}

	switch r {
	case 'w', 'W':
		return Event{Action: Press, Direction: game.Up}, true
	case 'd', 'D':
		return Event{Action: Press, Direction: game.Right}, true
	case 's', 'S':
		return Event{Action: Press, Direction: game.Down}, true
	case 'a', 'A':
		return Event{Action: Press, Direction: game.Left}, true
	case 'q', 'Q':
		return Event{Action: Quit}, true
	case 'p', 'P':
		return Event{Action: Pause}, true
	}
	return Event{}, false
}

// repeatTracker remembers when each direction was last seen.
type repeatTracker struct {
	after time.Duration
	last  map[game.Direction]time.Time
}

func newRepeatTracker(after time.Duration) *repeatTracker {
	return &repeatTracker{after: after, last: map[game.Direction]time.Time{}}
}

func (t *repeatTracker) Press(d game.Direction, now time.Time) {
	t.last[d] = now
}

// Expired returns, in direction order, every direction silent for longer than
// the release delay and forgets them.
func (t *repeatTracker) Expired(now time.Time) []game.Direction {
	var out []game.Direction
	for _, d := range game.Directions {
		seen, ok := t.last[d]
		if !ok || now.Sub(seen) <= t.after {
			continue
		}
		out = append(out, d)
		delete(t.last, d)
	}
	return out
}
