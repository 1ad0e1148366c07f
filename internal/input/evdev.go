package input

import (
	"encoding/binary"
	"errors"
	"io"
	"log"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const (
	evKey = 0x01

	keyEsc   = 1
	keyQ     = 16
	keyW     = 17
	keyP     = 25
	keyA     = 30
	keyS     = 31
	keyD     = 32
	keySpace = 57
	keyUp    = 103
	keyLeft  = 105
	keyRight = 106
	keyDown  = 108
)

type keyEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

var codeDirections = map[uint16]game.Direction{
	keyUp:    game.Up,
	keyW:     game.Up,
	keyRight: game.Right,
	keyD:     game.Right,
	keyDown:  game.Down,
	keyS:     game.Down,
	keyLeft:  game.Left,
	keyA:     game.Left,
}

// Evdev reads a /dev/input/event* device, which reports real releases.
// Reading usually needs membership of the input group.
type Evdev struct {
	Device string

	file   *os.File
	events chan Event
	wg     sync.WaitGroup
}

func (e *Evdev) Open() error {
	file, err := os.Open(e.Device)
	if err != nil {
		return err
	}
	e.file = file
	e.events = make(chan Event, 128)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer close(e.events)
		if err := readEvents(file, e.events); nil != err && !errors.Is(err, os.ErrClosed) {
			log.Println(err, "unable to read keyboard input")
		}
	}()
	return nil
}

func (e *Evdev) Events() <-chan Event {
	return e.events
}

func (e *Evdev) Close() error {
	if nil == e.file {
		return nil
	}
	err := e.file.Close()
	e.wg.Wait()
	return err
}

// readEvents decodes input events until r fails. Key repeats are dropped.
func readEvents(r io.Reader, events chan<- Event) error {
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if ev.Type != evKey {
			continue
		}
		if out, ok := codeEvent(ev.Code, ev.Value); ok {
			events <- out
		}
	}
}

func codeEvent(code uint16, value int32) (Event, bool) {
	if d, ok := codeDirections[code]; ok {
		switch value {
		case 1:
			return Event{Action: Press, Direction: d}, true
		case 0:
			return Event{Action: Release, Direction: d}, true
		}
		return Event{}, false
	}
	if value != 1 {
		return Event{}, false
	}
	switch code {
	case keyEsc, keyQ:
		return Event{Action: Quit}, true
	case keySpace, keyP:
		return Event{Action: Pause}, true
	}
	return Event{}, false
}
