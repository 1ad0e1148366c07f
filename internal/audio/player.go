// Package audio plays a level's background track at the level tempo.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decoder{
	".mp3": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) },
	".ogg": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
	".wav": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
}

func decoderFor(path string) (decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	d, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	return d, nil
}

// Ratio is the playback speed that brings the track to the level tempo.
func Ratio(l game.Level) float64 {
	if l.Track.BPM <= 0 || l.BPM <= 0 {
		return 1
	}
	return l.BPM / l.Track.BPM
}

type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

// Open decodes file and prepares it to loop at ratio times its recorded speed.
func Open(file string, ratio float64) (*Player, error) {
	decode, err := decoderFor(file)
	if nil != err {
		return nil, err
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	if ratio <= 0 {
		ratio = 1
	}

	looped := beep.Loop(-1, streamer)
	p := &Player{
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: beep.ResampleRatio(4, ratio, looped), Paused: true},
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		streamer.Close()
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	speaker.Play(p.ctrl)
	return p, nil
}

// Start unpauses playback after delay.
func (p *Player) Start(delay time.Duration) {
	time.AfterFunc(delay, func() {
		p.SetPaused(false)
	})
}

func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) Close() {
	speaker.Lock()
	p.ctrl.Paused = true
	p.ctrl.Streamer = nil
	speaker.Unlock()
	p.streamer.Close()
}
