package beat

import (
	"time"
)

// Clock converts wall-clock time into a fractional beat position.
//
// Pausing and resuming shifts the music start time by the paused duration, so
// a beat that was 300ms away before a pause is still 300ms away after it.
type Clock struct {
	bpm        float64
	intervalMs float64
	now        func() time.Time

	musicStart time.Time
	pausedAt   time.Time
	paused     bool
	started    bool
}

func NewClock(bpm float64, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	if bpm <= 0 {
		bpm = 60
	}
	return &Clock{
		bpm:        bpm,
		intervalMs: 60000 / bpm,
		now:        now,
	}
}

func (c *Clock) Now() time.Time {
	return c.now()
}

// Start sets beat zero to the current time.
func (c *Clock) Start() {
	c.StartAt(c.now())
}

func (c *Clock) StartAt(t time.Time) {
	c.musicStart = t
	c.started = true
	c.paused = false
}

func (c *Clock) Started() bool {
	return c.started
}

func (c *Clock) Paused() bool {
	return c.paused
}

func (c *Clock) BPM() float64 {
	return c.bpm
}

func (c *Clock) IntervalMs() float64 {
	return c.intervalMs
}

func (c *Clock) MusicStart() time.Time {
	return c.musicStart
}

// Beat is the current beat. While paused it stays at the beat the pause began.
func (c *Clock) Beat() float64 {
	if c.paused {
		return c.BeatAt(c.pausedAt)
	}
	return c.BeatAt(c.now())
}

func (c *Clock) BeatAt(t time.Time) float64 {
	return ms(t.Sub(c.musicStart)) / c.intervalMs
}

// TimeOf is the wall-clock instant of a beat given the current music start.
func (c *Clock) TimeOf(beat float64) time.Time {
	return c.musicStart.Add(time.Duration(beat * c.intervalMs * float64(time.Millisecond)))
}

func (c *Clock) MsToBeats(v float64) float64 {
	return v / c.intervalMs
}

func (c *Clock) BeatsToMs(b float64) float64 {
	return b * c.intervalMs
}

func (c *Clock) Pause() {
	if c.paused || !c.started {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume returns how long the clock was paused.
func (c *Clock) Resume() time.Duration {
	if !c.paused {
		return 0
	}
	d := c.now().Sub(c.pausedAt)
	c.musicStart = c.musicStart.Add(d)
	c.paused = false
	return d
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
