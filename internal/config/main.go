package config

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("dreamdirect", "Directional rhythm game for the terminal").Version("0.3.0")

	Level        = app.Flag("level", "Level to play").Default("1").Short('l').Int()
	Levels       = app.Flag("levels", "Level catalog (YAML), built-in when empty").String()
	Music        = app.Flag("music", "Background track, overrides the level's track").String()
	NativeBPM    = app.Flag("native-bpm", "Tempo the --music file was recorded at").Default("0").Float64()
	Offset       = app.Flag("offset", "Global input offset").Default("0ms").Short('o').Duration()
	Delay        = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod  = app.Flag("frame-period", "Render frame period").Default("8ms").Short('p').Duration()
	BarRow       = app.Flag("bar-row", "Console rows between hit bar and bottom").Default("6").Uint16()
	LaneSpacing  = app.Flag("spacing", "Columns between the two lanes").Default("12").Uint16()
	Database     = app.Flag("db", "Run history database").Default("./dreamdirect.db").String()
	Keyboard     = app.Flag("keyboard", "evdev keyboard device, terminal input when empty").Short('k').String()
	ReleaseAfter = app.Flag("release-after", "Terminal key silence treated as a release").Default("600ms").Duration()
	Observe      = app.Flag("observe", "Spectator listen address, off when empty").String()
	Seed         = app.Flag("seed", "Arrow sequence seed, random when zero").Default("0").Int64()
	Tutorials    = app.Flag("tutorials", "Pause to introduce new arrow types").Default("true").Bool()
)

// Parse reads command line arguments into the package flags.
func Parse(args []string) error {
	_, err := app.Parse(args)
	return err
}

// FrameRate is frames per second at the configured frame period.
func FrameRate() float64 {
	if *FramePeriod <= 0 {
		return 0
	}
	return float64(time.Second) / float64(*FramePeriod)
}
