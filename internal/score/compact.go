package score

import (
	"sort"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// InputsCompact holds every press and release of one direction as beats.
type InputsCompact struct {
	Direction game.Direction `json:"d"`
	Presses   []float64      `json:"p"`
	Releases  []float64      `json:"r"`
}

func compactInputs(inputs []game.Input) []InputsCompact {
	ins := make([]InputsCompact, len(game.Directions))
	for i, d := range game.Directions {
		ins[i] = InputsCompact{Direction: d, Presses: []float64{}, Releases: []float64{}}
	}
	for _, i := range inputs {
		c := &ins[i.Direction]
		if i.Released {
			c.Releases = append(c.Releases, i.Beat)
		} else {
			c.Presses = append(c.Presses, i.Beat)
		}
	}
	return ins
}

// uncompactInputs restores the log in beat order. Inputs on the same beat keep
// direction order, presses before releases.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, c := range inputs {
		for _, b := range c.Presses {
			ins = append(ins, game.Input{Direction: c.Direction, Beat: b})
		}
	}
	for _, c := range inputs {
		for _, b := range c.Releases {
			ins = append(ins, game.Input{Direction: c.Direction, Released: true, Beat: b})
		}
	}
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[i].Beat < ins[j].Beat
	})
	return ins
}
