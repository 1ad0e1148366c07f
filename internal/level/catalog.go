package level

import (
	"sort"

	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Catalog maps level numbers to their configuration.
type Catalog struct {
	levels map[int]game.Level
}

// Get returns level n. Unknown levels fall back to level 1, then to
// game.DefaultLevel.
func (c *Catalog) Get(n int) game.Level {
	if l, ok := c.levels[n]; ok {
		return l
	}
	if l, ok := c.levels[1]; ok {
		return l
	}
	return game.DefaultLevel()
}

func (c *Catalog) Has(n int) bool {
	_, ok := c.levels[n]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.levels)
}

// Numbers lists the defined levels in ascending order.
func (c *Catalog) Numbers() []int {
	out := make([]int, 0, len(c.levels))
	for n := range c.levels {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
