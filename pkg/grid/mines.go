// pkg/grid/mines.go
package grid

import "fmt"

// Rand is the subset of a random source used for level generation.
type Rand interface {
	Intn(n int) int
}

// PlaceBombs scatters count bombs over passable tiles that are neither in the
// safe set nor adjacent (including diagonally) to any safe tile, then refreshes
// the adjacency counts.
func (m *Map) PlaceBombs(rng Rand, count int, safe []Point) error {
	var candidates []Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{X: x, Y: y}
			if m.tiles[y*m.Width+x].Kind != Passable || nearAny(p, safe) {
				continue
			}
			candidates = append(candidates, p)
		}
	}
	if count > len(candidates) {
		return fmt.Errorf("grid: %d bombs requested, only %d eligible tiles", count, len(candidates))
	}
	for placed := 0; placed < count; placed++ {
		i := rng.Intn(len(candidates))
		p := candidates[i]
		m.tiles[p.Y*m.Width+p.X].Bomb = true
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
	m.computeAdjacency()
	return nil
}

func nearAny(p Point, safe []Point) bool {
	for _, s := range safe {
		if p.Chebyshev(s) <= 1 {
			return true
		}
	}
	return false
}

func (m *Map) computeAdjacency() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			count := 0
			for _, n := range m.Neighbors8(Point{X: x, Y: y}) {
				if m.tiles[n.Y*m.Width+n.X].Bomb {
					count++
				}
			}
			m.tiles[y*m.Width+x].Adjacent = count
		}
	}
}

// RevealBombs opens every bomb tile.
func (m *Map) RevealBombs() {
	for i := range m.tiles {
		if m.tiles[i].Bomb {
			m.tiles[i].Revealed = true
		}
	}
}

// BombCount returns the number of bombs on the map.
func (m *Map) BombCount() int {
	n := 0
	for _, t := range m.tiles {
		if t.Bomb {
			n++
		}
	}
	return n
}

// AllSafeRevealed reports whether every non-bomb, non-wall tile is open.
func (m *Map) AllSafeRevealed() bool {
	for _, t := range m.tiles {
		if !t.Bomb && t.Kind != Wall && !t.Revealed {
			return false
		}
	}
	return true
}
