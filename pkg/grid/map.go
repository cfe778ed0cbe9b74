// pkg/grid/map.go
package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for any coordinate outside [0,Width)×[0,Height).
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// TerrainKind classifies a tile for movement and collision.
type TerrainKind uint8

const (
	Passable TerrainKind = iota
	Hazard               // lake water: lethal for keyboard agents, avoided by bots
	Wall
)

func (k TerrainKind) String() string {
	switch k {
	case Passable:
		return "passable"
	case Hazard:
		return "hazard"
	case Wall:
		return "wall"
	}
	return "unknown"
}

// Tile is one grid cell. Kind is fixed once the level is generated; the
// remaining fields are the minesweeper reveal/mark state.
type Tile struct {
	Kind       TerrainKind
	Bomb       bool
	Revealed   bool
	MarkedSafe bool
	Adjacent   int
}

// Map is a fixed-size tile grid stored row-major.
type Map struct {
	Width  int
	Height int
	tiles  []Tile
}

// New creates a width×height map of passable tiles.
func New(width, height int) *Map {
	return &Map{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

// FromRows builds a map from a level table, rows[y][x], where 0 is passable,
// 1 is hazard and 2 is wall. Every row must have the same length.
func FromRows(rows [][]int) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid: empty level table")
	}
	m := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != m.Width {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", y, len(row), m.Width)
		}
		for x, v := range row {
			kind := TerrainKind(v)
			if kind > Wall {
				return nil, fmt.Errorf("grid: unknown terrain %d at (%d,%d)", v, x, y)
			}
			m.tiles[y*m.Width+x].Kind = kind
		}
	}
	return m, nil
}

// InBounds reports whether (x,y) lies on the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Contains is InBounds for a Point.
func (m *Map) Contains(p Point) bool {
	return m.InBounds(p.X, p.Y)
}

func (m *Map) index(x, y int) (int, error) {
	if !m.InBounds(x, y) {
		return 0, fmt.Errorf("(%d,%d) on %dx%d: %w", x, y, m.Width, m.Height, ErrOutOfBounds)
	}
	return y*m.Width + x, nil
}

// TerrainAt returns the terrain kind at (x,y).
func (m *Map) TerrainAt(x, y int) (TerrainKind, error) {
	i, err := m.index(x, y)
	if err != nil {
		return 0, err
	}
	return m.tiles[i].Kind, nil
}

// Tile returns a copy of the tile at (x,y).
func (m *Map) Tile(x, y int) (Tile, error) {
	i, err := m.index(x, y)
	if err != nil {
		return Tile{}, err
	}
	return m.tiles[i], nil
}


// IsPassable is the movement rule for policy-driven agents: in bounds and
// neither wall nor hazard.
func (m *Map) IsPassable(x, y int) bool {
	k, err := m.TerrainAt(x, y)
	return err == nil && k == Passable
}

// CanEnter is the movement rule for keyboard agents: in bounds and not a wall.
// Hazards can be entered, see IsLethal.
func (m *Map) CanEnter(x, y int) bool {
	k, err := m.TerrainAt(x, y)
	return err == nil && k != Wall
}

// IsLethal reports whether entering (x,y) kills a keyboard agent.
func (m *Map) IsLethal(x, y int) bool {
	k, err := m.TerrainAt(x, y)
	return err == nil && k == Hazard
}

// IsWall reports a wall tile. Out-of-bounds coordinates are not walls.
func (m *Map) IsWall(x, y int) bool {
	k, err := m.TerrainAt(x, y)
	return err == nil && k == Wall
}

// Neighbors4 returns the in-bounds orthogonal neighbours of p in
// OrthogonalDirections order.
func (m *Map) Neighbors4(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range OrthogonalDirections {
		n := p.Step(d)
		if m.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Neighbors8 returns the in-bounds neighbours of p including diagonals.
func (m *Map) Neighbors8(p Point) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Point{X: p.X + dx, Y: p.Y + dy}
			if m.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Reveal opens exactly the tile at (x,y); neighbours are never touched. It
// reports whether the tile changed from closed to open. Walls and tiles marked
// safe stay closed.
func (m *Map) Reveal(x, y int) (bool, error) {
	i, err := m.index(x, y)
	if err != nil {
		return false, err
	}
	t := &m.tiles[i]
	if t.Revealed || t.Kind == Wall || t.MarkedSafe {
		return false, nil
	}
	t.Revealed = true
	return true, nil
}


// SetMark sets or clears the safe mark. Marks can only be placed on closed,
// non-wall tiles; clearing is always allowed.
func (m *Map) SetMark(x, y int, marked bool) error {
	i, err := m.index(x, y)
	if err != nil {
		return err
	}
	t := &m.tiles[i]
	if marked && (t.Revealed || t.Kind == Wall) {
		return nil
	}
	t.MarkedSafe = marked
	return nil
}


// Tiles returns a copy of all tiles in row-major order.
func (m *Map) Tiles() []Tile {
	out := make([]Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

