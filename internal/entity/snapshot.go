// internal/entity/snapshot.go
package entity

import (
	"fmt"
	"strings"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/pkg/grid"
)

// AbilityView is the rendered state of a team's abilities.
type AbilityView struct {
	CanShoot       bool
	CanHeal        bool
	Disabled       bool
	GeneratorLocks int
}

// Snapshot is a deep copy of a World for rendering and inspection. Nothing in
// it aliases the live world.
type Snapshot struct {
	RunID       string
	Phase       component.Phase
	Reason      string
	Width       int
	Height      int
	Tiles       []grid.Tile
	Entities    []component.Entity
	Projectiles []component.Projectile
	Counters    Counters
	Abilities   map[component.Team]AbilityView
	Pending     int
}

// Snapshot copies the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		RunID:     w.RunID.String(),
		Phase:     w.Phase,
		Reason:    w.Reason,
		Counters:  w.Counters,
		Abilities: make(map[component.Team]AbilityView, len(w.Abilities)),
		Pending:   w.Scheduler.Len(),
	}
	if w.Grid != nil {
		s.Width, s.Height = w.Grid.Width, w.Grid.Height
		s.Tiles = w.Grid.Tiles()
	}
	s.Entities = make([]component.Entity, 0, len(w.Entities))
	for _, e := range w.Entities {
		s.Entities = append(s.Entities, *e)
	}
	s.Projectiles = make([]component.Projectile, 0, len(w.Projectiles))
	for _, p := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, *p)
	}
	for team, a := range w.Abilities {
		s.Abilities[team] = AbilityView{
			CanShoot:       a.CanShoot(),
			CanHeal:        a.CanHeal(),
			Disabled:       a.Disabled(),
			GeneratorLocks: a.GeneratorLocks(),
		}
	}
	return s
}

// Tile returns the tile at (x,y) or false when out of range.
func (s Snapshot) Tile(x, y int) (grid.Tile, bool) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return grid.Tile{}, false
	}
	return s.Tiles[y*s.Width+x], true
}

// Dump renders the snapshot as text: a header, the board, then one line per
// entity and projectile.
//
//	. passable   ~ hazard   # wall   * bomb   digit: open tile with neighbours
//	@ player     B hostile agent     C castle  G generator  = bridge  o bullet
func (s Snapshot) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run=%s phase=%s", s.RunID, s.Phase)
	if s.Reason != "" {
		fmt.Fprintf(&sb, " (%s)", s.Reason)
	}
	fmt.Fprintf(&sb, " t=%.0fms lives=%d energy=%d open=%d pending=%d\n",
		s.Counters.ElapsedMs, s.Counters.Lives, s.Counters.Energy, s.Counters.OpenCount, s.Pending)

	board := make([][]byte, s.Height)
	for y := range board {
		board[y] = make([]byte, s.Width)
		for x := range board[y] {
			board[y][x] = tileGlyph(s.Tiles[y*s.Width+x])
		}
	}
	put := func(p grid.Point, c byte) {
		if p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height {
			board[p.Y][p.X] = c
		}
	}
	for _, e := range s.Entities {
		if !e.Alive || e.IsAgent() {
			continue
		}
		o := e.Cell()
		for dy := 0; dy < e.H; dy++ {
			for dx := 0; dx < e.W; dx++ {
				put(grid.Point{X: o.X + dx, Y: o.Y + dy}, structureGlyph(e.Role))
			}
		}
	}
	for _, p := range s.Projectiles {
		put(p.Pos.Cell(), 'o')
	}
	for _, e := range s.Entities {
		if !e.Alive || !e.IsAgent() {
			continue
		}
		c := byte('B')
		if e.Team == component.TeamPlayer {
			c = '@'
		}
		put(e.Cell(), c)
	}
	for _, row := range board {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	for _, e := range s.Entities {
		state := "alive"
		if !e.Alive {
			state = "dead"
		}
		fmt.Fprintf(&sb, "#%d %s %s at %v hp=%d/%d %s\n",
			e.ID, e.Team, e.Role, e.Cell(), e.Health.Value, e.Health.Max, state)
	}
	for _, p := range s.Projectiles {
		fmt.Fprintf(&sb, "bullet #%d %s at (%.2f,%.2f) ttl=%.0f\n", p.ID, p.Owner, p.Pos.X, p.Pos.Y, p.TTL)
	}
	return sb.String()
}

func tileGlyph(t grid.Tile) byte {
	switch {
	case t.Kind == grid.Wall:
		return '#'
	case t.Kind == grid.Hazard:
		return '~'
	case t.Revealed && t.Bomb:
		return '*'
	case t.Revealed && t.Adjacent > 0:
		return byte('0' + t.Adjacent)
	case t.Revealed:
		return ' '
	case t.MarkedSafe:
		return 'm'
	}
	return '.'
}

func structureGlyph(r component.Role) byte {
	switch r {
	case component.RoleCastle:
		return 'C'
	case component.RoleGenerator:
		return 'G'
	case component.RoleBridge:
		return '='
	}
	return '?'
}
