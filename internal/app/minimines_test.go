package app

import (
	"reflect"
	"testing"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/pkg/grid"
)

func newMiniMines(t *testing.T) *MiniMines {
	t.Helper()
	g := NewMiniMines(nil, Options{Seed: testSeed})
	if err := g.StartLevel(defs.Easy); err != nil {
		t.Fatal(err)
	}
	return g
}

// safeClosed returns the closed non-bomb tiles in row-major order.
func safeClosed(g *MiniMines) []grid.Point {
	var out []grid.Point
	m := g.World().Grid
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if tile, _ := m.Tile(x, y); !tile.Bomb && !tile.Revealed {
				out = append(out, at(x, y))
			}
		}
	}
	return out
}

func TestMiniMines_StartOpensSafeSetOnly(t *testing.T) {
	g := newMiniMines(t)
	w := g.World()
	if w.Counters.OpenCount != 5 {
		t.Fatalf("open count=%d, want 5", w.Counters.OpenCount)
	}
	if w.Counters.Mines != 15 || w.Grid.BombCount() != 15 {
		t.Fatalf("mines=%d", w.Counters.Mines)
	}
	for _, p := range []grid.Point{at(0, 0), at(1, 0), at(0, 1), at(1, 1), at(0, 2)} {
		if tile, _ := w.Grid.Tile(p.X, p.Y); !tile.Revealed || tile.Bomb {
			t.Fatalf("safe tile %v: %+v", p, tile)
		}
	}
	for _, p := range []grid.Point{at(0, 3), at(1, 3), at(1, 2), at(2, 0)} {
		if tile, _ := w.Grid.Tile(p.X, p.Y); tile.Revealed {
			t.Fatalf("tile %v opened without being stepped on", p)
		}
	}
}

func TestMiniMines_StepOpensUnlessMarked(t *testing.T) {
	g := newMiniMines(t)
	w := g.World()
	g.MovePlayer(grid.Down)
	g.MovePlayer(grid.Down) // (0,2), already open
	g.PlaceMark(grid.Down)
	if tile, _ := w.Grid.Tile(0, 3); !tile.MarkedSafe {
		t.Fatal("mark not placed")
	}
	g.MovePlayer(grid.Down)
	if tile, _ := w.Grid.Tile(0, 3); tile.Revealed || w.Counters.OpenCount != 5 {
		t.Fatal("a marked tile must not open when stepped on")
	}
	g.MovePlayer(grid.Up)
	g.ClearMark(grid.Down)
	g.MovePlayer(grid.Down)
	if tile, _ := w.Grid.Tile(0, 3); !tile.Revealed || w.Counters.OpenCount != 6 {
		t.Fatalf("cleared tile should open, open count=%d", w.Counters.OpenCount)
	}
}

func TestMiniMines_MonstersAndEnergyFromOpenCount(t *testing.T) {
	g := newMiniMines(t)
	w := g.World()
	spawned := countEvents(g.Events(), event.MonsterSpawned)

	for _, p := range safeClosed(g)[:15] {
		g.open(p)
	}
	if w.Counters.OpenCount != 20 {
		t.Fatalf("open count=%d", w.Counters.OpenCount)
	}
	monsters := w.AgentsOf(component.TeamHostile)
	if len(monsters) != 2 || *spawned != 2 {
		t.Fatalf("monsters=%d events=%d, want 2", len(monsters), *spawned)
	}
	if monsters[0].Cell() != at(9, 9) {
		t.Fatalf("monster spawned at %v", monsters[0].Cell())
	}
	if w.Counters.Energy != 1 {
		t.Fatalf("energy=%d, want 1", w.Counters.Energy)
	}

	last := monsters[1]
	g.ConsumeResourceAbility()
	if w.Counters.Energy != 0 || w.Entity(last.ID) != nil || len(w.AgentsOf(component.TeamHostile)) != 1 {
		t.Fatal("energy should remove the newest monster")
	}
	g.ConsumeResourceAbility()
	if len(w.AgentsOf(component.TeamHostile)) != 1 {
		t.Fatal("no energy, no removal")
	}
}

func TestMiniMines_ConsumeWithoutMonstersKeepsEnergy(t *testing.T) {
	g := newMiniMines(t)
	g.World().Counters.Energy = 2
	g.ConsumeResourceAbility()
	if g.World().Counters.Energy != 2 {
		t.Fatal("energy spent with no monster on the board")
	}
}

func TestMiniMines_BombLoses(t *testing.T) {
	g := newMiniMines(t)
	w := g.World()
	var bomb grid.Point
	for y := 0; y < w.Grid.Height; y++ {
		for x := 0; x < w.Grid.Width; x++ {
			if tile, _ := w.Grid.Tile(x, y); tile.Bomb {
				bomb = at(x, y)
			}
		}
	}
	p := playerOf(t, w)
	dir := grid.Right
	if bomb.X == 0 {
		p.MoveTo(at(1, bomb.Y))
		dir = grid.Left
	} else {
		p.MoveTo(at(bomb.X-1, bomb.Y))
	}
	g.MovePlayer(dir)

	if w.Phase != component.Lost {
		t.Fatalf("phase=%v, want lost", w.Phase)
	}
	for y := 0; y < w.Grid.Height; y++ {
		for x := 0; x < w.Grid.Width; x++ {
			if tile, _ := w.Grid.Tile(x, y); tile.Bomb && !tile.Revealed {
				t.Fatalf("bomb at (%d,%d) hidden after loss", x, y)
			}
		}
	}
}

func TestMiniMines_WinWhenAllSafeOpen(t *testing.T) {
	g := newMiniMines(t)
	ended := countEvents(g.Events(), event.MatchEnded)
	w := g.World()
	for _, p := range safeClosed(g) {
		g.open(p)
	}
	if w.Phase != component.Won || *ended != 1 {
		t.Fatalf("phase=%v ended=%d", w.Phase, *ended)
	}
	if w.Grid.BombCount() == 0 {
		t.Fatal("board lost its bombs")
	}
}

func TestMiniMines_MonsterCatchesPlayer(t *testing.T) {
	g := newMiniMines(t)
	w := g.World()
	w.Add(component.NewAgent(component.TeamHostile, component.ControlPolicy, component.RespawnNever, at(2, 0), 1))
	d := prime(g)

	d.stepFor(g, 4999, 100)
	if w.Phase != component.Running {
		t.Fatal("monster moved early")
	}
	d.stepFor(g, 1, 1)
	if w.Phase != component.Running {
		t.Fatal("one step should not reach the player yet")
	}
	d.stepFor(g, 5000, 100)
	if w.Phase != component.Lost {
		t.Fatalf("phase=%v, want lost", w.Phase)
	}
}

func TestMiniMines_MonsterSpawnedUnderPlayerWaitsForItsStep(t *testing.T) {
	g := newMiniMines(t)
	w := g.World()
	spawn := at(9, 9)
	if tile, _ := w.Grid.Tile(9, 9); tile.Bomb {
		closed := safeClosed(g)
		spawn = closed[len(closed)-1]
		g.cfg.MonsterSpawn = defs.Cell{X: spawn.X, Y: spawn.Y}
	}
	from, dir := spawn.Step(grid.Up), grid.Down
	if spawn.Y == 0 {
		from, dir = spawn.Step(grid.Down), grid.Up
	}
	p := playerOf(t, w)
	p.MoveTo(from)
	w.Counters.OpenCount = g.cfg.MonsterEvery - 1

	g.MovePlayer(dir)
	monsters := w.AgentsOf(component.TeamHostile)
	if len(monsters) != 1 || monsters[0].Cell() != p.Cell() {
		t.Fatalf("monsters=%d, want one under the player at %v", len(monsters), p.Cell())
	}
	if w.Phase != component.Running {
		t.Fatalf("phase=%v (%s) right after the spawn", w.Phase, w.Reason)
	}

	d := prime(g)
	d.stepFor(g, int(g.cfg.MonsterMoveMs)-1, 100)
	if w.Phase != component.Running {
		t.Fatal("caught before the monster stepped")
	}
	d.stepFor(g, 1, 1)
	if w.Phase != component.Lost || w.Reason != "caught by a monster" {
		t.Fatalf("phase=%v reason=%q, want caught on the monster step", w.Phase, w.Reason)
	}
}

func TestMiniMines_RestartEqualsFreshStart(t *testing.T) {
	g := newMiniMines(t)
	g.MovePlayer(grid.Right)
	g.MovePlayer(grid.Down)
	g.PlaceMark(grid.Right)
	if err := g.Restart(); err != nil {
		t.Fatal(err)
	}
	fresh := newMiniMines(t)
	if !reflect.DeepEqual(stripRun(g.Snapshot()), stripRun(fresh.Snapshot())) {
		t.Fatal("restart differs from a fresh start")
	}
}
