package app

import (
	"reflect"
	"testing"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/pkg/grid"
)

func newLakeWars(t *testing.T, d defs.Difficulty) *LakeWars {
	t.Helper()
	g := NewLakeWars(nil, Options{Seed: testSeed})
	if err := g.StartLevel(d); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestLakeWars_StartLevelPerDifficulty(t *testing.T) {
	for d, want := range map[defs.Difficulty]int{defs.Easy: 2, defs.Medium: 3, defs.Hard: 4} {
		g := newLakeWars(t, d)
		w := g.World()
		bots := w.AgentsOf(component.TeamHostile)
		if len(bots) != want {
			t.Fatalf("%s: %d bots, want %d", d, len(bots), want)
		}
		for _, b := range bots {
			c := b.Cell()
			if c.X < 5 || !w.Grid.IsPassable(c.X, c.Y) {
				t.Fatalf("%s: bot spawned on %v", d, c)
			}
			if b.Health.Value != 3 {
				t.Fatalf("%s: bot health %d", d, b.Health.Value)
			}
		}
		if p := playerOf(t, w); p.Cell() != at(1, 1) {
			t.Fatalf("player at %v", p.Cell())
		}
		if w.Counters.Lives != 3 {
			t.Fatalf("lives=%d", w.Counters.Lives)
		}
	}
}

func TestLakeWars_UnknownDifficulty(t *testing.T) {
	g := NewLakeWars(nil, Options{Seed: testSeed})
	if err := g.StartLevel("nightmare"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLakeWars_LakeCostsALife(t *testing.T) {
	g := newLakeWars(t, defs.Easy)
	w := g.World()
	lost := countEvents(g.Events(), event.LifeLost)

	for life := 3; life > 0; life-- {
		g.MovePlayer(grid.Right)
		g.MovePlayer(grid.Right)
		g.MovePlayer(grid.Right) // (4,1) is lake
		if *lost != 4-life {
			t.Fatalf("life events=%d, want %d", *lost, 4-life)
		}
		if life > 1 && playerOf(t, w).Cell() != at(1, 1) {
			t.Fatalf("player should be back at spawn, at %v", playerOf(t, w).Cell())
		}
	}
	if w.Phase != component.Lost || w.Counters.Lives != 0 {
		t.Fatalf("phase=%v lives=%d", w.Phase, w.Counters.Lives)
	}

	g.MovePlayer(grid.Down)
	if playerOf(t, w).Cell() == at(1, 2) {
		t.Fatal("commands after the end must be ignored")
	}
}

func TestLakeWars_EdgeBlocksMove(t *testing.T) {
	g := newLakeWars(t, defs.Easy)
	p := playerOf(t, g.World())
	g.MovePlayer(grid.Up)
	g.MovePlayer(grid.Up)
	if p.Cell() != at(1, 0) {
		t.Fatalf("player at %v, want (1,0)", p.Cell())
	}
}

func TestLakeWars_WinExactlyOnce(t *testing.T) {
	g := newLakeWars(t, defs.Medium)
	ended := countEvents(g.Events(), event.MatchEnded)
	d := prime(g)

	for _, b := range g.World().AgentsOf(component.TeamHostile) {
		g.combat.Kill(b)
	}
	d.stepFor(g, 100, 16)
	g.checkOutcome()
	d.stepFor(g, 100, 16)

	if g.World().Phase != component.Won {
		t.Fatalf("phase=%v, want won", g.World().Phase)
	}
	if *ended != 1 {
		t.Fatalf("MatchEnded fired %d times", *ended)
	}
}

func TestLakeWars_PlayerShotKillsBot(t *testing.T) {
	g := newLakeWars(t, defs.Easy)
	w := g.World()
	bots := w.AgentsOf(component.TeamHostile)
	target := bots[0]
	for _, b := range bots[1:] {
		w.Remove(b.ID)
	}
	target.MoveTo(at(8, 1))
	d := prime(g)

	for i := 0; i < 3; i++ {
		g.FirePlayer()
		d.stepFor(g, 1000, 10)
		if target.Cell() != at(8, 1) {
			target.MoveTo(at(8, 1))
		}
	}
	if w.Phase != component.Won {
		t.Fatalf("phase=%v after three hits, bot hp=%d", w.Phase, target.Health.Value)
	}
}

func TestLakeWars_RestartEqualsFreshStart(t *testing.T) {
	g := newLakeWars(t, defs.Hard)
	d := prime(g)
	g.MovePlayer(grid.Down)
	g.FirePlayer()
	d.stepFor(g, 5000, 16)
	if err := g.Restart(); err != nil {
		t.Fatal(err)
	}

	fresh := newLakeWars(t, defs.Hard)
	if !reflect.DeepEqual(stripRun(g.Snapshot()), stripRun(fresh.Snapshot())) {
		t.Fatalf("restart differs from a fresh start:\n%s\nvs\n%s", g.Snapshot().Dump(), fresh.Snapshot().Dump())
	}
	if g.Snapshot().Pending != 0 || len(g.World().Projectiles) != 0 {
		t.Fatal("restart must not carry pending events or bullets")
	}
}
