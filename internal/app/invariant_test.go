package app

import (
	"math/rand"
	"testing"
	"time"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/pkg/grid"
)

// checkSnapshot asserts what must hold after every tick of every game.
func checkSnapshot(t *testing.T, kind interfaces.Kind, step int, s entity.Snapshot) {
	t.Helper()
	for _, e := range s.Entities {
		if e.Health.Value < 0 || e.Health.Value > e.Health.Max {
			t.Fatalf("%s step %d: #%d health %d outside [0,%d]", kind, step, e.ID, e.Health.Value, e.Health.Max)
		}
		if !e.IsAgent() || !e.Alive {
			continue
		}
		c := e.Cell()
		tile, ok := s.Tile(c.X, c.Y)
		if !ok || tile.Kind == grid.Wall {
			t.Fatalf("%s step %d: agent #%d on %v, off board or in a wall", kind, step, e.ID, c)
		}
		if e.Team == component.TeamHostile && tile.Kind == grid.Hazard {
			t.Fatalf("%s step %d: bot #%d stands in a hazard at %v", kind, step, e.ID, c)
		}
	}
	for _, p := range s.Projectiles {
		if p.TTL <= 0 {
			t.Fatalf("%s step %d: bullet #%d alive with ttl %v", kind, step, p.ID, p.TTL)
		}
		if _, ok := s.Tile(p.Pos.Cell().X, p.Pos.Cell().Y); !ok {
			t.Fatalf("%s step %d: bullet #%d off board at %+v", kind, step, p.ID, p.Pos)
		}
	}
	if s.Counters.Lives < 0 || s.Counters.Energy < 0 {
		t.Fatalf("%s step %d: negative counters %+v", kind, step, s.Counters)
	}
	if kind == interfaces.MiniMines && s.Phase == component.Running {
		revealed := 0
		for _, tile := range s.Tiles {
			if tile.Revealed {
				revealed++
			}
		}
		if revealed != s.Counters.OpenCount {
			t.Fatalf("step %d: %d tiles revealed, open count %d", step, revealed, s.Counters.OpenCount)
		}
	}
}

func TestInvariants_RandomPlay(t *testing.T) {
	for _, kind := range interfaces.Kinds {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := New(kind, nil, Options{Seed: seed})
			if err != nil {
				t.Fatal(err)
			}
			ended := countEvents(g.Events(), event.MatchEnded)
			if err := g.StartLevel(defs.Medium); err != nil {
				t.Fatal(err)
			}

			input := rand.New(rand.NewSource(seed))
			d := prime(g)
			var endPhase component.Phase
			for step := 0; step < 3000; step++ {
				dir := grid.OrthogonalDirections[input.Intn(4)]
				switch input.Intn(12) {
				case 0, 1, 2:
					g.MovePlayer(dir)
				case 3:
					g.FirePlayer()
				case 4:
					g.PlaceMark(dir)
				case 5:
					g.ClearMark(dir)
				case 6:
					g.ConsumeResourceAbility()
				}
				d.now = d.now.Add(time.Duration(5+input.Intn(40)) * time.Millisecond)
				g.Update(d.now)

				s := g.Snapshot()
				checkSnapshot(t, kind, step, s)
				if *ended > 1 {
					t.Fatalf("%s seed %d: match ended %d times", kind, seed, *ended)
				}
				if *ended == 1 {
					if endPhase == component.Running {
						endPhase = s.Phase
					}
					if s.Phase != endPhase || !s.Phase.Terminal() {
						t.Fatalf("%s seed %d: phase moved from %s to %s after the end", kind, seed, endPhase, s.Phase)
					}
				}
			}
		}
	}
}
