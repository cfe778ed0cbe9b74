package entity

import (
	"strings"
	"testing"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/pkg/grid"
)

func newTestWorld() *World {
	return NewWorld(grid.New(5, 5), event.NewDispatcher())
}

func TestScheduler_DeadlineThenInsertionOrder(t *testing.T) {
	var s Scheduler
	var got []string
	s.After(200, func() { got = append(got, "b") })
	s.After(100, func() { got = append(got, "a") })
	s.After(200, func() { got = append(got, "c") })

	s.Fire(99)
	if len(got) != 0 {
		t.Fatalf("fired early: %v", got)
	}
	s.Fire(200)
	if strings.Join(got, "") != "abc" {
		t.Fatalf("order=%v, want a b c", got)
	}
	if s.Len() != 0 {
		t.Fatalf("pending=%d after firing all", s.Len())
	}
}

func TestScheduler_AfterIsRelativeToLastFire(t *testing.T) {
	var s Scheduler
	s.Fire(1000)
	fired := false
	s.After(3000, func() { fired = true })
	s.Fire(3999)
	if fired {
		t.Fatal("fired 1ms early")
	}
	s.Fire(4000)
	if !fired {
		t.Fatal("did not fire at the deadline")
	}
}

func TestScheduler_Reset(t *testing.T) {
	var s Scheduler
	fired := false
	s.After(10, func() { fired = true })
	s.Reset()
	s.Fire(100)
	if fired || s.Len() != 0 {
		t.Fatal("reset must drop pending events")
	}
}

func TestWorld_AddRemoveKeepsOrder(t *testing.T) {
	w := newTestWorld()
	a := w.Add(component.NewAgent(component.TeamHostile, component.ControlPolicy, component.RespawnNever, grid.Point{X: 1, Y: 1}, 3))
	b := w.Add(component.NewAgent(component.TeamHostile, component.ControlPolicy, component.RespawnNever, grid.Point{X: 2, Y: 1}, 3))
	c := w.Add(component.NewAgent(component.TeamHostile, component.ControlPolicy, component.RespawnNever, grid.Point{X: 3, Y: 1}, 3))
	if a.ID == b.ID || b.ID == c.ID {
		t.Fatal("ids must be unique")
	}
	if !w.Remove(b.ID) || w.Remove(b.ID) {
		t.Fatal("remove should succeed exactly once")
	}
	agents := w.AgentsOf(component.TeamHostile)
	if len(agents) != 2 || agents[0] != a || agents[1] != c {
		t.Fatalf("order not preserved: %v", agents)
	}
	if w.AgentAt(grid.Point{X: 3, Y: 1}, 0) != c || w.AgentAt(grid.Point{X: 3, Y: 1}, c.ID) != nil {
		t.Fatal("AgentAt lookup wrong")
	}
}

func TestWorld_EndExactlyOnce(t *testing.T) {
	w := newTestWorld()
	ended := 0
	w.Events.Subscribe(event.MatchEnded, event.ListenerFunc(func(event.Event) { ended++ }))
	w.After(10, func() {})
	if !w.End(component.Won, "test") {
		t.Fatal("first End should succeed")
	}
	if w.End(component.Lost, "again") {
		t.Fatal("second End must be ignored")
	}
	if ended != 1 || w.Phase != component.Won || w.Active() {
		t.Fatalf("ended=%d phase=%v", ended, w.Phase)
	}
	if w.Scheduler.Len() != 0 {
		t.Fatal("ending must clear scheduled events")
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	w := newTestWorld()
	p := w.Add(component.NewAgent(component.TeamPlayer, component.ControlKeyboard, component.RespawnLifePool, grid.Point{X: 1, Y: 1}, 3))
	w.AddProjectile(&component.Projectile{Pos: component.Position{X: 2, Y: 2}, Owner: component.TeamPlayer, TTL: 100})
	s := w.Snapshot()

	p.MoveTo(grid.Point{X: 4, Y: 4})
	w.Projectiles[0].TTL = 1
	_, _ = w.Grid.Reveal(0, 0)

	if s.Entities[0].Cell() != (grid.Point{X: 1, Y: 1}) {
		t.Fatal("snapshot entity aliases the world")
	}
	if s.Projectiles[0].TTL != 100 {
		t.Fatal("snapshot projectile aliases the world")
	}
	if tile, _ := s.Tile(0, 0); tile.Revealed {
		t.Fatal("snapshot tiles alias the world")
	}
	if v := s.Abilities[component.TeamPlayer]; !v.CanShoot || v.Disabled {
		t.Fatalf("abilities view=%+v", v)
	}
	w.Ability(component.TeamPlayer).AddGeneratorLock()
	if v := w.Snapshot().Abilities[component.TeamPlayer]; v.CanShoot || !v.Disabled || v.GeneratorLocks != 1 {
		t.Fatalf("locked abilities view=%+v", v)
	}
	if !s.Abilities[component.TeamPlayer].CanShoot {
		t.Fatal("snapshot abilities alias the world")
	}
}

func TestSnapshot_Dump(t *testing.T) {
	m, _ := grid.FromRows([][]int{{0, 1, 2}})
	w := NewWorld(m, nil)
	w.Add(component.NewAgent(component.TeamPlayer, component.ControlKeyboard, component.RespawnLifePool, grid.Point{X: 0, Y: 0}, 3))
	out := w.Snapshot().Dump()
	if !strings.Contains(out, "@~#\n") {
		t.Fatalf("board row missing:\n%s", out)
	}
	if !strings.Contains(out, "phase=running") || !strings.Contains(out, "pending=0") {
		t.Fatalf("header missing:\n%s", out)
	}
}
