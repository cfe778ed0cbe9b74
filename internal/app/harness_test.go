package app

import (
	"testing"
	"time"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/pkg/grid"
)

const testSeed = 42

// driver feeds a game deterministic timestamps.
type driver struct {
	now time.Time
}

// prime sends the first tick, which always has a zero delta.
func prime(g interfaces.Game) *driver {
	d := &driver{now: time.Unix(1000, 0)}
	g.Update(d.now)
	return d
}

// stepFor advances the game by totalMs in ticks of stepMs.
func (d *driver) stepFor(g interfaces.Game, totalMs, stepMs int) {
	for elapsed := 0; elapsed < totalMs; {
		step := stepMs
		if elapsed+step > totalMs {
			step = totalMs - elapsed
		}
		d.now = d.now.Add(time.Duration(step) * time.Millisecond)
		g.Update(d.now)
		elapsed += step
	}
}

// countEvents counts dispatched events of one type.
func countEvents(d *event.Dispatcher, t event.EventType) *int {
	n := new(int)
	d.Subscribe(t, event.ListenerFunc(func(event.Event) { *n++ }))
	return n
}

// stripRun strips what legitimately differs between two runs.
func stripRun(s entity.Snapshot) entity.Snapshot {
	s.RunID = ""
	return s
}

func playerOf(t *testing.T, w *entity.World) *component.Entity {
	t.Helper()
	p := w.Player()
	if p == nil {
		t.Fatal("no player in world")
	}
	return p
}

func at(x, y int) grid.Point { return grid.Point{X: x, Y: y} }
