// internal/system/targeting.go
package system

import (
	"sort"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/pkg/grid"
)

// Rand — источник случайности для политик
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// WeightedRand — Rand со взвешенным выбором
type WeightedRand interface {
	Rand
	ChooseWeighted(weights []int) int
}

// Policy выбирает следующую клетку для бота. ok == false, если бот стоит на месте
type Policy interface {
	Next(w *entity.World, bot *component.Entity) (next grid.Point, ok bool)
}

// Reselector — политики, которые хранят цель между шагами
type Reselector interface {
	Reselect(w *entity.World, bot *component.Entity)
}

// Aimer — направление стрельбы
type Aimer interface {
	Aim(shooter *component.Entity) grid.Direction
}

// FixedDirection всегда стреляет в одну сторону
type FixedDirection grid.Direction

func (d FixedDirection) Aim(*component.Entity) grid.Direction { return grid.Direction(d) }

// walkCandidates возвращает соседние клетки, куда боту можно шагнуть:
// проходимые, не клетка игрока и не занятые другим живым агентом
func walkCandidates(w *entity.World, bot *component.Entity) []grid.Point {
	player := w.Player()
	var out []grid.Point
	for _, n := range w.Grid.Neighbors4(bot.Cell()) {
		if !w.Grid.IsPassable(n.X, n.Y) {
			continue
		}
		if player != nil && player.Alive && player.Cell() == n {
			continue
		}
		if w.AgentAt(n, bot.ID) != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// RandomWalk шагает в случайную соседнюю клетку
type RandomWalk struct {
	Rng Rand
}

func (p RandomWalk) Next(w *entity.World, bot *component.Entity) (grid.Point, bool) {
	c := walkCandidates(w, bot)
	if len(c) == 0 {
		return bot.Cell(), false
	}
	return c[p.Rng.Intn(len(c))], true
}

// GreedyApproach с вероятностью P приближается к игроку, иначе бродит.
// При равенстве побеждает порядок обхода соседей
type GreedyApproach struct {
	P   float64
	Rng Rand
}

func (p GreedyApproach) Next(w *entity.World, bot *component.Entity) (grid.Point, bool) {
	player := w.Player()
	if player == nil || p.P <= 0 || p.Rng.Float64() >= p.P {
		return RandomWalk{Rng: p.Rng}.Next(w, bot)
	}
	c := walkCandidates(w, bot)
	if len(c) == 0 {
		return bot.Cell(), false
	}
	target := player.Cell()
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Manhattan(target) < c[j].Manhattan(target)
	})
	return c[0], true
}

// LaneWeights — веса выбора цели для LaneChase
type LaneWeights struct {
	Lane      int
	Castle    int
	Generator int
}

// LaneChase держит цель в горизонтальной полосе строк и идёт к ней
// по клетке на каждую ось
type LaneChase struct {
	MinY, MaxY int
	Weights    LaneWeights
	Rng        WeightedRand
}

// Reselect выбирает новую цель: столбец игрока, точку перед замком игрока
// или живой генератор игрока
func (p LaneChase) Reselect(w *entity.World, bot *component.Entity) {
	choice := p.Rng.ChooseWeighted([]int{p.Weights.Lane, p.Weights.Castle, p.Weights.Generator})
	enemy := bot.Team.Enemy()

	switch choice {
	case 1:
		if castles := w.Structures(enemy, component.RoleCastle); len(castles) > 0 {
			c := castles[0].Cell()
			bot.Destination = grid.Point{X: c.X + p.Rng.Intn(castles[0].W), Y: c.Y - 1}
			return
		}
	case 2:
		var live []*component.Entity
		for _, g := range w.Structures(enemy, component.RoleGenerator) {
			if g.Alive {
				live = append(live, g)
			}
		}
		if len(live) > 0 {
			bot.Destination = live[p.Rng.Intn(len(live))].Cell()
			return
		}
	}
	p.laneDestination(w, bot)
}

func (p LaneChase) laneDestination(w *entity.World, bot *component.Entity) {
	x := bot.Cell().X
	if player := w.Player(); player != nil {
		x = player.Cell().X
	}
	bot.Destination = grid.Point{X: x, Y: p.MinY + p.Rng.Intn(p.MaxY-p.MinY+1)}
}

func (p LaneChase) Next(w *entity.World, bot *component.Entity) (grid.Point, bool) {
	cur := bot.Cell()
	next := cur.Add(grid.Point{X: bot.Destination.X - cur.X, Y: bot.Destination.Y - cur.Y}.Sign())
	next.Y = clamp(next.Y, p.MinY, p.MaxY)
	next.X = clamp(next.X, 0, w.Grid.Width-1)
	next.Y = clamp(next.Y, 0, w.Grid.Height-1)
	return next, next != cur
}

// DominantAxisChase идёт к игроку по оси с большим разрывом, при равенстве
// по вертикали. Стены и край поля его останавливают
type DominantAxisChase struct{}

func (DominantAxisChase) Next(w *entity.World, bot *component.Entity) (grid.Point, bool) {
	player := w.Player()
	cur := bot.Cell()
	if player == nil {
		return cur, false
	}
	gap := grid.Point{X: player.Cell().X - cur.X, Y: player.Cell().Y - cur.Y}
	if gap == (grid.Point{}) {
		return cur, false
	}
	step := gap.Sign()
	if abs(gap.X) > abs(gap.Y) {
		step.Y = 0
	} else {
		step.X = 0
	}
	next := cur.Add(step)
	if !w.Grid.CanEnter(next.X, next.Y) {
		return cur, false
	}
	return next, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
