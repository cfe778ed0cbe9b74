// internal/app/minimines.go
package app

import (
	"fmt"
	"time"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/internal/system"
	"go-grid-arcade/pkg/grid"
)

// MiniMines — сапёр, по которому ходят пешком. Каждый шаг открывает клетку
// под игроком, открытые клетки призывают монстров и дают энергию на их изгнание
type MiniMines struct {
	*session
	cfg defs.MiniMines

	combat   *system.CombatSystem
	movement *system.MovementSystem
}

func NewMiniMines(d *defs.Definitions, opts Options) *MiniMines {
	s := newSession(d, opts)
	return &MiniMines{session: s, cfg: s.defs.MiniMines}
}

func (g *MiniMines) Kind() interfaces.Kind { return interfaces.MiniMines }

// StartLevel строит новое поле. Уровень один, сложность запоминается
// только для Restart
func (g *MiniMines) StartLevel(difficulty defs.Difficulty) error {
	m := grid.New(g.cfg.Width, g.cfg.Height)
	safe := make([]grid.Point, len(g.cfg.Safe))
	for i, c := range g.cfg.Safe {
		safe[i] = c.Point()
	}

	w := g.begin(m, difficulty)
	if err := m.PlaceBombs(g.rng, g.cfg.Mines, safe); err != nil {
		w.Stop()
		return fmt.Errorf("mini mines: %w", err)
	}
	w.Counters.Mines = m.BombCount()
	w.Add(component.NewAgent(component.TeamPlayer, component.ControlKeyboard, component.RespawnNever,
		g.cfg.PlayerSpawn.Point(), 1))

	g.combat = system.NewCombatSystem(w, system.CombatRules{})
	g.movement = system.NewMovementSystem(w, component.TeamHostile, system.DominantAxisChase{}, g.cfg.MonsterMoveMs)

	for _, p := range safe {
		g.open(p)
	}
	return nil
}

func (g *MiniMines) Restart() error {
	return g.StartLevel(g.difficulty)
}

func (g *MiniMines) Update(now time.Time) {
	dt, ok := g.tick(now)
	if !ok {
		return
	}
	if g.movement.Update(dt) {
		g.checkCaught()
	}
}

func (g *MiniMines) MovePlayer(dir grid.Direction) {
	p := g.player()
	if p == nil {
		return
	}
	next := p.Cell().Step(dir)
	if !g.world.Grid.CanEnter(next.X, next.Y) {
		return
	}
	p.MoveTo(next)
	g.open(next)
}

func (g *MiniMines) PlaceMark(dir grid.Direction) {
	g.mark(dir, true)
}

func (g *MiniMines) ClearMark(dir grid.Direction) {
	g.mark(dir, false)
}

func (g *MiniMines) mark(dir grid.Direction, marked bool) {
	p := g.player()
	if p == nil {
		return
	}
	at := p.Cell().Step(dir)
	_ = g.world.Grid.SetMark(at.X, at.Y, marked) // метки за полем игнорируются
}

// ConsumeResourceAbility тратит единицу энергии и убирает последнего
// призванного монстра
func (g *MiniMines) ConsumeResourceAbility() {
	if g.player() == nil || g.world.Counters.Energy == 0 {
		return
	}
	monsters := g.world.AgentsOf(component.TeamHostile)
	if len(monsters) == 0 {
		return
	}
	g.world.Counters.Energy--
	g.combat.Kill(monsters[len(monsters)-1])
}

// open открывает клетку и применяет последствия
func (g *MiniMines) open(at grid.Point) {
	w := g.world
	opened, err := w.Grid.Reveal(at.X, at.Y)
	if err != nil || !opened {
		return
	}
	w.Counters.OpenCount++
	tile, _ := w.Grid.Tile(at.X, at.Y)
	w.Dispatch(event.TileOpened, event.TileData{At: at, Bomb: tile.Bomb, Adjacent: tile.Adjacent, Opened: w.Counters.OpenCount})

	if tile.Bomb {
		w.Grid.RevealBombs()
		w.End(component.Lost, fmt.Sprintf("stepped on a mine at %d,%d", at.X, at.Y))
		return
	}
	if w.Counters.OpenCount%g.cfg.MonsterEvery == 0 {
		monster := w.Add(component.NewAgent(component.TeamHostile, component.ControlPolicy, component.RespawnNever,
			g.cfg.MonsterSpawn.Point(), 1))
		w.Dispatch(event.MonsterSpawned, event.EntityData{ID: monster.ID, Team: monster.Team, Health: monster.Health.Value})
	}
	if w.Counters.OpenCount%g.cfg.EnergyEvery == 0 {
		w.Counters.Energy++
		w.Dispatch(event.EnergyGained, event.CounterData{Value: w.Counters.Energy})
	}
	if w.Grid.AllSafeRevealed() {
		w.Grid.RevealBombs()
		w.End(component.Won, "every safe tile opened")
	}
}

// checkCaught вызывается после шага монстров. Монстр на клетке игрока
// между шагами его ещё не поймал
func (g *MiniMines) checkCaught() {
	p := g.player()
	if p == nil {
		return
	}
	if g.world.AgentAt(p.Cell(), p.ID) != nil {
		g.world.Grid.RevealBombs()
		g.world.End(component.Lost, "caught by a monster")
	}
}
