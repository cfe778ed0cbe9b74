// internal/app/towerfight.go
package app

import (
	"time"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/internal/system"
	"go-grid-arcade/pkg/grid"
)

// TowerFight — бой двух замков через мост. У каждой стороны замок, который
// лечит агента, и два генератора, от которых зависят стрельба и лечение
type TowerFight struct {
	*session
	cfg defs.TowerFight

	combat      *system.CombatSystem
	projectiles *system.ProjectileSystem
	retarget    *system.RetargetSystem
	movement    *system.MovementSystem
	shooting    *system.ShootingSystem
	heal        *system.HealSystem
}

func NewTowerFight(d *defs.Definitions, opts Options) *TowerFight {
	s := newSession(d, opts)
	g := &TowerFight{session: s, cfg: s.defs.TowerFight}
	// Возрождённый бот сразу выбирает новую цель
	s.events.Subscribe(event.AgentRespawned, event.ListenerFunc(func(e event.Event) {
		if data, ok := e.Data.(event.EntityData); ok && data.Team == component.TeamHostile && g.retarget != nil {
			g.retarget.Retarget()
		}
	}))
	return g
}

func (g *TowerFight) Kind() interfaces.Kind { return interfaces.TowerFight }

func (g *TowerFight) StartLevel(difficulty defs.Difficulty) error {
	cfg := g.cfg
	w := g.begin(grid.New(cfg.Size, cfg.Size), difficulty)

	g.buildSide(w, component.TeamPlayer, cfg.Player)
	g.buildSide(w, component.TeamHostile, cfg.Bot)
	w.Add(component.NewStructure(component.TeamNeutral, component.RoleBridge,
		grid.Point{X: 0, Y: cfg.BridgeY}, cfg.Size, 1, cfg.BridgeHealth))

	w.Add(component.NewAgent(component.TeamPlayer, component.ControlKeyboard, component.RespawnDelayed,
		cfg.Player.Spawn.Point(), cfg.AgentHealth))
	w.Add(component.NewAgent(component.TeamHostile, component.ControlPolicy, component.RespawnDelayed,
		cfg.Bot.Spawn.Point(), cfg.AgentHealth))

	lane := system.LaneChase{
		MinY: cfg.BotMinY,
		MaxY: cfg.BotMaxY,
		Weights: system.LaneWeights{
			Lane:      cfg.TargetWeights.Lane,
			Castle:    cfg.TargetWeights.Castle,
			Generator: cfg.TargetWeights.Generator,
		},
		Rng: g.rng,
	}
	g.combat = system.NewCombatSystem(w, system.CombatRules{
		RespawnMs:           cfg.RespawnMs,
		GeneratorCooldownMs: cfg.GeneratorCooldownMs,
	})
	g.projectiles = system.NewProjectileSystem(w, g.combat)
	g.retarget = system.NewRetargetSystem(w, component.TeamHostile, lane, cfg.RetargetMs)
	g.movement = system.NewMovementSystem(w, component.TeamHostile, lane, cfg.BotMoveMs)
	g.shooting = system.NewShootingSystem(w, g.projectiles, component.TeamHostile,
		system.FixedDirection(grid.Down), system.Shot(cfg.Shot), cfg.BotShootMs)
	g.heal = system.NewHealSystem(w, g.combat, cfg.HealAmount, cfg.HealMs)

	g.retarget.Retarget()
	return nil
}

func (g *TowerFight) buildSide(w *entity.World, team component.Team, side defs.Side) {
	cfg := g.cfg
	w.Add(component.NewStructure(team, component.RoleCastle, side.Castle.Point(),
		cfg.CastleWidth, cfg.CastleHeight, cfg.CastleHealth))
	for _, at := range side.Generators {
		w.Add(component.NewStructure(team, component.RoleGenerator, at.Point(),
			cfg.GeneratorSize, cfg.GeneratorSize, cfg.GeneratorHealth))
	}
}

func (g *TowerFight) Restart() error {
	return g.StartLevel(g.difficulty)
}

// Update выполняет тик в фиксированном порядке: события, выбор целей,
// движение, стрельба, снаряды, лечение
func (g *TowerFight) Update(now time.Time) {
	dt, ok := g.tick(now)
	if !ok {
		return
	}
	g.retarget.Update(dt)
	g.movement.Update(dt)
	g.shooting.Update(dt)
	g.projectiles.Update(dt)
	g.heal.Update(dt)
}

// MovePlayer не пускает игрока за мост
func (g *TowerFight) MovePlayer(dir grid.Direction) {
	p := g.player()
	if p == nil {
		return
	}
	next := p.Cell().Step(dir)
	if !g.world.Grid.Contains(next) || next.Y <= g.cfg.BridgeY {
		return
	}
	p.MoveTo(next)
}

func (g *TowerFight) FirePlayer() {
	p := g.player()
	if p == nil || !g.world.Ability(p.Team).CanShoot() {
		return
	}
	g.projectiles.Spawn(p, grid.Up, system.Shot(g.cfg.Shot))
}
