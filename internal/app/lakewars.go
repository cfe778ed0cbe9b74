// internal/app/lakewars.go
package app

import (
	"fmt"
	"log"
	"time"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/internal/system"
	"go-grid-arcade/pkg/grid"
)

// LakeWars — стрелялка у озера: игрок на левом берегу стреляет вправо,
// боты бродят по правому и стреляют влево. Шаг в озеро стоит жизни
type LakeWars struct {
	*session
	cfg   defs.LakeWars
	level defs.LakeLevel

	combat      *system.CombatSystem
	projectiles *system.ProjectileSystem
	movement    *system.MovementSystem
	shooting    *system.ShootingSystem
}

func NewLakeWars(d *defs.Definitions, opts Options) *LakeWars {
	s := newSession(d, opts)
	return &LakeWars{session: s, cfg: s.defs.LakeWars}
}

func (g *LakeWars) Kind() interfaces.Kind { return interfaces.LakeWars }

func (g *LakeWars) StartLevel(difficulty defs.Difficulty) error {
	level, ok := g.cfg.Levels[difficulty]
	if !ok {
		return fmt.Errorf("lake wars: no level %q", difficulty)
	}
	m, err := grid.FromRows(level.Tiles)
	if err != nil {
		return fmt.Errorf("lake wars %s: %w", difficulty, err)
	}
	g.level = level

	w := g.begin(m, difficulty)
	w.Counters.Lives = g.cfg.Lives
	w.Add(component.NewAgent(component.TeamPlayer, component.ControlKeyboard, component.RespawnLifePool,
		g.cfg.PlayerSpawn.Point(), g.cfg.PlayerHealth))
	g.spawnBots(level.Bots)

	g.combat = system.NewCombatSystem(w, system.CombatRules{})
	g.projectiles = system.NewProjectileSystem(w, g.combat)
	g.movement = system.NewMovementSystem(w, component.TeamHostile,
		system.GreedyApproach{P: level.GreedyChance, Rng: g.rng}, level.BotMoveMs)
	g.shooting = system.NewShootingSystem(w, g.projectiles, component.TeamHostile,
		system.FixedDirection(grid.Left), system.Shot(g.cfg.BotShot), level.BotShootMs)
	return nil
}

// spawnBots расставляет ботов на свободные клетки правого берега. Бот,
// которому не нашлось места за отведённые попытки, пропускается
func (g *LakeWars) spawnBots(count int) {
	w := g.world
	for i := 0; i < count; i++ {
		placed := false
		for try := 0; try < g.cfg.SpawnTries; try++ {
			p := grid.Point{
				X: g.cfg.BotMinX + g.rng.Intn(w.Grid.Width-g.cfg.BotMinX),
				Y: g.rng.Intn(w.Grid.Height),
			}
			if !w.Grid.IsPassable(p.X, p.Y) || w.AgentAt(p, 0) != nil {
				continue
			}
			w.Add(component.NewAgent(component.TeamHostile, component.ControlPolicy, component.RespawnNever, p, g.cfg.BotHealth))
			placed = true
			break
		}
		if !placed {
			log.Printf("Lake Wars: no free tile for bot %d after %d tries", i+1, g.cfg.SpawnTries)
		}
	}
}

func (g *LakeWars) Restart() error {
	return g.StartLevel(g.difficulty)
}

func (g *LakeWars) Update(now time.Time) {
	dt, ok := g.tick(now)
	if !ok {
		return
	}
	if p := g.world.Player(); p != nil {
		p.Cooldowns.Tick(dt)
	}
	g.movement.Update(dt)
	g.shooting.Update(dt)
	g.projectiles.Update(dt)
	g.checkOutcome()
}

func (g *LakeWars) MovePlayer(dir grid.Direction) {
	p := g.player()
	if p == nil {
		return
	}
	next := p.Cell().Step(dir)
	if !g.world.Grid.CanEnter(next.X, next.Y) {
		return
	}
	p.MoveTo(next)
	if g.world.Grid.IsLethal(next.X, next.Y) {
		g.combat.Kill(p)
	}
	g.checkOutcome()
}

func (g *LakeWars) FirePlayer() {
	p := g.player()
	if p == nil || p.Cooldowns.Attack > 0 || !g.world.Ability(p.Team).CanShoot() {
		return
	}
	g.projectiles.Spawn(p, grid.Right, system.Shot(g.cfg.PlayerShot))
	p.Cooldowns.Attack = g.level.PlayerFireCDMs
}

func (g *LakeWars) checkOutcome() {
	if len(g.world.AgentsOf(component.TeamHostile)) == 0 {
		g.world.End(component.Won, "all bots destroyed")
	}
}
