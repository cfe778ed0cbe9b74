// internal/system/shooting.go
package system

import (
	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/entity"
)

// ShootingSystem периодически стреляет за живых ботов команды,
// пока команде разрешено стрелять
type ShootingSystem struct {
	world       *entity.World
	projectiles *ProjectileSystem
	team        component.Team
	aim         Aimer
	shot        Shot
	cadence     Cadence
}

func NewShootingSystem(world *entity.World, projectiles *ProjectileSystem, team component.Team, aim Aimer, shot Shot, intervalMs float64) *ShootingSystem {
	return &ShootingSystem{
		world:       world,
		projectiles: projectiles,
		team:        team,
		aim:         aim,
		shot:        shot,
		cadence:     NewCadence(intervalMs),
	}
}

func (s *ShootingSystem) Update(deltaTime float64) {
	if !s.cadence.Accumulate(deltaTime) {
		return
	}
	if !s.world.Ability(s.team).CanShoot() {
		return
	}
	for _, e := range s.world.AgentsOf(s.team) {
		if e.Control != component.ControlPolicy {
			continue
		}
		s.projectiles.Spawn(e, s.aim.Aim(e), s.shot)
	}
}
