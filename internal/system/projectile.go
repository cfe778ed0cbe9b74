// internal/system/projectile.go
package system

import (
	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/pkg/grid"
)

// Shot — параметры выстрела
type Shot struct {
	Speed  float64 // клеток в секунду
	TTL    float64 // миллисекунды
	Offset float64 // смещение вперёд от центра клетки стрелка, в клетках
}

// ProjectileSystem управляет движением снарядов и попаданиями
type ProjectileSystem struct {
	world  *entity.World
	combat *CombatSystem
}

func NewProjectileSystem(world *entity.World, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, combat: combat}
}

// Spawn выпускает снаряд от shooter в направлении dir
func (s *ProjectileSystem) Spawn(shooter *component.Entity, dir grid.Direction, shot Shot) *component.Projectile {
	vel := component.FromDirection(dir, shot.Speed)
	return s.world.AddProjectile(&component.Projectile{
		Pos:   shooter.Pos.Center().Offset(vel.DX, vel.DY, shot.Offset),
		Vel:   vel,
		Owner: shooter.Team,
		TTL:   shot.TTL,
	})
}

// Update двигает снаряды на dt миллисекунд. Обход с конца, чтобы удаление
// ничего не пропускало. Тик без прошедшего времени (первый после Resume)
// снаряды не трогает
func (s *ProjectileSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	w := s.world
	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		if !w.Active() {
			return
		}
		p := w.Projectiles[i]
		p.Pos = p.Pos.Offset(p.Vel.DX, p.Vel.DY, p.Vel.Speed*dt/1000)
		p.TTL -= dt
		if s.resolve(p) {
			w.RemoveProjectileAt(i)
		}
	}
}

// resolve применяет первый подходящий исход и сообщает, израсходован ли снаряд
func (s *ProjectileSystem) resolve(p *component.Projectile) bool {
	w := s.world
	if p.TTL <= 0 {
		return true
	}
	cell := p.Pos.Cell()
	if !w.Grid.Contains(cell) {
		return true
	}
	if w.Grid.IsWall(cell.X, cell.Y) {
		return true
	}

	for _, e := range w.Entities {
		if e.Role == component.RoleBridge && e.Alive && e.Occupies(cell) {
			s.combat.ApplyDamage(e, 1)
			return true
		}
	}
	for _, e := range w.Entities {
		if e.IsAgent() && e.Alive && p.Owner.Opposes(e.Team) && e.Cell() == cell {
			s.combat.ApplyDamage(e, 1)
			return true
		}
	}
	for _, e := range w.Entities {
		if !e.IsAgent() && e.Role != component.RoleBridge && e.Alive &&
			p.Owner.Opposes(e.Team) && e.Occupies(cell) {
			s.combat.ApplyDamage(e, 1)
			return true
		}
	}
	return false
}
