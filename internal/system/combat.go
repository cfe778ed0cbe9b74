// internal/system/combat.go
package system

import (
	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/event"
)

// CombatRules — задержки, по которым планируются последствия боя
type CombatRules struct {
	RespawnMs           float64
	GeneratorCooldownMs float64
}

// CombatSystem наносит урон и обрабатывает гибель
type CombatSystem struct {
	world *entity.World
	rules CombatRules
}

func NewCombatSystem(world *entity.World, rules CombatRules) *CombatSystem {
	return &CombatSystem{world: world, rules: rules}
}

// ApplyDamage уменьшает здоровье цели, не ниже нуля. Переход в мёртвые
// происходит один раз и запускает правила гибели цели
func (s *CombatSystem) ApplyDamage(target *component.Entity, amount int) {
	if target == nil || !target.Alive || !s.world.Active() || amount <= 0 {
		return
	}
	depleted := target.Health.Damage(amount)
	s.world.Dispatch(event.EntityDamaged, entityData(target))
	if !depleted {
		return
	}
	target.Alive = false
	if target.IsAgent() {
		s.agentDied(target)
	} else {
		s.structureDestroyed(target)
	}
}

// Heal восстанавливает здоровье цели до максимума. Мёртвые цели пропускаются
func (s *CombatSystem) Heal(target *component.Entity, amount int) {
	if target == nil || !target.Alive {
		return
	}
	target.Health.Heal(amount)
}

// Kill снимает всё оставшееся здоровье цели
func (s *CombatSystem) Kill(target *component.Entity) {
	if target == nil {
		return
	}
	s.ApplyDamage(target, target.Health.Value)
}

func (s *CombatSystem) agentDied(a *component.Entity) {
	w := s.world
	switch a.Respawn {
	case component.RespawnNever:
		w.Remove(a.ID)
		w.Dispatch(event.HostileRemoved, entityData(a))

	case component.RespawnDelayed:
		abilities := w.Ability(a.Team)
		abilities.LockForDeath()
		w.Dispatch(event.AgentDied, entityData(a))
		w.Dispatch(event.AbilityDisabled, event.AbilityData{Team: a.Team, Ability: event.Shoot})
		w.Dispatch(event.AbilityDisabled, event.AbilityData{Team: a.Team, Ability: event.Heal})
		w.After(s.rules.RespawnMs, func() {
			if !w.Active() || w.Entity(a.ID) != a {
				return
			}
			a.ResetToSpawn()
			abilities.ClearDeathLock()
			w.Dispatch(event.AgentRespawned, entityData(a))
			if abilities.CanShoot() {
				w.Dispatch(event.AbilityRestored, event.AbilityData{Team: a.Team, Ability: event.Shoot})
			}
			if abilities.CanHeal() {
				w.Dispatch(event.AbilityRestored, event.AbilityData{Team: a.Team, Ability: event.Heal})
			}
		})

	case component.RespawnLifePool:
		w.Counters.Lives--
		if w.Counters.Lives < 0 {
			w.Counters.Lives = 0
		}
		w.Dispatch(event.LifeLost, event.CounterData{Value: w.Counters.Lives})
		if w.Counters.Lives == 0 {
			w.End(component.Lost, "out of lives")
			return
		}
		a.ResetToSpawn()
		w.Dispatch(event.AgentRespawned, entityData(a))
	}
}

func (s *CombatSystem) structureDestroyed(st *component.Entity) {
	w := s.world
	w.Dispatch(event.StructureDestroyed, entityData(st))

	switch st.Role {
	case component.RoleCastle:
		if st.Team == component.TeamHostile {
			w.End(component.Won, "enemy castle destroyed")
		} else {
			w.End(component.Lost, "castle destroyed")
		}

	case component.RoleGenerator:
		abilities := w.Ability(st.Team)
		abilities.AddGeneratorLock()
		w.Dispatch(event.AbilityDisabled, event.AbilityData{Team: st.Team, Ability: event.Shoot})
		w.After(s.rules.GeneratorCooldownMs, func() {
			if !w.Active() {
				return
			}
			abilities.ReleaseGeneratorLock()
			if abilities.CanShoot() {
				w.Dispatch(event.AbilityRestored, event.AbilityData{Team: st.Team, Ability: event.Shoot})
			}
		})
		if liveCount(w.Structures(st.Team, component.RoleGenerator)) == 0 {
			abilities.LoseHeal()
			w.Dispatch(event.AbilityDisabled, event.AbilityData{Team: st.Team, Ability: event.Heal, Permanent: true})
		}
	}
}

func liveCount(es []*component.Entity) int {
	n := 0
	for _, e := range es {
		if e.Alive {
			n++
		}
	}
	return n
}

func entityData(e *component.Entity) event.EntityData {
	return event.EntityData{ID: e.ID, Team: e.Team, Role: e.Role, Health: e.Health.Value}
}
