// internal/system/heal.go
package system

import (
	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/entity"
)

// HealSystem лечит агентов внутри своего замка, пока все генераторы команды
// целы и команда может лечиться
type HealSystem struct {
	world   *entity.World
	combat  *CombatSystem
	amount  int
	cadence Cadence
}

func NewHealSystem(world *entity.World, combat *CombatSystem, amount int, intervalMs float64) *HealSystem {
	return &HealSystem{
		world:   world,
		combat:  combat,
		amount:  amount,
		cadence: NewCadence(intervalMs),
	}
}

func (s *HealSystem) Update(deltaTime float64) {
	if !s.cadence.Accumulate(deltaTime) {
		return
	}
	for _, team := range []component.Team{component.TeamPlayer, component.TeamHostile} {
		if !s.world.Ability(team).CanHeal() || !s.generatorsStanding(team) {
			continue
		}
		castles := s.world.Structures(team, component.RoleCastle)
		if len(castles) == 0 || !castles[0].Alive {
			continue
		}
		for _, a := range s.world.AgentsOf(team) {
			if castles[0].Occupies(a.Cell()) {
				s.combat.Heal(a, s.amount)
			}
		}
	}
}

func (s *HealSystem) generatorsStanding(team component.Team) bool {
	for _, g := range s.world.Structures(team, component.RoleGenerator) {
		if !g.Alive {
			return false
		}
	}
	return true
}
