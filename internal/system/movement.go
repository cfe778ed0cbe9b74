// internal/system/movement.go
package system

import (
	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/entity"
)

// MovementSystem двигает агентов команды под управлением политики
type MovementSystem struct {
	world   *entity.World
	team    component.Team
	policy  Policy
	cadence Cadence
}

func NewMovementSystem(world *entity.World, team component.Team, policy Policy, intervalMs float64) *MovementSystem {
	return &MovementSystem{
		world:   world,
		team:    team,
		policy:  policy,
		cadence: NewCadence(intervalMs),
	}
}

// Update сообщает, сделала ли команда шаг в этом тике
func (s *MovementSystem) Update(deltaTime float64) bool {
	if !s.cadence.Accumulate(deltaTime) {
		return false
	}
	for _, e := range s.world.AgentsOf(s.team) {
		if e.Control != component.ControlPolicy {
			continue
		}
		if next, ok := s.policy.Next(s.world, e); ok {
			e.MoveTo(next)
		}
	}
	return true
}

// RetargetSystem периодически просит политику выбрать новые цели
type RetargetSystem struct {
	world   *entity.World
	team    component.Team
	policy  Reselector
	cadence Cadence
}

func NewRetargetSystem(world *entity.World, team component.Team, policy Reselector, intervalMs float64) *RetargetSystem {
	return &RetargetSystem{
		world:   world,
		team:    team,
		policy:  policy,
		cadence: NewCadence(intervalMs),
	}
}

// Retarget выбирает цели сразу, вне расписания. Нужен после возрождения
// и на старте уровня
func (s *RetargetSystem) Retarget() {
	for _, e := range s.world.AgentsOf(s.team) {
		if e.Control == component.ControlPolicy {
			s.policy.Reselect(s.world, e)
		}
	}
}

func (s *RetargetSystem) Update(deltaTime float64) {
	if s.cadence.Accumulate(deltaTime) {
		s.Retarget()
	}
}
