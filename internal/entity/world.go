// internal/entity/world.go
package entity

import (
	"github.com/google/uuid"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/internal/types"
	"go-grid-arcade/pkg/grid"
)

// Counters — счётчики забега для HUD
type Counters struct {
	ElapsedMs float64
	Lives     int
	Energy    int
	OpenCount int
	Mines     int
}

// World — всё состояние запущенного уровня. Рестарт создаёт новый World,
// и запланированное для старого до нового не дойдёт
type World struct {
	RunID       uuid.UUID
	Grid        *grid.Map
	Entities    []*component.Entity
	Projectiles []*component.Projectile
	Abilities   map[component.Team]*component.Abilities
	Counters    Counters
	Scheduler   *Scheduler
	Phase       component.Phase
	Reason      string
	Events      *event.Dispatcher
	NextID      types.EntityID
}

// NewWorld создаёт запущенный мир на карте m. events может быть nil
func NewWorld(m *grid.Map, events *event.Dispatcher) *World {
	return &World{
		RunID: uuid.New(),
		Grid:  m,
		Abilities: map[component.Team]*component.Abilities{
			component.TeamPlayer:  {},
			component.TeamHostile: {},
		},
		Scheduler: &Scheduler{},
		Phase:     component.Running,
		Events:    events,
		NextID:    1,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Add выдаёт e ID и добавляет в конец. Порядок обхода совпадает с порядком добавления
func (w *World) Add(e *component.Entity) *component.Entity {
	e.ID = w.NewEntity()
	w.Entities = append(w.Entities, e)
	return e
}

// Remove удаляет сущность по ID, сохраняя порядок остальных
func (w *World) Remove(id types.EntityID) bool {
	for i, e := range w.Entities {
		if e.ID == id {
			w.Entities = append(w.Entities[:i], w.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// Entity возвращает сущность по ID или nil
func (w *World) Entity(id types.EntityID) *component.Entity {
	for _, e := range w.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// AddProjectile выдаёт p ID и добавляет в конец
func (w *World) AddProjectile(p *component.Projectile) *component.Projectile {
	p.ID = w.NewEntity()
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// RemoveProjectileAt удаляет снаряд с индексом i, сохраняя порядок
func (w *World) RemoveProjectileAt(i int) {
	w.Projectiles = append(w.Projectiles[:i], w.Projectiles[i+1:]...)
}

// Active — принимает ли мир команды и тики
func (w *World) Active() bool {
	return w != nil && w.Phase == component.Running
}

// Player возвращает агента игрока, живого или нет
func (w *World) Player() *component.Entity {
	for _, e := range w.Entities {
		if e.IsAgent() && e.Control == component.ControlKeyboard {
			return e
		}
	}
	return nil
}

// AgentsOf возвращает живых агентов команды в порядке обхода
func (w *World) AgentsOf(team component.Team) []*component.Entity {
	var out []*component.Entity
	for _, e := range w.Entities {
		if e.IsAgent() && e.Alive && e.Team == team {
			out = append(out, e)
		}
	}
	return out
}

// Structures возвращает постройки команды с ролью role, включая разрушенные
func (w *World) Structures(team component.Team, role component.Role) []*component.Entity {
	var out []*component.Entity
	for _, e := range w.Entities {
		if !e.IsAgent() && e.Team == team && e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// AgentAt возвращает первого живого агента на p, кроме except, или nil
func (w *World) AgentAt(p grid.Point, except types.EntityID) *component.Entity {
	for _, e := range w.Entities {
		if e.IsAgent() && e.Alive && e.ID != except && e.Cell() == p {
			return e
		}
	}
	return nil
}

// Ability возвращает способности команды, создавая их при первом обращении
func (w *World) Ability(team component.Team) *component.Abilities {
	a, ok := w.Abilities[team]
	if !ok {
		a = &component.Abilities{}
		w.Abilities[team] = a
	}
	return a
}

// After планирует fn по часам этого мира
func (w *World) After(delay float64, fn func()) {
	w.Scheduler.After(delay, fn)
}

// Dispatch отправляет событие в диспетчер мира
func (w *World) Dispatch(t event.EventType, data interface{}) {
	w.Events.Dispatch(event.Event{Type: t, Data: data})
}

// End завершает забег и отправляет MatchEnded. Возвращает false, если мир
// уже завершён, так что забег заканчивается ровно один раз
func (w *World) End(phase component.Phase, reason string) bool {
	if !w.Active() || !phase.Terminal() {
		return false
	}
	w.Phase = phase
	w.Reason = reason
	w.Scheduler.Reset()
	w.Dispatch(event.MatchEnded, event.MatchData{Phase: phase, Reason: reason})
	return true
}

// Stop останавливает мир без результата
func (w *World) Stop() {
	if w == nil || w.Phase == component.Stopped {
		return
	}
	w.Phase = component.Stopped
	w.Scheduler.Reset()
}
