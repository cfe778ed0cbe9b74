// internal/component/entity.go
package component

import (
	"go-grid-arcade/internal/types"
	"go-grid-arcade/pkg/grid"
)

// Kind — подвижная сущность или постройка
type Kind uint8

const (
	KindAgent Kind = iota
	KindStructure
)

// Role — роль постройки. У агентов RoleNone
type Role uint8

const (
	RoleNone Role = iota
	RoleCastle
	RoleGenerator
	RoleBridge
)

func (r Role) String() string {
	switch r {
	case RoleCastle:
		return "castle"
	case RoleGenerator:
		return "generator"
	case RoleBridge:
		return "bridge"
	}
	return "agent"
}

// Control — кто управляет агентом
type Control uint8

const (
	ControlKeyboard Control = iota
	ControlPolicy
)

// RespawnPolicy — что происходит, когда здоровье агента доходит до нуля
type RespawnPolicy uint8

const (
	RespawnNever    RespawnPolicy = iota // удаляется из мира
	RespawnDelayed                       // возвращается после задержки с полным здоровьем
	RespawnLifePool                      // тратит жизнь и сразу возвращается на спавн
)

// Entity — общая структура для агентов и построек. Постройки занимают
// W×H клеток и не двигаются
type Entity struct {
	ID      types.EntityID
	Kind    Kind
	Role    Role
	Team    Team
	Control Control
	Respawn RespawnPolicy

	Pos   Position
	Spawn Position
	W, H  int

	Health Health
	Alive  bool

	Cooldowns   Cooldowns
	Destination grid.Point
}

// NewAgent создаёт живого агента на клетке spawn
func NewAgent(team Team, control Control, respawn RespawnPolicy, spawn grid.Point, maxHealth int) *Entity {
	return &Entity{
		Kind:    KindAgent,
		Team:    team,
		Control: control,
		Respawn: respawn,
		Pos:     At(spawn),
		Spawn:   At(spawn),
		W:       1,
		H:       1,
		Health:  Full(maxHealth),
		Alive:   true,
	}
}

// NewStructure создаёт постройку с левым верхним углом в origin
func NewStructure(team Team, role Role, origin grid.Point, w, h, maxHealth int) *Entity {
	return &Entity{
		Kind:   KindStructure,
		Role:   role,
		Team:   team,
		Pos:    At(origin),
		Spawn:  At(origin),
		W:      w,
		H:      h,
		Health: Full(maxHealth),
		Alive:  true,
	}
}

// IsAgent — может ли сущность двигаться
func (e *Entity) IsAgent() bool { return e.Kind == KindAgent }

// Cell возвращает клетку агента или угол постройки
func (e *Entity) Cell() grid.Point { return e.Pos.Cell() }

// Occupies — занимает ли сущность клетку p
func (e *Entity) Occupies(p grid.Point) bool {
	origin := e.Pos.Cell()
	return p.X >= origin.X && p.X < origin.X+e.W &&
		p.Y >= origin.Y && p.Y < origin.Y+e.H
}

// MoveTo ставит агента на клетку
func (e *Entity) MoveTo(p grid.Point) {
	e.Pos = At(p)
}

// ResetToSpawn возвращает сущность на спавн с полным здоровьем
func (e *Entity) ResetToSpawn() {
	e.Pos = e.Spawn
	e.Health.Restore()
	e.Alive = true
	e.Cooldowns = Cooldowns{}
}
