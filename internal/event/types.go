// internal/event/types.go
package event

import (
	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/types"
	"go-grid-arcade/pkg/grid"
)

const (
	EntityDamaged      EventType = "EntityDamaged"
	AgentDied          EventType = "AgentDied"
	AgentRespawned     EventType = "AgentRespawned"
	HostileRemoved     EventType = "HostileRemoved"
	LifeLost           EventType = "LifeLost"
	StructureDestroyed EventType = "StructureDestroyed"
	AbilityDisabled    EventType = "AbilityDisabled"
	AbilityRestored    EventType = "AbilityRestored"
	TileOpened         EventType = "TileOpened"
	MonsterSpawned     EventType = "MonsterSpawned"
	EnergyGained       EventType = "EnergyGained"
	MatchEnded         EventType = "MatchEnded"
)

// Ability — способность команды для AbilityDisabled/AbilityRestored
type Ability string

const (
	Shoot Ability = "shoot"
	Heal  Ability = "heal"
)

// EntityData — данные событий урона, гибели, возрождения и удаления
type EntityData struct {
	ID     types.EntityID
	Team   component.Team
	Role   component.Role
	Health int
}

// AbilityData — данные событий способностей. Permanent означает,
// что способность не вернётся
type AbilityData struct {
	Team      component.Team
	Ability   Ability
	Permanent bool
}

// TileData — данные события TileOpened
type TileData struct {
	At       grid.Point
	Bomb     bool
	Adjacent int
	Opened   int
}

// CounterData — новое значение счётчика, например для LifeLost
type CounterData struct {
	Value int
}

// MatchData — данные события MatchEnded
type MatchData struct {
	Phase  component.Phase
	Reason string
}
