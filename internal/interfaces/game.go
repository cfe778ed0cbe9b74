package interfaces

import (
	"time"

	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/pkg/grid"
)

// Kind names one of the games.
type Kind string

const (
	LakeWars   Kind = "lakewars"
	MiniMines  Kind = "minimines"
	TowerFight Kind = "towerfight"
)

// Kinds lists the games in menu order.
var Kinds = []Kind{LakeWars, MiniMines, TowerFight}

func (k Kind) Title() string {
	switch k {
	case LakeWars:
		return "Lake Wars"
	case MiniMines:
		return "Mini Mines"
	case TowerFight:
		return "Tower Fight"
	}
	return string(k)
}

// Game is what the render loop drives. Commands a game does not support, or
// that arrive while no level is running, are ignored.
type Game interface {
	Kind() Kind
	StartLevel(difficulty defs.Difficulty) error
	Restart() error
	Stop()
	Resume()
	Update(now time.Time)

	MovePlayer(dir grid.Direction)
	FirePlayer()
	PlaceMark(dir grid.Direction)
	ClearMark(dir grid.Direction)
	ConsumeResourceAbility()

	Snapshot() entity.Snapshot
	Events() *event.Dispatcher
	RunInfo() (runID string, elapsedMs float64)
}
