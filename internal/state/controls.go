// internal/state/controls.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/pkg/grid"
)

// action — команда экрану, а не игре
type action int

const (
	actNone action = iota
	actRestart
	actMenu
	actPause
	actCopy
)

type markMode int

const (
	markNone markMode = iota
	markPlace
	markClear
)

// watchedKeys опрашиваются каждый кадр в этом порядке
var watchedKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyF, ebiten.KeyG, ebiten.KeyE,
	ebiten.KeyR, ebiten.KeyEscape, ebiten.KeyP, ebiten.KeyF12,
}

var arrows = map[ebiten.Key]grid.Direction{
	ebiten.KeyArrowUp:    grid.Up,
	ebiten.KeyArrowDown:  grid.Down,
	ebiten.KeyArrowLeft:  grid.Left,
	ebiten.KeyArrowRight: grid.Right,
}

var wasd = map[ebiten.Key]grid.Direction{
	ebiten.KeyW: grid.Up,
	ebiten.KeyS: grid.Down,
	ebiten.KeyA: grid.Left,
	ebiten.KeyD: grid.Right,
}

// controls переводит нажатия в команды игры. В Mini Mines F и G взводят
// установку или снятие метки, направление задаёт следующая клавиша WASD.
// Пока метка взведена, остальные игровые клавиши кроме F игнорируются
type controls struct {
	kind    interfaces.Kind
	pending markMode
}

func (c *controls) press(g interfaces.Game, key ebiten.Key) action {
	if c.pending != markNone {
		if _, ok := arrows[key]; ok || key == ebiten.KeyG || key == ebiten.KeyE {
			return actNone
		}
	}
	if dir, ok := arrows[key]; ok {
		g.MovePlayer(dir)
		return actNone
	}
	if dir, ok := wasd[key]; ok {
		switch c.pending {
		case markPlace:
			g.PlaceMark(dir)
		case markClear:
			g.ClearMark(dir)
		}
		c.pending = markNone
		return actNone
	}

	switch key {
	case ebiten.KeyF:
		if c.kind == interfaces.MiniMines {
			c.pending = markPlace
		} else {
			g.FirePlayer()
		}
	case ebiten.KeyG:
		if c.kind == interfaces.MiniMines {
			c.pending = markClear
		}
	case ebiten.KeyE:
		g.ConsumeResourceAbility()
	case ebiten.KeyR:
		c.pending = markNone
		return actRestart
	case ebiten.KeyEscape:
		return actMenu
	case ebiten.KeyP:
		return actPause
	case ebiten.KeyF12:
		return actCopy
	}
	return actNone
}

// hint — подсказка о взведённой метке
func (c *controls) hint() string {
	switch c.pending {
	case markPlace:
		return "Mark: choose a side with WASD"
	case markClear:
		return "Unmark: choose a side with WASD"
	}
	return ""
}
