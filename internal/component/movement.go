// internal/component/movement.go
package component

import (
	"math"

	"go-grid-arcade/pkg/grid"
)

// Position — координаты в клетках. Агенты стоят на целых клетках,
// снаряды двигаются дробно
type Position struct {
	X, Y float64
}

// At возвращает левый верхний угол клетки
func At(p grid.Point) Position {
	return Position{X: float64(p.X), Y: float64(p.Y)}
}

// Cell возвращает клетку, в которой находится точка
func (p Position) Cell() grid.Point {
	return grid.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Center возвращает центр этой клетки
func (p Position) Center() Position {
	c := p.Cell()
	return Position{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Offset возвращает p, сдвинутую на (dx,dy)·scale
func (p Position) Offset(dx, dy, scale float64) Position {
	return Position{X: p.X + dx*scale, Y: p.Y + dy*scale}
}

// Velocity — единичное направление и скорость в клетках в секунду
type Velocity struct {
	DX, DY float64
	Speed  float64
}

// FromDirection строит скорость вдоль направления сетки
func FromDirection(d grid.Direction, speed float64) Velocity {
	dx, dy := d.Delta()
	return Velocity{DX: float64(dx), DY: float64(dy), Speed: speed}
}
