// internal/ui/grid_renderer.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/config"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/pkg/grid"
)

// GridRenderer — отрисовка снимка мира в квадрат поля. Размер клетки
// считается по большей стороне поля
type GridRenderer struct {
	kind     interfaces.Kind
	face     font.Face
	originX  float32
	originY  float32
	cellSize float32
}

// NewGridRenderer создаёт рендерер для одной игры
func NewGridRenderer(kind interfaces.Kind, face font.Face) *GridRenderer {
	return &GridRenderer{
		kind:    kind,
		face:    face,
		originX: config.BoardOriginX,
		originY: config.BoardOriginY,
	}
}

// CellSize возвращает сторону клетки в пикселях для поля w×h
func CellSize(w, h int) float32 {
	n := w
	if h > n {
		n = h
	}
	if n <= 0 {
		return 0
	}
	return float32(config.BoardSize) / float32(n)
}

func (r *GridRenderer) cellRect(x, y float64) (float32, float32) {
	return r.originX + float32(x)*r.cellSize, r.originY + float32(y)*r.cellSize
}

// Draw рисует клетки, постройки, снаряды и агентов именно в таком порядке
func (r *GridRenderer) Draw(screen *ebiten.Image, s entity.Snapshot) {
	r.cellSize = CellSize(s.Width, s.Height)
	if r.cellSize == 0 {
		return
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			t, _ := s.Tile(x, y)
			r.drawTile(screen, x, y, t)
		}
	}
	for i := range s.Entities {
		if e := &s.Entities[i]; !e.IsAgent() {
			r.drawStructure(screen, e)
		}
	}
	for _, p := range s.Projectiles {
		r.drawProjectile(screen, p)
	}
	for i := range s.Entities {
		if e := &s.Entities[i]; e.IsAgent() && e.Alive {
			r.drawAgent(screen, e)
		}
	}
}

func (r *GridRenderer) drawTile(screen *ebiten.Image, x, y int, t grid.Tile) {
	px, py := r.cellRect(float64(x), float64(y))
	vector.DrawFilledRect(screen, px, py, r.cellSize, r.cellSize, r.tileColor(t), false)
	vector.StrokeRect(screen, px, py, r.cellSize, r.cellSize, 1, config.GridLineColor, false)

	if r.kind != interfaces.MiniMines || !t.Revealed || t.Bomb || t.Adjacent == 0 || r.face == nil {
		return
	}
	label := strconv.Itoa(t.Adjacent)
	tx := int(px + r.cellSize/2 - 3)
	ty := int(py + r.cellSize/2 + 5)
	text.Draw(screen, label, r.face, tx, ty, adjacentColor(t.Adjacent))
}

func (r *GridRenderer) tileColor(t grid.Tile) color.Color {
	switch t.Kind {
	case grid.Wall:
		return config.WallColor
	case grid.Hazard:
		return config.LakeColor
	}
	switch r.kind {
	case interfaces.MiniMines:
		switch {
		case t.Revealed && t.Bomb:
			return config.BombColor
		case t.Revealed:
			return config.OpenColor
		case t.MarkedSafe:
			return config.MarkColor
		}
		return config.ClosedColor
	case interfaces.TowerFight:
		return config.FieldColor
	}
	return config.GrassColor
}

func adjacentColor(n int) color.Color {
	if n >= len(config.AdjacentColor) {
		n = len(config.AdjacentColor) - 1
	}
	return config.AdjacentColor[n]
}

func (r *GridRenderer) drawStructure(screen *ebiten.Image, e *component.Entity) {
	px, py := r.cellRect(e.Pos.X, e.Pos.Y)
	w, h := float32(e.W)*r.cellSize, float32(e.H)*r.cellSize

	var fill color.Color
	switch {
	case !e.Alive:
		fill = config.DeadStructureColor
	case e.Role == component.RoleBridge:
		fill = config.BridgeColor
	case e.Role == component.RoleGenerator:
		fill = config.GeneratorColor
	case e.Team == component.TeamPlayer:
		fill = config.PlayerCastleColor
	default:
		fill = config.HostileCastleColor
	}
	vector.DrawFilledRect(screen, px, py, w, h, fill, false)
	vector.StrokeRect(screen, px, py, w, h, 1, config.GridLineColor, false)
	if e.Alive {
		r.drawHealthBar(screen, px, py, w, e.Health)
	}
}

func (r *GridRenderer) drawAgent(screen *ebiten.Image, e *component.Entity) {
	px, py := r.cellRect(e.Pos.X, e.Pos.Y)
	c := r.agentColor(e)
	radius := r.cellSize * 0.4
	vector.DrawFilledCircle(screen, px+r.cellSize/2, py+r.cellSize/2, radius, c, true)
	if e.Health.Max > 1 {
		r.drawHealthBar(screen, px, py, r.cellSize, e.Health)
	}
}

func (r *GridRenderer) agentColor(e *component.Entity) color.Color {
	switch {
	case e.Team == component.TeamPlayer:
		return config.PlayerColor
	case r.kind == interfaces.MiniMines:
		return config.MonsterColor
	}
	return config.HostileColor
}

func (r *GridRenderer) drawProjectile(screen *ebiten.Image, p component.Projectile) {
	px, py := r.cellRect(p.Pos.X, p.Pos.Y)
	c := config.HostileBulletColor
	if p.Owner == component.TeamPlayer {
		c = config.PlayerBulletColor
	}
	vector.DrawFilledCircle(screen, px, py, r.cellSize*0.15+1, c, true)
}

// drawHealthBar рисует полоску здоровья по верхнему краю
func (r *GridRenderer) drawHealthBar(screen *ebiten.Image, x, y, w float32, h component.Health) {
	if h.Max <= 0 || h.Value >= h.Max {
		return
	}
	ratio := float32(h.Value) / float32(h.Max)
	barH := r.cellSize * 0.12
	if barH < 2 {
		barH = 2
	}
	vector.DrawFilledRect(screen, x, y, w, barH, config.OverlayColor, false)
	vector.DrawFilledRect(screen, x, y, w*ratio, barH, config.HealthBarColor, false)
}
