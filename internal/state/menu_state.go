// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-grid-arcade/internal/app"
	"go-grid-arcade/internal/config"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/interfaces"
)

// Settings — общие настройки для всех запускаемых игр
type Settings struct {
	Defs    *defs.Definitions
	Options app.Options
}

// MenuState — главное меню. Вверх/вниз выбирают игру, влево/вправо сложность,
// Enter запускает
type MenuState struct {
	sm         *StateMachine
	settings   Settings
	game       int
	difficulty int
	err        string
}

func NewMenuState(sm *StateMachine, settings Settings) *MenuState {
	return &MenuState{sm: sm, settings: settings}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		m.game = wrap(m.game-1, len(interfaces.Kinds))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		m.game = wrap(m.game+1, len(interfaces.Kinds))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		m.difficulty = wrap(m.difficulty-1, len(defs.Difficulties))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		m.difficulty = wrap(m.difficulty+1, len(defs.Difficulties))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.start()
	}
}

func (m *MenuState) start() {
	kind := interfaces.Kinds[m.game]
	play, err := NewPlayState(m.sm, m.settings, kind, defs.Difficulties[m.difficulty])
	if err != nil {
		log.Printf("Failed to start %s: %v", kind, err)
		m.err = err.Error()
		return
	}
	m.err = ""
	m.sm.SetState(play)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.MenuY
	text.Draw(screen, "GRID ARCADE", face, config.MenuX, y, config.HighlightColor)
	y += 2 * config.MenuLineHeight

	for i, k := range interfaces.Kinds {
		clr, cursor := config.TextDimColor, "  "
		if i == m.game {
			clr, cursor = config.TextLightColor, "> "
		}
		text.Draw(screen, cursor+k.Title(), face, config.MenuX, y, clr)
		y += config.MenuLineHeight
	}
	y += config.MenuLineHeight
	text.Draw(screen, fmt.Sprintf("Difficulty: < %s >", defs.Difficulties[m.difficulty]), face, config.MenuX, y, config.TextLightColor)
	y += 2 * config.MenuLineHeight
	text.Draw(screen, "Up/Down game  Left/Right difficulty  Enter start", face, config.MenuX, y, config.TextDimColor)
	if m.err != "" {
		text.Draw(screen, m.err, face, config.MenuX, y+config.MenuLineHeight, config.HostileColor)
	}
}

func (m *MenuState) Exit() {}

func wrap(i, n int) int {
	return (i%n + n) % n
}
