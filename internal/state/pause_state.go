// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-grid-arcade/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState — пауза. Предыдущее состояние рисуется под затемнением
// и не обновляется
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	face := basicfont.Face7x13
	text.Draw(screen, "PAUSED", face, config.ScreenWidth/2-21, config.ScreenHeight/2, config.TextLightColor)
	text.Draw(screen, "P or Esc to resume", face, config.ScreenWidth/2-63, config.ScreenHeight/2+config.MenuLineHeight, config.TextDimColor)
}

func (s *PauseState) Exit() {}
