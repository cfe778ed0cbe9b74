// internal/state/play_state.go
package state

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-grid-arcade/internal/app"
	"go-grid-arcade/internal/config"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/internal/simlog"
	"go-grid-arcade/internal/ui"
)

var _ State = (*PlayState)(nil)

// PlayState — состояние игры: передаёт клавиши в игру, двигает её
// по реальному времени и рисует снимок мира
type PlayState struct {
	sm         *StateMachine
	settings   Settings
	game       interfaces.Game
	difficulty defs.Difficulty

	controls controls
	renderer *ui.GridRenderer
	hud      *ui.HUD
	notices  *ui.Notices
	simLog   *simlog.Log
}

// NewPlayState создаёт игру и запускает первый уровень
func NewPlayState(sm *StateMachine, settings Settings, kind interfaces.Kind, difficulty defs.Difficulty) (*PlayState, error) {
	g, err := app.New(kind, settings.Defs, settings.Options)
	if err != nil {
		return nil, err
	}
	face := basicfont.Face7x13
	ps := &PlayState{
		sm:         sm,
		settings:   settings,
		game:       g,
		difficulty: difficulty,
		controls:   controls{kind: kind},
		renderer:   ui.NewGridRenderer(kind, face),
		hud:        ui.NewHUD(kind, difficulty, face),
		notices:    ui.NewNotices(face),
		simLog:     simlog.New(config.LogLimit, g.RunInfo),
	}
	ps.notices.Attach(g.Events())
	ps.simLog.Attach(g.Events())
	if err := g.StartLevel(difficulty); err != nil {
		ps.notices.Detach(g.Events())
		return nil, err
	}
	return ps, nil
}

// Game возвращает текущую игру
func (p *PlayState) Game() interfaces.Game {
	return p.game
}

// Enter синхронизирует часы игры, чтобы время паузы не симулировалось
func (p *PlayState) Enter() {
	p.game.Resume()
}

func (p *PlayState) Update(deltaTime float64) {
	p.notices.Update(deltaTime)
	for _, key := range watchedKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		switch p.controls.press(p.game, key) {
		case actRestart:
			p.restart()
		case actMenu:
			p.game.Stop()
			p.notices.Detach(p.game.Events())
			p.sm.SetState(NewMenuState(p.sm, p.settings))
			return
		case actPause:
			p.sm.SetState(NewPauseState(p.sm, p))
			return
		case actCopy:
			p.copySnapshot()
		}
	}
	p.game.Update(time.Now())
}

func (p *PlayState) restart() {
	if err := p.game.Restart(); err != nil {
		log.Printf("Restart failed: %v", err)
		return
	}
	p.notices.Clear()
}

// copySnapshot копирует в буфер обмена текстовый снимок поля и журнал событий
func (p *PlayState) copySnapshot() {
	dump := p.game.Snapshot().Dump() + "\n" + p.simLog.String()
	if err := clipboard.WriteAll(dump); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
		p.notices.Push("Clipboard unavailable")
		return
	}
	p.notices.Push("Snapshot copied to clipboard")
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s := p.game.Snapshot()
	p.renderer.Draw(screen, s)
	p.hud.Draw(screen, s)
	p.notices.Draw(screen)

	face := basicfont.Face7x13
	if hint := p.controls.hint(); hint != "" {
		text.Draw(screen, hint, face, config.HUDX, config.BoardOriginY-6, config.HighlightColor)
	}
	if s.Phase.Terminal() {
		vector.DrawFilledRect(screen, config.BoardOriginX, config.BoardOriginY, config.BoardSize, config.BoardSize, config.OverlayColor, false)
		msg := "R restart   Esc menu"
		text.Draw(screen, s.Phase.String()+": "+s.Reason, face, config.MenuX, config.ScreenHeight/2-config.MenuLineHeight, config.TextLightColor)
		text.Draw(screen, msg, face, config.MenuX, config.ScreenHeight/2, config.TextDimColor)
	}
}

func (p *PlayState) Exit() {}
