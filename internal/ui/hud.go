// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/config"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/interfaces"
)

// HUD — счётчики текущей игры над полем
type HUD struct {
	kind       interfaces.Kind
	difficulty defs.Difficulty
	face       font.Face
}

func NewHUD(kind interfaces.Kind, difficulty defs.Difficulty, face font.Face) *HUD {
	return &HUD{kind: kind, difficulty: difficulty, face: face}
}

// Lines возвращает строки HUD для снимка
func (h *HUD) Lines(s entity.Snapshot) []string {
	title := h.kind.Title()
	if h.kind == interfaces.LakeWars {
		title += " (" + string(h.difficulty) + ")"
	}
	status := s.Phase.String()
	if s.Reason != "" {
		status += ": " + s.Reason
	}
	first := fmt.Sprintf("%s  |  %s  |  %.1fs", title, status, s.Counters.ElapsedMs/1000)

	var parts []string
	switch h.kind {
	case interfaces.LakeWars:
		parts = append(parts, fmt.Sprintf("Lives: %d", s.Counters.Lives))
		parts = append(parts, fmt.Sprintf("Bots: %d", liveAgents(s, component.TeamHostile)))
	case interfaces.MiniMines:
		parts = append(parts, fmt.Sprintf("Mines: %d", s.Counters.Mines))
		parts = append(parts, fmt.Sprintf("Opened: %d", s.Counters.OpenCount))
		parts = append(parts, fmt.Sprintf("Energy: %d", s.Counters.Energy))
		parts = append(parts, fmt.Sprintf("Monsters: %d", liveAgents(s, component.TeamHostile)))
	case interfaces.TowerFight:
		for _, team := range []component.Team{component.TeamPlayer, component.TeamHostile} {
			a := s.Abilities[team]
			line := fmt.Sprintf("%s shoot:%s heal:%s", team, onOff(a.CanShoot), onOff(a.CanHeal))
			if a.GeneratorLocks > 0 {
				line += fmt.Sprintf(" locks:%d", a.GeneratorLocks)
			}
			parts = append(parts, line)
		}
	}
	return []string{first, strings.Join(parts, "   ")}
}

func (h *HUD) Draw(screen *ebiten.Image, s entity.Snapshot) {
	for i, line := range h.Lines(s) {
		clr := config.TextLightColor
		if i > 0 {
			clr = config.TextDimColor
			if h.playerDisabled(s) {
				clr = config.HighlightColor
			}
		}
		text.Draw(screen, line, h.face, config.HUDX, config.HUDY+i*config.HUDLineHeight, clr)
	}
}

// playerDisabled — заблокирована ли у игрока хоть одна способность
func (h *HUD) playerDisabled(s entity.Snapshot) bool {
	return h.kind == interfaces.TowerFight && s.Abilities[component.TeamPlayer].Disabled
}

func liveAgents(s entity.Snapshot, team component.Team) int {
	n := 0
	for _, e := range s.Entities {
		if e.IsAgent() && e.Alive && e.Team == team {
			n++
		}
	}
	return n
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
