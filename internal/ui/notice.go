// internal/ui/notice.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/config"
	"go-grid-arcade/internal/event"
)

var noticeEvents = []event.EventType{
	event.LifeLost,
	event.AgentDied,
	event.StructureDestroyed,
	event.AbilityDisabled,
	event.AbilityRestored,
	event.MonsterSpawned,
	event.EnergyGained,
	event.MatchEnded,
}

type notice struct {
	text string
	ttl  float64
}

// Notices — короткие уведомления о событиях матча под полем. Сверх
// config.MaxNotices старые отбрасываются
type Notices struct {
	face  font.Face
	items []notice
}

func NewNotices(face font.Face) *Notices {
	return &Notices{face: face}
}

// Attach подписывает очередь на нужные события
func (n *Notices) Attach(d *event.Dispatcher) {
	for _, t := range noticeEvents {
		d.Subscribe(t, n)
	}
}

// Detach отписывает очередь от диспетчера
func (n *Notices) Detach(d *event.Dispatcher) {
	for _, t := range noticeEvents {
		d.Unsubscribe(t, n)
	}
}

func (n *Notices) OnEvent(e event.Event) {
	if msg := describe(e); msg != "" {
		n.Push(msg)
	}
}

// Push добавляет уведомление
func (n *Notices) Push(msg string) {
	n.items = append(n.items, notice{text: msg, ttl: config.NoticeTTL})
	if over := len(n.items) - config.MaxNotices; over > 0 {
		n.items = n.items[over:]
	}
}

// Update старит уведомления на dt секунд и убирает истёкшие
func (n *Notices) Update(dt float64) {
	kept := n.items[:0]
	for _, it := range n.items {
		it.ttl -= dt
		if it.ttl > 0 {
			kept = append(kept, it)
		}
	}
	n.items = kept
}

// Texts возвращает видимые уведомления, старые первыми
func (n *Notices) Texts() []string {
	out := make([]string, len(n.items))
	for i, it := range n.items {
		out[i] = it.text
	}
	return out
}

// Clear убирает все уведомления
func (n *Notices) Clear() {
	n.items = n.items[:0]
}

func (n *Notices) Draw(screen *ebiten.Image) {
	texts := n.Texts()
	y := config.NoticeY - (len(texts)-1)*config.HUDLineHeight
	for _, msg := range texts {
		text.Draw(screen, msg, n.face, config.HUDX, y, config.HighlightColor)
		y += config.HUDLineHeight
	}
}

func describe(e event.Event) string {
	switch data := e.Data.(type) {
	case event.CounterData:
		switch e.Type {
		case event.LifeLost:
			return fmt.Sprintf("Life lost! %d left", data.Value)
		case event.EnergyGained:
			return fmt.Sprintf("Energy +1 (%d)", data.Value)
		}
	case event.EntityData:
		switch e.Type {
		case event.AgentDied:
			return fmt.Sprintf("%s agent down", data.Team)
		case event.StructureDestroyed:
			return fmt.Sprintf("%s %s destroyed", data.Team, data.Role)
		case event.MonsterSpawned:
			return "A monster appeared"
		}
	case event.AbilityData:
		// лечение следует за гибелью и возрождением, у них свои уведомления
		if data.Ability == event.Heal && !data.Permanent {
			return ""
		}
		if e.Type == event.AbilityRestored {
			return fmt.Sprintf("%s can %s again", data.Team, data.Ability)
		}
		if data.Permanent {
			return fmt.Sprintf("%s lost %s for good", data.Team, data.Ability)
		}
		return fmt.Sprintf("%s cannot %s", data.Team, data.Ability)
	case event.MatchData:
		switch data.Phase {
		case component.Won:
			return "You win! " + data.Reason
		case component.Lost:
			return "Game over: " + data.Reason
		}
	}
	return ""
}
