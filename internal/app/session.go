// internal/app/session.go
package app

import (
	"log"
	"time"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/entity"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/internal/system"
	"go-grid-arcade/internal/utils"
	"go-grid-arcade/pkg/grid"
)

// Options — настройки игры, не относящиеся к балансу
type Options struct {
	// Seed фиксирует случайность каждого запуска уровня. 0 берёт сид
	// из текущего времени при каждом старте
	Seed int64
}

// session — общее для всех игр: текущий мир, часы, генератор случайных чисел
// и диспетчер событий. Подписчики диспетчера переживают рестарты
type session struct {
	defs       *defs.Definitions
	opts       Options
	events     *event.Dispatcher
	world      *entity.World
	rng        *utils.PRNGService
	clock      system.Clock
	difficulty defs.Difficulty
}

func newSession(d *defs.Definitions, opts Options) *session {
	if d == nil {
		d = defs.Default()
	}
	s := &session{
		defs:       d,
		opts:       opts,
		events:     event.NewDispatcher(),
		difficulty: defs.Easy,
	}
	s.events.Subscribe(event.MatchEnded, event.ListenerFunc(func(e event.Event) {
		if data, ok := e.Data.(event.MatchData); ok && s.world != nil {
			log.Printf("Level ended: run=%s result=%s (%s) after %.0fms",
				s.world.RunID, data.Phase, data.Reason, s.world.Counters.ElapsedMs)
		}
	}))
	return s
}

// begin заменяет текущий мир новым на карте m
func (s *session) begin(m *grid.Map, difficulty defs.Difficulty) *entity.World {
	if s.world != nil {
		s.world.Stop()
	}
	s.clock.Reset()
	s.rng = utils.NewPRNGService(s.opts.Seed)
	s.difficulty = difficulty
	s.world = entity.NewWorld(m, s.events)
	log.Printf("Level started: run=%s difficulty=%s seed=%d", s.world.RunID, difficulty, s.rng.Seed())
	return s.world
}

// tick переводит now в дельту, выполняет наступившие события и сообщает,
// идёт ли ещё забег
func (s *session) tick(now time.Time) (float64, bool) {
	if !s.world.Active() {
		return 0, false
	}
	dt := s.clock.Elapsed(now)
	s.world.Counters.ElapsedMs += dt
	s.world.Scheduler.Fire(s.world.Counters.ElapsedMs)
	return dt, s.world.Active()
}

// player возвращает живого игрока запущенного мира
func (s *session) player() *component.Entity {
	if !s.world.Active() {
		return nil
	}
	p := s.world.Player()
	if p == nil || !p.Alive {
		return nil
	}
	return p
}

// Events возвращает диспетчер, общий для всех забегов игры
func (s *session) Events() *event.Dispatcher {
	return s.events
}

// World возвращает текущий мир или nil до первого старта
func (s *session) World() *entity.World {
	return s.world
}

// RunInfo возвращает ID забега и время симуляции
func (s *session) RunInfo() (string, float64) {
	if s.world == nil {
		return "", 0
	}
	return s.world.RunID.String(), s.world.Counters.ElapsedMs
}

// Seed возвращает сид текущего забега
func (s *session) Seed() int64 {
	if s.rng == nil {
		return s.opts.Seed
	}
	return s.rng.Seed()
}

// Resume отбрасывает время паузы, чтобы оно не симулировалось
func (s *session) Resume() {
	s.clock.Resync()
}

func (s *session) Stop() {
	if s.world == nil {
		return
	}
	s.world.Stop()
	log.Printf("Level stopped: run=%s", s.world.RunID)
}

func (s *session) Snapshot() entity.Snapshot {
	if s.world == nil {
		return entity.Snapshot{Phase: component.Stopped}
	}
	return s.world.Snapshot()
}

// Команды, которые игра не поддерживает

func (s *session) FirePlayer() {}

func (s *session) PlaceMark(grid.Direction) {}

func (s *session) ClearMark(grid.Direction) {}

func (s *session) ConsumeResourceAbility() {}
