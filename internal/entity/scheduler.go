// internal/entity/scheduler.go
package entity

import "sort"

type scheduled struct {
	at  float64
	seq uint64
	fn  func()
}

// Scheduler — отложенные вызовы по времени симуляции в миллисекундах.
// События с одинаковым сроком выполняются в порядке добавления
type Scheduler struct {
	now     float64
	seq     uint64
	pending []scheduled
}

// After планирует fn через delay мс после последнего Fire
func (s *Scheduler) After(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, scheduled{at: s.now + delay, seq: s.seq, fn: fn})
}

// Fire переводит планировщик на now и выполняет все наступившие события.
// Добавленные из колбэка события выполнятся не раньше следующего Fire
func (s *Scheduler) Fire(now float64) {
	s.now = now

	var due []scheduled
	kept := s.pending[:0]
	for _, ev := range s.pending {
		if ev.at <= now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	s.pending = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, ev := range due {
		ev.fn()
	}
}

// Reset удаляет все ожидающие события
func (s *Scheduler) Reset() {
	s.pending = nil
	s.now = 0
	s.seq = 0
}

// Len возвращает число ожидающих событий
func (s *Scheduler) Len() int {
	return len(s.pending)
}
