// internal/system/clock.go
package system

import "time"

// Clock — переводит метки реального времени в миллисекунды симуляции
type Clock struct {
	last    time.Time
	started bool
	now     float64
}

// Elapsed возвращает миллисекунды с прошлого вызова. Первый вызов после
// сброса возвращает 0, время назад тоже считается за 0
func (c *Clock) Elapsed(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	if dt < 0 {
		return 0
	}
	c.now += dt
	return dt
}

// Now возвращает накопленное время симуляции в миллисекундах
func (c *Clock) Now() float64 {
	return c.now
}

// Resync забывает прошлую метку, но сохраняет накопленное время.
// Следующий Elapsed после паузы вернёт 0
func (c *Clock) Resync() {
	c.started = false
}

// Reset сбрасывает метку и накопленное время
func (c *Clock) Reset() {
	*c = Clock{}
}

// Cadence — периодическое действие по дельтам тиков. Срабатывает не чаще
// раза за тик и начинает отсчёт с нуля, после долгой задержки будет одно
// срабатывание, а не пачка
type Cadence struct {
	Interval float64
	acc      float64
}

// NewCadence создаёт Cadence с интервалом в миллисекундах
func NewCadence(interval float64) Cadence {
	return Cadence{Interval: interval}
}

// Accumulate добавляет dt и сообщает, пора ли действовать в этом тике
func (c *Cadence) Accumulate(dt float64) bool {
	if c.Interval <= 0 {
		return false
	}
	c.acc += dt
	if c.acc >= c.Interval {
		c.acc = 0
		return true
	}
	return false
}

// Reset обнуляет накопленное время
func (c *Cadence) Reset() {
	c.acc = 0
}
