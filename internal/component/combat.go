// internal/component/combat.go
package component

// Health — запас здоровья. Value всегда в [0, Max]
type Health struct {
	Value int
	Max   int
}

// Full возвращает полный запас
func Full(max int) Health {
	return Health{Value: max, Max: max}
}

// Damage вычитает amount, не ниже нуля, и сообщает, обнулился ли запас
// именно этим вызовом
func (h *Health) Damage(amount int) (depleted bool) {
	if amount <= 0 || h.Value == 0 {
		return false
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value == 0
}

// Heal добавляет amount, не выше Max
func (h *Health) Heal(amount int) {
	if amount <= 0 {
		return
	}
	h.Value += amount
	if h.Value > h.Max {
		h.Value = h.Max
	}
}

// Restore восстанавливает запас полностью
func (h *Health) Restore() {
	h.Value = h.Max
}

// Cooldowns — таймеры агента в миллисекундах, отсчитывают до нуля
type Cooldowns struct {
	Attack float64
}

// Tick уменьшает таймеры на dt, не ниже нуля
func (c *Cooldowns) Tick(dt float64) {
	c.Attack -= dt
	if c.Attack < 0 {
		c.Attack = 0
	}
}
