// internal/component/abilities.go
package component

// Abilities — стрельба и лечение команды. Каждая причина блокировки
// хранится отдельно, снятие одной не снимает другую
type Abilities struct {
	deathLock      bool // агент команды мёртв, снимается при возрождении
	generatorLocks int  // по одной на разрушенный генератор в откате
	healLost       bool // все генераторы разрушены, навсегда
}

// CanShoot — может ли команда стрелять
func (a *Abilities) CanShoot() bool {
	return !a.deathLock && a.generatorLocks == 0
}

// CanHeal — может ли команда лечиться
func (a *Abilities) CanHeal() bool {
	return !a.deathLock && !a.healLost
}

// LockForDeath блокирует стрельбу и лечение до ClearDeathLock
func (a *Abilities) LockForDeath() { a.deathLock = true }

// ClearDeathLock снимает блокировку от гибели. Блокировки генераторов остаются
func (a *Abilities) ClearDeathLock() { a.deathLock = false }

// AddGeneratorLock блокирует стрельбу на время отката генератора
func (a *Abilities) AddGeneratorLock() { a.generatorLocks++ }

// ReleaseGeneratorLock завершает один откат генератора
func (a *Abilities) ReleaseGeneratorLock() {
	if a.generatorLocks > 0 {
		a.generatorLocks--
	}
}

// LoseHeal навсегда отключает лечение
func (a *Abilities) LoseHeal() { a.healLost = true }

// GeneratorLocks возвращает число активных откатов генераторов
func (a *Abilities) GeneratorLocks() int { return a.generatorLocks }

// Disabled — есть ли хоть одна блокировка
func (a *Abilities) Disabled() bool {
	return a.deathLock || a.generatorLocks > 0 || a.healLost
}
