// internal/component/team.go
package component

// Team — команда, от неё зависят попадания и итог матча
type Team uint8

const (
	TeamPlayer Team = iota
	TeamHostile
	TeamNeutral // общие препятствия, например мост
)

// Opposes — может ли снаряд команды t попасть по команде other.
// В нейтральные постройки попадают все, у нейтральных снарядов нет
func (t Team) Opposes(other Team) bool {
	if other == TeamNeutral {
		return t != TeamNeutral
	}
	return t != other && t != TeamNeutral
}

// Enemy возвращает команду противника
func (t Team) Enemy() Team {
	if t == TeamPlayer {
		return TeamHostile
	}
	return TeamPlayer
}

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamHostile:
		return "hostile"
	}
	return "neutral"
}
