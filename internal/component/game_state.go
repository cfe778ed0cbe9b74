package component

// Phase — состояние забега
type Phase int

const (
	Running Phase = iota
	Won
	Lost
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "stopped"
}

// Terminal — закончен ли забег
func (p Phase) Terminal() bool {
	return p != Running
}
