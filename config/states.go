package config

// StateID identifies a player state for animation and logic.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Running
	Jump
	Fall
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	}
	return "none"
}
