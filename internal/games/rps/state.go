package rps

// State is the screen the controller is on.
type State int

const (
	StateStart State = iota
	StateSelect
	StateShowdown
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateSelect:
		return "Select"
	case StateShowdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}
