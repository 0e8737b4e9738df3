package sequence

// CommandID names one of the three navigation commands.
type CommandID int

const (
	Previous CommandID = iota
	Next
	Finish
)

func (c CommandID) String() string {
	switch c {
	case Previous:
		return "Previous"
	case Next:
		return "Next"
	case Finish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// Command is a navigation command together with whether it may fire in the
// engine's current state.
type Command struct {
	ID      CommandID
	Enabled bool
}

type commandSet [3]Command

func newCommandSet() commandSet {
	return commandSet{
		{ID: Previous},
		{ID: Next},
		{ID: Finish},
	}
}

func (s *commandSet) set(id CommandID, enabled bool) {
	s[id].Enabled = enabled
}

func (s *commandSet) enabled(id CommandID) bool {
	if id < Previous || id > Finish {
		return false
	}
	return s[id].Enabled
}
