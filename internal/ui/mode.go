package ui

// Mode selects which bindings the help bar offers.
type Mode int

const (
	ModePresent Mode = iota
	// ModeWatch is ModePresent with the source file being watched, which
	// adds reload.
	ModeWatch
)

func (m Mode) String() string {
	switch m {
	case ModePresent:
		return "Present"
	case ModeWatch:
		return "Watch"
	default:
		return "Unknown"
	}
}
