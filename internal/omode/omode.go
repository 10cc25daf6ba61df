// Package omode defines the operating modes of the DSim simulator. The mode
// is computed once at startup from the positional argument count and passed
// explicitly to the output stage, so no code path ever re-inspects os.Args.
package omode

// Mode determines which output format the simulator produces.
type Mode int

const (
	// Unknown is the zero value, before mode selection took place.
	Unknown Mode = iota
	// LabelMode prints one caselist label line per test case.
	LabelMode
	// CheckMode prints a two-line pass report per test case plus a
	// completion marker after the last one.
	CheckMode
)

// Select returns the operating mode for the given positional argument count.
// Exactly two positional arguments select LabelMode, everything else selects
// CheckMode.
func Select(argc int) Mode {
	if argc == 2 {
		return LabelMode
	}
	return CheckMode
}

func (m Mode) String() string {
	switch m {
	case LabelMode:
		return "label"
	case CheckMode:
		return "check"
	default:
		return "unknown"
	}
}
