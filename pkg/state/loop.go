// pkg/state/loop.go

package state

// CaptureMode selects how the loop variable is bound for closures created
// inside CaptureLoop.
type CaptureMode uint8

const (
	// SharedBinding uses one variable for the whole loop, so every closure
	// observes its final value.
	SharedBinding CaptureMode = iota
	// PerIteration binds a fresh variable on each iteration.
	PerIteration
)

var captureModeNames = [...]string{
	SharedBinding: "shared",
	PerIteration:  "per-iteration",
}

func (m CaptureMode) String() string {
	if int(m) < len(captureModeNames) {
		return captureModeNames[m]
	}
	return "unknown"
}

// CaptureLoop runs a counting loop of n iterations and returns the
// closures created in its body, in creation order. Each closure reports
// the loop variable it captured.
func CaptureLoop(n int, mode CaptureMode) []func() int {
	fns := make([]func() int, 0, n)
	switch mode {
	case SharedBinding:
		i := new(int)
		for *i = 0; *i < n; *i++ {
			fns = append(fns, func() int { return *i })
		}
	default:
		for i := 0; i < n; i++ {
			cell := i
			fns = append(fns, func() int { return cell })
		}
	}
	return fns
}
