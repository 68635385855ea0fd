package agent

import "fmt"

// Phase is where an invocation is in its single pass
type Phase int

// constants for Phase
const (
	PhaseStart Phase = iota
	PhaseReadingState
	PhaseDecoded
	PhaseDeciding
	PhaseDecided
	PhaseWritingResult
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseReadingState:
		return "reading-state"
	case PhaseDecoded:
		return "decoded"
	case PhaseDeciding:
		return "deciding"
	case PhaseDecided:
		return "decided"
	case PhaseWritingResult:
		return "writing-result"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	}

	return fmt.Sprintf("phase(%d)", int(p))
}
