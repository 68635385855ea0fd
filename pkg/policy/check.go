package policy

import (
	"holdem-agent/pkg/gamestate"
)

// Check returns the policy that always reports 0
// This is the starting point every contestant is given.
func Check() Policy {
	return Func(func(state *gamestate.GameState) int {
		return 0
	})
}
