package policy

import (
	"holdem-agent/pkg/gamestate"
)

// Call matches the highest bet, and checks when there is nothing to call
type Call struct {
	self string
}

// NewCall returns a calling station
func NewCall(opts Options) *Call {
	return &Call{self: opts.Self}
}

// Bet implements Policy
func (c *Call) Bet(state *gamestate.GameState) int {
	seat, err := state.SeatOf(c.self)
	if err != nil {
		return 0
	}

	return chips(state.AmountToCall(seat), state.HeldMoney[seat])
}
