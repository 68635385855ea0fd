package policy

import (
	"holdem-agent/internal/rng"
	"holdem-agent/pkg/gamestate"
)

// Random picks uniformly between checking, calling and a minimum raise
type Random struct {
	self string
	gen  rng.Generator
}

// NewRandom returns a random policy
func NewRandom(opts Options) *Random {
	opts = opts.withDefaults()
	return &Random{
		self: opts.Self,
		gen:  opts.Generator,
	}
}

// Bet implements Policy
func (r *Random) Bet(state *gamestate.GameState) int {
	seat, err := state.SeatOf(r.self)
	if err != nil {
		return 0
	}

	stack := state.HeldMoney[seat]
	toCall := state.AmountToCall(seat)

	switch r.gen.Intn(3) {
	case 1:
		return chips(toCall, stack)
	case 2:
		return chips(toCall+minRaise(state), stack)
	}

	return 0
}
