package policy

import (
	"math"

	"github.com/sirupsen/logrus"
	"holdem-agent/internal/rng"
	"holdem-agent/pkg/deck"
	"holdem-agent/pkg/gamestate"
)

// thresholds on the strength against every live opponent
const (
	allInStrength = 0.85
	raiseStrength = 0.65
	callStrength  = 0.4
)

// Strength sizes its bet from an estimate of how often the hand wins
type Strength struct {
	self    string
	gen     rng.Generator
	samples int
}

// NewStrength returns a hand strength policy
func NewStrength(opts Options) *Strength {
	opts = opts.withDefaults()
	return &Strength{
		self:    opts.Self,
		gen:     opts.Generator,
		samples: opts.Samples,
	}
}

// Estimate returns the chance of beating every live opponent, or false if the
// hand cannot be read from the state
func (s *Strength) Estimate(state *gamestate.GameState, seat int) (float64, bool) {
	hole, err := deck.CardsFromHolding(state.HoleCards(seat))
	if err != nil || len(hole) != 2 {
		return 0, false
	}

	board, err := deck.CardsFromStrings(state.CommunityCards)
	if err != nil || len(board) > 5 {
		return 0, false
	}

	if append(append(deck.Hand{}, hole...), board...).HasDuplicates() {
		return 0, false
	}

	var strength float64
	if len(board) < 3 {
		strength = preflopStrength(hole)
	} else {
		if strength, err = equity(hole, board, s.gen, s.samples); err != nil {
			return 0, false
		}
	}

	opponents := 0
	for i := range state.Players {
		if i != seat && !state.IsFolded(i) {
			opponents++
		}
	}

	if opponents > 1 {
		strength = math.Pow(strength, float64(opponents))
	}

	logrus.WithFields(logrus.Fields{
		"hole":      hole.String(),
		"board":     board.String(),
		"opponents": opponents,
		"strength":  strength,
	}).Debug("estimated hand strength")

	return strength, true
}

// Bet implements Policy
func (s *Strength) Bet(state *gamestate.GameState) int {
	seat, err := state.SeatOf(s.self)
	if err != nil {
		return 0
	}

	strength, ok := s.Estimate(state, seat)
	if !ok {
		return 0
	}

	stack := state.HeldMoney[seat]
	toCall := state.AmountToCall(seat)
	pot := state.Pots.Total()

	switch {
	case strength >= allInStrength:
		return chips(stack, stack)
	case strength >= raiseStrength:
		return chips(toCall+math.Max(minRaise(state), pot/2), stack)
	case strength >= callStrength:
		return chips(toCall, stack)
	case toCall > 0 && strength >= toCall/(pot+toCall):
		// the price is right
		return chips(toCall, stack)
	}

	return 0
}
