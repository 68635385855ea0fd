package gamestate

// Pot is a chip total and the players who can win it
type Pot struct {
	Value   float64  `json:"value" yaml:"value"`
	Players []string `json:"players" yaml:"players"`
}

// IsEligible returns true if the player can win the pot
func (p *Pot) IsEligible(player string) bool {
	for _, id := range p.Players {
		if id == player {
			return true
		}
	}

	return false
}

// Pots is the main pot followed by any side pots
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() float64 {
	total := 0.0
	for _, pot := range p {
		total += pot.Value
	}

	return total
}

// EligibleFor returns the pots the player can win
func (p Pots) EligibleFor(player string) Pots {
	eligible := make(Pots, 0, len(p))
	for _, pot := range p {
		if pot.IsEligible(player) {
			eligible = append(eligible, pot)
		}
	}

	return eligible
}
