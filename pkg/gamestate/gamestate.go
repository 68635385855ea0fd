package gamestate

import (
	"errors"
	"math"
)

// FoldedBet is the bet value the judge reports for a player who folded this round
const FoldedBet = -1.0

// ErrSeatNotFound is returned when the acting seat cannot be determined
var ErrSeatNotFound = errors.New("acting seat could not be determined")

// Seating holds the turn metadata of the integer-money protocol
type Seating struct {
	IndexToAction     int `json:"indexToAction" yaml:"indexToAction"`
	IndexOfSmallBlind int `json:"indexOfSmallBlind" yaml:"indexOfSmallBlind"`
}

// Blinds are the forced bets for the hand
type Blinds struct {
	Small float64 `json:"small" yaml:"small"`
	Big   float64 `json:"big" yaml:"big"`
}

// GameState is a snapshot of a single decision point
// The players, player cards, held money and bet money slices are parallel.
type GameState struct {
	Seating        *Seating  `json:"seating,omitempty" yaml:"seating,omitempty"`
	Players        []string  `json:"players" yaml:"players"`
	PlayerCards    []string  `json:"playerCards" yaml:"playerCards"`
	HeldMoney      []float64 `json:"heldMoney" yaml:"heldMoney"`
	BetMoney       []float64 `json:"betMoney" yaml:"betMoney"`
	CommunityCards []string  `json:"communityCards" yaml:"communityCards"`
	Pots           Pots      `json:"pots" yaml:"pots"`
	Blinds         *Blinds   `json:"blinds,omitempty" yaml:"blinds,omitempty"`
	CurrentRound   string    `json:"currentRound,omitempty" yaml:"currentRound,omitempty"`
}

// IndexOf returns the seat of the player, or -1
func (g *GameState) IndexOf(player string) int {
	for i, p := range g.Players {
		if p == player {
			return i
		}
	}

	return -1
}

// IsFolded returns true if the seat has the folded marker as its bet
func (g *GameState) IsFolded(seat int) bool {
	if seat < 0 || seat >= len(g.BetMoney) {
		return false
	}

	return g.BetMoney[seat] == FoldedBet
}

// HighestBet returns the largest amount committed by a single player this round
func (g *GameState) HighestBet() float64 {
	highest := 0.0
	for _, bet := range g.BetMoney {
		if bet > highest {
			highest = bet
		}
	}

	return highest
}

// AmountToCall returns how much the seat needs to put in to match the highest bet.
// The amount is capped at what the player holds.
func (g *GameState) AmountToCall(seat int) float64 {
	if seat < 0 || seat >= len(g.BetMoney) || seat >= len(g.HeldMoney) || g.IsFolded(seat) {
		return 0
	}

	toCall := g.HighestBet() - g.BetMoney[seat]
	if toCall <= 0 {
		return 0
	}

	return math.Min(toCall, g.HeldMoney[seat])
}

// HoleCards returns the hole card encoding of the seat, or an empty string if unknown
func (g *GameState) HoleCards(seat int) string {
	if seat < 0 || seat >= len(g.PlayerCards) {
		return ""
	}

	return g.PlayerCards[seat]
}

// SeatOf determines which seat the agent is acting for.
// The turn index wins when the protocol carries one, then the configured identity,
// and finally the only seat whose hole cards were revealed to us.
func (g *GameState) SeatOf(self string) (int, error) {
	if g.Seating != nil {
		if g.Seating.IndexToAction < 0 || g.Seating.IndexToAction >= len(g.Players) {
			return -1, ErrSeatNotFound
		}

		return g.Seating.IndexToAction, nil
	}

	if self != "" {
		if i := g.IndexOf(self); i >= 0 {
			return i, nil
		}

		return -1, ErrSeatNotFound
	}

	seat := -1
	for i, cards := range g.PlayerCards {
		if cards == "" {
			continue
		}

		if seat >= 0 {
			return -1, ErrSeatNotFound
		}

		seat = i
	}

	if seat < 0 || seat >= len(g.Players) {
		return -1, ErrSeatNotFound
	}

	return seat, nil
}
