package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasDuplicates returns true if any card appears more than once
func (h Hand) HasDuplicates() bool {
	for i, card := range h {
		if h[:i].HasCard(card) {
			return true
		}
	}

	return false
}

// String returns the wire encoding of every card, separated by spaces
func (h Hand) String() string {
	s := make([]string, len(h))
	for i, card := range h {
		s[i] = CardToString(card)
	}

	return strings.Join(s, " ")
}
