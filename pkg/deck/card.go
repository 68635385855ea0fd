package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidCard is returned when a card encoding cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is every suit in a standard deck
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

func rankString(rank int) string {
	switch rank {
	case 10:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return fmt.Sprintf("%d", rank)
}

var cardRx = regexp.MustCompile(`(?i)^(10|[2-9tjqka])([cdhs])\z`)

var holdingRx = regexp.MustCompile(`(?i)(10|[2-9tjqka])([cdhs])`)

func parseRank(s string) int {
	switch strings.ToUpper(s) {
	case "10", "T":
		return 10
	case "J":
		return Jack
	case "Q":
		return Queen
	case "K":
		return King
	case "A":
		return Ace
	}

	// a single digit, guaranteed by the regexp
	return int(s[0] - '0')
}

func parseSuit(s string) Suit {
	switch strings.ToLower(s) {
	case "c":
		return Clubs
	case "d":
		return Diamonds
	case "h":
		return Hearts
	}

	return Spades
}

// CardFromString returns a Card from its wire encoding.
// The string is <rank><suit> where rank is one of 2-9, T (or 10), J, Q, K, A and suit is one of cdhs,
// in either case.
func CardFromString(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return &Card{
		Rank: parseRank(match[1]),
		Suit: parseSuit(match[2]),
	}, nil
}

// CardsFromHolding parses concatenated cards, such as the hole cards "AhKs"
// An empty holding has no cards.
func CardsFromHolding(s string) (Hand, error) {
	matches := holdingRx.FindAllStringSubmatchIndex(s, -1)

	cards := make(Hand, 0, len(matches))
	end := 0
	for _, match := range matches {
		if match[0] != end {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
		}

		cards = append(cards, &Card{
			Rank: parseRank(s[match[2]:match[3]]),
			Suit: parseSuit(s[match[4]:match[5]]),
		})
		end = match[1]
	}

	if end != len(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return cards, nil
}

// CardsFromStrings parses one card per string, such as the community cards
func CardsFromStrings(s []string) (Hand, error) {
	cards := make(Hand, len(s))
	for i, str := range s {
		card, err := CardFromString(str)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardToString converts a card (Ace of Clubs) to its wire encoding (Ac)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return rankString(card.Rank) + string(card.Suit)[:1]
}
