package policy

import (
	"fmt"

	"github.com/paulhankin/poker"
	"holdem-agent/internal/rng"
	"holdem-agent/pkg/deck"
)

var suits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

// toPoker converts a card to the evaluator's representation, where aces are rank 1
func toPoker(c *deck.Card) (poker.Card, error) {
	suit, ok := suits[c.Suit]
	if !ok {
		var card poker.Card
		return card, fmt.Errorf("unknown suit: %s", c.Suit)
	}

	rank := c.Rank
	if rank == deck.Ace {
		rank = 1
	}

	return poker.MakeCard(suit, poker.Rank(rank))
}

func toPokerHand(h deck.Hand) ([]poker.Card, error) {
	cards := make([]poker.Card, len(h))
	for i, c := range h {
		card, err := toPoker(c)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// equity returns the share of opponent holdings the hole cards beat, ties count half.
// Turn and river are enumerated, a flop samples runouts from a deck shuffled with gen.
func equity(hole, board deck.Hand, gen rng.Generator, samples int) (float64, error) {
	var runouts []deck.Hand
	switch len(board) {
	case 5:
		runouts = []deck.Hand{{}}
	case 4:
		for _, card := range deck.Without(hole, board).Cards {
			runouts = append(runouts, deck.Hand{card})
		}
	case 3:
		for n := 0; n < samples; n++ {
			d := deck.Without(hole, board)
			d.Shuffle(gen)

			var runout deck.Hand
			for len(runout) < 2 {
				card, err := d.Draw()
				if err != nil {
					return 0, err
				}

				runout.AddCard(card)
			}

			runouts = append(runouts, runout)
		}
	default:
		return 0, fmt.Errorf("cannot evaluate a board of %d cards", len(board))
	}

	holeCards, err := toPokerHand(hole)
	if err != nil {
		return 0, err
	}

	score := 0.0
	total := 0
	var hand [7]poker.Card
	for _, runout := range runouts {
		full := append(append(deck.Hand{}, board...), runout...)
		boardCards, err := toPokerHand(full)
		if err != nil {
			return 0, err
		}

		remaining, err := toPokerHand(deck.Without(hole, full).Cards)
		if err != nil {
			return 0, err
		}

		copy(hand[:5], boardCards)
		hand[5], hand[6] = holeCards[0], holeCards[1]
		mine := poker.Eval7(&hand)

		for i := range remaining {
			for j := i + 1; j < len(remaining); j++ {
				hand[5], hand[6] = remaining[i], remaining[j]
				theirs := poker.Eval7(&hand)

				switch {
				case mine > theirs:
					score++
				case mine == theirs:
					score += 0.5
				}

				total++
			}
		}
	}

	if total == 0 {
		return 0, fmt.Errorf("no opponent holdings to compare against")
	}

	return score / float64(total), nil
}

// preflopStrength is a rank heuristic for two hole cards, from about 0.2 to 1
func preflopStrength(hole deck.Hand) float64 {
	high, low := hole[0].Rank, hole[1].Rank
	if low > high {
		high, low = low, high
	}

	if high == low {
		return 0.5 + float64(high)/28
	}

	strength := float64(high)/14*0.35 + float64(low)/14*0.15
	if hole[0].Suit == hole[1].Suit {
		strength += 0.05
	}

	if high-low == 1 {
		strength += 0.05
	}

	return strength
}
