package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	h := Hand{{Rank: 2, Suit: Clubs}, {Rank: Ace, Suit: Spades}}
	assert.True(t, h.HasCard(&Card{Rank: Ace, Suit: Spades}))
	assert.False(t, h.HasCard(&Card{Rank: Ace, Suit: Hearts}))
}

func TestHand_AddCard(t *testing.T) {
	h := Hand{}
	h.AddCard(&Card{Rank: 5, Suit: Hearts})
	assert.Equal(t, "5h", h.String())
}

func TestHand_HasDuplicates(t *testing.T) {
	assert.False(t, Hand{{Rank: 2, Suit: Clubs}, {Rank: 2, Suit: Hearts}}.HasDuplicates())
	assert.True(t, Hand{{Rank: 2, Suit: Clubs}, {Rank: 3, Suit: Hearts}, {Rank: 2, Suit: Clubs}}.HasDuplicates())
}
