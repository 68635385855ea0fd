package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"holdem-agent/pkg/gamestate"
)

func TestEncode_roundTrip(t *testing.T) {
	for _, variant := range []Variant{VariantA, VariantB, VariantC} {
		t.Run(string(variant), func(t *testing.T) {
			input := variantALines()
			if variant == VariantB {
				input = variantBLines()
			}

			state, err := Decode(lines(input...), variant)
			require.NoError(t, err)

			buf := &bytes.Buffer{}
			require.NoError(t, Encode(buf, variant, state))
			assert.Equal(t, variant.Lines(len(state.Pots)), strings.Count(buf.String(), "\n"))

			decoded, err := Decode(buf, variant)
			require.NoError(t, err)
			assert.Equal(t, state, decoded)
		})
	}
}

func TestEncode_format(t *testing.T) {
	a := assert.New(t)

	state := &gamestate.GameState{
		Seating:        &gamestate.Seating{IndexToAction: 0, IndexOfSmallBlind: 1},
		Players:        []string{"alice", "bob"},
		PlayerCards:    []string{"AhKs", ""},
		HeldMoney:      []float64{90, 80},
		BetMoney:       []float64{10, 20},
		CommunityCards: []string{},
		Pots:           gamestate.Pots{{Value: 30, Players: []string{"alice", "bob"}}},
		Blinds:         &gamestate.Blinds{Small: 10, Big: 20},
	}

	buf := &bytes.Buffer{}
	a.NoError(Encode(buf, VariantB, state))
	a.Equal("0\n1\nalice bob\nAhKs \n90 80\n10 20\n\n1\n30 alice bob\n10\n20\n", buf.String())

	state.CurrentRound = "preflop"
	state.HeldMoney[0] = 12.5
	buf.Reset()
	a.NoError(Encode(buf, VariantA, state))
	a.Equal("alice bob\nAhKs \n12.5 80\n10 20\n\n1\n30 alice bob\npreflop\n", buf.String())
}

func TestEncode_rejects(t *testing.T) {
	a := assert.New(t)

	newState := func() *gamestate.GameState {
		state, err := Decode(lines(variantBLines()...), VariantB)
		require.NoError(t, err)
		return state
	}

	state := newState()
	state.HeldMoney[0] = 12.5
	err := Encode(&bytes.Buffer{}, VariantB, state)
	a.True(errors.Is(err, ErrUnencodable))

	state = newState()
	state.HeldMoney[0] = MaxExactAmount * 2
	a.True(errors.Is(Encode(&bytes.Buffer{}, VariantB, state), ErrUnencodable))

	state = newState()
	state.Players[0] = "alice smith"
	a.True(errors.Is(Encode(&bytes.Buffer{}, VariantB, state), ErrUnencodable))

	state = newState()
	state.Pots[0].Players = nil
	a.True(errors.Is(Encode(&bytes.Buffer{}, VariantB, state), ErrUnencodable))

	state = newState()
	state.Seating = nil
	a.True(errors.Is(Encode(&bytes.Buffer{}, VariantB, state), ErrUnencodable))

	state = newState()
	state.CurrentRound = "two\nlines"
	a.True(errors.Is(Encode(&bytes.Buffer{}, VariantC, state), ErrUnencodable))

	// cross-field rules are the decoder's
	state = newState()
	state.Seating.IndexToAction = 7
	var validationErr ValidationError
	a.True(errors.As(Encode(&bytes.Buffer{}, VariantB, state), &validationErr))
}
