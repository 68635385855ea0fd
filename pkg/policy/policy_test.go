package policy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-agent/internal/rng"
	"holdem-agent/pkg/gamestate"
)

func newTestState() *gamestate.GameState {
	return &gamestate.GameState{
		Seating:        &gamestate.Seating{IndexToAction: 0, IndexOfSmallBlind: 1},
		Players:        []string{"alice", "bob"},
		PlayerCards:    []string{"AhKh", ""},
		HeldMoney:      []float64{100, 150},
		BetMoney:       []float64{10, 20},
		CommunityCards: []string{},
		Pots:           gamestate.Pots{{Value: 30, Players: []string{"alice", "bob"}}},
		Blinds:         &gamestate.Blinds{Small: 10, Big: 20},
	}
}

func TestFromString(t *testing.T) {
	a := assert.New(t)

	for _, name := range Names() {
		p, err := FromString(name, Options{})
		a.NoError(err, name)
		a.NotNil(p, name)
	}

	_, err := FromString("bluff", Options{})
	a.EqualError(err, "unknown policy: bluff")

	a.Equal([]string{"call", "check", "random", "strength"}, Names())
}

func TestFunc(t *testing.T) {
	var p Policy = Func(func(state *gamestate.GameState) int {
		return len(state.Players)
	})

	assert.Equal(t, 2, p.Bet(newTestState()))
}

func TestCheck(t *testing.T) {
	assert.Equal(t, 0, Check().Bet(newTestState()))
	assert.Equal(t, 0, Check().Bet(&gamestate.GameState{}))
}

func TestCall(t *testing.T) {
	a := assert.New(t)
	state := newTestState()

	a.Equal(10, NewCall(Options{}).Bet(state))

	state.Seating.IndexToAction = 1
	a.Equal(0, NewCall(Options{}).Bet(state), "nothing to call")

	// no turn index, the identity decides
	state.Seating = nil
	state.BetMoney = []float64{10, 22.5}
	a.Equal(13, NewCall(Options{Self: "alice"}).Bet(state))
	a.Equal(0, NewCall(Options{Self: "dave"}).Bet(state))

	// short stack
	state.HeldMoney[0] = 12.5
	a.Equal(12, NewCall(Options{Self: "alice"}).Bet(state))
}

func TestRandom(t *testing.T) {
	a := assert.New(t)
	state := newTestState()

	p := NewRandom(Options{Generator: rng.NewSeeded(7)})
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		bet := p.Bet(state)
		a.Contains([]int{0, 10, 30}, bet)
		seen[bet] = true
	}

	a.Len(seen, 3)
}

func TestChips(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, chips(0, 100))
	a.Equal(0, chips(-5, 100))
	a.Equal(8, chips(7.2, 100))
	a.Equal(12, chips(12.5, 12.5))
	a.Equal(100, chips(100, 100))
	a.Equal(math.MaxInt, chips(1e300, 1e300))
	a.Equal(math.MaxInt, chips(math.MaxInt, math.Inf(1)))
}
