// Package policy provides the decision functions an agent can play with
package policy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"holdem-agent/internal/rng"
	"holdem-agent/pkg/gamestate"
)

// DefaultSamples is how many flop runouts the strength policy looks at
const DefaultSamples = 100

// Policy chooses the action code for a decision point
type Policy interface {
	// Bet returns the chips to commit, 0 checks or folds
	// The state must not be retained after Bet returns.
	Bet(state *gamestate.GameState) int
}

// Func adapts a plain function to a Policy
type Func func(state *gamestate.GameState) int

// Bet calls f(state)
func (f Func) Bet(state *gamestate.GameState) int {
	return f(state)
}

// Options configure the built-in policies
type Options struct {
	// Self is the agent's player identifier, used when the protocol has no turn index
	Self string
	// Generator is the source of randomness, defaults to rng.Crypto
	Generator rng.Generator
	// Samples is the number of sampled runouts on the flop
	Samples int
}

func (o Options) withDefaults() Options {
	if o.Generator == nil {
		o.Generator = rng.Crypto{}
	}

	if o.Samples <= 0 {
		o.Samples = DefaultSamples
	}

	return o
}

var registry = map[string]func(opts Options) Policy{
	"check":    func(opts Options) Policy { return Check() },
	"call":     func(opts Options) Policy { return NewCall(opts) },
	"random":   func(opts Options) Policy { return NewRandom(opts) },
	"strength": func(opts Options) Policy { return NewStrength(opts) },
}

// FromString returns the built-in policy with the given name
func FromString(name string, opts Options) (Policy, error) {
	newPolicy, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown policy: %s", name)
	}

	return newPolicy(opts.withDefaults()), nil
}

// Names returns the names of the built-in policies
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// chips converts an amount to a whole number of chips, rounding up unless that is more
// than the player holds
func chips(amount, stack float64) int {
	if amount <= 0 {
		return 0
	}

	c := math.Ceil(amount)
	if c > stack {
		c = math.Floor(stack)
	}

	if c >= math.MaxInt {
		return math.MaxInt
	}

	return int(c)
}

// minRaise is the smallest raise over a call
func minRaise(state *gamestate.GameState) float64 {
	if state.Blinds != nil && state.Blinds.Big > 0 {
		return state.Blinds.Big
	}

	return 1
}
