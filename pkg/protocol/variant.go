package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Variant specifies which line layout the judge writes
type Variant string

// Variant constants
const (
	// VariantA is continuous money with a round label trailer
	VariantA Variant = "a"
	// VariantB is integer money with turn indices and blinds
	VariantB Variant = "b"
	// VariantC is continuous money with a free text trailer
	VariantC Variant = "c"
)

// MoneyKind is how stakes, bets and pot values are written
type MoneyKind int

// MoneyKind constants
const (
	Continuous MoneyKind = iota
	Integer
)

func (m MoneyKind) String() string {
	if m == Integer {
		return "integer"
	}

	return "continuous"
}

// Trailer is what follows the pots
type Trailer int

// Trailer constants
const (
	TrailerRoundLabel Trailer = iota
	TrailerFreeText
	TrailerBlinds
)

// MaxExactAmount is the largest integer amount that survives a decode
const MaxExactAmount = 1 << 53

// Schema describes the line layout of a variant
type Schema struct {
	TurnIndices bool
	Money       MoneyKind
	Trailer     Trailer
}

var schemas = map[Variant]Schema{
	VariantA: {Money: Continuous, Trailer: TrailerRoundLabel},
	VariantB: {TurnIndices: true, Money: Integer, Trailer: TrailerBlinds},
	VariantC: {Money: Continuous, Trailer: TrailerFreeText},
}

var aliases = map[string]Variant{
	"round":    VariantA,
	"blinds":   VariantB,
	"freetext": VariantC,
}

// Schema returns the line layout of the variant
func (v Variant) Schema() Schema {
	schema, ok := schemas[v]
	if !ok {
		panic(fmt.Sprintf("unknown variant: %s", string(v)))
	}

	return schema
}

// Lines returns how many lines the judge writes for the given number of pots
func (v Variant) Lines(pots int) int {
	schema := v.Schema()

	// players, cards, held, bet, community, pot count, trailer
	lines := 7 + pots
	if schema.TurnIndices {
		lines += 2
	}

	if schema.Trailer == TrailerBlinds {
		lines++
	}

	return lines
}

func (v Variant) String() string {
	switch v {
	case VariantA:
		return "Round Label"
	case VariantB:
		return "Integer Blinds"
	case VariantC:
		return "Free Text"
	}

	panic(fmt.Sprintf("unknown variant: %s", string(v)))
}

// MarshalJSON encodes to JSON
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Money string `json:"money"`
	}{
		ID:    string(v),
		Name:  v.String(),
		Money: v.Schema().Money.String(),
	})
}

// VariantFromString returns the variant from a string
func VariantFromString(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if variant, ok := aliases[name]; ok {
		return variant, nil
	}

	variant := Variant(name)
	if _, ok := schemas[variant]; ok {
		return variant, nil
	}

	return "", fmt.Errorf("invalid variant: %s", s)
}
