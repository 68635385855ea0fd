package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"holdem-agent/pkg/gamestate"
)

// ErrUnencodable is returned when a state cannot be written without changing its meaning
var ErrUnencodable = errors.New("state cannot be encoded")

// Encoder writes game states in the judge's line protocol
type Encoder struct {
	w       io.Writer
	variant Variant
	schema  Schema
}

// NewEncoder returns an encoder for the variant
func NewEncoder(w io.Writer, variant Variant) *Encoder {
	return &Encoder{
		w:       w,
		variant: variant,
		schema:  variant.Schema(),
	}
}

// Encode is a shortcut for NewEncoder(w, variant).Encode(state)
func Encode(w io.Writer, variant Variant, state *gamestate.GameState) error {
	return NewEncoder(w, variant).Encode(state)
}

// Encode writes every line of the state
// The state is checked first so that a decoder reading the output gets the same state back.
func (e *Encoder) Encode(state *gamestate.GameState) error {
	if err := e.check(state); err != nil {
		return err
	}

	lines := make([]string, 0, e.variant.Lines(len(state.Pots)))
	if e.schema.TurnIndices {
		lines = append(lines,
			strconv.Itoa(state.Seating.IndexToAction),
			strconv.Itoa(state.Seating.IndexOfSmallBlind))
	}

	lines = append(lines,
		strings.Join(state.Players, " "),
		strings.Join(state.PlayerCards, " "),
		e.formatAmounts(state.HeldMoney),
		e.formatAmounts(state.BetMoney),
		strings.Join(state.CommunityCards, " "),
		strconv.Itoa(len(state.Pots)))

	for _, pot := range state.Pots {
		lines = append(lines, e.formatAmount(pot.Value)+" "+strings.Join(pot.Players, " "))
	}

	switch e.schema.Trailer {
	case TrailerRoundLabel, TrailerFreeText:
		lines = append(lines, state.CurrentRound)
	case TrailerBlinds:
		lines = append(lines, e.formatAmount(state.Blinds.Small), e.formatAmount(state.Blinds.Big))
	}

	bw := bufio.NewWriter(e.w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func (e *Encoder) formatAmount(amount float64) string {
	if e.schema.Money == Integer {
		return strconv.FormatInt(int64(amount), 10)
	}

	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func (e *Encoder) formatAmounts(amounts []float64) string {
	s := make([]string, len(amounts))
	for i, amount := range amounts {
		s[i] = e.formatAmount(amount)
	}

	return strings.Join(s, " ")
}

func unencodable(field, format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrUnencodable, field, fmt.Sprintf(format, a...))
}

func checkWords(field string, words []string, allowEmpty bool) error {
	for _, word := range words {
		if word == "" && !allowEmpty {
			return unencodable(field, "empty value")
		}

		if strings.ContainsAny(word, " \r\n") {
			return unencodable(field, "%q contains a separator", word)
		}
	}

	return nil
}

func (e *Encoder) checkAmount(field string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return unencodable(field, "%v is not finite", amount)
	}

	if e.schema.Money == Integer && amount != math.Trunc(amount) {
		return unencodable(field, "%v is not a whole number", amount)
	}

	if e.schema.Money == Integer && math.Abs(amount) > MaxExactAmount {
		return unencodable(field, "%v is too large to be exact", amount)
	}

	return nil
}

func (e *Encoder) check(state *gamestate.GameState) error {
	if e.schema.TurnIndices && state.Seating == nil {
		return unencodable(FieldIndexToAction, "seating is required")
	}

	if e.schema.Trailer == TrailerBlinds && state.Blinds == nil {
		return unencodable(FieldSmallBlind, "blinds are required")
	}

	if err := checkWords(FieldPlayers, state.Players, false); err != nil {
		return err
	}

	if err := checkWords(FieldPlayerCards, state.PlayerCards, true); err != nil {
		return err
	}

	// a lone empty entry would be written as an empty line, which means no entries
	if len(state.PlayerCards) == 1 && state.PlayerCards[0] == "" {
		return unencodable(FieldPlayerCards, "a single unknown hand has no representation")
	}

	if err := checkWords(FieldCommunityCards, state.CommunityCards, false); err != nil {
		return err
	}

	for _, amount := range state.HeldMoney {
		if err := e.checkAmount(FieldHeldMoney, amount); err != nil {
			return err
		}
	}

	for _, amount := range state.BetMoney {
		if err := e.checkAmount(FieldBetMoney, amount); err != nil {
			return err
		}
	}

	for _, pot := range state.Pots {
		if len(pot.Players) == 0 {
			return unencodable(FieldPot, "%v", ErrNoEligiblePlayers)
		}

		if err := checkWords(FieldPot, pot.Players, false); err != nil {
			return err
		}

		if err := e.checkAmount(FieldPot, pot.Value); err != nil {
			return err
		}
	}

	switch e.schema.Trailer {
	case TrailerRoundLabel:
		if strings.ContainsAny(state.CurrentRound, " \r\n") {
			return unencodable(FieldCurrentRound, "round label must be a single word")
		}
	case TrailerFreeText:
		if strings.ContainsAny(state.CurrentRound, "\r\n") {
			return unencodable(FieldCurrentRound, "free text must fit on one line")
		}
	case TrailerBlinds:
		if err := e.checkAmount(FieldSmallBlind, state.Blinds.Small); err != nil {
			return err
		}

		if err := e.checkAmount(FieldBigBlind, state.Blinds.Big); err != nil {
			return err
		}
	}

	return validate(state, e.schema)
}
