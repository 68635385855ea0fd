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

// field names used in errors
const (
	FieldIndexToAction     = "index_to_action"
	FieldIndexOfSmallBlind = "index_of_small_blind"
	FieldPlayers           = "players"
	FieldPlayerCards       = "player_cards"
	FieldHeldMoney         = "held_money"
	FieldBetMoney          = "bet_money"
	FieldCommunityCards    = "community_cards"
	FieldPotCount          = "pot_count"
	FieldPot               = "pot"
	FieldCurrentRound      = "current_round"
	FieldSmallBlind        = "small_blind"
	FieldBigBlind          = "big_blind"
)

// maxPreallocatedPots keeps a hostile pot count from allocating before the lines exist
const maxPreallocatedPots = 16

var errNegative = errors.New("must not be negative")

var errSingleWord = errors.New("round label must be a single word")

// Decoder reads a game state from the judge's line protocol
type Decoder struct {
	r       *bufio.Reader
	variant Variant
	schema  Schema
	line    int
}

// NewDecoder returns a decoder for the variant
func NewDecoder(r io.Reader, variant Variant) *Decoder {
	return &Decoder{
		r:       bufio.NewReader(r),
		variant: variant,
		schema:  variant.Schema(),
	}
}

// Decode is a shortcut for NewDecoder(r, variant).Decode()
func Decode(r io.Reader, variant Variant) (*gamestate.GameState, error) {
	return NewDecoder(r, variant).Decode()
}

// Decode reads every line of the variant and returns the validated state
func (d *Decoder) Decode() (*gamestate.GameState, error) {
	state := &gamestate.GameState{}

	if d.schema.TurnIndices {
		toAct, err := d.readIndex(FieldIndexToAction)
		if err != nil {
			return nil, err
		}

		smallBlind, err := d.readIndex(FieldIndexOfSmallBlind)
		if err != nil {
			return nil, err
		}

		state.Seating = &gamestate.Seating{
			IndexToAction:     toAct,
			IndexOfSmallBlind: smallBlind,
		}
	}

	var err error
	if state.Players, err = d.readWords(FieldPlayers, false); err != nil {
		return nil, err
	}

	if state.PlayerCards, err = d.readWords(FieldPlayerCards, true); err != nil {
		return nil, err
	}

	if state.HeldMoney, err = d.readAmounts(FieldHeldMoney); err != nil {
		return nil, err
	}

	if state.BetMoney, err = d.readAmounts(FieldBetMoney); err != nil {
		return nil, err
	}

	if state.CommunityCards, err = d.readWords(FieldCommunityCards, false); err != nil {
		return nil, err
	}

	if state.Pots, err = d.readPots(); err != nil {
		return nil, err
	}

	switch d.schema.Trailer {
	case TrailerRoundLabel:
		if state.CurrentRound, err = d.readRoundLabel(); err != nil {
			return nil, err
		}
	case TrailerFreeText:
		if state.CurrentRound, err = d.readLine(FieldCurrentRound); err != nil {
			return nil, err
		}
	case TrailerBlinds:
		small, err := d.readAmount(FieldSmallBlind)
		if err != nil {
			return nil, err
		}

		big, err := d.readAmount(FieldBigBlind)
		if err != nil {
			return nil, err
		}

		state.Blinds = &gamestate.Blinds{Small: small, Big: big}
	}

	if err := validate(state, d.schema); err != nil {
		return nil, err
	}

	return state, nil
}

// readLine returns the next line without its terminator
// A final line without a newline still counts as a line.
func (d *Decoder) readLine(field string) (string, error) {
	d.line++
	s, err := d.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("could not read line %d (%s): %w", d.line, field, err)
		}

		if s == "" {
			return "", TruncatedInputError{Field: field, Line: d.line}
		}
	}

	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// splitFields splits on single spaces, an empty line has no fields
func splitFields(line string) []string {
	if line == "" {
		return []string{}
	}

	return strings.Split(line, " ")
}

func (d *Decoder) formatError(field, token string, err error) FormatError {
	return FormatError{
		Field: field,
		Line:  d.line,
		Token: token,
		Err:   err,
	}
}

func (d *Decoder) readWords(field string, allowEmpty bool) ([]string, error) {
	line, err := d.readLine(field)
	if err != nil {
		return nil, err
	}

	words := splitFields(line)
	if !allowEmpty {
		for _, word := range words {
			if word == "" {
				return nil, d.formatError(field, line, ErrEmptyToken)
			}
		}
	}

	return words, nil
}

func (d *Decoder) parseAmount(field, token string) (float64, error) {
	if token == "" {
		return 0, d.formatError(field, token, ErrEmptyToken)
	}

	if d.schema.Money == Integer {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return 0, d.formatError(field, token, err)
		}

		// beyond this a float64 no longer holds every whole number
		if n > MaxExactAmount || n < -MaxExactAmount {
			return 0, d.formatError(field, token, strconv.ErrRange)
		}

		return float64(n), nil
	}

	if strings.ContainsAny(token, "xX_") {
		return 0, d.formatError(field, token, ErrNotDecimal)
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, d.formatError(field, token, err)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, d.formatError(field, token, ErrNotFinite)
	}

	return f, nil
}

func (d *Decoder) readAmounts(field string) ([]float64, error) {
	line, err := d.readLine(field)
	if err != nil {
		return nil, err
	}

	tokens := splitFields(line)
	amounts := make([]float64, len(tokens))
	for i, token := range tokens {
		if amounts[i], err = d.parseAmount(field, token); err != nil {
			return nil, err
		}
	}

	return amounts, nil
}

func (d *Decoder) readAmount(field string) (float64, error) {
	line, err := d.readLine(field)
	if err != nil {
		return 0, err
	}

	return d.parseAmount(field, line)
}

func (d *Decoder) readCount(field string) (int, error) {
	line, err := d.readLine(field)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, d.formatError(field, line, err)
	}

	if n < 0 {
		return 0, d.formatError(field, line, errNegative)
	}

	return n, nil
}

// readIndex parses a seat index, the range is checked once the players are known
func (d *Decoder) readIndex(field string) (int, error) {
	line, err := d.readLine(field)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, d.formatError(field, line, err)
	}

	return n, nil
}

func (d *Decoder) readPots() (gamestate.Pots, error) {
	count, err := d.readCount(FieldPotCount)
	if err != nil {
		return nil, err
	}

	capacity := count
	if capacity > maxPreallocatedPots {
		capacity = maxPreallocatedPots
	}

	pots := make(gamestate.Pots, 0, capacity)
	for i := 0; i < count; i++ {
		field := fmt.Sprintf("%s[%d]", FieldPot, i)
		line, err := d.readLine(field)
		if err != nil {
			return nil, err
		}

		tokens := splitFields(line)
		if len(tokens) == 0 {
			return nil, d.formatError(field, line, ErrEmptyToken)
		}

		value, err := d.parseAmount(field, tokens[0])
		if err != nil {
			return nil, err
		}

		players := tokens[1:]
		if len(players) == 0 {
			return nil, d.formatError(field, line, ErrNoEligiblePlayers)
		}

		for _, player := range players {
			if player == "" {
				return nil, d.formatError(field, line, ErrEmptyToken)
			}
		}

		pots = append(pots, &gamestate.Pot{
			Value:   value,
			Players: players,
		})
	}

	return pots, nil
}

func (d *Decoder) readRoundLabel() (string, error) {
	line, err := d.readLine(FieldCurrentRound)
	if err != nil {
		return "", err
	}

	words := splitFields(line)
	if len(words) != 1 || words[0] == "" {
		return "", d.formatError(FieldCurrentRound, line, errSingleWord)
	}

	return strings.ToLower(words[0]), nil
}
