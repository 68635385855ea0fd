package protocol

import (
	"holdem-agent/pkg/gamestate"
)

// Rounds are the labels accepted on the round label trailer
var Rounds = []string{"preflop", "flop", "turn", "river"}

func isRound(label string) bool {
	for _, round := range Rounds {
		if round == label {
			return true
		}
	}

	return false
}

// validate checks the rules that span more than one line
// Poker legality (card validity, chip conservation, turn order) is the judge's concern.
func validate(state *gamestate.GameState, schema Schema) error {
	n := len(state.Players)

	seen := make(map[string]bool, n)
	for _, player := range state.Players {
		if seen[player] {
			return newValidationError(FieldPlayers, "duplicate player %q", player)
		}

		seen[player] = true
	}

	if got := len(state.PlayerCards); got != n {
		return newValidationError(FieldPlayerCards, "expected %d entries, got %d", n, got)
	}

	if got := len(state.HeldMoney); got != n {
		return newValidationError(FieldHeldMoney, "expected %d entries, got %d", n, got)
	}

	if got := len(state.BetMoney); got != n {
		return newValidationError(FieldBetMoney, "expected %d entries, got %d", n, got)
	}

	for i, held := range state.HeldMoney {
		if held < 0 {
			return newValidationError(FieldHeldMoney, "%s holds a negative amount", state.Players[i])
		}
	}

	for i, bet := range state.BetMoney {
		if bet < 0 && bet != gamestate.FoldedBet {
			return newValidationError(FieldBetMoney, "%s has a negative bet", state.Players[i])
		}
	}

	for i, pot := range state.Pots {
		if pot.Value < 0 {
			return newValidationError(FieldPot, "pot %d has a negative value", i)
		}

		inPot := make(map[string]bool, len(pot.Players))
		for _, player := range pot.Players {
			if !seen[player] {
				return newValidationError(FieldPot, "pot %d lists unknown player %q", i, player)
			}

			if inPot[player] {
				return newValidationError(FieldPot, "pot %d lists %q twice", i, player)
			}

			inPot[player] = true
		}
	}

	if state.Seating != nil {
		if idx := state.Seating.IndexToAction; idx < 0 || idx >= n {
			return newValidationError(FieldIndexToAction, "index %d out of range for %d players", idx, n)
		}

		if idx := state.Seating.IndexOfSmallBlind; idx < 0 || idx >= n {
			return newValidationError(FieldIndexOfSmallBlind, "index %d out of range for %d players", idx, n)
		}
	}

	if state.Blinds != nil {
		if state.Blinds.Small < 0 {
			return newValidationError(FieldSmallBlind, "must not be negative")
		}

		if state.Blinds.Big < 0 {
			return newValidationError(FieldBigBlind, "must not be negative")
		}
	}

	if schema.Trailer == TrailerRoundLabel && !isRound(state.CurrentRound) {
		return newValidationError(FieldCurrentRound, "unknown round %q", state.CurrentRound)
	}

	return nil
}

// RequirePlayable returns a ValidationError unless there is someone to act and something to win
func RequirePlayable(state *gamestate.GameState) error {
	if len(state.Players) == 0 {
		return newValidationError(FieldPlayers, "no players")
	}

	if len(state.Pots) == 0 {
		return newValidationError(FieldPotCount, "no pots")
	}

	return nil
}
