// Package advisor is the boundary between raw user input and the
// simulation engine: it parses free-text numeric fields, drops empty
// card slots, and enforces the game-state invariants the engine
// assumes.
package advisor

import (
	"strconv"
	"strings"

	"github.com/lox/blackjack-odds/internal/deck"
	"github.com/lox/blackjack-odds/internal/game"
	"github.com/lox/blackjack-odds/internal/simulator"
)

// Input carries raw user-entered values. Card slots may be empty
// strings for "no card selected"; numeric fields arrive as text.
type Input struct {
	PlayerCards []string
	DealerCards []string
	NumDecks    string
	BetSize     string
	Trials      string
}

// Parse validates raw input into a game state the engine can run.
// Failures are either a *MalformedInputError (a field that would not
// parse) or an *InvalidGameStateError (parsed values that violate a
// table invariant).
func Parse(in Input) (simulator.GameState, error) {
	var state simulator.GameState

	playerHand, err := parseCards("player_cards", in.PlayerCards)
	if err != nil {
		return state, err
	}
	dealerHand, err := parseCards("dealer_cards", in.DealerCards)
	if err != nil {
		return state, err
	}

	numDecks, err := parseInt("num_decks", in.NumDecks)
	if err != nil {
		return state, err
	}
	betSize, err := parseReal("bet_size", in.BetSize)
	if err != nil {
		return state, err
	}
	trials, err := parseInt("num_sims", in.Trials)
	if err != nil {
		return state, err
	}

	if len(playerHand) < 2 {
		return state, &InvalidGameStateError{Reason: "player needs at least 2 cards"}
	}
	if len(dealerHand) != 1 {
		return state, &InvalidGameStateError{Reason: "dealer needs exactly 1 up-card"}
	}
	if numDecks < 1 {
		return state, &InvalidGameStateError{Reason: "need at least 1 deck"}
	}
	if betSize < 0 {
		return state, &InvalidGameStateError{Reason: "bet size cannot be negative"}
	}
	if trials < 1 {
		return state, &InvalidGameStateError{Reason: "need at least 1 trial"}
	}

	return simulator.GameState{
		PlayerHand:   playerHand,
		DealerUpCard: dealerHand[0],
		NumDecks:     numDecks,
		BetSize:      betSize,
		Trials:       trials,
	}, nil
}

// parseCards parses card slot values, skipping empty placeholders.
func parseCards(field string, slots []string) (game.Hand, error) {
	hand := game.Hand{}
	for _, slot := range slots {
		if strings.TrimSpace(slot) == "" {
			continue
		}
		rank, err := deck.ParseRankString(slot)
		if err != nil {
			return nil, &MalformedInputError{Field: field, Kind: CardRank, Err: err}
		}
		hand = append(hand, rank)
	}
	return hand, nil
}

func parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &MalformedInputError{Field: field, Kind: Integer, Err: err}
	}
	return v, nil
}

func parseReal(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &MalformedInputError{Field: field, Kind: Real, Err: err}
	}
	return v, nil
}
