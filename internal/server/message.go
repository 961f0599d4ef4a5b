package server

import "github.com/lox/blackjack-odds/internal/simulator"

// Message types exchanged with clients
const (
	// Client -> Server
	TypeEstimate = "estimate"

	// Server -> Client
	TypeResult = "result"
	TypeError  = "error"
)

// Error codes returned to clients
const (
	CodeMalformedInput   = "malformed_input"
	CodeInvalidGameState = "invalid_game_state"
	CodeInternal         = "internal_error"
)

// EstimateRequest asks the server to estimate every candidate action
// for a table state. Card slots may be empty strings for unselected
// positions; numeric fields are raw text, parsed server-side.
type EstimateRequest struct {
	Type        string   `json:"type"`
	PlayerCards []string `json:"player_cards"`
	DealerCards []string `json:"dealer_cards"`
	NumDecks    string   `json:"num_decks"`
	BetSize     string   `json:"bet_size"`
	NumSims     string   `json:"num_sims"`
}

// ResultMessage carries the per-action report back to the client.
type ResultMessage struct {
	Type     string                    `json:"type"`
	Outcomes *simulator.ActionOutcomes `json:"outcomes"`
	Elapsed  int64                     `json:"elapsed_ms"`
}

// ErrorMessage reports a rejected request. Code distinguishes fields
// that would not parse from states that violate a table invariant.
type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
