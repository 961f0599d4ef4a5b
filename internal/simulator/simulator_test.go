package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-odds/internal/deck"
	"github.com/lox/blackjack-odds/internal/game"
)

func testState(player game.Hand, up deck.Rank, trials int) GameState {
	return GameState{
		PlayerHand:   player,
		DealerUpCard: up,
		NumDecks:     10,
		BetSize:      100,
		Trials:       trials,
	}
}

func TestSimulateStandOnNaturalTwentyOne(t *testing.T) {
	engine := New(Config{Seed: 12345})
	state := testState(game.Hand{deck.Ace, deck.Jack}, deck.Six, 10000)

	outcome, err := engine.Simulate(state, game.StandAction())
	require.NoError(t, err)

	// Standing on 21 can only win or tie.
	assert.Equal(t, 0.0, outcome.Loss)
	assert.Greater(t, outcome.Win, 0.0)
	assert.Less(t, outcome.Win, 1.0)
	assert.InDelta(t, 1.0, outcome.Win+outcome.Loss+outcome.Tie, 1e-9)
	assert.Equal(t, 100*(outcome.Win-outcome.Loss), outcome.EstimatedValue)
}

func TestSimulateHit(t *testing.T) {
	engine := New(Config{Seed: 12345})
	state := testState(game.Hand{deck.Ace, deck.Jack}, deck.Six, 10000)

	outcome, err := engine.Simulate(state, game.HitAction(1))
	require.NoError(t, err)

	// Hitting 21 can bust or survive; nothing should be certain.
	assert.Greater(t, outcome.Win, 0.0)
	assert.Less(t, outcome.Win, 1.0)
	assert.Greater(t, outcome.Loss, 0.0)
	assert.Less(t, outcome.Loss, 1.0)
	assert.InDelta(t, 1.0, outcome.Win+outcome.Loss+outcome.Tie, 1e-9)
}

func TestSimulateStandOnWeakHandLoses(t *testing.T) {
	engine := New(Config{Seed: 42})
	state := testState(game.Hand{deck.Two, deck.Three}, deck.Ten, 10000)

	outcome, err := engine.Simulate(state, game.StandAction())
	require.NoError(t, err)

	assert.Greater(t, outcome.Loss, outcome.Win)
	assert.Negative(t, outcome.EstimatedValue)
}

func TestComputeActionOutcomesFillsHitAndStand(t *testing.T) {
	engine := New(Config{Seed: 7})
	state := testState(game.Hand{deck.Ace, deck.Jack}, deck.Six, 2000)

	report, err := engine.ComputeActionOutcomes(state)
	require.NoError(t, err)

	for _, outcome := range []ProbabilityOutcome{report.Stand, report.HitOnce, report.HitTwice, report.HitThrice} {
		assert.InDelta(t, 1.0, outcome.Win+outcome.Loss+outcome.Tie, 1e-9)
	}
}

func TestComputeActionOutcomesSplitSlotsDefaultWhenNotEligible(t *testing.T) {
	engine := New(Config{Seed: 7})
	state := testState(game.Hand{deck.Ace, deck.Jack}, deck.Six, 500)

	report, err := engine.ComputeActionOutcomes(state)
	require.NoError(t, err)

	neutral := NeutralOutcome()
	assert.Equal(t, neutral, report.SplitHitOnce)
	assert.Equal(t, neutral, report.SplitHitTwice)
	assert.Equal(t, neutral, report.SplitHitThrice)
}

func TestComputeActionOutcomesSimulatesSplitsForPairs(t *testing.T) {
	engine := New(Config{Seed: 7})
	state := testState(game.Hand{deck.Eight, deck.Eight}, deck.Six, 2000)

	report, err := engine.ComputeActionOutcomes(state)
	require.NoError(t, err)

	neutral := NeutralOutcome()
	assert.NotEqual(t, neutral, report.SplitHitOnce)
	assert.InDelta(t, 1.0, report.SplitHitOnce.Win+report.SplitHitOnce.Loss+report.SplitHitOnce.Tie, 1e-9)
}

func TestComputeActionOutcomesDeterministicForSeed(t *testing.T) {
	state := testState(game.Hand{deck.Eight, deck.Eight}, deck.Six, 2000)

	a, err := New(Config{Seed: 99}).ComputeActionOutcomes(state)
	require.NoError(t, err)
	b, err := New(Config{Seed: 99}).ComputeActionOutcomes(state)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimulateParallelMatchesInvariants(t *testing.T) {
	engine := New(Config{Seed: 12345, Workers: 4})
	state := testState(game.Hand{deck.Ace, deck.Jack}, deck.Six, 10001)

	outcome, err := engine.Simulate(state, game.StandAction())
	require.NoError(t, err)

	assert.Equal(t, 0.0, outcome.Loss)
	assert.InDelta(t, 1.0, outcome.Win+outcome.Loss+outcome.Tie, 1e-9)
}

func TestParallelDeterministicForSeed(t *testing.T) {
	state := testState(game.Hand{deck.Ace, deck.Jack}, deck.Six, 5000)

	a, err := New(Config{Seed: 5, Workers: 4}).Simulate(state, game.HitAction(1))
	require.NoError(t, err)
	b, err := New(Config{Seed: 5, Workers: 4}).Simulate(state, game.HitAction(1))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestInvalidGameState(t *testing.T) {
	engine := New(Config{Seed: 1})
	tests := []struct {
		name  string
		state GameState
	}{
		{"one player card", testState(game.Hand{deck.Ace}, deck.Six, 100)},
		{"zero decks", GameState{PlayerHand: game.Hand{deck.Ace, deck.Jack}, DealerUpCard: deck.Six, NumDecks: 0, BetSize: 1, Trials: 100}},
		{"zero trials", testState(game.Hand{deck.Ace, deck.Jack}, deck.Six, 0)},
		{"negative bet", GameState{PlayerHand: game.Hand{deck.Ace, deck.Jack}, DealerUpCard: deck.Six, NumDecks: 1, BetSize: -1, Trials: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ComputeActionOutcomes(tt.state)
			assert.Error(t, err)
		})
	}
}
