// Package simulator estimates the value of each candidate blackjack
// action by running repeated randomized trials against the remaining
// shoe.
package simulator

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-odds/internal/deck"
	"github.com/lox/blackjack-odds/internal/game"
	"github.com/lox/blackjack-odds/internal/randutil"
	"github.com/lox/blackjack-odds/internal/statistics"
)

// GameState is a validated snapshot of the table: the player's cards,
// the dealer's up-card, the shoe composition, the stake and the number
// of trials to run per action.
type GameState struct {
	PlayerHand   game.Hand
	DealerUpCard deck.Rank
	NumDecks     int
	BetSize      float64
	Trials       int
}

// Validate checks the domain invariants the engine relies on.
func (gs GameState) Validate() error {
	if len(gs.PlayerHand) < 2 {
		return fmt.Errorf("player hand needs at least 2 cards, got %d", len(gs.PlayerHand))
	}
	if gs.NumDecks < 1 {
		return fmt.Errorf("need at least 1 deck, got %d", gs.NumDecks)
	}
	if gs.BetSize < 0 {
		return fmt.Errorf("bet size cannot be negative, got %v", gs.BetSize)
	}
	if gs.Trials < 1 {
		return fmt.Errorf("need at least 1 trial, got %d", gs.Trials)
	}
	return nil
}

// Config holds configuration for the simulation engine
type Config struct {
	// Seed drives every trial stream; runs with the same seed and
	// state produce identical reports.
	Seed int64

	// Workers is the number of parallel trial workers per action.
	// Values below 2 keep the reference single-threaded behavior.
	Workers int

	Logger *log.Logger
}

// Engine runs per-action trial batches and aggregates them into a
// report.
type Engine struct {
	config Config
}

// New creates a new engine with the given configuration
func New(config Config) *Engine {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Engine{config: config}
}

// ComputeActionOutcomes estimates every candidate action for the given
// state. Stand and one-to-three hits are always simulated; the split
// variants only when the hand is split-eligible, otherwise those slots
// keep their neutral defaults.
func (e *Engine) ComputeActionOutcomes(state GameState) (*ActionOutcomes, error) {
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game state: %w", err)
	}

	type slot struct {
		action game.Action
		out    *ProbabilityOutcome
	}

	report := NewActionOutcomes()
	slots := []slot{
		{game.StandAction(), &report.Stand},
		{game.HitAction(1), &report.HitOnce},
		{game.HitAction(2), &report.HitTwice},
		{game.HitAction(3), &report.HitThrice},
	}
	if game.CanSplit(state.PlayerHand) {
		slots = append(slots,
			slot{game.SplitAction(1), &report.SplitHitOnce},
			slot{game.SplitAction(2), &report.SplitHitTwice},
			slot{game.SplitAction(3), &report.SplitHitThrice},
		)
	}

	// One stream per action keyed off the engine seed, so adding or
	// removing split slots never perturbs the others.
	master := randutil.New(e.config.Seed)
	for _, slot := range slots {
		outcome, err := e.simulate(state, slot.action, master.Int64())
		if err != nil {
			return nil, err
		}
		*slot.out = outcome
	}
	return report, nil
}

// Simulate estimates a single candidate action.
func (e *Engine) Simulate(state GameState, action game.Action) (ProbabilityOutcome, error) {
	if err := state.Validate(); err != nil {
		return ProbabilityOutcome{}, fmt.Errorf("invalid game state: %w", err)
	}
	return e.simulate(state, action, e.config.Seed)
}

func (e *Engine) simulate(state GameState, action game.Action, seed int64) (ProbabilityOutcome, error) {
	template := buildTemplate(state)

	var tally statistics.Tally
	if e.config.Workers > 1 {
		tally = e.runParallel(template, state, action, seed)
	} else {
		tally = runTrials(template, state, action, state.Trials, randutil.New(seed))
	}

	if err := tally.Validate(); err != nil {
		return ProbabilityOutcome{}, fmt.Errorf("trial tally for %s: %w", action, err)
	}

	win, loss, tie := tally.Probabilities()
	e.config.Logger.Debug("simulated action",
		"action", action.String(),
		"trials", tally.Trials(),
		"win", win, "loss", loss, "tie", tie)

	return ProbabilityOutcome{
		EstimatedValue: tally.ExpectedValue(state.BetSize),
		Win:            win,
		Loss:           loss,
		Tie:            tie,
	}, nil
}

// buildTemplate builds the read-only shoe each trial clones: the full
// shoe minus every card already visible on the table.
func buildTemplate(state GameState) *deck.Shoe {
	shoe := deck.NewShoe(state.NumDecks)
	for _, r := range state.PlayerHand {
		shoe.RemoveKnown(r)
	}
	shoe.RemoveKnown(state.DealerUpCard)
	return shoe
}

// runTrials plays the requested number of independent trials: clone
// the shoe, execute the player action, resolve the dealer from the
// same depleted clone, classify, tally.
func runTrials(template *deck.Shoe, state GameState, action game.Action, trials int, rng *rand.Rand) statistics.Tally {
	var tally statistics.Tally
	dealerStart := game.Hand{state.DealerUpCard}

	for i := 0; i < trials; i++ {
		shoe := template.Clone()
		player := action.Apply(state.PlayerHand, shoe, rng)
		dealer := game.PlayDealer(dealerStart, shoe, rng)
		tally.Record(game.Classify(player, dealer))
	}
	return tally
}

// runParallel splits the trial budget across workers, each with its
// own shoe clones and random stream. The only shared step is summing
// the per-worker tallies, which is order-independent.
func (e *Engine) runParallel(template *deck.Shoe, state GameState, action game.Action, seed int64) statistics.Tally {
	workers := e.config.Workers
	if workers > state.Trials {
		workers = state.Trials
	}
	perWorker := state.Trials / workers
	remainder := state.Trials % workers

	seeds := randutil.New(seed)
	results := make(chan statistics.Tally, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		workerSeed := seeds.Int64()

		g.Go(func() error {
			results <- runTrials(template, state, action, trials, randutil.New(workerSeed))
			return nil
		})
	}

	// Workers never fail; Wait only fences the channel close.
	go func() {
		_ = g.Wait()
		close(results)
	}()

	var total statistics.Tally
	for tally := range results {
		total.Merge(tally)
	}
	return total
}
