// Package statistics accumulates trial outcomes and reduces them into
// probability and expected-value estimates.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjack-odds/internal/game"
)

// Tally counts win/loss/tie outcomes across independent trials. The
// zero value is ready to use, and tallies from parallel workers merge
// by addition.
type Tally struct {
	Wins   int
	Losses int
	Ties   int
}

// Record incorporates a single trial outcome.
func (t *Tally) Record(o game.Outcome) {
	switch o {
	case game.Win:
		t.Wins++
	case game.Loss:
		t.Losses++
	case game.Tie:
		t.Ties++
	}
}

// Merge adds another tally's counts into this one.
func (t *Tally) Merge(other Tally) {
	t.Wins += other.Wins
	t.Losses += other.Losses
	t.Ties += other.Ties
}

// Trials returns the total number of recorded trials.
func (t Tally) Trials() int {
	return t.Wins + t.Losses + t.Ties
}

// Probabilities returns the win, loss and tie frequencies. Every trial
// records exactly one outcome, so the three always sum to 1 for a
// non-empty tally.
func (t Tally) Probabilities() (win, loss, tie float64) {
	n := t.Trials()
	if n == 0 {
		return 0, 0, 0
	}
	return float64(t.Wins) / float64(n),
		float64(t.Losses) / float64(n),
		float64(t.Ties) / float64(n)
}

// ExpectedValue returns the expected net return of the simulated
// action for the given bet: bet x (winP - lossP). Ties push and do not
// move the estimate.
func (t Tally) ExpectedValue(bet float64) float64 {
	win, loss, _ := t.Probabilities()
	return bet * (win - loss)
}

// StdError returns the standard error of the win-probability estimate.
func (t Tally) StdError() float64 {
	n := t.Trials()
	if n == 0 {
		return 0
	}
	win, _, _ := t.Probabilities()
	return math.Sqrt(win * (1 - win) / float64(n))
}

// ConfidenceInterval95 returns the 95% confidence interval for the win
// probability.
func (t Tally) ConfidenceInterval95() (float64, float64) {
	win, _, _ := t.Probabilities()
	margin := 1.96 * t.StdError()
	return win - margin, win + margin
}

// Validate checks internal consistency before results are reported.
func (t Tally) Validate() error {
	if t.Wins < 0 || t.Losses < 0 || t.Ties < 0 {
		return fmt.Errorf("negative outcome count: wins=%d losses=%d ties=%d", t.Wins, t.Losses, t.Ties)
	}
	if t.Trials() == 0 {
		return fmt.Errorf("no trials recorded")
	}
	return nil
}
