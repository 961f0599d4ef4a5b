package statistics

import (
	"math"
	"testing"

	"github.com/lox/blackjack-odds/internal/game"
)

func TestRecordAndProbabilities(t *testing.T) {
	var tally Tally
	for i := 0; i < 6; i++ {
		tally.Record(game.Win)
	}
	for i := 0; i < 3; i++ {
		tally.Record(game.Loss)
	}
	tally.Record(game.Tie)

	if got := tally.Trials(); got != 10 {
		t.Fatalf("Trials() = %d, want 10", got)
	}

	win, loss, tie := tally.Probabilities()
	if win != 0.6 || loss != 0.3 || tie != 0.1 {
		t.Errorf("Probabilities() = %v, %v, %v, want 0.6, 0.3, 0.1", win, loss, tie)
	}
	if sum := win + loss + tie; sum != 1 {
		t.Errorf("probabilities sum to %v, want exactly 1", sum)
	}
}

func TestProbabilitiesSumToOne(t *testing.T) {
	// Awkward counts that do not divide evenly must still sum to 1
	// because every trial lands in exactly one bucket.
	tally := Tally{Wins: 1, Losses: 1, Ties: 1}
	win, loss, tie := tally.Probabilities()
	if sum := win + loss + tie; sum != 1 {
		t.Errorf("probabilities sum to %v, want exactly 1", sum)
	}
}

func TestExpectedValue(t *testing.T) {
	tally := Tally{Wins: 6, Losses: 3, Ties: 1}

	if got := tally.ExpectedValue(100); got != 100*(0.6-0.3) {
		t.Errorf("ExpectedValue(100) = %v, want 30", got)
	}
	// Ties push; only the win/loss gap moves the estimate.
	allTies := Tally{Ties: 10}
	if got := allTies.ExpectedValue(100); got != 0 {
		t.Errorf("ExpectedValue(100) = %v for all ties, want 0", got)
	}
}

func TestMerge(t *testing.T) {
	a := Tally{Wins: 2, Losses: 1, Ties: 1}
	b := Tally{Wins: 1, Losses: 3, Ties: 0}

	a.Merge(b)
	if a.Wins != 3 || a.Losses != 4 || a.Ties != 1 {
		t.Errorf("Merge() = %+v, want {3 4 1}", a)
	}
}

func TestStdError(t *testing.T) {
	tally := Tally{Wins: 50, Losses: 50}
	want := math.Sqrt(0.5 * 0.5 / 100)
	if got := tally.StdError(); math.Abs(got-want) > 1e-12 {
		t.Errorf("StdError() = %v, want %v", got, want)
	}

	lo, hi := tally.ConfidenceInterval95()
	if lo >= 0.5 || hi <= 0.5 {
		t.Errorf("ConfidenceInterval95() = [%v, %v], want interval around 0.5", lo, hi)
	}
}

func TestValidate(t *testing.T) {
	var empty Tally
	if err := empty.Validate(); err == nil {
		t.Error("Validate() on empty tally should fail")
	}

	ok := Tally{Wins: 1}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}

	negative := Tally{Wins: -1, Losses: 2}
	if err := negative.Validate(); err == nil {
		t.Error("Validate() on negative counts should fail")
	}
}
