package game

import (
	"testing"

	"github.com/lox/blackjack-odds/internal/deck"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		player   Hand
		dealer   Hand
		expected Outcome
	}{
		{
			name:     "player busts",
			player:   Hand{deck.Jack, deck.Five, deck.Seven},
			dealer:   Hand{deck.Jack, deck.Six, deck.Queen},
			expected: Loss,
		},
		{
			name:     "dealer busts",
			player:   Hand{deck.Jack, deck.Five},
			dealer:   Hand{deck.Jack, deck.Six, deck.Queen},
			expected: Win,
		},
		{
			name:     "equal totals tie",
			player:   Hand{deck.Six, deck.Five},
			dealer:   Hand{deck.Six, deck.Five},
			expected: Tie,
		},
		{
			name:     "equal totals with aces tie",
			player:   Hand{deck.Six, deck.Five, deck.Ace},
			dealer:   Hand{deck.Six, deck.Five, deck.Ace},
			expected: Tie,
		},
		{
			name:     "player higher wins",
			player:   Hand{deck.Jack, deck.Nine},
			dealer:   Hand{deck.Jack, deck.Seven},
			expected: Win,
		},
		{
			name:     "dealer higher wins",
			player:   Hand{deck.Jack, deck.Five},
			dealer:   Hand{deck.Jack, deck.Seven},
			expected: Loss,
		},
		{
			name:     "soft ace beats hard total",
			player:   Hand{deck.Ace, deck.Nine},
			dealer:   Hand{deck.Ten, deck.Nine},
			expected: Win,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.player, tt.dealer); got != tt.expected {
				t.Errorf("Classify() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestClassifyBothBust(t *testing.T) {
	player := Hand{deck.Jack, deck.Five, deck.Seven}
	dealer := Hand{deck.Jack, deck.Six, deck.Queen}

	// A busted player loses even when the dealer busts too.
	if got := Classify(player, dealer); got != Loss {
		t.Errorf("Classify() = %s, want loss", got)
	}
}
