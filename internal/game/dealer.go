package game

import "github.com/lox/blackjack-odds/internal/deck"

// dealerStandsAt is the total at which the dealer stops drawing.
// Keying off the maximum achievable total means the dealer stands on
// soft 17 as well as hard 17, and a busted hand stops drawing because
// its only totals already exceed 16.
const dealerStandsAt = 17

// PlayDealer draws cards for the dealer until the maximum achievable
// total reaches 17 or more, returning the finished hand. The input
// hand is not modified. Each draw strictly raises the maximum total,
// so the loop always terminates.
func PlayDealer(h Hand, shoe *deck.Shoe, src deck.Source) Hand {
	out := h.Clone()
	for out.MaxTotal() < dealerStandsAt {
		out = append(out, shoe.Draw(src))
	}
	return out
}
