package game

import (
	"sort"
	"strings"

	"github.com/lox/blackjack-odds/internal/deck"
)

// BlackjackTotal is the best total a hand can hold without busting.
const BlackjackTotal = 21

// Hand is an ordered sequence of card ranks. Order never affects the
// total, but split eligibility looks at the first two positions.
type Hand []deck.Rank

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	c := make(Hand, len(h))
	copy(c, h)
	return c
}

// String returns the hand as space-separated rank symbols (e.g. "A T")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, r := range h {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// Totals returns every achievable total of the hand, sorted ascending
// with duplicates removed. One value is chosen per card from its
// admissible set, so each ace at most doubles the number of candidate
// sums; for an empty hand the only total is 0.
func (h Hand) Totals() []int {
	sums := []int{0}
	for _, r := range h {
		vals := r.Values()
		if len(vals) == 1 {
			for i := range sums {
				sums[i] += vals[0]
			}
			continue
		}
		next := make([]int, 0, len(sums)*len(vals))
		for _, s := range sums {
			for _, v := range vals {
				next = append(next, s+v)
			}
		}
		sums = next
	}

	sort.Ints(sums)
	uniq := sums[:1]
	for _, s := range sums[1:] {
		if s != uniq[len(uniq)-1] {
			uniq = append(uniq, s)
		}
	}
	return uniq
}

// BestTotal returns the highest achievable total that does not exceed
// 21. ok is false when every achievable total busts.
func (h Hand) BestTotal() (best int, ok bool) {
	for _, t := range h.Totals() {
		if t <= BlackjackTotal {
			best = t
			ok = true
		}
	}
	return best, ok
}

// MaxTotal returns the largest achievable total, counting every ace
// as 11. It is not capped at 21; the dealer policy keys off it.
func (h Hand) MaxTotal() int {
	total := 0
	for _, r := range h {
		total += r.MaxValue()
	}
	return total
}

// CanSplit reports whether the hand may be split: exactly two cards of
// equal rank.
func CanSplit(h Hand) bool {
	return len(h) == 2 && h[0] == h[1]
}
