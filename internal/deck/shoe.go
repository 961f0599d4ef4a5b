package deck

// Source produces an unbiased random index in [0, n). *rand.Rand from
// math/rand/v2 satisfies it; tests substitute scripted sequences.
type Source interface {
	IntN(n int) int
}

// Shoe is the pool of undealt cards across one or more standard
// 52-card decks. Suits are irrelevant, so it stores a count per rank
// rather than individual cards; draw probability is proportional to
// the remaining count, which is observably equivalent.
type Shoe struct {
	counts [NumRanks]int
	total  int
}

// NewShoe creates a shoe holding numDecks standard decks, four cards
// of each rank per deck.
func NewShoe(numDecks int) *Shoe {
	s := &Shoe{}
	for r := range s.counts {
		s.counts[r] = 4 * numDecks
	}
	s.total = 4 * numDecks * NumRanks
	return s
}

// RemoveKnown removes one card of the given rank, used to account for
// cards already visible on the table. Removing a rank with no cards
// left is a silent no-op.
func (s *Shoe) RemoveKnown(r Rank) {
	if r < 0 || r >= NumRanks || s.counts[r] == 0 {
		return
	}
	s.counts[r]--
	s.total--
}

// Draw removes and returns a uniformly random remaining card, weighted
// by remaining counts. If the shoe is exhausted, which cannot happen
// for any hand length reachable under the one-deck minimum, it
// degrades to returning the lowest rank rather than failing; the
// simulation always completes.
func (s *Shoe) Draw(src Source) Rank {
	if s.total == 0 {
		return Ace
	}
	idx := src.IntN(s.total)
	for r := range s.counts {
		if idx < s.counts[r] {
			s.counts[r]--
			s.total--
			return Rank(r)
		}
		idx -= s.counts[r]
	}
	// Unreachable while counts sum to total; kept as the same
	// degradation path as the empty shoe.
	return Ace
}

// Clone returns an independent copy of the shoe.
func (s *Shoe) Clone() *Shoe {
	c := *s
	return &c
}

// Remaining returns the number of undealt cards.
func (s *Shoe) Remaining() int {
	return s.total
}

// Count returns the number of undealt cards of the given rank.
func (s *Shoe) Count(r Rank) int {
	if r < 0 || r >= NumRanks {
		return 0
	}
	return s.counts[r]
}
