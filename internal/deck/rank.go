package deck

// Rank represents a card rank. Suits never matter in blackjack, so a
// rank is the whole identity of a card.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of distinct ranks in a standard deck.
const NumRanks = 13

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

var (
	aceValues  = []int{1, 11}
	tenValues  = []int{10}
	pipValues0 = [...][]int{
		{2}, {3}, {4}, {5}, {6}, {7}, {8}, {9},
	}
)

// Values returns the admissible point values of the rank. An ace
// counts as 1 or 11; tens and face cards count as 10. The returned
// slice is shared and must not be mutated.
func (r Rank) Values() []int {
	switch {
	case r == Ace:
		return aceValues
	case r >= Two && r <= Nine:
		return pipValues0[r-Two]
	case r >= Ten && r <= King:
		return tenValues
	default:
		return nil
	}
}

// MaxValue returns the largest admissible point value of the rank.
func (r Rank) MaxValue() int {
	vals := r.Values()
	if len(vals) == 0 {
		return 0
	}
	return vals[len(vals)-1]
}

// IsAce returns true if the rank is an Ace
func (r Rank) IsAce() bool {
	return r == Ace
}
